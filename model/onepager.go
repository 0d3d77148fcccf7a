package model

import (
	"time"
)

// Onepager represents one generated marketing document
type Onepager struct {
	ID          string        `json:"id"`
	ProductName string        `json:"product_name"`
	Brief       *ProductBrief `json:"brief,omitempty"`
	TemplateID  string        `json:"template_id"`
	Owner       string        `json:"owner"`
	Status      string        `json:"status"` // pending, processing, completed, failed
	Copy        *CopySlots    `json:"copy,omitempty"`
	QC          *QCResult     `json:"qc,omitempty"`
	Document    string        `json:"-"`
	ObjectKey   string        `json:"object_key,omitempty"`
	DocumentURL string        `json:"document_url,omitempty"`
	ErrorMsg    string        `json:"error_msg,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// OnepagerStatus constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
