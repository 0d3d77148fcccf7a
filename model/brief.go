package model

// ProductType distinguishes products from services
type ProductType string

const (
	TypeProduct ProductType = "product"
	TypeService ProductType = "service"
)

// TargetAudience is the audience a onepager is written for
type TargetAudience string

const (
	AudienceB2B  TargetAudience = "B2B"
	AudienceB2C  TargetAudience = "B2C"
	AudienceBoth TargetAudience = "BOTH"
)

// ProductBrief is the normalized product/service description used as
// generation input. It is created once per request and never mutated.
type ProductBrief struct {
	ProductID      string            `json:"product_id"`
	Type           ProductType       `json:"type"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category,omitempty"`
	Features       []string          `json:"features"`
	TargetAudience TargetAudience    `json:"target_audience"`
	Language       string            `json:"language"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// SlotContract maps slot names (title, intro, usp_1..usp_5) to their
// maximum character counts. Owned by the template, read-only to generation.
type SlotContract map[string]int

// CopySlots holds generated copy for a template's slots. Slots present in
// the contract but unfillable are empty strings, never absent.
type CopySlots struct {
	Title string `json:"title"`
	Intro string `json:"intro"`
	USP1  string `json:"usp_1"`
	USP2  string `json:"usp_2"`
	USP3  string `json:"usp_3"`
	USP4  string `json:"usp_4"`
	USP5  string `json:"usp_5"`
}

// Slot returns the copy value for a slot name. Unknown slots return "".
func (c *CopySlots) Slot(name string) string {
	switch name {
	case "title":
		return c.Title
	case "intro":
		return c.Intro
	case "usp_1":
		return c.USP1
	case "usp_2":
		return c.USP2
	case "usp_3":
		return c.USP3
	case "usp_4":
		return c.USP4
	case "usp_5":
		return c.USP5
	}
	return ""
}

// SetSlot writes the copy value for a slot name. Unknown slots are ignored.
func (c *CopySlots) SetSlot(name, value string) {
	switch name {
	case "title":
		c.Title = value
	case "intro":
		c.Intro = value
	case "usp_1":
		c.USP1 = value
	case "usp_2":
		c.USP2 = value
	case "usp_3":
		c.USP3 = value
	case "usp_4":
		c.USP4 = value
	case "usp_5":
		c.USP5 = value
	}
}

// USPs returns the non-empty USP lines in slot order.
func (c *CopySlots) USPs() []string {
	var usps []string
	for _, v := range []string{c.USP1, c.USP2, c.USP3, c.USP4, c.USP5} {
		if v != "" {
			usps = append(usps, v)
		}
	}
	return usps
}
