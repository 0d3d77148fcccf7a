// Package template holds the built-in onepager visual styles. Each style
// owns a slot contract (slot name -> max characters) and renders finished
// copy into an HTML document. Generation code depends only on the Template
// interface, never on a concrete style.
package template

import (
	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Template is the capability a visual style provides to the pipeline.
type Template interface {
	ID() string
	Name() string
	Description() string
	Format() string
	SlotLimits() model.SlotContract
	Render(slots *model.CopySlots, productName string) (string, error)
	PreviewColor() string
}

// DefaultTemplateID is used when a request names no template or an unknown one.
const DefaultTemplateID = "template_01"

var registry = []Template{
	&Minimal{},
	&Modern{},
	&Dense{},
	&Corporate{},
	&Tech{},
}

// Get returns the template with the given id, or the default template for
// unknown ids.
func Get(id string) Template {
	for _, tpl := range registry {
		if tpl.ID() == id {
			return tpl
		}
	}
	return Get(DefaultTemplateID)
}

// All returns every registered template in display order.
func All() []Template {
	result := make([]Template, len(registry))
	copy(result, registry)
	return result
}

// SampleCopy returns placeholder copy used for template previews.
func SampleCopy() *model.CopySlots {
	return &model.CopySlots{
		Title: "Sample Product Title",
		Intro: "This is a sample introduction text to show how the template looks. It demonstrates the layout and styling.",
		USP1:  "Key Feature One",
		USP2:  "Key Feature Two",
		USP3:  "Key Feature Three",
	}
}

// renderData is the payload handed to every style's HTML template.
type renderData struct {
	ProductName string
	Title       string
	Intro       string
	USPs        []string
}

func newRenderData(slots *model.CopySlots, productName string) renderData {
	return renderData{
		ProductName: productName,
		Title:       slots.Title,
		Intro:       slots.Intro,
		USPs:        slots.USPs(),
	}
}
