package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Minimal is the default style: clean single column with accent rules.
type Minimal struct{}

func (t *Minimal) ID() string           { return "template_01" }
func (t *Minimal) Name() string         { return "Executive Brief" }
func (t *Minimal) Description() string  { return "Clean and elegant with professional framing" }
func (t *Minimal) Format() string       { return "A4" }
func (t *Minimal) PreviewColor() string { return "#667eea" }

func (t *Minimal) SlotLimits() model.SlotContract {
	return model.SlotContract{
		"title": 60,
		"intro": 200,
		"usp_1": 80,
		"usp_2": 80,
		"usp_3": 80,
	}
}

var minimalHTML = htmltemplate.Must(htmltemplate.New("minimal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ProductName}}</title>
<style>
@page { size: A4; margin: 20mm; }
body { font-family: 'Arial', sans-serif; font-size: 12pt; line-height: 1.6; color: #333; margin: 0; }
.header { border-bottom: 3px solid #667eea; padding-bottom: 24px; margin-bottom: 32px; }
.title { font-size: 32pt; font-weight: 700; color: #1a1a2e; margin: 0; }
.intro { font-size: 14pt; color: #555; margin: 0 0 40px 0; }
.usp { border-left: 4px solid #667eea; padding: 12px 20px; margin-bottom: 16px; background: #f8f9ff; }
.usp p { margin: 0; font-size: 12pt; color: #333; }
</style>
</head>
<body>
<div class="header"><h1 class="title">{{.Title}}</h1></div>
<p class="intro">{{.Intro}}</p>
<div class="usps">
{{range .USPs}}<div class="usp"><p>{{.}}</p></div>
{{end}}</div>
</body>
</html>
`))

func (t *Minimal) Render(slots *model.CopySlots, productName string) (string, error) {
	var buf bytes.Buffer
	if err := minimalHTML.Execute(&buf, newRenderData(slots, productName)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.ID(), err)
	}
	return buf.String(), nil
}
