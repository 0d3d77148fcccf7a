package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Modern is a magazine-style layout with a gradient hero block.
type Modern struct{}

func (t *Modern) ID() string           { return "template_02" }
func (t *Modern) Name() string         { return "Product Focus" }
func (t *Modern) Description() string  { return "Magazine-style layout with visual impact" }
func (t *Modern) Format() string       { return "A4" }
func (t *Modern) PreviewColor() string { return "#3b82f6" }

func (t *Modern) SlotLimits() model.SlotContract {
	return model.SlotContract{
		"title": 70,
		"intro": 250,
		"usp_1": 90,
		"usp_2": 90,
		"usp_3": 90,
		"usp_4": 90,
	}
}

var modernHTML = htmltemplate.Must(htmltemplate.New("modern").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ProductName}}</title>
<style>
@page { size: A4; margin: 0; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; color: #1e293b; }
.hero { background: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%); color: #fff; padding: 80px 60px 60px; }
.hero h1 { font-size: 38pt; font-weight: 800; margin: 0 0 16px 0; line-height: 1.1; }
.hero p { font-size: 14pt; margin: 0; opacity: 0.92; max-width: 85%; }
.grid { display: flex; flex-wrap: wrap; gap: 24px; padding: 48px 60px; }
.card { flex: 1 1 40%; background: #f1f5f9; border-radius: 12px; padding: 24px; }
.card p { margin: 0; font-size: 12pt; line-height: 1.5; }
</style>
</head>
<body>
<div class="hero">
<h1>{{.Title}}</h1>
<p>{{.Intro}}</p>
</div>
<div class="grid">
{{range .USPs}}<div class="card"><p>{{.}}</p></div>
{{end}}</div>
</body>
</html>
`))

func (t *Modern) Render(slots *model.CopySlots, productName string) (string, error) {
	var buf bytes.Buffer
	if err := modernHTML.Execute(&buf, newRenderData(slots, productName)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.ID(), err)
	}
	return buf.String(), nil
}
