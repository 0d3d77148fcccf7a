package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Tech is a dark dashboard style aimed at technology products.
type Tech struct{}

func (t *Tech) ID() string           { return "template_06" }
func (t *Tech) Name() string         { return "Tech Innovation" }
func (t *Tech) Description() string  { return "Modern dashboard style for tech products" }
func (t *Tech) Format() string       { return "A4" }
func (t *Tech) PreviewColor() string { return "#00d4ff" }

func (t *Tech) SlotLimits() model.SlotContract {
	return model.SlotContract{
		"title": 80,
		"intro": 300,
		"usp_1": 110,
		"usp_2": 110,
		"usp_3": 110,
		"usp_4": 110,
		"usp_5": 110,
	}
}

var techHTML = htmltemplate.Must(htmltemplate.New("tech").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ProductName}}</title>
<style>
@page { size: A4; margin: 0; }
body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; background: #0a0e1a; color: #e2e8f0; }
.wrap { padding: 60px 50px; }
.badge { display: inline-block; color: #00d4ff; border: 1px solid #00d4ff; border-radius: 999px; padding: 4px 16px; font-size: 9pt; letter-spacing: 2px; text-transform: uppercase; margin-bottom: 24px; }
.title { font-size: 34pt; font-weight: 700; margin: 0 0 16px 0; color: #ffffff; }
.intro { font-size: 13pt; color: #94a3b8; line-height: 1.7; margin: 0 0 48px 0; }
.panel { background: #111827; border: 1px solid #1f2937; border-left: 3px solid #00d4ff; border-radius: 8px; padding: 18px 22px; margin-bottom: 14px; }
.panel p { margin: 0; font-size: 11pt; line-height: 1.5; }
</style>
</head>
<body>
<div class="wrap">
<span class="badge">{{.ProductName}}</span>
<h1 class="title">{{.Title}}</h1>
<p class="intro">{{.Intro}}</p>
<div class="panels">
{{range .USPs}}<div class="panel"><p>{{.}}</p></div>
{{end}}</div>
</div>
</body>
</html>
`))

func (t *Tech) Render(slots *model.CopySlots, productName string) (string, error) {
	var buf bytes.Buffer
	if err := techHTML.Execute(&buf, newRenderData(slots, productName)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.ID(), err)
	}
	return buf.String(), nil
}
