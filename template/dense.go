package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Dense is an infographic style that fits all five USP slots.
type Dense struct{}

func (t *Dense) ID() string           { return "template_03" }
func (t *Dense) Name() string         { return "Data-Driven" }
func (t *Dense) Description() string  { return "Infographic style for detailed information" }
func (t *Dense) Format() string       { return "A4" }
func (t *Dense) PreviewColor() string { return "#0f172a" }

func (t *Dense) SlotLimits() model.SlotContract {
	return model.SlotContract{
		"title": 80,
		"intro": 300,
		"usp_1": 100,
		"usp_2": 100,
		"usp_3": 100,
		"usp_4": 100,
		"usp_5": 100,
	}
}

const denseBody = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ProductName}}</title>
<style>
@page { size: A4; margin: 15mm; }
body { font-family: 'Arial', sans-serif; font-size: 11pt; line-height: 1.5; color: #0f172a; margin: 0; }
.title { font-size: 26pt; font-weight: 700; margin: 0 0 12px 0; border-bottom: 2px solid #0f172a; padding-bottom: 12px; }
.intro { font-size: 12pt; color: #334155; margin: 0 0 28px 0; }
.usp { display: flex; align-items: baseline; gap: 12px; padding: 10px 0; border-bottom: 1px solid #e2e8f0; }
.usp .num { font-size: 16pt; font-weight: 700; color: #0f172a; min-width: 28px; }
.usp p { margin: 0; }
</style>
</head>
<body>
<h1 class="title">{{.Title}}</h1>
<p class="intro">{{.Intro}}</p>
<div class="usps">
{{range $i, $usp := .USPs}}<div class="usp"><span class="num">{{printf "%02d" (inc $i)}}</span><p>{{$usp}}</p></div>
{{end}}</div>
</body>
</html>
`

// inc is needed because range indexes are zero-based.
var denseHTML = htmltemplate.Must(htmltemplate.New("dense").Funcs(htmltemplate.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(denseBody))

func (t *Dense) Render(slots *model.CopySlots, productName string) (string, error) {
	var buf bytes.Buffer
	if err := denseHTML.Execute(&buf, newRenderData(slots, productName)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.ID(), err)
	}
	return buf.String(), nil
}
