package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// Corporate is a formal style built around large, light typography.
type Corporate struct{}

func (t *Corporate) ID() string           { return "template_04" }
func (t *Corporate) Name() string         { return "Corporate Classic" }
func (t *Corporate) Description() string  { return "Formal business style with large typography" }
func (t *Corporate) Format() string       { return "A4" }
func (t *Corporate) PreviewColor() string { return "#1a1a1a" }

func (t *Corporate) SlotLimits() model.SlotContract {
	return model.SlotContract{
		"title": 70,
		"intro": 280,
		"usp_1": 100,
		"usp_2": 100,
		"usp_3": 100,
	}
}

var corporateHTML = htmltemplate.Must(htmltemplate.New("corporate").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.ProductName}}</title>
<style>
@page { size: A4; margin: 20mm; }
* { box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; }
.container { background: #ffffff; padding: 70px 60px; }
.title { font-size: 64pt; font-weight: 100; color: #1a1a1a; margin: 0 0 20px 0; line-height: 1; letter-spacing: -2px; }
.intro { font-size: 20pt; color: #666; line-height: 1.8; margin: 0; font-weight: 300; max-width: 80%; }
.benefits { display: flex; flex-direction: column; gap: 40px; margin-top: 80px; }
.benefit { border-top: 1px solid #e0e0e0; padding-top: 30px; }
.benefit p { font-size: 18pt; color: #333; margin: 0; line-height: 1.8; font-weight: 400; }
</style>
</head>
<body>
<div class="container">
<div class="title-section">
<h1 class="title">{{.Title}}</h1>
<div class="intro">{{.Intro}}</div>
</div>
<div class="benefits">
{{range .USPs}}<div class="benefit"><p>{{.}}</p></div>
{{end}}</div>
</div>
</body>
</html>
`))

func (t *Corporate) Render(slots *model.CopySlots, productName string) (string, error) {
	var buf bytes.Buffer
	if err := corporateHTML.Execute(&buf, newRenderData(slots, productName)); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.ID(), err)
	}
	return buf.String(), nil
}
