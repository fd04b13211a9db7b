package template

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// Renderer handles comment template rendering
type Renderer struct {
	funcMap template.FuncMap
}

// NewRenderer creates a new template renderer
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: template.FuncMap{
			"gt": func(a, b int) bool { return a > b },
		},
	}
}

// Render renders a template file with the provided data
func (r *Renderer) Render(templatePath string, data interface{}) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	return r.RenderString(string(content), data)
}

// RenderString renders a template string with the provided data
func (r *Renderer) RenderString(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("template").Funcs(r.funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GetDefaultCommentTemplate returns the default comment template.
// It expects a report.Data value.
func (r *Renderer) GetDefaultCommentTemplate() string {
	return `{{.Marker}}
## Terraform plan for ` + "`{{.Environment}}`" + `{{if .Header}} — {{.Header}}{{end}}

{{if .LockFileChanged}}⚠️ ` + "`.terraform.lock.hcl`" + ` changed — review the provider updates.

{{end}}{{if .ResourceSummary}}{{.ResourceSummary}}
{{end}}|{{range .Stages}} {{.Name}} |{{end}}
|{{range .Stages}}:---:|{{end}}
|{{range .Stages}} {{.Glyph}} |{{end}}
{{range .Sections}}
<details{{if .Open}} open{{end}}>
<summary>{{.Title}}</summary>

` + "```" + `
{{.Body}}
` + "```" + `

</details>
{{end}}{{if .TruncationNotice}}
> ⚠️ Some output was truncated to fit this comment. See the [full logs]({{.LogsURL}}).
{{end}}
---
_Terraform {{.ToolVersion}} · generated by tf-pr-commenter_
`
}
