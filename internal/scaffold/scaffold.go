package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed templates/post.md.tmpl
var templateFS embed.FS

const templateName = "post.md.tmpl"

// Data holds the template variables interpolated into a new post. Values are
// written verbatim: Title is the raw trimmed input, Date carries the literal
// UTC offset, and Tags is the already comma-space-joined tag list.
type Data struct {
	Title    string
	Date     string
	Category string
	Tags     string
}

// Template parses and returns the embedded post template.
func Template() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/"+templateName)
}

// Render executes the embedded template with the given data.
func Render(data Data) ([]byte, error) {
	tmpl, err := Template()
	if err != nil {
		return nil, fmt.Errorf("parsing post template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing post template: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the template and writes it to path, creating the file if
// absent and truncating if present. The parent directory must already exist.
func Write(path string, data Data) error {
	content, err := Render(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
