// Package templates renders the HTML email bodies embedded in the binary.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

//go:embed html/*.html
var files embed.FS

// Compile-time interface check.
var _ ports.TemplateRenderer = (*Renderer)(nil)

// Renderer executes the embedded templates. Each file html/<name>.html is
// available under <name>. Safe for concurrent use.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every embedded template.
func New() (*Renderer, error) {
	return newFromFS(files, "html")
}

func newFromFS(fsys fs.FS, dir string) (*Renderer, error) {
	paths, err := fs.Glob(fsys, dir+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(paths))}
	for _, p := range paths {
		name := strings.TrimSuffix(path.Base(p), ".html")
		t, err := template.New(path.Base(p)).Option("missingkey=error").ParseFS(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.templates[name] = t
	}

	for _, required := range []string{ports.TemplateAdminNotification, ports.TemplateUserConfirmation, ports.TemplateTest} {
		if _, ok := r.templates[required]; !ok {
			return nil, fmt.Errorf("template %s not found", required)
		}
	}
	return r, nil
}

// Render executes the named template. User-supplied fields are HTML-escaped.
func (r *Renderer) Render(name string, data ports.TemplateData) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
