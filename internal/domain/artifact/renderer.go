// Where: internal/domain/artifact/renderer.go
// What: Embedded template loading and execution.
// Why: Parse each template once and keep rendering free of side effects.
package artifact

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// opData is the template context for per-operation artifacts.
type opData struct {
	N  Names
	Op OpNames
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	pathName := "templates/" + name
	tmpl, err := template.New(path.Base(pathName)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, pathName)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
