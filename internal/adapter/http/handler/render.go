package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

// Renderer holds the parsed page templates. Every page is parsed
// together with the shared layout once at startup.
type Renderer struct {
	templates map[string]*template.Template
	log       logger.Logger
}

func NewRenderer(templateDir string, log logger.Logger) (*Renderer, error) {
	templates := map[string]*template.Template{}

	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		t, err := template.New(name).Funcs(templateFuncs).ParseFiles(layout, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		log:       log,
	}, nil
}

// templateFuncs are the helpers available inside every page template.
var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
}

// Render executes the named page within the shared layout.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := rd.templates[page]
	if !ok {
		rd.log.Error(r.Context(), "template not found", fmt.Errorf("template %q not registered", page))
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		rd.log.Error(r.Context(), "failed to render template", err, "page", page)
	}
}

// RenderError shows the shared error page with the given message.
func (rd *Renderer) RenderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error.html", map[string]any{
		"Status":  status,
		"Message": message,
	})
}
