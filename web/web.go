package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"go-reestr/internal/middleware"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/*
var contentFS embed.FS

// TemplateFS returns the page templates. TEMPLATES_DIR serves them from disk.
func TemplateFS() (fs.FS, error) {
	if dir := os.Getenv("TEMPLATES_DIR"); dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(contentFS, "templates")
}

func StaticFS() (fs.FS, error) {
	return fs.Sub(contentFS, "static")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"json": toJS,
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"add": func(a, b int) int {
			return a + b
		},
	}
}

func toJS(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func Templates() (*template.Template, error) {
	fsys, err := TemplateFS()
	if err != nil {
		return nil, err
	}
	return template.New("").Funcs(FuncMap()).ParseFS(fsys, "*.html")
}

// MustTemplates is for tests and main, where a broken template is fatal
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Page merges the shared layout fields into data
func Page(c *gin.Context, title string, data gin.H) gin.H {
	page := gin.H{
		"Title":    title,
		"User":     c.GetString(middleware.UserEmailKey),
		"DemoMode": c.GetBool(middleware.DemoModeKey),
	}
	for k, v := range data {
		page[k] = v
	}
	return page
}
