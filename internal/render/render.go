// Package render holds the studio page: the three input forms, their last
// results and one-time notices.
package render

import (
	"embed"
	"html/template"

	"aistudio-backend/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const PageTemplate = "index.html"

// PageData holds everything the studio page shows.
type PageData struct {
	Title            string
	Warnings         []string
	Text             *models.FormState
	Image            *models.FormState
	Payment          *models.FormState
	Products         []models.Product
	ImageSizes       []string
	DefaultImageSize string
	TextModel        string
}

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"noticeClass": func(n *models.Notice) string {
			if n != nil && n.Level == models.NoticeError {
				return "notice notice-error"
			}
			return "notice notice-success"
		},
	}).ParseFS(templateFS, "templates/*.html")
}
