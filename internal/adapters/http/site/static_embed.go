package site

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed static/**
var staticFS embed.FS

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html.tmpl").Funcs(template.FuncMap{
	"inputType": inputType,
}).ParseFS(templateFS, "templates/index.html.tmpl"))

// FS returns an http.FileSystem for the embedded stylesheet and assets.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
