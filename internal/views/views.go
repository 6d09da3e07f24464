package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page. Pages are addressed by file name, e.g. "login.html".
func Templates(now func() time.Time) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(now)).ParseFS(templateFS, "templates/*.html")
}

// Static serves the stylesheet and other assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
