// Package views holds the server-rendered page templates, embedded so the
// binary stays self-contained.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
