// Package web holds the server-rendered quote form page.
package web

import (
	"embed"
	"html/template"
	"slices"

	"fabar_drinks/internal/domain/entities"
)

// BackgroundVideoURL is the decorative clip behind the form. The page hides
// the element when it fails to load.
const BackgroundVideoURL = "https://talesofthecocktail.org/wp-content/uploads/2020/03/TOTC-COCKTAILS-16x9-1.mp4"

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"contains": func(list []string, v string) bool { return slices.Contains(list, v) },
}

// Page is the data both templates render.
type Page struct {
	Form     entities.QuoteRequest
	Catalog  entities.Catalog
	VideoURL string
	Error    string
	// Link is the WhatsApp deep link shown on the confirmation screen.
	Link string
}

// NewPage returns the page for form with the default option lists.
func NewPage(form entities.QuoteRequest) Page {
	return Page{Form: form, Catalog: entities.DefaultCatalog(), VideoURL: BackgroundVideoURL}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
