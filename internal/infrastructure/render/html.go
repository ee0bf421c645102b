package render

import (
	"html/template"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
)

var gridTemplate = template.Must(template.New("cards").Parse(`{{define "card"}}<div class="pokemon-card">
  <div class="pokemon-id">{{.ID}}</div>
  <div class="pokemon-card-header">{{if .Image}}<img class="pokemon-image" src="{{.Image}}" alt="{{.Name}}">{{end}}</div>
  <div class="pokemon-card-body">
    <h3 class="pokemon-name">{{.Name}}</h3>
    <div class="pokemon-types">{{range .Types}}<span class="pokemon-type {{.}}">{{.}}</span>{{end}}</div>
    <div class="pokemon-stats">{{range .Stats}}
      <div class="pokemon-stat"><div class="pokemon-stat-label">{{.Label}}</div><div class="pokemon-stat-value">{{.Value}}</div></div>{{end}}
    </div>
  </div>
</div>
{{end}}{{define "grid"}}<div class="pokemon-grid">
{{range .}}{{template "card" .}}{{end}}</div>
{{end}}`))

var pageTemplate = template.Must(template.Must(gridTemplate.Clone()).New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1 class="pokemon-heading">{{.Title}}</h1>
{{with .Notice}}<p class="pokemon-notice">{{.}}</p>
{{end}}{{template "grid" .Cards}}</body>
</html>
`))

// WriteGrid writes the card grid for records.
func WriteGrid(w io.Writer, records []entities.Creature) error {
	return gridTemplate.ExecuteTemplate(w, "grid", NewCards(records))
}

// WritePage writes a standalone HTML document with a title and card grid.
func WritePage(w io.Writer, title, notice string, records []entities.Creature) error {
	return pageTemplate.ExecuteTemplate(w, "page", struct {
		Title  string
		Notice string
		Cards  []Card
	}{
		Title:  title,
		Notice: notice,
		Cards:  NewCards(records),
	})
}

// WriteViewPage writes a standalone HTML document for a view.
func WriteViewPage(w io.Writer, view entities.View) error {
	records := view.Records
	if view.Status != entities.StatusOK && !view.Status.IsFailure() {
		records = nil
	}
	return WritePage(w, Heading(view), Notice(view), records)
}
