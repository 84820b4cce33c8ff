// Package render turns waiting lists and squads into HTML and terminal tables.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
)

// Empty-table messages.
const (
	EmptyWaitingList = "No Players on Waiting List"
	emptySquadFormat = "No Players on Squad %d"
)

// Row classes.
const (
	ClassTable   = "playerList"
	ClassPlayer  = "playerRow"
	ClassAverage = "avgRow"
)

const tableTemplate = `{{define "table"}}<table class="playerList" align="center">
<thead><tr><th>Name</th><th>Skating</th><th>Shooting</th><th>Checking</th></tr></thead>
<tbody>
{{- range .}}
<tr class="{{rowClass .}}"><td>{{.Name}}</td><td>{{.Skating}}</td><td>{{.Shooting}}</td><td>{{.Checking}}</td></tr>
{{- end}}
</tbody>
</table>{{end}}`

const listTemplate = `{{define "list"}}{{if .Rows}}{{template "table" .Rows}}{{else}}<p>{{.Empty}}</p>{{end}}{{end}}`

const indexTemplate = `{{define "index"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- with .Stylesheet}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Squads}}
<h2>Squad {{.Number}}</h2>
{{template "list" .}}
{{- end}}
<h2>Waiting List ({{.WaitingCount}} players)</h2>
{{template "list" .WaitingList}}
</body>
</html>
{{end}}`

var templates = template.Must(template.New("render").
	Funcs(template.FuncMap{"rowClass": rowClass}).
	Parse(tableTemplate + listTemplate + indexTemplate))

func rowClass(r types.Row) string {
	if r.IsAverage() {
		return ClassAverage
	}
	return ClassPlayer
}

type listData struct {
	Number int
	Rows   []types.Row
	Empty  string
}

// Page is the data behind the index page.
type Page struct {
	Title      string
	Stylesheet string
	Squads     []types.SquadView
	Waiting    []model.Player
}

type pageData struct {
	Title        string
	Stylesheet   string
	Squads       []listData
	WaitingList  listData
	WaitingCount int
}

// WaitingList writes players as an HTML table in the given order.
func WaitingList(w io.Writer, players []model.Player) error {
	return templates.ExecuteTemplate(w, "list", waitingData(players))
}

// Squad writes a squad view as an HTML table, average row last. A squad
// without players renders its empty message instead.
func Squad(w io.Writer, view types.SquadView) error {
	return templates.ExecuteTemplate(w, "list", squadData(view))
}

// Index writes a full HTML page with every squad followed by the waiting list.
func Index(w io.Writer, page Page) error {
	data := pageData{
		Title:        page.Title,
		Stylesheet:   page.Stylesheet,
		Squads:       make([]listData, 0, len(page.Squads)),
		WaitingList:  waitingData(page.Waiting),
		WaitingCount: len(page.Waiting),
	}
	if data.Title == "" {
		data.Title = "Squads"
	}
	for _, v := range page.Squads {
		data.Squads = append(data.Squads, squadData(v))
	}
	return templates.ExecuteTemplate(w, "index", data)
}

func waitingData(players []model.Player) listData {
	return listData{Rows: types.PlayerRows(players), Empty: EmptyWaitingList}
}

func squadData(view types.SquadView) listData {
	d := listData{Number: view.Number, Empty: fmt.Sprintf(emptySquadFormat, view.Number)}
	if view.Size > 0 {
		d.Rows = view.Rows
	}
	return d
}
