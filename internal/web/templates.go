package web

import (
	"bytes"
	"html/template"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

type templates struct {
	page *template.Template
	game *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"iter": func(n int) []int {
			a := make([]int, n)
			for i := range a {
				a[i] = i
			}
			return a
		},
		"cell": func(b domain.Board, r, c int) domain.Cell { return b[r*3+c] },
		"add":  func(a, b int) int { return a + b },
		"mul":  func(a, b int) int { return a * b },
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-tac-toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head><body>{{template "content" .}}</body></html>`))
	template.Must(base.New("board").Parse(boardTemplate))
	template.Must(base.New("game").Parse(gameTemplate))
	page := template.Must(base.Clone())
	template.Must(page.New("content").Parse(`<div id="root">{{template "game" .}}</div>`))

	// Fragment set returned to htmx swaps.
	game := template.Must(template.New("fragment").Funcs(funcs()).Parse(`{{template "game" .}}`))
	template.Must(game.New("board").Parse(boardTemplate))
	template.Must(game.New("game").Parse(gameTemplate))
	return &templates{page: page, game: game}
}

// viewData is what both the page and the fragment render from.
type viewData struct {
	ID   string
	View domain.Snapshot
}

func newViewData(gs *app.GameState) viewData {
	return viewData{ID: gs.ID, View: gs.View}
}

func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// boardTemplate draws nine squares in row-major order. A square only reports
// its own index; the server decides what the click means.
const boardTemplate = `
<div class="board">
  {{- $id := .ID }}{{ $b := .View.Board }}
  {{- range $r := iter 3}}
  <div class="board-row">
    {{- range $c := iter 3}}
    <form class="square-form" hx-post="/game/{{$id}}/play" hx-target="#root" hx-swap="innerHTML" method="post" action="/game/{{$id}}/play">
      <input type="hidden" name="cell" value="{{add (mul $r 3) $c}}">
      <button class="square" type="submit">{{cell $b $r $c}}</button>
    </form>
    {{- end}}
  </div>
  {{- end}}
</div>
`

const gameTemplate = `
<div class="game">
  <div class="game-board">{{template "board" .}}</div>
  <div class="game-info">
    <div class="status">{{.View.Status}}</div>
    <ol>
      {{- $id := .ID }}{{ $step := .View.Step }}
      {{- range .View.Moves}}
      <li{{if eq .Step $step}} class="current"{{end}}>
        <form hx-post="/game/{{$id}}/jump" hx-target="#root" hx-swap="innerHTML" method="post" action="/game/{{$id}}/jump">
          <input type="hidden" name="step" value="{{.Step}}">
          <button type="submit">{{.Label}}</button>
        </form>
      </li>
      {{- end}}
    </ol>
  </div>
</div>
`
