package render

import (
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"github.com/ucstools/ucs-config-report/pkg/inventory"
	"github.com/ucstools/ucs-config-report/pkg/rules"
)

// htmlView regroups the flat section list into the tab-group/subtab tree
// the page navigation needs, preserving catalog order throughout.
type htmlView struct {
	Meta      inventory.Meta
	Groups    []tabGroup
	Results   []rules.Result
	PassCount int
	FailCount int
}

type tabGroup struct {
	Name    string
	Subtabs []subtab
}

type subtab struct {
	Name   string
	Tables []inventory.Table
}

func buildView(doc *inventory.Document, results []rules.Result) *htmlView {
	view := &htmlView{Meta: doc.Meta, Results: results}

	groupIdx := map[string]int{}
	for _, sec := range doc.Sections {
		gi, ok := groupIdx[sec.TabGroup]
		if !ok {
			gi = len(view.Groups)
			groupIdx[sec.TabGroup] = gi
			view.Groups = append(view.Groups, tabGroup{Name: sec.TabGroup})
		}
		g := &view.Groups[gi]

		si := -1
		for i := range g.Subtabs {
			if g.Subtabs[i].Name == sec.Subtab {
				si = i
				break
			}
		}
		if si < 0 {
			si = len(g.Subtabs)
			g.Subtabs = append(g.Subtabs, subtab{Name: sec.Subtab})
		}
		g.Subtabs[si].Tables = append(g.Subtabs[si].Tables, sec)
	}

	for _, res := range results {
		if res.Verdict.Status == rules.StatusPass {
			view.PassCount++
		} else {
			view.FailCount++
		}
	}
	return view
}

func renderHTML(w io.Writer, doc *inventory.Document, results []rules.Result) error {
	tmpl, err := template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(htmlTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, buildView(doc, results))
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>UCS Configuration Report - {{.Meta.SystemName}}</title>
<style>
  body { font-family: "Segoe UI", Arial, sans-serif; margin: 0; color: #222; }
  header { background: #04355e; color: #fff; padding: 14px 24px; }
  header h1 { margin: 0 0 4px 0; font-size: 20px; }
  header .meta { font-size: 12px; color: #bcd0e0; }
  nav { background: #f0f3f6; padding: 8px 24px; border-bottom: 1px solid #d6dde4; }
  nav a { margin-right: 14px; color: #04557e; text-decoration: none; font-weight: 600; }
  main { padding: 16px 24px; }
  h2 { border-bottom: 2px solid #04557e; padding-bottom: 4px; margin-top: 32px; }
  h3 { color: #04557e; margin-bottom: 2px; }
  h4 { margin: 12px 0 4px 0; }
  table { border-collapse: collapse; margin: 4px 0 16px 0; font-size: 13px; }
  th { background: #e4ebf1; text-align: left; padding: 4px 10px; border: 1px solid #c9d3dc; }
  td { padding: 3px 10px; border: 1px solid #c9d3dc; }
  tr:nth-child(even) td { background: #f7f9fb; }
  .empty { color: #888; font-style: italic; font-size: 13px; }
  .rec { border: 1px solid #c9d3dc; border-radius: 4px; padding: 8px 12px; margin: 8px 0; }
  .rec.pass { border-left: 6px solid #2e8540; }
  .rec.fail { border-left: 6px solid #cd2026; }
  .rec .badge { font-weight: 700; text-transform: uppercase; font-size: 12px; }
  .rec.pass .badge { color: #2e8540; }
  .rec.fail .badge { color: #cd2026; }
  .rec .detail { font-size: 13px; color: #444; }
</style>
</head>
<body>
<header>
  <h1>UCS Configuration Report &mdash; {{.Meta.SystemName}}</h1>
  <div class="meta">
    {{.Meta.Endpoint}} &middot; UCS Manager {{.Meta.Version}} &middot;
    collected {{.Meta.CollectedAt.Format "2006-01-02 15:04:05 MST"}} &middot;
    run {{.Meta.RunID}} &middot; ucs-config-report {{.Meta.ToolVersion | default "dev"}}
  </div>
</header>
<nav>
  {{- range .Groups}}
  <a href="#group-{{.Name | kebabcase}}">{{.Name}}</a>
  {{- end}}
  <a href="#recommendations">Recommendations ({{.PassCount}} pass / {{.FailCount}} fail)</a>
</nav>
<main>
{{- range .Groups}}
  <h2 id="group-{{.Name | kebabcase}}">{{.Name}}</h2>
  {{- range .Subtabs}}
  <h3>{{.Name}}</h3>
    {{- range .Tables}}
    <h4>{{.Title}}</h4>
    {{- if .Rows}}
    <table>
      <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
      {{- range .Rows}}
      <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{- end}}
    </table>
    {{- else}}
    <p class="empty">No entries.</p>
    {{- end}}
    {{- end}}
  {{- end}}
{{- end}}

  <h2 id="recommendations">Recommendations</h2>
{{- range .Results}}
  <div class="rec {{.Verdict.Status}}">
    <span class="badge">{{.Verdict.Status}}</span> {{.Description}}
    {{- if .Verdict.Detail}}
    <div class="detail">{{.Verdict.Detail}}</div>
    {{- end}}
    {{- if .Verdict.Offenders}}
    <div class="detail">Affected: {{.Verdict.Offenders | join ", "}}</div>
    {{- end}}
  </div>
{{- end}}
</main>
</body>
</html>
`
