package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/tetris2048/game"
)

type Report struct {
	Config    game.Config
	Seed      uint64
	Elapsed   time.Duration
	Rounds    []RoundResult
	Stats     *game.Stats
	Scheduler *game.SchedulerStats
}

type RoundResult struct {
	ID       string
	Frames   int
	Locks    int
	Score    int
	MaxTile  int
	Finished bool
	Board    string
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris 2048 Autoplay Report

## Configuration
- **Board:** {{.Config.Height}} x {{.Config.Width}}
- **Shapes:** {{.Config.Shapes}}
- **Four Chance:** {{.Config.FourChance}}
- **Seed:** {{.Seed}}
- **Elapsed:** {{.Elapsed}}

## Rounds
| Round | Frames | Locks | Score | Max Tile | Ended |
|---|---|---|---|---|---|
{{range $i, $r := .Rounds}}| {{inc $i}} | {{$r.Frames}} | {{$r.Locks}} | {{$r.Score}} | {{$r.MaxTile}} | {{if $r.Finished}}game over{{else}}frame limit{{end}} |
{{end}}
## Totals
- **High Score:** {{.Stats.HighScore}}
- **Locks:** {{.Stats.Locks}}
- **Merges:** {{.Stats.Merges}}
- **Rows Cleared:** {{.Stats.RowsCleared}}
- **Orphans Removed:** {{.Stats.OrphansRemoved}}
- **Highest Merge:** {{.Stats.MaxTile}}

## Merges By Value
{{range .Stats.MergedValues}}- {{.}}: {{$.Stats.MergeCount .}}
{{end}}
## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
{{with last .Rounds}}## Final Board
` + "```" + `
{{.Board}}
` + "```" + `
{{end}}`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"last": func(rounds []RoundResult) *RoundResult {
			if len(rounds) == 0 {
				return nil
			}
			return &rounds[len(rounds)-1]
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
