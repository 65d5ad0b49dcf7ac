package ui

import (
	"fmt"

	"torus-life/internal/core"
)

// Help lists the key bindings shared by every host.
var Help = []string{
	"click  toggle cell",
	"space  start/stop",
	"c      clear",
	"r      randomize",
	"+/-    delay",
	"q      quit",
}

// Row is one label/value line of a status panel.
type Row struct {
	Label  string
	Value  string
	Header bool
}

// Rows flattens a parameter snapshot into panel rows, one header per group.
func Rows(p core.ParameterSnapshot) []Row {
	var out []Row
	for _, g := range p.Groups {
		out = append(out, Row{Label: g.Name, Header: true})
		for _, param := range g.Params {
			out = append(out, Row{Label: param.Label, Value: param.Value})
		}
	}
	return out
}

// StatusLine renders the snapshot on a single line for narrow hosts.
func StatusLine(p core.ParameterSnapshot) string {
	line := ""
	for _, key := range []string{"state", "total", "live", "dead", "time", "generation", "delay"} {
		param, ok := p.Lookup(key)
		if !ok {
			continue
		}
		if line != "" {
			line += "  "
		}
		line += fmt.Sprintf("%s: %s", param.Label, param.Value)
	}
	return line
}
