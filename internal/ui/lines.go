package ui

import (
	"quadlife/pkg/core"
)

// Line is one row of HUD text. Headers are drawn brighter and flush left.
type Line struct {
	Text   string
	Header bool
}

// Legend lists the key bindings shown under the parameters.
var Legend = []string{
	"LMB  paint",
	"RMB  pan    wheel zoom",
	"N/Right step  B/Left back",
	"Space play/pause",
	"R reseed  C clear",
	"1 quadtree  2 grid",
	"Q/Esc quit",
}

// Lines lays out a parameter snapshot, a play indicator and the key legend.
func Lines(snap core.ParameterSnapshot, playing bool) []Line {
	state := "paused"
	if playing {
		state = "playing"
	}
	out := []Line{{Text: "Sandbox (" + state + ")", Header: true}}
	for _, g := range snap.Groups {
		out = append(out, Line{}, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: "  " + p.Label + ": " + p.Value})
		}
	}
	out = append(out, Line{}, Line{Text: "Keys", Header: true})
	for _, l := range Legend {
		out = append(out, Line{Text: "  " + l})
	}
	return out
}
