package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quadlife/pkg/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Timeline",
		Params: []core.Parameter{{Key: "generation", Label: "Generation", Value: "7"}},
	}}}

	lines := Lines(snap, true)

	assert.Equal(t, Line{Text: "Sandbox (playing)", Header: true}, lines[0])
	assert.Contains(t, lines, Line{Text: "Timeline", Header: true})
	assert.Contains(t, lines, Line{Text: "  Generation: 7"})
	assert.Equal(t, "  "+Legend[len(Legend)-1], lines[len(lines)-1].Text)
	assert.Equal(t, "Sandbox (paused)", Lines(snap, false)[0].Text)
}
