package sandbox

import (
	"strconv"

	"quadlife/pkg/core"
)

// Parameters reports the sandbox state for display.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	hovered := "-"
	if idx, ok := s.Hovered(); ok {
		row, col := s.geom.RowCol(idx)
		hovered = strconv.Itoa(row) + "," + strconv.Itoa(col)
	}
	tc := s.tree.Config()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.geom.Cols),
				intParam("h", "Height", s.geom.Rows),
				floatParam("cell", "Cell size", s.geom.CellSize),
			},
		},
		{
			Name: "Index",
			Params: []core.Parameter{
				intParam("max_objects", "Max objects", tc.MaxObjects),
				intParam("max_levels", "Max levels", tc.MaxLevels),
				intParam("tree_depth", "Depth", s.tree.Depth()),
				intParam("tree_nodes", "Nodes", s.tree.NodeCount()),
			},
		},
		{
			Name: "Timeline",
			Params: []core.Parameter{
				stringParam("rule", "Rule", s.rule.String()),
				intParam("generation", "Generation", s.engine.Generation()),
				intParam("depth", "History", s.engine.Depth()),
				intParam("live", "Live cells", s.engine.LiveCount()),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				stringParam("hovered", "Hovered", hovered),
				stringParam("gesture", "Gesture", s.gesture.Mode.String()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', 4, 64)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
