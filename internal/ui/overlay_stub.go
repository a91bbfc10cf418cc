//go:build !ebiten

package ui

import "quadlife/pkg/sandbox"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*sandbox.Sandbox) *Overlay { return &Overlay{} }

// ShowGrid is false in headless builds.
func (o *Overlay) ShowGrid() bool { return false }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
