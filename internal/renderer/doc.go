// Package renderer provides the display layer for the hecto editor.
//
// The renderer is responsible for:
//   - Projecting engine state into a Frame once per loop iteration
//   - Drawing the visible line slices, empty-row markers and welcome text
//   - Drawing the status bar and placing the terminal cursor
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│     Project (engine -> Frame)           │
//	├─────────────────────────────────────────┤
//	│     Renderer (Frame -> cells)           │
//	│     Viewport │ StatusLine               │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.WithWelcome("Hecto editor -- version 1.0"))
//	r.Render(renderer.Project(e, message, false))
package renderer
