// Package terminal is the tview presentation adapter for a titans match.
//
// The board, the status pane and the notice log are rendered from engine
// views by pure functions in render.go. The UI only routes typed input to the
// engine and redraws when a Result arrives.
package terminal
