package terminal

import (
	"errors"
	"strconv"
	"strings"
)

// Action is what a line of player input asks for.
type Action int

const (
	ActionClick Action = iota + 1
	ActionPause
	ActionResume
	ActionReset
	ActionQuit
	ActionHelp
)

// ErrUnknownInput indicates a line that maps to no action.
var ErrUnknownInput = errors.New("unknown input")

// Input is one parsed line.
type Input struct {
	Action   Action
	Position int
}

// ParseInput maps a typed line to an action. Any integer is a click; range
// checks belong to the engine.
func ParseInput(text string) (Input, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "p", "pause":
		return Input{Action: ActionPause}, nil
	case "r", "resume":
		return Input{Action: ActionResume}, nil
	case "n", "new", "reset", "redo":
		return Input{Action: ActionReset}, nil
	case "q", "quit", "exit":
		return Input{Action: ActionQuit}, nil
	case "?", "h", "help":
		return Input{Action: ActionHelp}, nil
	}
	pos, err := strconv.Atoi(text)
	if err != nil {
		return Input{}, ErrUnknownInput
	}
	return Input{Action: ActionClick, Position: pos}, nil
}
