package event

// ResetPayload carries the clock budgets a reset restores.
type ResetPayload struct {
	MainBudget int `json:"main_budget"`
	TurnBudget int `json:"turn_budget"`
}

// PiecePlacedPayload describes a placement.
type PiecePlacedPayload struct {
	Player   string `json:"player"`
	Position int    `json:"position"`
}

// CircuitUnlockedPayload names the newly opened circuit.
type CircuitUnlockedPayload struct {
	Circuit int `json:"circuit"`
}

// PhaseChangedPayload describes a phase transition.
type PhaseChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PieceSelectedPayload names the selected piece.
type PieceSelectedPayload struct {
	Player   string `json:"player"`
	Position int    `json:"position"`
}

// PieceMovedPayload describes a one-step move.
type PieceMovedPayload struct {
	Player string `json:"player"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

// PieceCapturedPayload describes a removed piece and who surrounded it.
type PieceCapturedPayload struct {
	Player     string `json:"player"`
	Position   int    `json:"position"`
	CapturedBy string `json:"captured_by"`
}

// ScoresUpdatedPayload carries freshly recomputed scores.
type ScoresUpdatedPayload struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

// TurnSwitchedPayload describes a change of active player.
type TurnSwitchedPayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Forced bool   `json:"forced,omitempty"`
}

// MatchEndedPayload is the end-of-game notification.
type MatchEndedPayload struct {
	Reason    string `json:"reason"`
	Winner    string `json:"winner"`
	TimedOut  string `json:"timed_out,omitempty"`
	RedScore  int    `json:"red_score"`
	BlueScore int    `json:"blue_score"`
}

// ClockTickedPayload carries the remaining time after one tick.
type ClockTickedPayload struct {
	Player        string `json:"player"`
	MainRemaining int    `json:"main_remaining"`
	TurnRemaining int    `json:"turn_remaining"`
}
