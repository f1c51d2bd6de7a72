// Package match holds the game state and the rules engine for one titans
// match: placement, movement, capture, scoring, circuit unlocks and the end
// condition.
//
// Decide never mutates its input. It simulates the action on a copy, folding
// each event as it is emitted, so later checks in the same action (unlocks,
// phase change, captures, scores, end condition, turn switch) observe the
// effects of earlier ones in a fixed order.
package match
