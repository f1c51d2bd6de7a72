// Package clock models the turn clock: one main countdown per player and a
// shared per-turn countdown that restarts whenever the active player changes.
//
// The clock never decides who wins. It reports expiry through MainExpired and
// TurnExpired and the aggregate turns that into a timeout or a forced switch.
package clock
