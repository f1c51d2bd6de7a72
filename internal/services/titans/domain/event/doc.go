// Package event defines the event envelope, the event types emitted by the
// titans deciders, and the registry the engine uses to vet events before they
// reach the journal.
//
// Events are immutable facts. Folding the same sequence of events always yields
// the same match and clock state, which is what lets the deciders simulate a
// whole action before committing to it.
package event
