// Package engine runs one titans match.
//
// The engine owns the match state. Every operation builds a command, asks the
// aggregate decider for a decision, vets and journals the emitted events and
// folds them into state before returning a Result. Rule violations come back
// as rejections inside the Result; the error return is reserved for failures
// such as a journal that cannot be written.
//
// A mutex serializes operations so the tick scheduler and the presentation
// adapter can call in from different goroutines. Subscribers are notified
// after the lock is released.
package engine
