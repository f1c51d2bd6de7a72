// Package aggregate combines match and clock state and routes commands to
// the decider that owns them.
//
// A tick is the one command that crosses both: the clock decides how time
// elapses and, once those events are folded, an expired main clock becomes a
// timeout and an expired turn countdown becomes a forced switch.
package aggregate
