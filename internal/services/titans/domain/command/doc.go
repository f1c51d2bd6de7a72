// Package command defines the command envelope and decision values shared by
// the titans deciders.
//
// A command is a player's or the clock's intent. Deciders answer with a
// Decision: the events to apply, or the rejections that explain why nothing
// happened. Rejections are ordinary values, never Go errors, so an illegal
// click is a normal outcome for callers to display.
package command
