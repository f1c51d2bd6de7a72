// Package server composes the titans runtime for the command entrypoint.
//
// It opens the event journal, builds the match engine, starts the clock
// scheduler, and hands the engine to the terminal front end.
package server
