// Package timeouts defines shared durations used across the titans binary.
package timeouts

import "time"

// Tick is the wall-clock length of one clock unit.
const Tick = time.Second

// Shutdown limits how long telemetry and storage get to flush on exit.
const Shutdown = 5 * time.Second
