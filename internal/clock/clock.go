// Package clock wraps wall-clock access so report timestamps can be frozen
// in tests. Simulated time is tick-based and never goes through here.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
