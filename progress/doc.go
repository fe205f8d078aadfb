// Package progress provides a lightweight tracker that keeps aggregated
// process counters (admitted, running, waiting, exited) for a single
// simulation run. The tracker is fed from the driver's per-tick snapshot
// observer; every component holding a reference can atomically read the
// counters without touching the simulation state itself.
package progress
