// Package ticksim provides a discrete-tick CPU scheduling and resource
// contention simulator. A workload declares processes, their lifespans and
// scripted resource acquisitions; the simulator advances time one tick at a
// time, letting a pluggable scheduling policy pick the running process and
// arbitrate resource ownership.
//
// Built-in policies cover first-in first-out, shortest job first, shortest
// remaining time first, round robin, static priority, and the priority
// ceiling and priority inheritance protocols. Custom policies register
// through the scheduler registry.
//
// Basic usage:
//
//	srv := ticksim.New()
//	runtime := srv.Runtime()
//	wl, err := runtime.LoadWorkload(ctx, "workloads/contention.yaml")
//	if err != nil { ... }
//	report, err := runtime.Run(ctx, wl, "pip")
package ticksim

// Version is the simulator release version.
const Version = "0.1.0"
