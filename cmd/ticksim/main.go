// Command ticksim runs a workload file through the simulator and prints the
// resulting timeline and per-process metrics.
//
// Usage:
//
//	ticksim -workload workloads/contention.yaml [-policy rr] [-events] [-dump]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/viant/ticksim"
	"github.com/viant/ticksim/model/report"
	"github.com/viant/ticksim/progress"
	"github.com/viant/ticksim/runtime/execution"
	"github.com/viant/ticksim/service/dao"
	rfs "github.com/viant/ticksim/service/dao/run/fs"
	"github.com/viant/ticksim/service/event"
)

func main() {
	var (
		workloadURL = flag.String("workload", "", "workload document URL (required)")
		policy      = flag.String("policy", "", "scheduling policy, overrides the workload's setting")
		maxTicks    = flag.Int("max-ticks", 0, "tick limit, 0 keeps the default")
		verify      = flag.Bool("verify", true, "verify state invariants after every tick")
		events      = flag.Bool("events", false, "print transition events as the run advances")
		dump        = flag.Bool("dump", false, "print a status dump after every tick")
		reportsURL  = flag.String("reports-url", "", "store run reports under this URL instead of in memory")
		traceFile   = flag.String("trace-file", "", "write an OpenTelemetry trace of the run to this file")
	)
	flag.Parse()
	if *workloadURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	config := ticksim.DefaultConfig()
	config.Driver.VerifyInvariants = *verify
	if *maxTicks > 0 {
		config.Driver.MaxTicks = *maxTicks
	}
	if *traceFile != "" {
		config.Tracing = ticksim.TracingConfig{Enabled: true, OutputFile: *traceFile}
	}

	options := []ticksim.Option{ticksim.WithConfig(config)}
	var runDAO dao.Service[string, report.RunReport]
	if *reportsURL != "" {
		runDAO = rfs.New(*reportsURL)
		options = append(options, ticksim.WithRunDAO(runDAO))
	}
	tracker := progress.New("", *workloadURL)
	options = append(options, ticksim.WithSnapshotObserver(func(snapshot *execution.Snapshot) {
		tracker.Observe(snapshot)
		if *dump {
			printSnapshot(snapshot)
		}
	}))

	ctx := context.Background()
	var listener *event.Listener[report.Transition]
	if *events {
		eventService := event.New()
		publisher, err := event.PublisherOf[report.Transition](eventService)
		if err != nil {
			log.Fatal(err)
		}
		listener = event.NewListener(publisher, printTransition)
		listener.Start(ctx)
		defer listener.Stop()
		options = append(options, ticksim.WithEventService(eventService))
	}

	runtime := ticksim.New(options...).Runtime()
	wl, err := runtime.LoadWorkload(ctx, *workloadURL)
	if err != nil {
		log.Fatal(err)
	}
	ret, err := runtime.Run(ctx, wl, *policy)
	if err != nil {
		log.Fatal(err)
	}
	printReport(ret)
	state := tracker.Snapshot()
	fmt.Printf("exited %d/%d processes in %s\n", state.Exited, state.Admitted, time.Since(state.StartedAt).Round(time.Millisecond))
	if ret.Stalled {
		os.Exit(1)
	}
}

func printTransition(e *event.Event[report.Transition]) {
	t := e.Data
	switch t.Kind {
	case report.KindIdle:
		fmt.Printf("tick %3d  idle\n", t.Tick)
	case report.KindDispatched, report.KindPreempted, report.KindAdmitted, report.KindExited:
		fmt.Printf("tick %3d  %-10s P%d priority=%d\n", t.Tick, t.Kind, t.Process, t.Priority)
	default:
		fmt.Printf("tick %3d  %-10s P%d resource=%d priority=%d\n", t.Tick, t.Kind, t.Process, t.Resource, t.Priority)
	}
}

func printSnapshot(snapshot *execution.Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %3d  running=", snapshot.Tick)
	if snapshot.Current < 0 {
		b.WriteString("-")
	} else {
		fmt.Fprintf(&b, "P%d", snapshot.Current)
	}
	fmt.Fprintf(&b, " ready=%v", snapshot.Ready)
	for _, r := range snapshot.Resources {
		if r.Owner < 0 && len(r.Waiters) == 0 {
			continue
		}
		fmt.Fprintf(&b, " R%d{owner=%d waiters=%v}", r.ID, r.Owner, r.Waiters)
	}
	fmt.Println(b.String())
}

func printReport(ret *report.RunReport) {
	fmt.Printf("run %v workload=%v policy=%v ticks=%d idle=%d", ret.ID, ret.Workload, ret.Policy, ret.Ticks, ret.IdleTicks)
	if ret.Stalled {
		fmt.Print(" STALLED")
	}
	fmt.Println()
	fmt.Println(ret.TimelineString())
	for _, p := range ret.Processes {
		fmt.Printf("P%d arrival=%d completion=%d turnaround=%d waited=%d preemptions=%d\n",
			p.ID, p.Arrival, p.Completion, p.Turnaround, p.Waited, p.Preemptions)
	}
}
