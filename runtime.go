package ticksim

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/ticksim/model/report"
	mworkload "github.com/viant/ticksim/model/workload"
	"github.com/viant/ticksim/service/dao"
	"github.com/viant/ticksim/service/driver"
	"github.com/viant/ticksim/tracing"
)

// Runtime executes workloads against the owning service's registry and
// stores the resulting run reports.
type Runtime struct {
	service *Service
}

// LoadWorkload fetches and validates the workload at the given URL.
func (r *Runtime) LoadWorkload(ctx context.Context, URL string) (*mworkload.Workload, error) {
	return r.service.workloads.Load(ctx, URL)
}

// Run executes the workload under the named policy and returns the stored
// run report. An empty policyName falls back to the workload's own policy
// setting.
func (r *Runtime) Run(ctx context.Context, wl *mworkload.Workload, policyName string) (*report.RunReport, error) {
	if policyName == "" {
		policyName = wl.Policy
	}
	if policyName == "" {
		return nil, fmt.Errorf("no scheduling policy specified for workload %q", wl.Name)
	}
	policy, err := r.service.registry.New(policyName, wl.PolicyOptions)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "run")
	span.WithAttributes(map[string]string{
		"workload":  wl.Name,
		"policy":    policyName,
		"processes": strconv.Itoa(len(wl.Processes)),
	})

	options := []driver.Option{}
	if r.service.events != nil {
		options = append(options, driver.WithEventService(r.service.events))
	}
	if r.service.observer != nil {
		options = append(options, driver.WithSnapshotObserver(r.service.observer))
	}
	ret, err := driver.New(policy, r.service.config.Driver, options...).Run(ctx, wl)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	if err := r.service.runDAO.Save(ctx, ret); err != nil {
		return nil, fmt.Errorf("failed to store run report %v: %w", ret.ID, err)
	}
	return ret, nil
}

// Report retrieves a stored run report by run id.
func (r *Runtime) Report(ctx context.Context, id string) (*report.RunReport, error) {
	return r.service.runDAO.Load(ctx, id)
}

// Reports lists stored run reports passing the filter parameters.
func (r *Runtime) Reports(ctx context.Context, parameters ...*dao.Parameter) ([]*report.RunReport, error) {
	return r.service.runDAO.List(ctx, parameters...)
}
