package scheduler

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/viant/toolbox"
	"github.com/viant/x"
)

// Factory builds a policy instance from its typed options; options is nil
// for policies registered without an options type.
type Factory func(options interface{}) (Policy, error)

type registration struct {
	factory     Factory
	optionsType *x.Type
}

// Registry holds the selectable scheduling policies keyed by name, together
// with their option types. The descriptor for a run is created once at
// simulation start and stays fixed for the run's duration.
type Registry struct {
	mux     sync.RWMutex
	entries map[string]*registration
	types   *x.Registry
}

// NewRegistry creates an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registration),
		types:   x.NewRegistry(),
	}
}

// Register adds a policy under the given name. When optionsType is not nil
// the workload's policy options map is converted into a new instance of that
// type before the factory runs.
func (r *Registry) Register(name string, optionsType *x.Type, factory Factory) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if optionsType != nil {
		r.types.Register(optionsType)
	}
	r.entries[strings.ToLower(name)] = &registration{factory: factory, optionsType: optionsType}
}

// Names lists the registered policy names.
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New instantiates the named policy, converting the raw options map into the
// policy's registered options type.
func (r *Registry) New(name string, options map[string]interface{}) (Policy, error) {
	r.mux.RLock()
	entry, ok := r.entries[strings.ToLower(name)]
	r.mux.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown scheduling policy: %q (available: %v)", name, r.Names())
	}
	if entry.optionsType == nil {
		if len(options) > 0 {
			return nil, fmt.Errorf("policy %q accepts no options", name)
		}
		return entry.factory(nil)
	}
	value := reflect.New(entry.optionsType.Type).Interface()
	if len(options) > 0 {
		if err := toolbox.DefaultConverter.AssignConverted(value, options); err != nil {
			return nil, fmt.Errorf("invalid options for policy %q: %w", name, err)
		}
	}
	return entry.factory(value)
}

// DefaultRegistry returns a registry with every built-in policy registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("fifo", nil, func(interface{}) (Policy, error) { return NewFIFO(), nil })
	r.Register("sjf", nil, func(interface{}) (Policy, error) { return NewSJF(), nil })
	r.Register("srtf", nil, func(interface{}) (Policy, error) { return NewSRTF(), nil })
	r.Register("rr", nil, func(interface{}) (Policy, error) { return NewRoundRobin(), nil })
	r.Register("priority",
		x.NewType(reflect.TypeOf(PriorityOptions{}), x.WithName("priority")),
		func(options interface{}) (Policy, error) {
			return NewPriority(options.(*PriorityOptions)), nil
		})
	r.Register("pcp", nil, func(interface{}) (Policy, error) { return NewPCP(), nil })
	r.Register("pip", nil, func(interface{}) (Policy, error) { return NewPIP(), nil })
	return r
}
