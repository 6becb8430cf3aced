package action

import (
	"log"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// Dispatcher resolves recognized gestures to bound actions and runs
// them. Only completed gestures dispatch; the began/changed updates of
// continuous gestures and failed or cancelled attempts never trigger an
// action.
type Dispatcher struct {
	bindings *store.BindingRepository
	registry *Registry
	executor *Executor
}

// NewDispatcher creates a dispatcher over the given binding repository,
// action registry and executor.
func NewDispatcher(bindings *store.BindingRepository, registry *Registry, executor *Executor) *Dispatcher {
	return &Dispatcher{
		bindings: bindings,
		registry: registry,
		executor: executor,
	}
}

// Dispatch executes the action bound to the event's gesture type, if
// any. Unbound gestures and non-ended states are silently skipped;
// lookup and execution failures are logged, never propagated, since a
// broken action must not disturb recognition.
func (d *Dispatcher) Dispatch(ev gesture.Event) {
	if ev.State != gesture.StateEnded {
		return
	}

	binding, err := d.bindings.GetByGestureType(string(ev.Type))
	if err != nil {
		log.Printf("Failed to look up binding for %s: %v", ev.Type, err)
		return
	}
	if binding == nil {
		return // Gesture is unbound
	}

	a, err := d.registry.Get(binding.ActionName)
	if err != nil {
		log.Printf("Binding %s references unknown action %q: %v", binding.ID, binding.ActionName, err)
		return
	}

	req := &Request{
		Gesture:   string(ev.Type),
		State:     string(ev.State),
		Data:      ev.Data,
		Timestamp: ev.Timestamp,
		Params:    binding.Params,
	}

	resp, err := d.executor.Execute(a, req)
	if err != nil {
		log.Printf("Action %q failed for %s: %v", binding.ActionName, ev.Type, err)
		return
	}
	if !resp.Success {
		log.Printf("Action %q reported failure for %s: %s", binding.ActionName, ev.Type, resp.Error)
	}
}
