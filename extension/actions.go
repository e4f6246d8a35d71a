package extension

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/viant/ownfm/model/types"
)

// Actions provides action service
type Actions struct {
	services map[string]types.Service
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.services[service.Name()] = service
}

// Names returns registered service names in lexical order.
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.services))
	for name := range s.services {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Execute resolves service.method and runs it with the supplied input/output.
// The input and output types must match the method signature.
func (s *Actions) Execute(ctx context.Context, service, method string, input, output interface{}) error {
	aService := s.Lookup(service)
	if aService == nil {
		return types.NewServiceNotFoundError(service)
	}
	signature := aService.Methods().Lookup(method)
	if signature == nil {
		return types.NewMethodNotFoundError(service + "." + method)
	}
	if signature.Input != nil && reflect.TypeOf(input) != signature.Input {
		return types.NewInvalidInputError(input)
	}
	if signature.Output != nil && reflect.TypeOf(output) != signature.Output {
		return types.NewInvalidOutputError(output)
	}
	executable, err := aService.Method(signature.Name)
	if err != nil {
		return err
	}
	return executable(ctx, input, output)
}

// NewActions creates a new action service
func NewActions(services ...types.Service) *Actions {
	ret := &Actions{services: make(map[string]types.Service)}
	for _, service := range services {
		if service != nil {
			ret.Register(service)
		}
	}
	return ret
}
