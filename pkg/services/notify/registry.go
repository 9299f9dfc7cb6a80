package notify

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

const (
	TransportSendmail = "sendmail"
	TransportDryRun   = "dry-run"
)

// TransportSettings carries what a factory may need to build a transport
type TransportSettings struct {
	SendmailPath string
	Output       io.Writer
}

// TransportFactory creates a Transport from settings
type TransportFactory func(settings TransportSettings) (Transport, error)

// Registry manages transport factories by name
type Registry interface {
	// Register adds a new transport factory
	Register(name string, factory TransportFactory) error
	// Create instantiates the named transport
	Create(name string, settings TransportSettings) (Transport, error)
	// ListTransports returns the registered names in lexical order
	ListTransports() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]TransportFactory
}

// NewRegistry creates an empty transport registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]TransportFactory),
	}
}

// DefaultRegistry knows the sendmail and dry-run transports
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(TransportSendmail, func(s TransportSettings) (Transport, error) {
		return NewSendmailTransport(s.SendmailPath), nil
	})
	_ = r.Register(TransportDryRun, func(s TransportSettings) (Transport, error) {
		if s.Output == nil {
			return nil, fmt.Errorf("dry-run transport needs an output")
		}
		return NewDryRunTransport(s.Output, NewSendmailTransport(s.SendmailPath).String()), nil
	})
	return r
}

func (r *registry) Register(name string, factory TransportFactory) error {
	if name == "" {
		return fmt.Errorf("transport name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("transport %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string, settings TransportSettings) (Transport, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("transport %q is not registered, known transports: %v", name, r.ListTransports())
	}

	return factory(settings)
}

func (r *registry) ListTransports() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
