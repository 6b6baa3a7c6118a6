package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Reporter renders a sales summary to its writer.
type Reporter interface {
	Handle(summary *domain.SalesSummary) error
}

// ReporterFactory is a function type that creates a Reporter writing to w.
type ReporterFactory func(w io.Writer) Reporter

// Registry manages output format factories.
type Registry interface {
	// Register adds a new format factory
	Register(format string, factory ReporterFactory) error
	// Create instantiates a reporter for the specified format writing to w
	Create(format string, w io.Writer) (Reporter, error)
	// ListFormats returns the registered format names, sorted
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ReporterFactory
}

// NewRegistry creates an empty reporter registry.
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]ReporterFactory),
	}
}

// NewDefaultRegistry creates a registry with the built-in text and json
// reporters registered.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register("text", func(w io.Writer) Reporter { return NewTextReporter(w) })
	_ = r.Register("json", func(w io.Writer) Reporter { return NewJSONReporter(w) })
	return r
}

func (r *registry) Register(format string, factory ReporterFactory) error {
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[format] = factory
	return nil
}

func (r *registry) Create(format string, w io.Writer) (Reporter, error) {
	r.mu.RLock()
	factory, exists := r.factories[format]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown format %q, available formats: %s",
			format, strings.Join(r.ListFormats(), ", "))
	}

	return factory(w), nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
