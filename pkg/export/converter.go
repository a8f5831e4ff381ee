package export

import (
	"sync"
	"time"

	"github.com/getpostkit/postkit/internal/id"
	"github.com/getpostkit/postkit/pkg/postman"
)

// Converter transforms a collection into one output format's document.
// Converters never mutate the input collection.
type Converter interface {
	// Convert builds the output document for the collection. The concrete
	// type of the document depends on the format.
	Convert(col *postman.Collection, opts ConvertOptions) (any, error)

	// Format returns the format this converter produces.
	Format() Format
}

// ConvertOptions provides configuration for a conversion.
type ConvertOptions struct {
	// IncludeSynthesized enriches the output with synthesized query
	// parameters, headers, and bodies. Ignored by the OpenAPI converter.
	IncludeSynthesized bool

	// IDs yields resource identifiers for formats that need them.
	// Defaults to a random source.
	IDs id.Source

	// Now supplies timestamps for formats that stamp them.
	// Defaults to time.Now.
	Now func() time.Time
}

// DefaultConvertOptions enables synthesis with random ids and wall-clock
// timestamps.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{IncludeSynthesized: true}
}

func (o ConvertOptions) ids() id.Source {
	if o.IDs != nil {
		return o.IDs
	}
	return id.Rand{}
}

func (o ConvertOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Registry manages converters for different formats.
type Registry struct {
	mu         sync.RWMutex
	converters map[Format]Converter
}

// defaultRegistry is the global registry instance.
var defaultRegistry = &Registry{
	converters: make(map[Format]Converter),
}

// RegisterConverter adds a converter to the default registry.
func RegisterConverter(c Converter) {
	defaultRegistry.RegisterConverter(c)
}

// GetConverter returns the converter for a format from the default registry.
func GetConverter(format Format) Converter {
	return defaultRegistry.GetConverter(format)
}

// RegisterConverter adds a converter to the registry.
func (r *Registry) RegisterConverter(c Converter) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[c.Format()] = c
}

// GetConverter returns the converter for a format.
func (r *Registry) GetConverter(format Format) Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[format]
}

// HasConverter checks if a converter is registered for the format.
func (r *Registry) HasConverter(format Format) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.converters[format]
	return ok
}

// Convert runs the registered converter for a format.
func Convert(col *postman.Collection, format Format, opts ConvertOptions) (any, error) {
	conv := GetConverter(format)
	if conv == nil {
		return nil, &ExportError{
			Format:  format,
			Message: "no converter available for format",
		}
	}
	return conv.Convert(col, opts)
}

func init() {
	RegisterConverter(&NativeConverter{})
	RegisterConverter(&InsomniaConverter{})
	RegisterConverter(&OpenAPIConverter{})
}
