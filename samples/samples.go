// Package samples ships a catalog of named diagrams together with the
// crossing policy each one needs and the result it is expected to produce.
//
// The built-in catalog is embedded from samples.yaml; Load reads a catalog
// of the same shape from any io.Reader.
//
// Errors:
//
//   - ErrUnknownSample: Get was asked for a name not in the catalog.
//   - ErrDuplicateSample: a catalog lists the same name twice.
//   - ErrInvalidSample: an entry has no name or no rows.
package samples

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/pathtrace"
)

var (
	// ErrUnknownSample indicates a lookup for a name the catalog lacks.
	ErrUnknownSample = errors.New("samples: unknown sample")
	// ErrDuplicateSample indicates two catalog entries share a name.
	ErrDuplicateSample = errors.New("samples: duplicate sample name")
	// ErrInvalidSample indicates an entry without a name or rows.
	ErrInvalidSample = errors.New("samples: invalid sample")
)

//go:embed samples.yaml
var builtin []byte

// Sample is one named diagram in a catalog.
type Sample struct {
	// Name is the lookup key, e.g. "acb".
	Name string `yaml:"name"`
	// Title is the display heading.
	Title string `yaml:"title"`
	// Crossing names the CrossingPolicy this diagram needs; empty means none.
	Crossing string `yaml:"crossing"`
	// Rows holds the diagram, one line per row.
	Rows []string `yaml:"rows"`
	// Expect is the result the diagram should produce; empty means failure.
	Expect pathtrace.Result `yaml:"expect"`
}

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Samples []Sample `yaml:"samples"`
}

// Grid parses the sample rows.
func (s Sample) Grid() (grid.Grid, error) {
	return grid.FromRows(s.Rows)
}

// Policy parses the sample crossing policy.
func (s Sample) Policy() (pathtrace.CrossingPolicy, error) {
	return pathtrace.ParseCrossingPolicy(s.Crossing)
}

// Run traces the sample with its own crossing policy. Options in opts are
// applied afterwards and may override it.
func (s Sample) Run(opts ...pathtrace.Option) (pathtrace.Result, error) {
	g, err := s.Grid()
	if err != nil {
		return pathtrace.Result{}, fmt.Errorf("samples: %s: %w", s.Name, err)
	}
	policy, err := s.Policy()
	if err != nil {
		return pathtrace.Result{}, fmt.Errorf("samples: %s: %w", s.Name, err)
	}
	all := append([]pathtrace.Option{pathtrace.WithCrossingPolicy(policy)}, opts...)
	return pathtrace.Walk(g, all...)
}

// Load decodes a YAML catalog and validates its entries.
func Load(r io.Reader) ([]Sample, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("samples: decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Samples))
	for i, s := range file.Samples {
		if s.Name == "" || len(s.Rows) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidSample, i)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSample, s.Name)
		}
		seen[s.Name] = struct{}{}
		if _, err := s.Policy(); err != nil {
			return nil, fmt.Errorf("samples: %s: %w", s.Name, err)
		}
	}
	return file.Samples, nil
}

var (
	loadOnce sync.Once
	catalog  []Sample
	loadErr  error
)

// All returns the built-in catalog in file order. The slice is a copy.
func All() ([]Sample, error) {
	loadOnce.Do(func() {
		catalog, loadErr = Load(bytes.NewReader(builtin))
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Sample, len(catalog))
	copy(out, catalog)
	return out, nil
}

// Get returns the built-in sample called name.
func Get(name string) (Sample, error) {
	all, err := All()
	if err != nil {
		return Sample{}, err
	}
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, fmt.Errorf("%w: %q", ErrUnknownSample, name)
}
