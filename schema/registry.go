package schema

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/fake"
	"github.com/kbukum/synthkit/rowgen"
)

// FakerFunc produces one field value. deps carries the ancestor rows of the
// current traversal path, so reference kinds can copy parent identifiers.
type FakerFunc func(rng *rand.Rand, field FieldDef, deps rowgen.Deps) (any, error)

// Registry provides named faker lookup for schema compilation.
type Registry struct {
	mu     sync.RWMutex
	fakers map[string]FakerFunc
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{fakers: make(map[string]FakerFunc)}
}

// Register adds a faker to the registry.
func (r *Registry) Register(kind string, fn FakerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fakers[kind] = fn
}

// Get retrieves a faker by kind.
func (r *Registry) Get(kind string) (FakerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fakers[kind]
	return fn, ok
}

// List returns sorted kinds of all registered fakers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.fakers))
	for kind := range r.fakers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// DefaultRegistry returns a registry seeded with the builtin faker kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("uuid", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.UUID(rng), nil
	})
	r.Register("name", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.FullName(rng), nil
	})
	r.Register("first_name", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.FirstName(rng), nil
	})
	r.Register("last_name", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.LastName(rng), nil
	})
	r.Register("email", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.Email(rng), nil
	})
	r.Register("word", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		return fake.Word(rng), nil
	})
	r.Register("sentence", func(rng *rand.Rand, f FieldDef, _ rowgen.Deps) (any, error) {
		words := f.Words
		if words == 0 {
			words = 8
		}
		return fake.Sentence(rng, words), nil
	})
	r.Register("int", func(rng *rand.Rand, f FieldDef, _ rowgen.Deps) (any, error) {
		lo, hi := 0, 100
		if f.Min != nil {
			lo = int(*f.Min)
		}
		if f.Max != nil {
			hi = int(*f.Max)
		}
		return fake.IntRange(rng, lo, hi), nil
	})
	r.Register("float", func(rng *rand.Rand, f FieldDef, _ rowgen.Deps) (any, error) {
		lo, hi := 0.0, 1.0
		if f.Min != nil {
			lo = *f.Min
		}
		if f.Max != nil {
			hi = *f.Max
		}
		return fake.FloatRange(rng, lo, hi), nil
	})
	r.Register("bool", func(rng *rand.Rand, f FieldDef, _ rowgen.Deps) (any, error) {
		p := 0.5
		if f.Prob != nil {
			p = *f.Prob
		}
		return fake.Bool(rng, p), nil
	})
	r.Register("timestamp", func(rng *rand.Rand, _ FieldDef, _ rowgen.Deps) (any, error) {
		from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		return fake.Timestamp(rng, from, to), nil
	})
	r.Register("oneof", func(rng *rand.Rand, f FieldDef, _ rowgen.Deps) (any, error) {
		if len(f.Choices) == 0 {
			return nil, errors.InvalidSchema("oneof field needs choices").
				WithDetail("field", f.Name)
		}
		return fake.OneOf(rng, f.Choices), nil
	})
	r.Register("ref", refFaker)

	return r
}

// refFaker copies a field from an ancestor row, keeping child rows
// relationally consistent with the exact parent row they were produced
// under.
func refFaker(_ *rand.Rand, f FieldDef, deps rowgen.Deps) (any, error) {
	depKey, fieldName, ok := strings.Cut(f.Ref, ".")
	if !ok {
		return nil, errors.InvalidSchema(`ref must be "dep_key.field"`).
			WithDetail("field", f.Name).
			WithDetail("ref", f.Ref)
	}
	row, ok := deps.Get(depKey)
	if !ok {
		return nil, errors.NotFound("dependency row", depKey).
			WithDetail("field", f.Name)
	}
	value, ok := row[fieldName]
	if !ok {
		return nil, errors.NotFound("dependency field", f.Ref).
			WithDetail("field", f.Name)
	}
	return value, nil
}
