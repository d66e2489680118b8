package template

import (
	"fmt"
	"sort"
	"strings"
)

// Definition describes a single email template: a stable key, the
// natural-language instruction forwarded to the model, and the context
// placeholders the instruction expects. Placeholders document the keys a
// caller is expected to supply; they are not enforced at prompt-build time.
type Definition struct {
	Key          string   `yaml:"key"`
	Instruction  string   `yaml:"instruction"`
	Placeholders []string `yaml:"placeholders,omitempty"`
}

// Example is a few-shot demonstration pair included verbatim in every
// prompt to bias the model toward the expected output format.
type Example struct {
	Subject string
	Message string
}

// Registry holds the immutable set of template definitions. It is populated
// once at construction and exposes no mutation API afterwards.
type Registry struct {
	definitions map[string]Definition
}

// Option configures a Registry during construction.
type Option func(*Registry) error

// WithDefinitions registers additional definitions on top of the built-in
// set. A definition with an existing key replaces the built-in one.
func WithDefinitions(defs ...Definition) Option {
	return func(r *Registry) error {
		for _, def := range defs {
			if err := r.add(def); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithDefinitionsFile loads additional definitions from a YAML file.
// See LoadDefinitions for the expected format.
func WithDefinitionsFile(path string) Option {
	return func(r *Registry) error {
		defs, err := LoadDefinitions(path)
		if err != nil {
			return err
		}
		for _, def := range defs {
			if err := r.add(def); err != nil {
				return err
			}
		}
		return nil
	}
}

// New builds a registry seeded with the built-in definitions, then applies
// the given options. The returned registry is read-only.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{definitions: make(map[string]Definition, len(builtinDefinitions))}
	for _, def := range builtinDefinitions {
		r.definitions[def.Key] = def
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew works like New but panics on invalid options. Useful for static
// registries assembled at startup.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(def Definition) error {
	key := strings.TrimSpace(def.Key)
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidDefinition)
	}
	if strings.TrimSpace(def.Instruction) == "" {
		return fmt.Errorf("%w: instruction is required for %q", ErrInvalidDefinition, key)
	}
	def.Key = key
	r.definitions[key] = def
	return nil
}

// Lookup returns the definition registered under key.
// It returns ErrUnknownTemplate when the key is absent.
func (r *Registry) Lookup(key string) (Definition, error) {
	def, ok := r.definitions[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, key)
	}
	return def, nil
}

// Keys returns the registered template keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.definitions))
	for key := range r.definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
