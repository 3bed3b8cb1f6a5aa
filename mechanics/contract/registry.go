package contract

import (
	"errors"
	"fmt"
	"strings"
)

// Mechanic is the uniform runtime contract every variant honors regardless of
// its internal state machine. Initialize transitions the instance from
// Uninitialized to Active and is called exactly once, before any Tick. Tick
// runs once per frame with a non-negative delta time in seconds. There is no
// symmetric teardown hook; release is signaled externally by destroying the
// attached payload entity.
type Mechanic interface {
	Initialize(ctx *Context)
	Tick(dt float64)
}

// Factory constructs a mechanic instance from merged, untyped settings. The
// factory normalizes every field itself; malformed settings never fail
// construction.
type Factory func(settings map[string]any) Mechanic

var (
	errEmptyKind  = errors.New("definition kind must not be empty")
	errNilFactory = errors.New("definition factory must not be nil")
)

// Definition associates a mechanic kind with its factory.
type Definition struct {
	Kind Kind
	New  Factory
}

// Registry is a collection of mechanic definitions. Callers should Validate
// before use.
type Registry []Definition

// Validate ensures the registry contains unique kinds and complete definitions.
func (r Registry) Validate() error {
	seen := make(map[Kind]struct{}, len(r))
	for _, def := range r {
		if err := def.validate(); err != nil {
			return fmt.Errorf("contract: %w", err)
		}
		if _, exists := seen[def.Kind]; exists {
			return fmt.Errorf("contract: duplicate definition kind %q", def.Kind)
		}
		seen[def.Kind] = struct{}{}
	}
	return nil
}

func (d Definition) validate() error {
	if strings.TrimSpace(string(d.Kind)) == "" {
		return errEmptyKind
	}
	if d.New == nil {
		return fmt.Errorf("kind %q: %w", d.Kind, errNilFactory)
	}
	return nil
}

// Index materialises a lookup map from the registry after validation.
func (r Registry) Index() (map[Kind]Definition, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make(map[Kind]Definition, len(r))
	for _, def := range r {
		out[def.Kind] = def
	}
	return out, nil
}
