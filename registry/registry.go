package registry

import (
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"lima/core"
	"lima/internal/common"
	"lima/internal/match"
)

var (
	ErrClassNotFound        = errors.New("schema class not found")
	ErrAmbiguousClassName   = errors.New("ambiguous schema class name")
	ErrAlreadyRegistered    = errors.New("schema class already registered")
	ErrInvalidQualifiedName = errors.New("invalid qualified schema class name")
)

// Global is the process-wide registry schema classes are declared into unless
// told otherwise. Entries are never removed from it.
var Global = New()

// Registry maps qualified schema class names to classes.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]core.Class
	// byShort indexes qualified names by their short name for unqualified lookups.
	byShort map[string][]string
	logger  zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		classes: make(map[string]core.Class),
		byShort: make(map[string][]string),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetLogger replaces the logger of r.
func (r *Registry) SetLogger(logger zerolog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger = logger
}

// Register adds class under its qualified name.
func (r *Registry) Register(class core.Class) error {
	if class == nil {
		return fmt.Errorf("%w: class is nil", ErrInvalidQualifiedName)
	}

	name := class.QualifiedName()
	_, short := common.SplitQualified(name)
	if !token.IsIdentifier(short) {
		return fmt.Errorf("%w: %q", ErrInvalidQualifiedName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}

	r.classes[name] = class
	r.byShort[short] = append(r.byShort[short], name)

	r.logger.Debug().Str("class", name).Msg("registered schema class")

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(class core.Class) {
	if err := r.Register(class); err != nil {
		panic(err)
	}
}

// Lookup finds a class by name. A name containing a dot must match a qualified
// name exactly. A bare name matches by short name and must be unique.
func (r *Registry) Lookup(name string) (core.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.Contains(name, ".") {
		class, ok := r.classes[name]
		if !ok {
			return nil, r.notFound(name, slices.Collect(maps.Keys(r.classes)))
		}

		return class, nil
	}

	candidates := r.byShort[name]
	switch len(candidates) {
	case 0:
		return nil, r.notFound(name, slices.Collect(maps.Keys(r.byShort)))
	case 1:
		return r.classes[candidates[0]], nil
	default:
		sorted := slices.Sorted(slices.Values(candidates))
		r.logger.Debug().Str("class", name).Strs("candidates", sorted).Msg("ambiguous schema class name")
		return nil, fmt.Errorf("%w: %q matches %s; use a fully qualified name",
			ErrAmbiguousClassName, name, strings.Join(sorted, ", "))
	}
}

// notFound builds the lookup error for name, suggesting similar known names.
// Callers must hold the read lock.
func (r *Registry) notFound(name string, known []string) error {
	suggestions := match.Suggest(name, known)
	r.logger.Debug().Str("class", name).Strs("suggestions", suggestions).Msg("schema class lookup failed")

	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %q", ErrClassNotFound, name)
	}

	return fmt.Errorf("%w: %q (did you mean %s?)", ErrClassNotFound, name, strings.Join(suggestions, ", "))
}

// IsRegistered reports whether a class is registered under exactly name.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.classes[name]
	return exists
}

// Names returns all registered qualified names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.classes)
}

// Reset drops every entry. It refuses to touch Global.
func (r *Registry) Reset() error {
	if r == Global {
		return errors.New("the global registry cannot be reset")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.classes)
	clear(r.byShort)

	return nil
}
