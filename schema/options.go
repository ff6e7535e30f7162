package schema

import "lima/core"

// WithExclude removes the named fields from the instance. Must not be
// combined with WithOnly.
func WithExclude(names ...string) core.Option {
	return func(s *core.Settings) {
		s.Exclude = append(s.Exclude, names...)
	}
}

// WithOnly removes all but the named fields from the instance. Must not be
// combined with WithExclude.
func WithOnly(names ...string) core.Option {
	return func(s *core.Settings) {
		s.Only = append(s.Only, names...)
	}
}

// WithInclude adds the field f under name to the instance, replacing a class
// field of the same name.
func WithInclude(name string, f core.Field) core.Option {
	return func(s *core.Settings) {
		s.Include = append(s.Include, core.NamedField{Name: name, Field: f})
	}
}

// WithMany makes Dump treat its argument as a collection of objects.
func WithMany(many bool) core.Option {
	return func(s *core.Settings) {
		s.Many = many
	}
}

// WithOrdered makes Dump produce ordered maps keeping the field order instead
// of plain maps.
func WithOrdered(ordered bool) core.Option {
	return func(s *core.Settings) {
		s.Ordered = ordered
	}
}
