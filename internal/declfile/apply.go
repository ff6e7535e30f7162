package declfile

import (
	"fmt"

	"lima/core"
	"lima/fields"
	"lima/registry"
	"lima/schema"
)

// Apply validates f and declares its schemas in order, registering them in r
// (registry.Global if nil). Linked fields resolve their schemas in r as well,
// so schemas may refer to each other and to themselves regardless of order.
func Apply(f *File, r *registry.Registry) ([]*schema.Class, error) {
	if r == nil {
		r = registry.Global
	}

	if err := Validate(f, r).Error(); err != nil {
		return nil, err
	}

	classes := make([]*schema.Class, 0, len(f.Schemas))

	for i := range f.Schemas {
		class, err := f.declare(&f.Schemas[i], r)
		if err != nil {
			return classes, err
		}

		classes = append(classes, class)
	}

	return classes, nil
}

func (f *File) declare(sd *SchemaDecl, r *registry.Registry) (*schema.Class, error) {
	decls := []schema.Decl{schema.InRegistry(r)}

	if len(sd.Bases) > 0 {
		bases := make([]*schema.Class, 0, len(sd.Bases))

		for _, name := range sd.Bases {
			found, err := r.Lookup(f.Ref(name))
			if err != nil {
				return nil, fmt.Errorf("base of %s: %w", sd.Name, err)
			}

			base, ok := found.(*schema.Class)
			if !ok {
				return nil, fmt.Errorf("base of %s: %s is a %T, not a declared class", sd.Name, name, found)
			}

			bases = append(bases, base)
		}

		decls = append(decls, schema.Bases(bases...))
	}

	for i := range sd.Fields {
		fd := &sd.Fields[i]

		field, err := f.field(fd, r)
		if err != nil {
			return nil, fmt.Errorf("field %s of %s: %w", fd.Name, sd.Name, err)
		}

		decls = append(decls, schema.Field(fd.Name, field))
	}

	if len(sd.Exclude) > 0 {
		decls = append(decls, schema.Exclude(sd.Exclude...))
	}

	if len(sd.Only) > 0 {
		decls = append(decls, schema.Only(sd.Only...))
	}

	return schema.Declare(f.Qualified(sd.Name), decls...)
}

func (f *File) field(fd *FieldDecl, r *registry.Registry) (core.Field, error) {
	var opts []fields.Option

	if fd.Attr != "" {
		opts = append(opts, fields.Attr(fd.Attr))
	}

	if fd.Val != nil {
		v, err := fd.value()
		if err != nil {
			return nil, err
		}

		opts = append(opts, fields.Val(v))
	}

	if fd.Kind.IsLinked() {
		opts = append(opts, fields.InRegistry(r), fields.With(fd.schemaOptions()...))

		if fd.Kind == KindReference {
			return fields.NewReference(f.Ref(fd.Schema), opts...)
		}

		return fields.NewEmbed(f.Ref(fd.Schema), opts...)
	}

	switch fd.Kind {
	case KindBoolean:
		return fields.NewBoolean(opts...)
	case KindFloat:
		return fields.NewFloat(opts...)
	case KindInteger:
		return fields.NewInteger(opts...)
	case KindString:
		return fields.NewString(opts...)
	case KindDate:
		return fields.NewDate(opts...)
	case KindDateTime:
		return fields.NewDateTime(opts...)
	case KindField:
		return fields.New(opts...)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", fields.ErrIllegalType, fd.Kind)
	}
}

func (fd *FieldDecl) schemaOptions() []core.Option {
	var opts []core.Option

	if fd.Many {
		opts = append(opts, schema.WithMany(true))
	}

	if len(fd.Exclude) > 0 {
		opts = append(opts, schema.WithExclude(fd.Exclude...))
	}

	if len(fd.Only) > 0 {
		opts = append(opts, schema.WithOnly(fd.Only...))
	}

	return opts
}
