// Package schema declares schema classes and dumps objects with schema
// instances.
//
// A Class is a named set of fields, declared once (usually into a
// package-level variable) and registered in a registry so that Embed fields
// can refer to it by name. A Schema is an instance of a class configured with
// options: it compiles the fields into a dump plan at construction and can
// then dump any number of objects concurrently.
//
//	var PersonSchema = schema.MustDeclare("app.PersonSchema",
//		schema.Field("name", fields.Must(fields.NewString(fields.Attr("Name")))),
//		schema.Field("born", fields.Must(fields.NewDate())),
//	)
//
//	s := schema.MustNew(PersonSchema, schema.WithMany(true))
//	out, err := s.Dump(people)
package schema
