package declfile

import (
	"fmt"
	"go/token"

	"lima/internal/common"
	"lima/internal/diagnostic"
	"lima/internal/match"
	"lima/registry"
)

// Validate checks f for structural problems before it is applied. Bases are
// looked up among the schemas declared earlier in f and in r (nil skips
// registry lookups).
func Validate(f *File, r *registry.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeVersion, fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	seen := make(map[string]struct{}, len(f.Schemas))
	var earlier []string

	for i := range f.Schemas {
		sd := &f.Schemas[i]
		name := f.Qualified(sd.Name)

		_, short := common.SplitQualified(name)
		if !token.IsIdentifier(short) {
			res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("schema name %q is not a valid identifier", sd.Name), name, "")
		}

		if _, dup := seen[name]; dup {
			res.AddError(diagnostic.CodeDuplicateSchema, "schema declared more than once", name, "")
		}
		seen[name] = struct{}{}

		for _, base := range sd.Bases {
			validateBase(res, f, r, name, base, earlier)
		}

		if !sd.Exclude.IsEmpty() && !sd.Only.IsEmpty() {
			res.AddError(diagnostic.CodeExcludeAndOnly, "exclude and only are mutually exclusive", name, "")
		}

		validateFields(res, name, sd.Fields)

		earlier = append(earlier, name)
	}

	return res
}

func validateBase(res *diagnostic.Diagnostics, f *File, r *registry.Registry, schema, base string, earlier []string) {
	ref := f.Qualified(base)
	for _, name := range earlier {
		if name == ref {
			return
		}
	}

	if r != nil {
		if _, err := r.Lookup(f.Ref(base)); err == nil {
			return
		}
	}

	known := earlier
	if r != nil {
		known = append(append([]string(nil), earlier...), r.Names()...)
	}

	res.AddError(diagnostic.CodeUnknownBase,
		fmt.Sprintf("base %q is neither declared earlier nor registered", base),
		schema, "", match.Suggest(ref, known)...)
}

func validateFields(res *diagnostic.Diagnostics, schema string, decls []FieldDecl) {
	seen := make(map[string]struct{}, len(decls))

	kindNames := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		kindNames = append(kindNames, string(k))
	}

	for i := range decls {
		fd := &decls[i]

		if fd.Name == "" {
			res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("field #%d has no name", i+1), schema, "")
			continue
		}

		if _, dup := seen[fd.Name]; dup {
			res.AddError(diagnostic.CodeDuplicateField, "field declared more than once", schema, fd.Name)
		}
		seen[fd.Name] = struct{}{}

		if !fd.Kind.IsValid() {
			res.AddError(diagnostic.CodeUnknownKind, fmt.Sprintf("unknown kind %q", fd.Kind), schema, fd.Name,
				match.Suggest(string(fd.Kind), kindNames)...)
			continue
		}

		if fd.Attr != "" && fd.Val != nil {
			res.AddError(diagnostic.CodeConflictSource, "attr and val are mutually exclusive", schema, fd.Name)
		}

		if fd.Attr != "" && !common.IsAttrName(fd.Attr) {
			res.AddError(diagnostic.CodeInvalidName, fmt.Sprintf("attr %q is not a valid identifier", fd.Attr), schema, fd.Name)
		}

		if fd.Attr == "" && fd.Val == nil && !common.IsAttrName(fd.Name) {
			res.AddError(diagnostic.CodeInvalidName,
				fmt.Sprintf("field name %q is not a valid attribute name; set attr", fd.Name), schema, fd.Name)
		}

		if fd.Val != nil {
			if _, err := fd.value(); err != nil {
				res.AddError(diagnostic.CodeInvalidValue, err.Error(), schema, fd.Name)
			}
		}

		if fd.Kind.IsLinked() {
			validateLinked(res, schema, fd)
			continue
		}

		if fd.Schema != "" || fd.Many || !fd.Exclude.IsEmpty() || !fd.Only.IsEmpty() {
			res.AddWarning(diagnostic.CodeUnusedOption,
				fmt.Sprintf("schema, many, exclude and only are ignored for kind %s", fd.Kind), schema, fd.Name)
		}
	}
}

func validateLinked(res *diagnostic.Diagnostics, schema string, fd *FieldDecl) {
	if fd.Schema == "" {
		res.AddError(diagnostic.CodeMissingSchema, fmt.Sprintf("%s field needs a schema", fd.Kind), schema, fd.Name)
	}

	if !fd.Exclude.IsEmpty() && !fd.Only.IsEmpty() {
		res.AddError(diagnostic.CodeExcludeAndOnly, "exclude and only are mutually exclusive", schema, fd.Name)
	}

	if fd.Kind == KindReference {
		res.AddWarning(diagnostic.CodeUnsupportedKind, "reference fields cannot be dumped yet", schema, fd.Name)
	}
}
