package schema

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"lima/core"
)

// fieldSet is an insertion ordered set of named fields. Overriding a field
// keeps its original position.
type fieldSet = orderedmap.OrderedMap[string, core.Field]

func newFieldSet() *fieldSet {
	return orderedmap.New[string, core.Field]()
}

func copyFieldSet(src *fieldSet) *fieldSet {
	dst := newFieldSet()
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}

	return dst
}

func namedFields(fs *fieldSet) []core.NamedField {
	out := make([]core.NamedField, 0, fs.Len())
	for pair := fs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, core.NamedField{Name: pair.Key, Field: pair.Value})
	}

	return out
}

func fieldNames(fs *fieldSet) []string {
	out := make([]string, 0, fs.Len())
	for pair := fs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// unknownNames returns the names missing from fs.
func unknownNames(fs *fieldSet, names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := fs.Get(name); !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// filter applies exclude or only to fs, returning a new set. Naming a field
// that is not in fs is an error, wrapped into sentinel. A non-empty only also
// determines the order of the result.
func filter(fs *fieldSet, exclude, only []string, sentinel error) (*fieldSet, error) {
	if len(exclude) > 0 && len(only) > 0 {
		return nil, fmt.Errorf("%w: can't specify exclude and only at the same time", sentinel)
	}

	if missing := unknownNames(fs, exclude); len(missing) > 0 {
		return nil, fmt.Errorf("%w: exclude names unknown fields %q", sentinel, missing)
	}

	if missing := unknownNames(fs, only); len(missing) > 0 {
		return nil, fmt.Errorf("%w: only names unknown fields %q", sentinel, missing)
	}

	if len(only) > 0 {
		out := newFieldSet()
		for _, name := range only {
			f, _ := fs.Get(name)
			out.Set(name, f)
		}

		return out, nil
	}

	out := copyFieldSet(fs)
	for _, name := range exclude {
		out.Delete(name)
	}

	return out, nil
}
