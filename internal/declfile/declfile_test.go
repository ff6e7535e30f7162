package declfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lima/fields"
	"lima/internal/diagnostic"
	"lima/primitive"
	"lima/registry"
	"lima/schema"
)

type author struct {
	Name  string
	Books []*book
}

type book struct {
	Title     string
	Author    *author
	Published primitive.Date
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "example.com/library", f.Package)
	require.Len(t, f.Schemas, 3)

	book := f.Schemas[0]
	assert.Equal(t, "BookSchema", book.Name)
	require.Len(t, book.Fields, 4)
	assert.Equal(t, KindEmbed, book.Fields[1].Kind)
	assert.Equal(t, StringOrArray{"books"}, book.Fields[1].Exclude)
	assert.Equal(t, KindField, book.Fields[3].Kind, "kind defaults to field")
	assert.Equal(t, "book", book.Fields[3].Val)

	summary := f.Schemas[2]
	assert.Equal(t, StringOrArray{"BookSchema"}, summary.Bases)
	assert.Equal(t, StringOrArray{"author"}, summary.Exclude)

	authorSchema := f.Schemas[1]
	assert.True(t, authorSchema.Fields[1].Many)
	assert.Equal(t, StringOrArray{"title", "published"}, authorSchema.Fields[1].Only)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read declaration file")
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("schemas:\n  - name: A\n    fields:\n      - name: x\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.Equal(t, KindField, f.Schemas[0].Fields[0].Kind)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("schemas: {"))
	require.Error(t, err)

	_, err = Parse([]byte("schemas:\n  - name: A\n    only: {a: b}\n"))
	require.Error(t, err)
}

func TestStringOrArray(t *testing.T) {
	var v struct {
		A StringOrArray `yaml:"a"`
		B StringOrArray `yaml:"b"`
		C StringOrArray `yaml:"c"`
	}

	f := []byte("a: one\nb: [one, two]\nc: \"\"\n")
	require.NoError(t, yaml.Unmarshal(f, &v))

	assert.Equal(t, StringOrArray{"one"}, v.A)
	assert.Equal(t, StringOrArray{"one", "two"}, v.B)
	assert.True(t, v.C.IsEmpty())

	out, err := StringOrArray{"one"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "one", out)

	out, err = StringOrArray{"one", "two"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, out)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bases: BookSchema")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestFile_Qualified(t *testing.T) {
	f := &File{Package: "example.com/library"}
	assert.Equal(t, "example.com/library.BookSchema", f.Qualified("BookSchema"))
	assert.Equal(t, "other.BookSchema", f.Qualified("other.BookSchema"))

	assert.Equal(t, "BookSchema", (&File{}).Qualified("BookSchema"))
}

func TestValidate(t *testing.T) {
	r := registry.New()
	_, err := schema.Declare("example.com/shared.AuditSchema", schema.InRegistry(r),
		schema.Field("created_at", fields.Must(fields.NewDateTime(fields.Attr("CreatedAt")))))
	require.NoError(t, err)

	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
	}{
		{
			name: "valid",
			yaml: `
schemas:
  - name: A
    bases: example.com/shared.AuditSchema
    fields:
      - {name: id, kind: integer}
      - {name: type, kind: string}
      - {name: kind, attr: default}
      - {name: b, kind: embed, schema: B}
  - name: B
    fields:
      - {name: when, kind: datetime, val: "2020-01-15T10:00:00Z"}
`,
		},
		{
			name:   "version",
			yaml:   "version: \"2\"\nschemas: []\n",
			errors: []string{diagnostic.CodeVersion},
		},
		{
			name: "duplicates",
			yaml: `
schemas:
  - name: A
    fields:
      - {name: x}
      - {name: x}
  - name: A
`,
			errors: []string{diagnostic.CodeDuplicateField, diagnostic.CodeDuplicateSchema},
		},
		{
			name:   "invalid names",
			yaml:   "schemas:\n  - name: 1A\n    fields:\n      - {name: \"\"}\n      - {name: x-y}\n      - {name: z, attr: not-ok}\n",
			errors: []string{diagnostic.CodeInvalidName, diagnostic.CodeInvalidName, diagnostic.CodeInvalidName, diagnostic.CodeInvalidName},
		},
		{
			name:   "unknown kind",
			yaml:   "schemas:\n  - name: A\n    fields:\n      - {name: x, kind: integr}\n",
			errors: []string{diagnostic.CodeUnknownKind},
		},
		{
			name:   "conflicting source",
			yaml:   "schemas:\n  - name: A\n    fields:\n      - {name: x, attr: X, val: 1}\n",
			errors: []string{diagnostic.CodeConflictSource},
		},
		{
			name:   "invalid value",
			yaml:   "schemas:\n  - name: A\n    fields:\n      - {name: x, kind: date, val: yesterday}\n      - {name: y, kind: integer, val: \"1\"}\n",
			errors: []string{diagnostic.CodeInvalidValue, diagnostic.CodeInvalidValue},
		},
		{
			name: "linked",
			yaml: `
schemas:
  - name: A
    exclude: x
    only: y
    fields:
      - {name: x, kind: embed}
      - {name: y, kind: embed, schema: A, exclude: x, only: y}
      - {name: z, kind: reference, schema: A}
      - {name: w, kind: string, many: true}
`,
			errors:   []string{diagnostic.CodeExcludeAndOnly, diagnostic.CodeMissingSchema, diagnostic.CodeExcludeAndOnly},
			warnings: []string{diagnostic.CodeUnsupportedKind, diagnostic.CodeUnusedOption},
		},
		{
			name:   "unknown base",
			yaml:   "schemas:\n  - name: A\n    bases: B\n  - name: B\n",
			errors: []string{diagnostic.CodeUnknownBase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(f, r)
			assert.Equal(t, tt.errors, nilIfEmpty(codes(res.Errors)))
			assert.Equal(t, tt.warnings, nilIfEmpty(codes(res.Warnings)))
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	f, err := Parse([]byte(`
schemas:
  - name: BookSchema
    fields:
      - {name: x, kind: strng}
  - name: NovelSchema
    bases: BokSchema
`))
	require.NoError(t, err)

	res := Validate(f, nil)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, []string{"string"}, res.Errors[0].Suggestions)
	assert.Equal(t, []string{"BookSchema"}, res.Errors[1].Suggestions)
	assert.Contains(t, res.Error().Error(), "did you mean BookSchema?")
	assert.ErrorIs(t, res.Error(), diagnostic.ErrInvalid)
}

func TestValidate_NilFile(t *testing.T) {
	assert.False(t, Validate(nil, nil).IsValid())
}

func TestApply(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)

	r := registry.New()
	classes, err := Apply(f, r)
	require.NoError(t, err)
	require.Len(t, classes, 3)

	assert.Equal(t, "example.com/library.BookSchema", classes[0].QualifiedName())
	assert.Equal(t, []string{"title", "author", "published", "type"}, classes[0].FieldNames())
	assert.Equal(t, []string{"title", "published", "type"}, classes[2].FieldNames())
	assert.Equal(t, 3, r.Len())
	assert.False(t, registry.Global.IsRegistered("example.com/library.BookSchema"))

	tolkien := &author{Name: "J. R. R. Tolkien"}
	hobbit := &book{Title: "The Hobbit", Author: tolkien, Published: primitive.Date{Year: 1937, Month: time.September, Day: 21}}
	tolkien.Books = []*book{hobbit}

	s, err := classes[0].New()
	require.NoError(t, err)

	got, err := s.Dump(hobbit)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"title": "The Hobbit",
		"author":    map[string]any{"name": "J. R. R. Tolkien"},
		"published": "1937-09-21",
		"type":      "book",
	}, got)

	s, err = classes[1].New()
	require.NoError(t, err)

	got, err = s.Dump(tolkien)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name": "J. R. R. Tolkien",
		"books": []any{
			map[string]any{"title": "The Hobbit", "published": "1937-09-21"},
		},
	}, got)
}

func TestApply_Values(t *testing.T) {
	f, err := Parse([]byte(`
schemas:
  - name: ConstSchema
    fields:
      - {name: day, kind: date, val: "2020-01-15"}
      - {name: at, kind: datetime, val: "1952-09-01T23:11:59.123456+02:00"}
      - {name: ratio, kind: float, val: 2}
      - {name: flag, kind: boolean, val: true}
`))
	require.NoError(t, err)

	classes, err := Apply(f, registry.New())
	require.NoError(t, err)

	got, err := schema.MustNew(classes[0]).Dump(struct{}{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"day":   "2020-01-15",
		"at":    "1952-09-01T23:11:59.123456+02:00",
		"ratio": 2.0,
		"flag":  true,
	}, got)
}

func TestApply_Invalid(t *testing.T) {
	f, err := Parse([]byte("schemas:\n  - name: A\n    fields:\n      - {name: x, kind: nope}\n"))
	require.NoError(t, err)

	r := registry.New()
	_, err = Apply(f, r)
	require.ErrorIs(t, err, diagnostic.ErrInvalid)
	assert.Zero(t, r.Len())
}

func TestApply_RegistryBase(t *testing.T) {
	r := registry.New()
	_, err := schema.Declare("example.com/shared.AuditSchema", schema.InRegistry(r),
		schema.Field("created_at", fields.Must(fields.NewDateTime(fields.Attr("CreatedAt")))))
	require.NoError(t, err)

	f, err := Parse([]byte("schemas:\n  - name: A\n    bases: AuditSchema\n    fields:\n      - {name: id}\n"))
	require.NoError(t, err)

	classes, err := Apply(f, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"created_at", "id"}, classes[0].FieldNames())
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
