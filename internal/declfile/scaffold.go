package declfile

import (
	"fmt"

	"lima/internal/analyze"
	"lima/internal/common"
	"lima/internal/diagnostic"
	"lima/primitive"
)

// SchemaSuffix is appended to type names to name scaffolded schemas.
const SchemaSuffix = "Schema"

// Scaffold builds a declaration file with one schema per root struct of
// package pkgPath, plus one per struct type reachable from the roots through
// fields. Fields are keyed by their JSON names. Fields no kind fits are left
// out and reported as infos.
func Scaffold(g *analyze.TypeGraph, pkgPath string, roots ...string) (*File, *diagnostic.Diagnostics, error) {
	s := &scaffolder{
		graph:   g,
		pkgPath: pkgPath,
		done:    make(map[analyze.TypeID]struct{}),
		notes:   &diagnostic.Diagnostics{},
	}

	for _, name := range roots {
		info := g.GetType(analyze.TypeID{PkgPath: pkgPath, Name: name})
		if info == nil {
			return nil, nil, fmt.Errorf("type %s not found", common.Qualify(pkgPath, name))
		}

		if info.Kind != analyze.TypeKindStruct {
			return nil, nil, fmt.Errorf("type %s is not a struct (kind: %s)", info.ID, info.Kind)
		}

		s.enqueue(info)
	}

	for len(s.queue) > 0 {
		info := s.queue[0]
		s.queue = s.queue[1:]
		s.file.Schemas = append(s.file.Schemas, s.schema(info))
	}

	s.file.Version = CurrentVersion
	s.file.Package = pkgPath

	return &s.file, s.notes, nil
}

type scaffolder struct {
	graph   *analyze.TypeGraph
	pkgPath string

	file  File
	queue []*analyze.TypeInfo
	done  map[analyze.TypeID]struct{}
	notes *diagnostic.Diagnostics
}

func (s *scaffolder) enqueue(info *analyze.TypeInfo) {
	if _, ok := s.done[info.ID]; ok {
		return
	}

	s.done[info.ID] = struct{}{}
	s.queue = append(s.queue, info)
}

// schemaName names the schema of a struct type, qualified unless the type
// lives in the scaffolded package.
func (s *scaffolder) schemaName(info *analyze.TypeInfo) string {
	name := info.ID.Name + SchemaSuffix
	if info.ID.PkgPath == s.pkgPath {
		return name
	}

	return common.Qualify(info.ID.PkgPath, name)
}

func (s *scaffolder) schema(info *analyze.TypeInfo) SchemaDecl {
	sd := SchemaDecl{Name: s.schemaName(info)}
	s.fields(&sd, info, map[analyze.TypeID]struct{}{info.ID: {}})

	return sd
}

// fields appends the fields of info to sd. Embedded structs are flattened;
// outer fields shadow promoted ones of the same key.
func (s *scaffolder) fields(sd *SchemaDecl, info *analyze.TypeInfo, flattening map[analyze.TypeID]struct{}) {
	for i := range info.Fields {
		fi := &info.Fields[i]
		if fi.Omitted() {
			continue
		}

		t := fi.Type.Deref()
		if fi.Embedded && t.Kind == analyze.TypeKindStruct {
			if _, cycle := flattening[t.ID]; cycle {
				continue
			}

			flattening[t.ID] = struct{}{}
			s.fields(sd, t, flattening)
			delete(flattening, t.ID)

			continue
		}

		fd, ok := s.field(sd.Name, fi)
		if !ok {
			continue
		}

		if j := indexOfField(sd.Fields, fd.Name); j >= 0 {
			sd.Fields[j] = fd
			continue
		}

		sd.Fields = append(sd.Fields, fd)
	}
}

func (s *scaffolder) field(schema string, fi *analyze.FieldInfo) (FieldDecl, bool) {
	fd := FieldDecl{Name: fi.JSONName()}
	if fd.Name != fi.Name {
		fd.Attr = fi.Name
	}

	t := fi.Type.Deref()

	if kind, ok := kindOf(t.Primitive()); ok {
		fd.Kind = kind
		return fd, true
	}

	switch t.Kind {
	case analyze.TypeKindStruct:
		if !t.IsNamed() {
			break
		}

		s.enqueue(t)
		fd.Kind = KindEmbed
		fd.Schema = s.schemaName(t)

		return fd, true

	case analyze.TypeKindSlice, analyze.TypeKindArray:
		elem := t.ElemType.Deref()

		if elem.Kind == analyze.TypeKindStruct && elem.IsNamed() {
			s.enqueue(elem)
			fd.Kind = KindEmbed
			fd.Schema = s.schemaName(elem)
			fd.Many = true

			return fd, true
		}

		if _, ok := kindOf(elem.Primitive()); ok {
			fd.Kind = KindField
			return fd, true
		}
	}

	s.notes.AddInfo(diagnostic.CodeUnsupportedKind,
		fmt.Sprintf("no field kind fits type %s; field left out", fi.Type), schema, fd.Name)

	return FieldDecl{}, false
}

func kindOf(k primitive.KindEnum) (Kind, bool) {
	switch {
	case k == primitive.KindBool:
		return KindBoolean, true
	case k.IsFloat():
		return KindFloat, true
	case k.IsInteger(), k == primitive.KindDuration:
		return KindInteger, true
	case k == primitive.KindString:
		return KindString, true
	case k == primitive.KindDate:
		return KindDate, true
	case k == primitive.KindTime:
		return KindDateTime, true
	default:
		return "", false
	}
}

func indexOfField(decls []FieldDecl, name string) int {
	for i := range decls {
		if decls[i].Name == name {
			return i
		}
	}

	return -1
}
