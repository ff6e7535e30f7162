package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lima/core"
	"lima/encode"
	"lima/internal/declfile"
	"lima/registry"
	"lima/schema"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [input]",
	Short: "Dump a JSON or YAML document through a declared schema",
	Long: `Dump reads an input document (JSON or YAML, stdin when omitted or "-")
and writes its dump by the selected schema of a declaration file.

Examples:
  lima dump --schemas library.yaml --schema BookSchema book.json
  lima dump --schemas library.yaml --schema BookSchema --many --format yaml books.yaml
  cat book.json | lima dump --schemas library.yaml --schema BookSchema --format canonical`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

var (
	dumpSchemas string
	dumpSchema  string
	dumpMany    bool
	dumpOrdered bool
	dumpFormat  string
)

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVar(&dumpSchemas, "schemas", "", "declaration file (required)")
	dumpCmd.Flags().StringVar(&dumpSchema, "schema", "", "schema to dump with (required)")
	dumpCmd.Flags().BoolVar(&dumpMany, "many", false, "treat the input as a list of objects")
	dumpCmd.Flags().BoolVar(&dumpOrdered, "ordered", false, "keep declaration order of keys")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "json", "output format (json, yaml, canonical)")

	_ = dumpCmd.MarkFlagRequired("schemas")
	_ = dumpCmd.MarkFlagRequired("schema")
}

// formats lists the output formats of dump.
var formats = []string{"json", "yaml", "canonical"}

func runDump(cmd *cobra.Command, args []string) error {
	if !slices.Contains(formats, dumpFormat) {
		return fmt.Errorf("unknown format %q (%s)", dumpFormat, strings.Join(formats, ", "))
	}

	f, err := declfile.LoadFile(dumpSchemas)
	if err != nil {
		return err
	}

	if debug {
		spew.Fdump(cmd.ErrOrStderr(), f)
	}

	r := registry.New(registry.WithLogger(logger))

	diags := declfile.Validate(f, r)
	for _, w := range diags.Warnings {
		logger.Warn().Str("file", dumpSchemas).Msg(w.String())
	}

	classes, err := declfile.Apply(f, r)
	if err != nil {
		return err
	}

	logger.Debug().Str("file", dumpSchemas).Int("classes", len(classes)).Msg("declarations applied")

	found, err := r.Lookup(f.Ref(dumpSchema))
	if err != nil {
		return err
	}

	s, err := found.New(schema.WithMany(dumpMany), schema.WithOrdered(dumpOrdered))
	if err != nil {
		return err
	}

	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	obj, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	out, err := dump(s, obj, dumpFormat)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(append(out, '\n'))

	return err
}

func dump(s core.Schema, obj any, format string) ([]byte, error) {
	v, err := s.Dump(obj)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		return encode.JSONIndent(v, "  ")
	case "canonical":
		return encode.Canonical(v)
	case "yaml":
		out, err := encode.YAML(v)
		return bytes.TrimRight(out, "\n"), err
	default:
		return nil, fmt.Errorf("unknown format %q (%s)", format, strings.Join(formats, ", "))
	}
}

// readInput decodes the document at path, or in stdin for "-". YAML is
// assumed unless the path ends in .json; JSON being YAML, stdin is always
// read as YAML.
func readInput(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	var obj any

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &obj)
	} else {
		err = yaml.Unmarshal(data, &obj)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode input %s: %w", path, err)
	}

	return obj, nil
}
