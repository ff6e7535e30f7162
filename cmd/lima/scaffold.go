package main

import (
	"github.com/spf13/cobra"

	"lima/internal/analyze"
	"lima/internal/declfile"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Derive a declaration file from Go structs",
	Long: `Scaffold loads a Go package and writes a declaration file with a schema
for each given struct type and every struct type reachable from them.

Examples:
  lima scaffold --package lima/store --type Order
  lima scaffold --package ./store --type Order --type Product --output store.yaml`,
	RunE: runScaffold,
}

var (
	scaffoldPackage string
	scaffoldTypes   []string
	scaffoldDir     string
	scaffoldOutput  string
)

func init() {
	rootCmd.AddCommand(scaffoldCmd)

	scaffoldCmd.Flags().StringVar(&scaffoldPackage, "package", "", "package pattern to load (required)")
	scaffoldCmd.Flags().StringSliceVar(&scaffoldTypes, "type", nil, "root struct type (required, repeatable)")
	scaffoldCmd.Flags().StringVar(&scaffoldDir, "dir", "", "directory package patterns resolve in")
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, "output", "o", "", "output file (stdout when empty)")

	_ = scaffoldCmd.MarkFlagRequired("package")
	_ = scaffoldCmd.MarkFlagRequired("type")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	a := analyze.NewAnalyzer(analyze.WithDir(scaffoldDir), analyze.WithLogger(logger))

	graph, err := a.LoadPackages(cmd.Context(), scaffoldPackage)
	if err != nil {
		return err
	}

	// a relative pattern resolves to the loaded package's import path
	pkgPath := scaffoldPackage
	if len(graph.Packages) == 1 {
		for path := range graph.Packages {
			pkgPath = path
		}
	}

	f, notes, err := declfile.Scaffold(graph, pkgPath, scaffoldTypes...)
	if err != nil {
		return err
	}

	for _, n := range notes.All() {
		logger.Info().Str("package", pkgPath).Msg(n.String())
	}

	if scaffoldOutput != "" {
		if err := declfile.WriteFile(f, scaffoldOutput); err != nil {
			return err
		}

		logger.Info().Str("file", scaffoldOutput).Int("schemas", len(f.Schemas)).Msg("declarations written")

		return nil
	}

	data, err := declfile.Marshal(f)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
