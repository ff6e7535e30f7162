// Package main provides the lima command line tool.
//
// lima dumps JSON or YAML documents through schemas declared in YAML
// declaration files, and scaffolds declaration files from Go structs.
package main

func main() {
	Execute()
}
