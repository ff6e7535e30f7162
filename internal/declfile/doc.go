// Package declfile reads and writes YAML schema declaration files and turns
// them into schema classes.
//
// A declaration file lists schemas with their fields:
//
//	version: "1"
//	package: app
//	schemas:
//	  - name: PersonSchema
//	    fields:
//	      - name: name
//	      - name: born
//	        kind: date
//	      - name: boss
//	        kind: embed
//	        schema: PersonSchema
//	        exclude: boss
//
// Schema names without a qualifier are qualified with the package. Embedded
// schemas are referred to by name and resolved on first dump, so schemas may
// refer to later ones or to themselves. Bases must be declared before use.
package declfile
