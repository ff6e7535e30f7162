// Package diagnostic provides structured errors, warnings and notes collected
// while validating schema declaration files.
//
// Key capabilities:
//   - Duplicate schema and field reports
//   - Unknown field kinds and unresolvable bases
//   - Contradictory field sources (attr together with val)
package diagnostic
