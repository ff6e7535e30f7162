package common

import (
	"go/token"
	"strings"
)

// UnknownStr is returned by String methods of enums holding an unknown value.
const UnknownStr = "unknown"

// SplitQualified splits a qualified name like "lima/store.OrderSchema" into its
// qualifier ("lima/store") and short name ("OrderSchema"). A name without a dot
// has an empty qualifier.
func SplitQualified(name string) (qualifier, short string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", name
	}

	return name[:i], name[i+1:]
}

// Qualify joins a qualifier and a short name. An empty qualifier yields short unchanged.
func Qualify(qualifier, short string) string {
	if qualifier == "" {
		return short
	}

	return qualifier + "." + short
}

// IsAttrName reports whether s can name an attribute: a Go identifier or a Go
// keyword ("type", "range"). Attributes are read by reflection and map keys,
// never compiled.
func IsAttrName(s string) bool {
	return token.IsIdentifier(s) || token.IsKeyword(s)
}
