// Package fields provides the field types schemas are declared with.
//
// A field describes how one value of the output is obtained from a source
// object and, optionally, how it is converted. The source is one of:
//   - an attribute of the object (Attr),
//   - the result of a getter function called with the object (Get),
//   - a constant (Val),
//   - or, when none is given, the attribute named like the field.
//
// Plain fields (Field, Boolean, Float, Integer, String) pass values through.
// Date and DateTime convert times to ISO 8601 strings. Embed delegates to a
// linked schema, resolved lazily by instance, class or registry name.
package fields
