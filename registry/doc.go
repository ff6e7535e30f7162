// Package registry provides the schema class registry that makes schemas
// referable by name.
//
// Schema classes are registered when they are declared (see package schema)
// and looked up when a linked-object field that names its schema is first
// packed. Lookups accept either a fully qualified name such as
// "lima/store.OrderSchema" or a bare short name such as "OrderSchema"; the
// latter only succeeds while exactly one registered class carries that short
// name.
//
// All methods are safe for concurrent use.
package registry
