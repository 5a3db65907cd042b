// Package ast defines the typed syntax tree of the query language.
//
// There is one pointer struct per node kind, a per-kind ordered child-field
// table (ChildFields) that drives traversal, kind-generic child accessors
// (Child, Copy, SetChild) used by the visit package's copy-on-write rewrite
// engine, and a canonical kind-discriminated JSON form (ToJSON, FromJSON)
// for storing and exchanging trees.
package ast
