// Package types defines the collection type vocabulary, the platforms that
// key the catalog, the immutable Sequence container, configuration, and the
// sentinel errors shared by the rest of the module.
package types
