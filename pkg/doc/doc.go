// Package doc defines the documentation corpus model produced by docforge.
//
// The model is built in three stages: comment markup parsing yields a
// ParsedComment, the describer merges it with declaration facts into an
// EntityRecord, and the assembler aggregates records from all source files
// into a single Corpus.
//
// # Value Semantics
//
// ParsedComment is transient: it is created once per declaration comment and
// consumed immediately by the describer. EntityRecords are created once,
// appended to the Corpus, and never mutated afterward. A Corpus is a
// write-once aggregate of a single generation pass.
//
// Throughout the model the zero value means "absent": an empty description
// string, a nil slice of code blocks, and a nil template map all denote
// missing documentation rather than errors. Serializing a Corpus to JSON and
// decoding it back yields a field-for-field equal value.
package doc
