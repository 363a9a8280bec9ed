// Package entry defines the in-memory value describing one filesystem item.
//
// An Entry is built once by the scanner from a directory record, a stat
// snapshot and a permission lookup, and is never mutated afterwards. Filters,
// sort strategies, the classifier and the renderers only read it.
//
// Permissions has the same shape on every platform. POSIX lookups fill the
// three principals from the mode bits and derive hidden from a leading dot;
// Windows lookups fill the attribute bag from the file attributes and derive
// executable from the configured extension set.
package entry
