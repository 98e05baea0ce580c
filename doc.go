// Package treediff computes structural diffs between two JSON-compatible
// values, expressed as an RFC 6902 JSON Patch: an ordered list of add,
// remove & replace operations addressed with RFC 6901 JSON Pointers that
// transforms the first value into the second.
//
// treediff operates on document trees consisting of the go types created by
// unmarshaling from JSON, which are two composite types:
//
//	map[string]interface{}
//	[]interface{}
//
// and the scalar types:
//
//	string, int, float64, bool, nil
//
// by operating on native go types treediff can compare documents decoded
// from formats other than JSON, for example CSV or YAML, so long as they
// only produce the types listed above.
//
// The comparison is deliberately simple: values are walked in tandem, arrays
// are compared position-by-position, objects key-by-key in sorted key order.
// There is no move or copy detection and no edit-distance minimization for
// arrays, so an element inserted at the front of a long array produces a
// replace for every shifted index plus adds for the tail. That trade keeps
// the diff linear in the size of its inputs and the output trivially
// predictable. Patches produced here never contain move, copy or test
// operations, but any RFC 6902 applier can consume them.
//
// Diff never mutates its inputs and keeps no state between calls, so any
// number of diffs may run concurrently.
package treediff
