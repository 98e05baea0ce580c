package treediff

import (
	"encoding/json"
)

// Op is the kind of edit an Operation describes
type Op string

const (
	// OpAdd sets a value at a path that did not exist in the source document
	OpAdd = Op("add")
	// OpRemove deletes the value at a path that exists in the source document
	OpRemove = Op("remove")
	// OpReplace swaps the value at a path that exists in both documents
	OpReplace = Op("replace")
)

// Operation is a single RFC 6902 edit: an op name, a JSON Pointer into the
// document, and for add & replace the value to place there
type Operation struct {
	// the type of change
	Op Op `json:"op"`
	// Path addresses where in the document the operation applies.
	// paths conform to the IETF JSON Pointer specification, outlined
	// in RFC 6901: https://tools.ietf.org/html/rfc6901
	Path string `json:"path"`
	// The value to add or substitute at Path. always nil for remove
	Value interface{} `json:"value,omitempty"`
}

// Patch is an ordered list of operations that transforms one document into
// another when applied front to back. order is load-bearing: later
// operations may address locations that only exist because of earlier ones
type Patch []Operation

// MarshalJSON implements a custom JSON marshaller. remove operations carry
// no "value" member, while add & replace always do, even when the value is
// an explicit null — omitempty would silently drop null, false & zero
func (op Operation) MarshalJSON() ([]byte, error) {
	if op.Op == OpRemove {
		return json.Marshal(struct {
			Op   Op     `json:"op"`
			Path string `json:"path"`
		}{op.Op, op.Path})
	}
	return json.Marshal(struct {
		Op    Op          `json:"op"`
		Path  string      `json:"path"`
		Value interface{} `json:"value"`
	}{op.Op, op.Path, op.Value})
}
