package treediff

import (
	"fmt"
	"reflect"
)

// kind defines all of the atoms in our universe, or the types of data we
// will encounter while generating a diff
type kind uint8

const (
	kindInvalid kind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// kindOf classifies a decoded-JSON value. anything outside the JSON value
// universe classifies as kindInvalid & halts the diff with a ValidationError
func kindOf(v interface{}) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return kindNumber
	case []interface{}:
		return kindArray
	case map[string]interface{}:
		return kindObject
	default:
		return kindInvalid
	}
}

// asFloat widens any numeric kind to float64, the type encoding/json decodes
// all JSON numbers to
func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	}
	panic(fmt.Sprintf("unexpected numeric type: %T", v))
}

// numbersEqual compares two values already classified as kindNumber by
// float64 value. NaN is never equal to itself & negative zero equals
// positive zero, matching strict-equality semantics in dynamic hosts
func numbersEqual(a, b interface{}) bool {
	return asFloat(a) == asFloat(b)
}

// sameComposite reports whether two arrays or two objects are the same
// underlying value, not merely equal in content. it exists to cheaply skip
// subtrees shared between documents built with immutable-update patterns,
// and must never stand in for structural comparison
func sameComposite(a, b interface{}) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch av.Kind() {
	case reflect.Map:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	return false
}
