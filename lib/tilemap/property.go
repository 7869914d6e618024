// Copyright 2026 The Tilemap Authors
// SPDX-License-Identifier: Apache-2.0

package tilemap

// PropertyKind identifies which arm of the [Property] union is
// populated. The values are the on-disk type tags.
type PropertyKind uint8

const (
	// PropertyInteger is a 32-bit signed integer property.
	PropertyInteger PropertyKind = 0

	// PropertyFloat is a 32-bit IEEE 754 float property.
	PropertyFloat PropertyKind = 1

	// PropertyString is an arbitrary byte sequence property. The
	// bytes need not be valid UTF-8. Writing a zero-length string
	// property is an error: the format stores string lengths minus
	// one and cannot represent emptiness.
	PropertyString PropertyKind = 2
)

// Property is a typed document-level metadata value. Exactly one of
// the value fields is meaningful, selected by Kind; the others stay at
// their zero value so that reflect.DeepEqual compares property values
// on the populated arm alone. The String field makes Property
// non-comparable with ==.
type Property struct {
	Kind    PropertyKind
	Integer int32
	Float   float32
	String  []byte
}

// IntegerProperty returns an integer-valued property.
func IntegerProperty(value int32) Property {
	return Property{Kind: PropertyInteger, Integer: value}
}

// FloatProperty returns a float-valued property.
func FloatProperty(value float32) Property {
	return Property{Kind: PropertyFloat, Float: value}
}

// StringProperty returns a byte-string-valued property.
func StringProperty(value []byte) Property {
	return Property{Kind: PropertyString, String: value}
}
