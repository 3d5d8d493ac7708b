// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"sort"
)

// rawShape is the undecorated form of one entry in the shapes dictionary.
type rawShape struct {
	Type            string             `json:"type"`
	Required        []string           `json:"required"`
	Members         map[string]*rawRef `json:"members"`
	Member          *rawRef            `json:"member"`
	Key             *rawRef            `json:"key"`
	Value           *rawRef            `json:"value"`
	Enum            []string           `json:"enum"`
	Exception       bool               `json:"exception"`
	Fault           bool               `json:"fault"`
	Error           *ErrorInfo         `json:"error"`
	Payload         string             `json:"payload"`
	Sensitive       bool               `json:"sensitive"`
	Pattern         string             `json:"pattern"`
	Min             *float64           `json:"min"`
	Max             *float64           `json:"max"`
	TimestampFormat string             `json:"timestampFormat"`
	Documentation   string             `json:"documentation"`
}

// rawRef is a reference from one shape (or operation) to another.
type rawRef struct {
	ShapeName        string `json:"shape"`
	LocationName     string `json:"locationName"`
	Location         string `json:"location"`
	Documentation    string `json:"documentation"`
	Streaming        bool   `json:"streaming"`
	IdempotencyToken bool   `json:"idempotencyToken"`
	HostLabel        bool   `json:"hostLabel"`
}

// ErrorInfo carries the wire-level error metadata of an exception shape.
type ErrorInfo struct {
	Code           string `json:"code"`
	HTTPStatusCode int    `json:"httpStatusCode"`
	SenderFault    bool   `json:"senderFault"`
}

// Shape is one node of the service data model.
type Shape interface {
	Name() string
	Type() string
	Documentation() string
}

// newShape builds the typed wrapper for a raw shape, switching on the type
// discriminator. Exceptions are structures flagged as such in the document.
func newShape(def *Definition, name string, raw *rawShape) (Shape, error) {
	base := baseShape{def: def, name: name, raw: raw}
	switch raw.Type {
	case "structure":
		if raw.Exception || raw.Fault {
			return &ExceptionShape{StructureShape{base}}, nil
		}
		return &StructureShape{base}, nil
	case "list":
		return &ListShape{base}, nil
	case "map":
		return &MapShape{base}, nil
	case "string", "boolean", "integer", "long", "float", "double",
		"timestamp", "blob":
		return &ScalarShape{base}, nil
	default:
		return nil, fmt.Errorf("%w: %q (shape %s)", ErrUnknownShapeType, raw.Type, name)
	}
}

type baseShape struct {
	def  *Definition
	name string
	raw  *rawShape
}

func (b *baseShape) Name() string          { return b.name }
func (b *baseShape) Type() string          { return b.raw.Type }
func (b *baseShape) Documentation() string { return b.raw.Documentation }
func (b *baseShape) Sensitive() bool       { return b.raw.Sensitive }

func (b *baseShape) resolve(ref *rawRef) (Shape, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: shape %s has a missing reference", ErrUnresolvedShape, b.name)
	}
	return b.def.Shape(ref.ShapeName)
}

// Member is one named field of a structure shape. The target shape resolves
// lazily through the owning definition.
type Member struct {
	Name             string
	LocationName     string
	Location         string
	Required         bool
	Streaming        bool
	IdempotencyToken bool
	HostLabel        bool
	Documentation    string

	owner *baseShape
	ref   *rawRef
}

// Shape resolves the member's target shape.
func (m *Member) Shape() (Shape, error) {
	return m.owner.resolve(m.ref)
}

// WireName is the name the member carries on the wire: the locationName if
// one is set, the member name otherwise.
func (m *Member) WireName() string {
	if m.LocationName != "" {
		return m.LocationName
	}
	return m.Name
}

// StructureShape is an aggregate of named members.
type StructureShape struct {
	baseShape
}

// Members returns the structure's members in deterministic (sorted) order.
func (s *StructureShape) Members() []*Member {
	required := make(map[string]bool, len(s.raw.Required))
	for _, r := range s.raw.Required {
		required[r] = true
	}

	names := make([]string, 0, len(s.raw.Members))
	for name := range s.raw.Members {
		names = append(names, name)
	}
	sort.Strings(names)

	members := make([]*Member, 0, len(names))
	for _, name := range names {
		ref := s.raw.Members[name]
		members = append(members, &Member{
			Name:             name,
			LocationName:     ref.LocationName,
			Location:         ref.Location,
			Required:         required[name],
			Streaming:        ref.Streaming,
			IdempotencyToken: ref.IdempotencyToken,
			HostLabel:        ref.HostLabel,
			Documentation:    ref.Documentation,
			owner:            &s.baseShape,
			ref:              ref,
		})
	}
	return members
}

// Member returns the named member, or nil.
func (s *StructureShape) Member(name string) *Member {
	for _, m := range s.Members() {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Payload names the member that carries the raw request/response body, if
// any.
func (s *StructureShape) Payload() string { return s.raw.Payload }

// ExceptionShape is a structure that models a service error.
type ExceptionShape struct {
	StructureShape
}

// ErrorInfo returns the wire-level error metadata. The zero value is
// returned when the document omits the error block; the shape name then
// doubles as the error code.
func (s *ExceptionShape) ErrorInfo() ErrorInfo {
	if s.raw.Error != nil {
		return *s.raw.Error
	}
	return ErrorInfo{}
}

// Code returns the wire error code, falling back to the shape name.
func (s *ExceptionShape) Code() string {
	if s.raw.Error != nil && s.raw.Error.Code != "" {
		return s.raw.Error.Code
	}
	return s.name
}

// ListShape is a homogeneous sequence.
type ListShape struct {
	baseShape
}

// Member resolves the element shape.
func (s *ListShape) Member() (Shape, error) {
	return s.resolve(s.raw.Member)
}

// Flattened lists carry no wrapper element on query-protocol wires.
func (s *ListShape) MemberLocationName() string {
	if s.raw.Member != nil {
		return s.raw.Member.LocationName
	}
	return ""
}

// MapShape is a homogeneous dictionary.
type MapShape struct {
	baseShape
}

// Key resolves the key shape.
func (s *MapShape) Key() (Shape, error) {
	return s.resolve(s.raw.Key)
}

// Value resolves the value shape.
func (s *MapShape) Value() (Shape, error) {
	return s.resolve(s.raw.Value)
}

// ScalarShape is a leaf: string, number, boolean, timestamp, or blob.
type ScalarShape struct {
	baseShape
}

// Enum returns the declared enum values for string shapes, nil otherwise.
func (s *ScalarShape) Enum() []string { return s.raw.Enum }

// IsEnum reports whether the shape declares an enum constraint.
func (s *ScalarShape) IsEnum() bool { return len(s.raw.Enum) > 0 }

// Pattern returns the regex constraint, if any.
func (s *ScalarShape) Pattern() string { return s.raw.Pattern }

// TimestampFormat returns the declared timestamp serialization format.
func (s *ScalarShape) TimestampFormat() string { return s.raw.TimestampFormat }

// Bounds returns the min/max constraints. Nil means unbounded.
func (s *ScalarShape) Bounds() (min, max *float64) { return s.raw.Min, s.raw.Max }
