// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/apex/log"
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var (
	// ErrUnknownShapeType is returned when a shape declares a type the
	// factory does not recognize.
	ErrUnknownShapeType = errors.New("unknown shape type")

	// ErrUnresolvedShape is returned when a reference names a shape that
	// does not exist in the definition.
	ErrUnresolvedShape = errors.New("unresolved shape reference")
)

// Metadata is the service-level header of a definition document.
type Metadata struct {
	APIVersion          string `json:"apiVersion"`
	EndpointPrefix      string `json:"endpointPrefix"`
	JSONVersion         string `json:"jsonVersion"`
	Protocol            string `json:"protocol"`
	ServiceAbbreviation string `json:"serviceAbbreviation"`
	ServiceFullName     string `json:"serviceFullName"`
	ServiceID           string `json:"serviceId"`
	SignatureVersion    string `json:"signatureVersion"`
	SigningName         string `json:"signingName"`
	TargetPrefix        string `json:"targetPrefix"`
	UID                 string `json:"uid"`
}

// Definition is a parsed service description. Shapes are materialized
// lazily: the raw dictionary is decoded up front, but typed Shape wrappers
// are built (and memoized) on first access.
type Definition struct {
	Metadata   Metadata
	Version    string
	operations map[string]*Operation
	raws       map[string]*rawShape
	shapes     map[string]Shape
}

type document struct {
	Version    string                `json:"version"`
	Metadata   Metadata              `json:"metadata"`
	Operations map[string]*Operation `json:"operations"`
	Shapes     map[string]*rawShape  `json:"shapes"`
}

// Load decodes a service definition document.
func Load(data []byte) (*Definition, error) {
	// Cheap structural probe before committing to a full decode. A document
	// without a shapes dictionary is not a service definition at all and the
	// decode error it would produce is unhelpful.
	shapes := gjson.GetBytes(data, "shapes")
	if !shapes.IsObject() {
		return nil, fmt.Errorf("definition has no shapes dictionary")
	}

	// A duplicate shape key would silently shadow its earlier namesake in
	// the decoded map, so catch it on the raw document where both still
	// exist.
	seen := make(map[string]struct{})
	var dup string
	shapes.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if _, ok := seen[name]; ok {
			dup = name
			return false
		}
		seen[name] = struct{}{}
		return true
	})
	if dup != "" {
		return nil, fmt.Errorf("duplicate shape %s in definition", dup)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}

	def := &Definition{
		Metadata:   doc.Metadata,
		Version:    doc.Version,
		operations: doc.Operations,
		raws:       doc.Shapes,
		shapes:     make(map[string]Shape, len(doc.Shapes)),
	}

	for name, op := range def.operations {
		op.Name = name
		op.def = def
		for _, ref := range op.shapeRefs() {
			if ref != nil {
				ref.def = def
			}
		}
	}

	log.Debugf("loaded definition %s (%s): %d shapes, %d operations",
		def.Metadata.ServiceID, def.Metadata.APIVersion,
		len(def.raws), len(def.operations))

	return def, nil
}

// Shape returns the typed wrapper for the named shape, building it on first
// use.
func (d *Definition) Shape(name string) (Shape, error) {
	if s, ok := d.shapes[name]; ok {
		return s, nil
	}
	raw, ok := d.raws[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedShape, name)
	}
	s, err := newShape(d, name, raw)
	if err != nil {
		return nil, err
	}
	d.shapes[name] = s
	return s, nil
}

// ShapeNames returns every shape name in the definition, sorted.
func (d *Definition) ShapeNames() []string {
	names := make([]string, 0, len(d.raws))
	for name := range d.raws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operation returns the named operation, or nil.
func (d *Definition) Operation(name string) *Operation {
	return d.operations[name]
}

// OperationNames returns every operation name, sorted.
func (d *Definition) OperationNames() []string {
	names := make([]string, 0, len(d.operations))
	for name := range d.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate walks the whole definition and checks that every reference
// resolves, that every shape type is known, and that operations point at
// existing shapes. The first problem found is returned, wrapped with enough
// context to locate it in the document.
func (d *Definition) Validate() error {
	for _, name := range d.ShapeNames() {
		s, err := d.Shape(name)
		if err != nil {
			return fmt.Errorf("shape %s: %w", name, err)
		}
		if err := validateShape(s); err != nil {
			return fmt.Errorf("shape %s: %w", name, err)
		}
	}

	for _, name := range d.OperationNames() {
		op := d.operations[name]
		for _, ref := range op.shapeRefs() {
			if ref == nil {
				continue
			}
			if _, err := ref.Shape(); err != nil {
				return fmt.Errorf("operation %s: %w", name, err)
			}
		}
	}
	return nil
}

func validateShape(s Shape) error {
	switch t := s.(type) {
	case *StructureShape:
		for _, m := range t.Members() {
			if _, err := m.Shape(); err != nil {
				return fmt.Errorf("member %s: %w", m.Name, err)
			}
		}
	case *ExceptionShape:
		for _, m := range t.Members() {
			if _, err := m.Shape(); err != nil {
				return fmt.Errorf("member %s: %w", m.Name, err)
			}
		}
	case *ListShape:
		if _, err := t.Member(); err != nil {
			return err
		}
	case *MapShape:
		if _, err := t.Key(); err != nil {
			return err
		}
		if _, err := t.Value(); err != nil {
			return err
		}
	}
	return nil
}
