// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// HTTPBinding is the transport hint attached to an operation.
type HTTPBinding struct {
	Method       string `json:"method"`
	RequestURI   string `json:"requestUri"`
	ResponseCode int    `json:"responseCode"`
}

// OperationRef points from an operation to its input, output, or error
// shape.
type OperationRef struct {
	ShapeName    string `json:"shape"`
	LocationName string `json:"locationName"`

	def *Definition
}

// Shape resolves the referenced shape.
func (r *OperationRef) Shape() (Shape, error) {
	if r == nil || r.ShapeName == "" {
		return nil, nil
	}
	if r.def == nil {
		return nil, fmt.Errorf("%w: %s (detached reference)", ErrUnresolvedShape, r.ShapeName)
	}
	return r.def.Shape(r.ShapeName)
}

// Operation is one callable service operation.
type Operation struct {
	Name          string          `json:"-"`
	HTTP          HTTPBinding     `json:"http"`
	Input         *OperationRef   `json:"input"`
	Output        *OperationRef   `json:"output"`
	Errors        []*OperationRef `json:"errors"`
	Documentation string          `json:"documentation"`
	Idempotent    bool            `json:"idempotent"`
	Deprecated    bool            `json:"deprecated"`

	// Pagination is attached from the paginators document, not from the
	// operation entry itself.
	Pagination *Pagination `json:"-"`

	def *Definition
}

// shapeRefs lists every reference the operation makes so validation can
// walk them uniformly.
func (op *Operation) shapeRefs() []*OperationRef {
	refs := []*OperationRef{op.Input, op.Output}
	return append(refs, op.Errors...)
}

// Paginated reports whether the operation carries a pagination descriptor.
func (op *Operation) Paginated() bool { return op.Pagination != nil }

// Pagination describes how an operation pages: which input member carries
// the continuation token, which output member returns the next one, and
// where the page items live.
type Pagination struct {
	InputToken  TokenList `json:"input_token"`
	OutputToken TokenList `json:"output_token"`
	LimitKey    string    `json:"limit_key"`
	ResultKey   TokenList `json:"result_key"`
	MoreResults string    `json:"more_results"`
}

// TokenList is a pagination token path set. The paginators document writes
// it as either a single string or an array of strings.
type TokenList []string

// UnmarshalJSON accepts both the scalar and the array form.
func (t *TokenList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*t = TokenList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("token list must be a string or array of strings: %w", err)
	}
	*t = TokenList(many)
	return nil
}

type paginatorsDocument struct {
	Pagination map[string]*Pagination `json:"pagination"`
}

// AttachPaginators merges a paginators document into the definition,
// wiring each descriptor onto its operation. Descriptors for unknown
// operations are an error: they indicate a definition/paginators mismatch.
func (d *Definition) AttachPaginators(data []byte) error {
	var doc paginatorsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode paginators: %w", err)
	}
	for name, p := range doc.Pagination {
		op, ok := d.operations[name]
		if !ok {
			return fmt.Errorf("paginator for unknown operation %s", name)
		}
		op.Pagination = p
	}
	return nil
}
