// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package runtime holds the small support surface that generated clients
// link against. It deliberately knows nothing about HTTP: generated code
// supplies a fetch function and the runtime only drives the page-chaining
// loop.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"reflect"
)

// ErrNoFetcher is returned when a paginator is driven without a fetch
// function.
var ErrNoFetcher = errors.New("paginator has no fetch function")

// FetchFunc performs one call of a paginated operation.
type FetchFunc[In, Out any] func(context.Context, *In) (*Out, error)

// Paginator lazily chains the pages of a list operation. The first page is
// fetched on first iteration, never at construction time, and iteration can
// stop early without fetching the remainder.
//
// Token plumbing is supplied by generated code: OutputToken extracts the
// continuation token from a response, SetInputToken plants it on the next
// request. When SetInputToken is nil, InputTokenField names the input struct
// field to set by reflection instead.
type Paginator[In, Out any] struct {
	Input *In
	Fetch FetchFunc[In, Out]

	OutputToken     func(*Out) string
	SetInputToken   func(*In, string)
	InputTokenField string
}

// Pages returns a lazy sequence of response pages. Fetch errors terminate
// the sequence after being yielded once. A page whose continuation token is
// empty, or identical to the token that produced it, is the last page.
func (p *Paginator[In, Out]) Pages(ctx context.Context) iter.Seq2[*Out, error] {
	return func(yield func(*Out, error) bool) {
		if p.Fetch == nil {
			yield(nil, ErrNoFetcher)
			return
		}

		in := p.Input
		if in == nil {
			in = new(In)
		}

		var prevToken string
		for {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			out, err := p.Fetch(ctx, in)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(out, nil) {
				return
			}

			token := ""
			if p.OutputToken != nil {
				token = p.OutputToken(out)
			}
			if token == "" || token == prevToken {
				return
			}
			prevToken = token

			if err := p.setToken(in, token); err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

// All drains the paginator and returns every page.
func (p *Paginator[In, Out]) All(ctx context.Context) ([]*Out, error) {
	var pages []*Out
	for out, err := range p.Pages(ctx) {
		if err != nil {
			return nil, err
		}
		pages = append(pages, out)
	}
	return pages, nil
}

func (p *Paginator[In, Out]) setToken(in *In, token string) error {
	if p.SetInputToken != nil {
		p.SetInputToken(in, token)
		return nil
	}
	if p.InputTokenField == "" {
		return errors.New("paginator has no input token plumbing")
	}
	return setStringField(in, p.InputTokenField, token)
}

// Items flattens a paginator into a lazy sequence of page items. The
// extract function pulls the item slice out of each response page.
func Items[In, Out, Item any](
	ctx context.Context,
	p *Paginator[In, Out],
	extract func(*Out) []Item,
) iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		var zero Item
		for out, err := range p.Pages(ctx) {
			if err != nil {
				yield(zero, err)
				return
			}
			for _, item := range extract(out) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// setStringField sets a string field (or *string field) on a struct by
// name. Generated code prefers closures; this is the fallback for inputs
// whose token member is reached through an embedded options struct.
func setStringField(target any, field string, value string) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("token target must be a non-nil pointer, got %T", target)
	}
	f := v.Elem().FieldByName(field)
	if !f.IsValid() || !f.CanSet() {
		return fmt.Errorf("no settable field %q on %T", field, target)
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
	case reflect.Pointer:
		if f.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("field %q is not a string", field)
		}
		f.Set(reflect.ValueOf(&value))
	default:
		return fmt.Errorf("field %q is not a string", field)
	}
	return nil
}
