// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package diff compares two versions of a service definition and reports
// what an SDK regeneration would pick up: operations and shapes that
// appeared, vanished, or changed form.
package diff

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	gojsondiff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/nealio82/async-aws/internal/model"
)

// Report is the structural delta between two definitions.
type Report struct {
	Service string

	AddedOperations   []string
	RemovedOperations []string
	AddedShapes       []string
	RemovedShapes     []string
	ChangedShapes     []string
}

// Empty reports whether the two definitions generate identically.
func (r *Report) Empty() bool {
	return len(r.AddedOperations) == 0 && len(r.RemovedOperations) == 0 &&
		len(r.AddedShapes) == 0 && len(r.RemovedShapes) == 0 &&
		len(r.ChangedShapes) == 0
}

// String renders the report, one change per line.
func (r *Report) String() string {
	if r.Empty() {
		return "no changes"
	}
	var b strings.Builder
	section := func(label string, names []string) {
		for _, n := range names {
			fmt.Fprintf(&b, "%s %s\n", label, n)
		}
	}
	section("+ operation", r.AddedOperations)
	section("- operation", r.RemovedOperations)
	section("+ shape", r.AddedShapes)
	section("- shape", r.RemovedShapes)
	section("~ shape", r.ChangedShapes)
	return strings.TrimRight(b.String(), "\n")
}

type rawDoc struct {
	Metadata   model.Metadata             `json:"metadata"`
	Operations map[string]json.RawMessage `json:"operations"`
	Shapes     map[string]json.RawMessage `json:"shapes"`
}

// Compare builds the structural report between an old and a new definition
// document. Both sides must at least load as definitions.
func Compare(oldData, newData []byte) (*Report, error) {
	// Loading through the model keeps diff from accepting documents the
	// generator would reject.
	if _, err := model.Load(oldData); err != nil {
		return nil, fmt.Errorf("old definition: %w", err)
	}
	newDef, err := model.Load(newData)
	if err != nil {
		return nil, fmt.Errorf("new definition: %w", err)
	}

	var oldDoc, newDoc rawDoc
	if err := json.Unmarshal(oldData, &oldDoc); err != nil {
		return nil, fmt.Errorf("old definition: %w", err)
	}
	if err := json.Unmarshal(newData, &newDoc); err != nil {
		return nil, fmt.Errorf("new definition: %w", err)
	}

	r := &Report{Service: newDef.Metadata.ServiceID}
	r.AddedOperations, r.RemovedOperations, _ = keyDelta(oldDoc.Operations, newDoc.Operations)

	var common []string
	r.AddedShapes, r.RemovedShapes, common = keyDelta(oldDoc.Shapes, newDoc.Shapes)
	for _, name := range common {
		same, err := jsonEqual(oldDoc.Shapes[name], newDoc.Shapes[name])
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", name, err)
		}
		if !same {
			r.ChangedShapes = append(r.ChangedShapes, name)
		}
	}
	return r, nil
}

// keyDelta splits two raw maps into added, removed, and common keys, each
// sorted.
func keyDelta(oldM, newM map[string]json.RawMessage) (added, removed, common []string) {
	for k := range newM {
		if _, ok := oldM[k]; ok {
			common = append(common, k)
		} else {
			added = append(added, k)
		}
	}
	for k := range oldM {
		if _, ok := newM[k]; !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	sort.Strings(common)
	return added, removed, common
}

// jsonEqual compares two raw values structurally, ignoring formatting.
func jsonEqual(a, b json.RawMessage) (bool, error) {
	// A shape entry is always a JSON object; object-level diffing ignores
	// key order the way byte comparison cannot.
	d, err := gojsondiff.New().Compare(a, b)
	if err != nil {
		return false, err
	}
	return !d.Modified(), nil
}

// RawDelta renders the full document delta in unified-ish ascii form.
func RawDelta(oldData, newData []byte) (string, error) {
	d, err := gojsondiff.New().Compare(oldData, newData)
	if err != nil {
		return "", fmt.Errorf("failed to diff definitions: %w", err)
	}
	if !d.Modified() {
		return "", nil
	}

	var left map[string]interface{}
	if err := json.Unmarshal(oldData, &left); err != nil {
		return "", fmt.Errorf("old definition: %w", err)
	}

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       false,
	})
	out, err := f.Format(d)
	if err != nil {
		return "", fmt.Errorf("failed to format delta: %w", err)
	}
	return out, nil
}
