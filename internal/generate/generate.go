// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"

	"github.com/nealio82/async-aws/internal/manifest"
	"github.com/nealio82/async-aws/internal/model"
)

// Per-file render payloads. Each generated file gets exactly the data it
// needs, so one template cannot silently lean on another's fields.
type docFile struct {
	Package    string
	Service    string
	APIVersion string
}

type enumsFile struct {
	Package string
	Enums   []enumView
}

type typesFile struct {
	Package  string
	Objects  []structView
	UsesTime bool
}

type inputsFile struct {
	Package     string
	Inputs      []structView
	UsesTime    bool
	NeedsErrors bool
}

type resultsFile struct {
	Package       string
	Runtime       string
	Results       []structView
	Operations    []operationView
	UsesTime      bool
	HasPaginators bool
	HasItems      bool
}

type errorsFile struct {
	Package    string
	Exceptions []exceptionView
	UsesTime   bool
}

type clientFile struct {
	Package    string
	Service    string
	Operations []operationView
}

func anyTime(structs []structView) bool {
	for _, s := range structs {
		if s.UsesTime {
			return true
		}
	}
	return false
}

// Service renders one manifest service into the writer. The relative file
// layout under the writer root is <service dir>/<file>.go.
func Service(def *model.Definition, svc *manifest.Service, w *Writer) error {
	pv, err := buildView(def, svc)
	if err != nil {
		return fmt.Errorf("service %s: %w", svc.Name, err)
	}

	dir := svc.OutDir("")

	files := []struct {
		name string
		tmpl string
		data any
		skip bool
	}{
		{
			name: "doc.go",
			tmpl: "doc",
			data: docFile{Package: pv.Package, Service: pv.Service, APIVersion: pv.APIVersion},
		},
		{
			name: "enums.go",
			tmpl: "enums",
			data: enumsFile{Package: pv.Package, Enums: pv.Enums},
			skip: len(pv.Enums) == 0,
		},
		{
			name: "types.go",
			tmpl: "types",
			data: typesFile{Package: pv.Package, Objects: pv.Objects, UsesTime: anyTime(pv.Objects)},
			skip: len(pv.Objects) == 0,
		},
		{
			name: "inputs.go",
			tmpl: "inputs",
			data: inputsFile{
				Package:     pv.Package,
				Inputs:      pv.Inputs,
				UsesTime:    anyTime(pv.Inputs),
				NeedsErrors: anyZeroChecks(pv.Inputs),
			},
			skip: len(pv.Inputs) == 0,
		},
		{
			name: "results.go",
			tmpl: "results",
			data: resultsFile{
				Package:       pv.Package,
				Runtime:       pv.Runtime,
				Results:       pv.Results,
				Operations:    pv.Operations,
				UsesTime:      anyTime(pv.Results),
				HasPaginators: anyPaginated(pv.Operations),
				HasItems:      anyItems(pv.Operations),
			},
			skip: len(pv.Results) == 0 && !anyPaginated(pv.Operations),
		},
		{
			name: "errors.go",
			tmpl: "errors",
			data: errorsFile{
				Package:    pv.Package,
				Exceptions: pv.Exceptions,
				UsesTime:   anyTime(exceptionStructs(pv.Exceptions)),
			},
			skip: len(pv.Exceptions) == 0,
		},
		{
			name: "client.go",
			tmpl: "client",
			data: clientFile{Package: pv.Package, Service: pv.Service, Operations: pv.Operations},
		},
	}

	for _, f := range files {
		if f.skip {
			continue
		}
		src, err := renderFile(f.tmpl, f.data)
		if err != nil {
			return fmt.Errorf("service %s: %w", svc.Name, err)
		}
		if _, err := w.Write(filepath.Join(dir, f.name), src); err != nil {
			return fmt.Errorf("service %s: %w", svc.Name, err)
		}
	}

	log.Infof("generated %s: %d operations, %d shapes",
		svc.Name, len(pv.Operations),
		len(pv.Objects)+len(pv.Inputs)+len(pv.Results)+len(pv.Exceptions)+len(pv.Enums))
	return nil
}

func anyZeroChecks(structs []structView) bool {
	for _, s := range structs {
		for _, f := range s.Fields {
			if f.ZeroCheck != "" {
				return true
			}
		}
	}
	return false
}

func anyPaginated(ops []operationView) bool {
	for _, op := range ops {
		if op.Paginated {
			return true
		}
	}
	return false
}

func anyItems(ops []operationView) bool {
	for _, op := range ops {
		if op.Paginated && op.ResultField != "" {
			return true
		}
	}
	return false
}

func exceptionStructs(exs []exceptionView) []structView {
	out := make([]structView, 0, len(exs))
	for _, e := range exs {
		out = append(out, e.structView)
	}
	return out
}
