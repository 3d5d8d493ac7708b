// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"
	"sort"

	"github.com/apex/log"

	"github.com/nealio82/async-aws/internal/manifest"
	"github.com/nealio82/async-aws/internal/model"
)

// RuntimeImport is where generated paginators find the page-chaining loop.
const RuntimeImport = "github.com/nealio82/async-aws/runtime"

type fieldView struct {
	GoName   string
	GoType   string
	WireName string
	Required bool
	// ZeroCheck is the emitted required-ness guard: "empty" for bare
	// strings, "nil" for pointers/maps/slices, "" when the zero value is
	// indistinguishable from an intentional one.
	ZeroCheck string
}

// Tag renders the struct tag carrying the wire name.
func (f fieldView) Tag() string {
	omit := ",omitempty"
	if f.Required {
		omit = ""
	}
	return "`json:\"" + f.WireName + omit + "\"`"
}

type structView struct {
	GoName   string
	Doc      string
	Fields   []fieldView
	UsesTime bool
}

type enumView struct {
	GoName string
	Values []enumValueView
}

type enumValueView struct {
	ConstName string
	Raw       string
}

type exceptionView struct {
	structView
	Code   string
	Fault  string // "client" or "server"
	Status int

	// MessageField names the human-readable message member, when the shape
	// declares one.
	MessageField string
	MessagePtr   bool
}

type operationView struct {
	Name       string
	InputType  string
	OutputType string

	// Pagination plumbing; set only for single-string-token paginators.
	Paginated        bool
	InputTokenField  string
	OutputTokenField string
	OutputTokenPtr   bool
	InputTokenPtr    bool
	ResultField      string
	ResultElemType   string
}

// packageView is everything the templates need to render one service
// package.
type packageView struct {
	Package    string
	Service    string
	APIVersion string
	Runtime    string

	Enums      []enumView
	Objects    []structView // plain value objects
	Inputs     []structView
	Results    []structView
	Exceptions []exceptionView
	Operations []operationView
}

// buildView walks the definition and produces the render model for one
// service. Only shapes reachable from the wanted operations are generated.
func buildView(def *model.Definition, svc *manifest.Service) (*packageView, error) {
	var ops []*model.Operation
	for _, name := range def.OperationNames() {
		if svc.WantsOperation(name) {
			ops = append(ops, def.Operation(name))
		}
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("no operations selected for service %s", svc.Name)
	}

	reach, err := reachableShapes(def, ops)
	if err != nil {
		return nil, err
	}

	inputs, outputs := make(map[string]bool), make(map[string]bool)
	for _, op := range ops {
		if op.Input != nil {
			inputs[op.Input.ShapeName] = true
		}
		if op.Output != nil {
			outputs[op.Output.ShapeName] = true
		}
	}

	pv := &packageView{
		Package:    svc.PackageName(),
		Service:    def.Metadata.ServiceID,
		APIVersion: def.Metadata.APIVersion,
		Runtime:    RuntimeImport,
	}

	names := make([]string, 0, len(reach))
	for name := range reach {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s, err := def.Shape(name)
		if err != nil {
			return nil, err
		}
		switch t := s.(type) {
		case *model.ExceptionShape:
			ev, err := buildException(t)
			if err != nil {
				return nil, err
			}
			pv.Exceptions = append(pv.Exceptions, ev)
		case *model.StructureShape:
			sv, err := buildStruct(t)
			if err != nil {
				return nil, err
			}
			switch {
			case inputs[name]:
				pv.Inputs = append(pv.Inputs, sv)
			case outputs[name]:
				pv.Results = append(pv.Results, sv)
			default:
				pv.Objects = append(pv.Objects, sv)
			}
		case *model.ScalarShape:
			if t.IsEnum() {
				pv.Enums = append(pv.Enums, buildEnum(t))
			}
		}
	}

	for _, op := range ops {
		ov, err := buildOperation(def, op)
		if err != nil {
			return nil, err
		}
		pv.Operations = append(pv.Operations, ov)
	}

	return pv, nil
}

// reachableShapes walks member references breadth-first from the operation
// roots.
func reachableShapes(def *model.Definition, ops []*model.Operation) (map[string]bool, error) {
	seen := make(map[string]bool)
	var queue []string

	push := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			queue = append(queue, name)
		}
	}

	for _, op := range ops {
		if op.Input != nil {
			push(op.Input.ShapeName)
		}
		if op.Output != nil {
			push(op.Output.ShapeName)
		}
		for _, e := range op.Errors {
			push(e.ShapeName)
		}
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		s, err := def.Shape(name)
		if err != nil {
			return nil, err
		}
		switch t := s.(type) {
		case *model.ExceptionShape:
			for _, m := range t.Members() {
				ms, err := m.Shape()
				if err != nil {
					return nil, err
				}
				push(ms.Name())
			}
		case *model.StructureShape:
			for _, m := range t.Members() {
				ms, err := m.Shape()
				if err != nil {
					return nil, err
				}
				push(ms.Name())
			}
		case *model.ListShape:
			elem, err := t.Member()
			if err != nil {
				return nil, err
			}
			push(elem.Name())
		case *model.MapShape:
			k, err := t.Key()
			if err != nil {
				return nil, err
			}
			push(k.Name())
			v, err := t.Value()
			if err != nil {
				return nil, err
			}
			push(v.Name())
		}
	}
	return seen, nil
}

// goType maps a shape to the Go type of a field holding it. Optional
// scalars become pointers so absence survives the wire round-trip;
// aggregates use their natural nil state instead.
func goType(s model.Shape, required bool) (typ string, usesTime bool, err error) {
	switch t := s.(type) {
	case *model.ScalarShape:
		if t.IsEnum() {
			return GoName(t.Name()), false, nil
		}
		var base string
		switch t.Type() {
		case "string":
			base = "string"
		case "boolean":
			base = "bool"
		case "integer":
			base = "int32"
		case "long":
			base = "int64"
		case "float":
			base = "float32"
		case "double":
			base = "float64"
		case "timestamp":
			return "*time.Time", true, nil
		case "blob":
			return "[]byte", false, nil
		}
		if !required {
			return "*" + base, false, nil
		}
		return base, false, nil
	case *model.ExceptionShape:
		return "*" + GoName(t.Name()), false, nil
	case *model.StructureShape:
		return "*" + GoName(t.Name()), false, nil
	case *model.ListShape:
		elem, err := t.Member()
		if err != nil {
			return "", false, err
		}
		et, ut, err := goType(elem, true)
		if err != nil {
			return "", false, err
		}
		return "[]" + et, ut, nil
	case *model.MapShape:
		k, err := t.Key()
		if err != nil {
			return "", false, err
		}
		kt, _, err := goType(k, true)
		if err != nil {
			return "", false, err
		}
		v, err := t.Value()
		if err != nil {
			return "", false, err
		}
		vt, ut, err := goType(v, true)
		if err != nil {
			return "", false, err
		}
		return "map[" + kt + "]" + vt, ut, nil
	}
	return "", false, fmt.Errorf("no Go type for shape %s (%s)", s.Name(), s.Type())
}

func buildFields(s *model.StructureShape) ([]fieldView, bool, error) {
	var fields []fieldView
	var usesTime bool
	for _, m := range s.Members() {
		ms, err := m.Shape()
		if err != nil {
			return nil, false, err
		}
		typ, ut, err := goType(ms, m.Required)
		if err != nil {
			return nil, false, err
		}
		usesTime = usesTime || ut

		zero := ""
		if m.Required {
			switch {
			case typ == "string":
				zero = "empty"
			case typ[0] == '*' || typ[0] == '[' || len(typ) > 3 && typ[:4] == "map[":
				zero = "nil"
			}
		}

		fields = append(fields, fieldView{
			GoName:    GoName(m.Name),
			GoType:    typ,
			WireName:  m.WireName(),
			Required:  m.Required,
			ZeroCheck: zero,
		})
	}
	return fields, usesTime, nil
}

func buildStruct(s *model.StructureShape) (structView, error) {
	fields, usesTime, err := buildFields(s)
	if err != nil {
		return structView{}, fmt.Errorf("shape %s: %w", s.Name(), err)
	}
	return structView{
		GoName:   GoName(s.Name()),
		Fields:   fields,
		UsesTime: usesTime,
	}, nil
}

func buildException(s *model.ExceptionShape) (exceptionView, error) {
	fields, usesTime, err := buildFields(&s.StructureShape)
	if err != nil {
		return exceptionView{}, fmt.Errorf("shape %s: %w", s.Name(), err)
	}
	info := s.ErrorInfo()
	fault := "server"
	if info.SenderFault {
		fault = "client"
	}
	ev := exceptionView{
		structView: structView{
			GoName:   GoName(s.Name()),
			Fields:   fields,
			UsesTime: usesTime,
		},
		Code:   s.Code(),
		Fault:  fault,
		Status: info.HTTPStatusCode,
	}
	for _, f := range fields {
		if f.GoName == "Message" && (f.GoType == "string" || f.GoType == "*string") {
			ev.MessageField = f.GoName
			ev.MessagePtr = f.GoType == "*string"
			break
		}
	}
	return ev, nil
}

func buildEnum(s *model.ScalarShape) enumView {
	ev := enumView{GoName: GoName(s.Name())}
	for _, raw := range s.Enum() {
		ev.Values = append(ev.Values, enumValueView{
			ConstName: EnumValueName(s.Name(), raw),
			Raw:       raw,
		})
	}
	return ev
}

func buildOperation(def *model.Definition, op *model.Operation) (operationView, error) {
	ov := operationView{Name: op.Name}

	if op.Input != nil && op.Input.ShapeName != "" {
		ov.InputType = GoName(op.Input.ShapeName)
	}
	if op.Output != nil && op.Output.ShapeName != "" {
		ov.OutputType = GoName(op.Output.ShapeName)
	}

	if !op.Paginated() || ov.InputType == "" || ov.OutputType == "" {
		return ov, nil
	}

	p := op.Pagination
	if len(p.InputToken) != 1 || len(p.OutputToken) != 1 {
		// Composite tokens page through maps of keys; the generated
		// paginator only chains single string tokens.
		log.Debugf("skipping paginator for %s: composite token", op.Name)
		return ov, nil
	}

	in, err := shapeOf(def, op.Input.ShapeName)
	if err != nil {
		return ov, err
	}
	out, err := shapeOf(def, op.Output.ShapeName)
	if err != nil {
		return ov, err
	}

	inTok := in.Member(p.InputToken[0])
	outTok := out.Member(p.OutputToken[0])
	if inTok == nil || outTok == nil {
		log.Debugf("skipping paginator for %s: token member missing", op.Name)
		return ov, nil
	}
	inTokShape, err := inTok.Shape()
	if err != nil {
		return ov, err
	}
	outTokShape, err := outTok.Shape()
	if err != nil {
		return ov, err
	}
	if inTokShape.Type() != "string" || outTokShape.Type() != "string" {
		log.Debugf("skipping paginator for %s: non-string token", op.Name)
		return ov, nil
	}

	ov.Paginated = true
	ov.InputTokenField = GoName(inTok.Name)
	ov.OutputTokenField = GoName(outTok.Name)
	ov.InputTokenPtr = !inTok.Required
	ov.OutputTokenPtr = !outTok.Required

	if len(p.ResultKey) == 1 {
		if rm := out.Member(p.ResultKey[0]); rm != nil {
			rs, err := rm.Shape()
			if err != nil {
				return ov, err
			}
			if ls, ok := rs.(*model.ListShape); ok {
				elem, err := ls.Member()
				if err != nil {
					return ov, err
				}
				et, _, err := goType(elem, true)
				if err != nil {
					return ov, err
				}
				ov.ResultField = GoName(rm.Name)
				ov.ResultElemType = et
			}
		}
	}

	return ov, nil
}

func shapeOf(def *model.Definition, name string) (*model.StructureShape, error) {
	s, err := def.Shape(name)
	if err != nil {
		return nil, err
	}
	switch t := s.(type) {
	case *model.ExceptionShape:
		return &t.StructureShape, nil
	case *model.StructureShape:
		return t, nil
	}
	return nil, fmt.Errorf("shape %s is not a structure", name)
}
