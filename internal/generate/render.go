// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// header is the first line of every generated file, in the form the Go
// toolchain recognizes as generated code.
const header = "// Code generated by awsgen. DO NOT EDIT.\n\n"

var templates = template.Must(template.New("awsgen").Parse(`
{{- define "doc" -}}
// Package {{.Package}} is a generated asyncaws client for {{.Service}}
// (API version {{.APIVersion}}).
package {{.Package}}
{{- end}}

{{- define "enums" -}}
package {{.Package}}

{{range .Enums}}
// {{.GoName}} enumerates the values the service declares. Values outside
// this set still round-trip untouched.
type {{.GoName}} string

const (
{{- $enum := .}}
{{- range .Values}}
	{{.ConstName}} {{$enum.GoName}} = "{{.Raw}}"
{{- end}}
)

// Values returns every known {{.GoName}}.
func ({{.GoName}}) Values() []{{.GoName}} {
	return []{{.GoName}}{
{{- range .Values}}
		{{.ConstName}},
{{- end}}
	}
}

// Known reports whether v is one of the declared values.
func (v {{.GoName}}) Known() bool {
	for _, k := range v.Values() {
		if v == k {
			return true
		}
	}
	return false
}
{{end}}
{{- end}}

{{- define "struct" -}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}
{{- end}}

{{- define "types" -}}
package {{.Package}}
{{if .UsesTime}}
import "time"
{{end}}
{{range .Objects}}
{{template "struct" .}}
{{end}}
{{- end}}

{{- define "inputs" -}}
package {{.Package}}

import (
{{- if .NeedsErrors}}
	"errors"
{{- end}}
{{- if .UsesTime}}
	"time"
{{end}}
	json "github.com/goccy/go-json"
)
{{range .Inputs}}
{{template "struct" .}}

// Validate checks required members before the request is serialized.
func (in *{{.GoName}}) Validate() error {
{{- range .Fields}}
{{- if eq .ZeroCheck "empty"}}
	if in.{{.GoName}} == "" {
		return errors.New("{{$.Package}}: {{.GoName}} is required")
	}
{{- else if eq .ZeroCheck "nil"}}
	if in.{{.GoName}} == nil {
		return errors.New("{{$.Package}}: {{.GoName}} is required")
	}
{{- end}}
{{- end}}
	return nil
}

// requestBody serializes the request payload.
func (in *{{.GoName}}) requestBody() ([]byte, error) {
	return json.Marshal(in)
}
{{end}}
{{- end}}

{{- define "results" -}}
package {{.Package}}
{{if .HasPaginators}}
import (
{{- if .HasItems}}
	"context"
	"iter"
{{- end}}
{{- if .UsesTime}}
	"time"
{{- end}}

	"{{.Runtime}}"
)
{{else if .UsesTime}}
import "time"
{{end}}
{{range .Results}}
{{template "struct" .}}
{{end}}
{{- range .Operations}}
{{- if .Paginated}}
// {{.Name}}Paginator chains the pages of {{.Name}} lazily: no call is made
// until the first page is consumed.
func (c *Client) {{.Name}}Paginator(in *{{.InputType}}) *runtime.Paginator[{{.InputType}}, {{.OutputType}}] {
	return &runtime.Paginator[{{.InputType}}, {{.OutputType}}]{
		Input: in,
		Fetch: c.{{.Name}},
		OutputToken: func(out *{{.OutputType}}) string {
{{- if .OutputTokenPtr}}
			if out.{{.OutputTokenField}} == nil {
				return ""
			}
			return *out.{{.OutputTokenField}}
{{- else}}
			return out.{{.OutputTokenField}}
{{- end}}
		},
		SetInputToken: func(in *{{.InputType}}, token string) {
{{- if .InputTokenPtr}}
			in.{{.InputTokenField}} = &token
{{- else}}
			in.{{.InputTokenField}} = token
{{- end}}
		},
	}
}
{{- if .ResultField}}

// {{.Name}}Items streams {{.ResultField}} across every page of {{.Name}}.
func (c *Client) {{.Name}}Items(ctx context.Context, in *{{.InputType}}) iter.Seq2[{{.ResultElemType}}, error] {
	return runtime.Items(ctx, c.{{.Name}}Paginator(in), func(out *{{.OutputType}}) []{{.ResultElemType}} {
		return out.{{.ResultField}}
	})
}
{{- end}}
{{- end}}
{{- end}}
{{- end}}

{{- define "errors" -}}
package {{.Package}}
{{if .UsesTime}}
import "time"
{{end}}
{{range .Exceptions}}
// {{.GoName}} is the service's {{.Code}} error.
{{template "struct" .}}

func (e *{{.GoName}}) Error() string {
{{- if .MessageField}}
{{- if .MessagePtr}}
	if e.{{.MessageField}} != nil && *e.{{.MessageField}} != "" {
		return "{{.Code}}: " + *e.{{.MessageField}}
	}
{{- else}}
	if e.{{.MessageField}} != "" {
		return "{{.Code}}: " + e.{{.MessageField}}
	}
{{- end}}
{{- end}}
	return "{{.Code}}"
}

// ErrorCode returns the wire code of the error.
func (e *{{.GoName}}) ErrorCode() string { return "{{.Code}}" }

// ErrorFault reports which side of the call misbehaved.
func (e *{{.GoName}}) ErrorFault() string { return "{{.Fault}}" }
{{- if .Status}}

// HTTPStatusCode returns the status the service responds with.
func (e *{{.GoName}}) HTTPStatusCode() int { return {{.Status}} }
{{- end}}
{{end}}
{{- end}}

{{- define "client" -}}
package {{.Package}}

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// Invoker carries a serialized operation call to the service. The transport
// (signing, endpoints, retries) lives in the embedding application; the
// generated client only shapes payloads.
type Invoker interface {
	Invoke(ctx context.Context, operation string, payload []byte) ([]byte, error)
}

// Client is a thin typed front for the {{.Service}} API.
type Client struct {
	inv Invoker
}

// New builds a Client on top of the given transport.
func New(inv Invoker) *Client {
	return &Client{inv: inv}
}
{{range .Operations}}
// {{.Name}} calls the {{$.Service}} {{.Name}} operation.
func (c *Client) {{.Name}}(ctx context.Context{{if .InputType}}, in *{{.InputType}}{{end}}) ({{if .OutputType}}*{{.OutputType}}, {{end}}error) {
{{- if .InputType}}
	if in == nil {
		in = &{{.InputType}}{}
	}
	if err := in.Validate(); err != nil {
		return {{if .OutputType}}nil, {{end}}err
	}
	payload, err := in.requestBody()
	if err != nil {
		return {{if .OutputType}}nil, {{end}}fmt.Errorf("{{.Name}}: %w", err)
	}
{{- else}}
	var payload []byte
{{- end}}
	raw, err := c.inv.Invoke(ctx, "{{.Name}}", payload)
	if err != nil {
		return {{if .OutputType}}nil, {{end}}fmt.Errorf("{{.Name}}: %w", err)
	}
{{- if .OutputType}}
	out := &{{.OutputType}}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("{{.Name}}: decoding response: %w", err)
		}
	}
	return out, nil
{{- else}}
	_ = raw
	return nil
{{- end}}
}
{{end}}
{{- end}}
`))

// renderFile executes one named template and gofmts the result.
func renderFile(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated %s does not parse: %w", name, err)
	}
	return src, nil
}
