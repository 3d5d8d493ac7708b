// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nealio82/async-aws/internal/manifest"
	"github.com/nealio82/async-aws/internal/model"
)

func fixtureDefinition(t *testing.T) *model.Definition {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "dynamodb-2012-08-10.json"))
	require.NoError(t, err)
	def, err := model.Load(data)
	require.NoError(t, err)

	pag, err := os.ReadFile(filepath.Join("testdata", "dynamodb-paginators.json"))
	require.NoError(t, err)
	require.NoError(t, def.AttachPaginators(pag))
	return def
}

func generateFixture(t *testing.T, svc *manifest.Service) (string, *Writer) {
	t.Helper()
	root := t.TempDir()
	w := &Writer{Root: root}
	require.NoError(t, Service(fixtureDefinition(t), svc, w))
	return root, w
}

func readGenerated(t *testing.T, root, svc, file string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, svc, file))
	require.NoError(t, err)
	return string(data)
}

func TestService_FileSet(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})

	entries, err := os.ReadDir(filepath.Join(root, "dynamodb"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t,
		[]string{"doc.go", "enums.go", "types.go", "inputs.go", "results.go", "errors.go", "client.go"},
		names)
}

func TestService_GeneratedHeader(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})

	for _, f := range []string{"doc.go", "enums.go", "client.go"} {
		content := readGenerated(t, root, "dynamodb", f)
		assert.True(t,
			strings.HasPrefix(content, "// Code generated by awsgen. DO NOT EDIT."),
			"%s is missing the generated header", f)
	}
}

func TestService_Enums(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})
	content := readGenerated(t, root, "dynamodb", "enums.go")

	assert.Contains(t, content, "type ReturnValue string")
	// Constant blocks come out gofmt-aligned, so collapse runs of spaces
	// before matching.
	flat := strings.Join(strings.Fields(content), " ")
	assert.Contains(t, flat, `ReturnValueAllOld ReturnValue = "ALL_OLD"`)
	assert.Contains(t, content, "func (ReturnValue) Values() []ReturnValue")
	assert.Contains(t, content, "func (v ReturnValue) Known() bool")
	assert.Contains(t, content, "type TableStatus string")
}

func TestService_InputsValidateAndBody(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})
	content := readGenerated(t, root, "dynamodb", "inputs.go")

	assert.Contains(t, content, "type PutItemInput struct")
	// Required bare string and required map both guard their zero values.
	assert.Contains(t, content, `if in.TableName == ""`)
	assert.Contains(t, content, "if in.Item == nil")
	assert.Contains(t, content, "func (in *PutItemInput) requestBody() ([]byte, error)")
	// Optional members serialize under their wire name and drop when empty.
	assert.Contains(t, content, "`json:\"ReturnValues,omitempty\"`")
}

func TestService_ResultsAndPaginator(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})
	content := readGenerated(t, root, "dynamodb", "results.go")

	assert.Contains(t, content, "type ListTablesOutput struct")
	assert.Contains(t, content,
		"func (c *Client) ListTablesPaginator(in *ListTablesInput) *runtime.Paginator[ListTablesInput, ListTablesOutput]")
	assert.Contains(t, content, "out.LastEvaluatedTableName")
	assert.Contains(t, content, "in.ExclusiveStartTableName = &token")
	assert.Contains(t, content, "func (c *Client) ListTablesItems(ctx context.Context, in *ListTablesInput) iter.Seq2[string, error]")
	assert.Contains(t, content, `"github.com/nealio82/async-aws/runtime"`)
}

func TestService_Errors(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})
	content := readGenerated(t, root, "dynamodb", "errors.go")

	assert.Contains(t, content, "type ResourceNotFoundException struct")
	assert.Contains(t, content, "func (e *ResourceNotFoundException) Error() string")
	assert.Contains(t, content, `func (e *ResourceNotFoundException) ErrorCode() string { return "ResourceNotFoundException" }`)
	assert.Contains(t, content, `func (e *ResourceNotFoundException) ErrorFault() string { return "client" }`)
	assert.Contains(t, content, "func (e *ResourceNotFoundException) HTTPStatusCode() int { return 400 }")
	// Faults report the server side.
	assert.Contains(t, content, `func (e *InternalServerError) ErrorFault() string { return "server" }`)
}

func TestService_Client(t *testing.T) {
	root, _ := generateFixture(t, &manifest.Service{Name: "dynamodb", Source: "x"})
	content := readGenerated(t, root, "dynamodb", "client.go")

	assert.Contains(t, content, "type Invoker interface")
	assert.Contains(t, content,
		"func (c *Client) PutItem(ctx context.Context, in *PutItemInput) (*PutItemOutput, error)")
	assert.Contains(t, content, `c.inv.Invoke(ctx, "ListTables", payload)`)
}

func TestService_OperationAllowList(t *testing.T) {
	svc := &manifest.Service{
		Name:       "dynamodb",
		Source:     "x",
		Operations: []string{"DescribeTable"},
	}
	root, _ := generateFixture(t, svc)

	client := readGenerated(t, root, "dynamodb", "client.go")
	assert.Contains(t, client, "DescribeTable")
	assert.NotContains(t, client, "PutItem")

	// Shapes only reachable through pruned operations disappear too.
	types := readGenerated(t, root, "dynamodb", "types.go")
	assert.Contains(t, types, "TableDescription")
	assert.NotContains(t, types, "AttributeValue")

	// ReturnValue hangs off PutItemInput only; TableStatus stays reachable
	// through TableDescription.
	enums := readGenerated(t, root, "dynamodb", "enums.go")
	assert.Contains(t, enums, "TableStatus")
	assert.NotContains(t, enums, "ReturnValue")
}

func TestService_EmptySelection(t *testing.T) {
	svc := &manifest.Service{Name: "dynamodb", Source: "x", Operations: []string{"Nope"}}
	w := &Writer{Root: t.TempDir()}
	err := Service(fixtureDefinition(t), svc, w)
	assert.ErrorContains(t, err, "no operations selected")
}

func TestService_Idempotent(t *testing.T) {
	def := fixtureDefinition(t)
	svc := &manifest.Service{Name: "dynamodb", Source: "x"}
	root := t.TempDir()

	w1 := &Writer{Root: root}
	require.NoError(t, Service(def, svc, w1))
	assert.Len(t, w1.written, 7)

	w2 := &Writer{Root: root}
	require.NoError(t, Service(def, svc, w2))
	assert.Empty(t, w2.written)
	assert.Len(t, w2.unchanged, 7)
}

func TestService_CheckMode(t *testing.T) {
	def := fixtureDefinition(t)
	svc := &manifest.Service{Name: "dynamodb", Source: "x"}
	root := t.TempDir()

	// Check against an empty tree: everything is drift, nothing is written.
	w := &Writer{Root: root, Check: true}
	require.NoError(t, Service(def, svc, w))
	assert.Len(t, w.Drifted(), 7)
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Generate for real, then check again: clean.
	w = &Writer{Root: root}
	require.NoError(t, Service(def, svc, w))
	w = &Writer{Root: root, Check: true}
	require.NoError(t, Service(def, svc, w))
	assert.Empty(t, w.Drifted())
}

func TestGoType(t *testing.T) {
	def := fixtureDefinition(t)

	tests := []struct {
		shape    string
		required bool
		want     string
	}{
		{"TableName", true, "string"},
		{"TableName", false, "*string"},
		{"ListTablesInputLimit", false, "*int32"},
		{"ItemCount", true, "int64"},
		{"BooleanAttributeValue", false, "*bool"},
		{"Date", true, "*time.Time"},
		{"TableNameList", false, "[]string"},
		{"AttributeMap", false, "map[string]*AttributeValue"},
		{"TableDescription", false, "*TableDescription"},
		{"ReturnValue", false, "ReturnValue"},
		{"ResourceNotFoundException", false, "*ResourceNotFoundException"},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			s, err := def.Shape(tt.shape)
			require.NoError(t, err)
			got, _, err := goType(s, tt.required)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildView_Classification(t *testing.T) {
	def := fixtureDefinition(t)
	pv, err := buildView(def, &manifest.Service{Name: "dynamodb", Source: "x"})
	require.NoError(t, err)

	structNames := func(s []structView) []string {
		var out []string
		for _, v := range s {
			out = append(out, v.GoName)
		}
		return out
	}

	assert.ElementsMatch(t,
		[]string{"DescribeTableInput", "ListTablesInput", "PutItemInput"},
		structNames(pv.Inputs))
	assert.ElementsMatch(t,
		[]string{"DescribeTableOutput", "ListTablesOutput", "PutItemOutput"},
		structNames(pv.Results))
	assert.ElementsMatch(t,
		[]string{"AttributeValue", "TableDescription"},
		structNames(pv.Objects))

	var excs []string
	for _, e := range pv.Exceptions {
		excs = append(excs, e.GoName)
	}
	assert.ElementsMatch(t,
		[]string{"ConditionalCheckFailedException", "InternalServerError", "ResourceNotFoundException"},
		excs)

	var paginated []string
	for _, op := range pv.Operations {
		if op.Paginated {
			paginated = append(paginated, op.Name)
		}
	}
	assert.Equal(t, []string{"ListTables"}, paginated)
}
