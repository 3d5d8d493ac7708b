// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) *Definition {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	def, err := Load(data)
	require.NoError(t, err)
	return def
}

func TestLoad_Metadata(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	assert.Equal(t, "DynamoDB", def.Metadata.ServiceID)
	assert.Equal(t, "2012-08-10", def.Metadata.APIVersion)
	assert.Equal(t, "json", def.Metadata.Protocol)
	assert.Equal(t, "DynamoDB_20120810", def.Metadata.TargetPrefix)
	assert.Equal(t, []string{"DescribeTable", "ListTables", "PutItem"}, def.OperationNames())
}

func TestLoad_NotADefinition(t *testing.T) {
	_, err := Load([]byte(`{"version": "2.0"}`))
	assert.Error(t, err)

	_, err = Load([]byte(`not even json`))
	assert.Error(t, err)
}

func TestLoad_DuplicateShape(t *testing.T) {
	_, err := Load([]byte(`{
		"shapes": {
			"TableName": {"type": "string"},
			"TableName": {"type": "string", "min": 3}
		}
	}`))
	assert.ErrorContains(t, err, "duplicate shape TableName")
}

func TestShape_FactoryDiscriminator(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	tests := []struct {
		shape string
		want  any
	}{
		{"DescribeTableInput", &StructureShape{}},
		{"TableNameList", &ListShape{}},
		{"AttributeMap", &MapShape{}},
		{"TableName", &ScalarShape{}},
		{"Date", &ScalarShape{}},
		{"ItemCount", &ScalarShape{}},
		{"ResourceNotFoundException", &ExceptionShape{}},
		{"InternalServerError", &ExceptionShape{}},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			s, err := def.Shape(tt.shape)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.Equal(t, tt.shape, s.Name())
		})
	}
}

func TestShape_Memoized(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	first, err := def.Shape("TableName")
	require.NoError(t, err)
	second, err := def.Shape("TableName")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestShape_UnknownName(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	_, err := def.Shape("NoSuchShape")
	assert.ErrorIs(t, err, ErrUnresolvedShape)
}

func TestShape_UnknownType(t *testing.T) {
	doc := `{
		"metadata": {"serviceId": "Bogus"},
		"operations": {},
		"shapes": {"Weird": {"type": "tuple"}}
	}`
	def, err := Load([]byte(doc))
	require.NoError(t, err)

	_, err = def.Shape("Weird")
	assert.ErrorIs(t, err, ErrUnknownShapeType)
}

func TestStructureShape_Members(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	s, err := def.Shape("PutItemInput")
	require.NoError(t, err)
	st, ok := s.(*StructureShape)
	require.True(t, ok)

	members := st.Members()
	require.Len(t, members, 3)
	// Sorted order, required flags resolved from the required list.
	assert.Equal(t, "Item", members[0].Name)
	assert.True(t, members[0].Required)
	assert.Equal(t, "ReturnValues", members[1].Name)
	assert.False(t, members[1].Required)
	assert.Equal(t, "TableName", members[2].Name)
	assert.True(t, members[2].Required)

	item, err := members[0].Shape()
	require.NoError(t, err)
	assert.IsType(t, &MapShape{}, item)
}

func TestStructureShape_MemberLookup(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	s, _ := def.Shape("DescribeTableInput")
	st := s.(*StructureShape)
	assert.NotNil(t, st.Member("TableName"))
	assert.Nil(t, st.Member("Nope"))
}

func TestMember_WireName(t *testing.T) {
	m := &Member{Name: "TableName"}
	assert.Equal(t, "TableName", m.WireName())

	m.LocationName = "tableName"
	assert.Equal(t, "tableName", m.WireName())
}

func TestListAndMapShapes(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	l, err := def.Shape("TableNameList")
	require.NoError(t, err)
	elem, err := l.(*ListShape).Member()
	require.NoError(t, err)
	assert.Equal(t, "TableName", elem.Name())

	m, err := def.Shape("AttributeMap")
	require.NoError(t, err)
	key, err := m.(*MapShape).Key()
	require.NoError(t, err)
	assert.Equal(t, "string", key.Type())
	val, err := m.(*MapShape).Value()
	require.NoError(t, err)
	assert.IsType(t, &StructureShape{}, val)
}

func TestScalarShape_Constraints(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	s, _ := def.Shape("TableName")
	sc := s.(*ScalarShape)
	assert.False(t, sc.IsEnum())
	assert.Equal(t, "[a-zA-Z0-9_.-]+", sc.Pattern())
	min, max := sc.Bounds()
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 3.0, *min)
	assert.Equal(t, 255.0, *max)

	e, _ := def.Shape("ReturnValue")
	en := e.(*ScalarShape)
	assert.True(t, en.IsEnum())
	assert.Equal(t,
		[]string{"NONE", "ALL_OLD", "UPDATED_OLD", "ALL_NEW", "UPDATED_NEW"},
		en.Enum())
}

func TestExceptionShape_Codes(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	s, _ := def.Shape("ResourceNotFoundException")
	ex := s.(*ExceptionShape)
	assert.Equal(t, "ResourceNotFoundException", ex.Code())
	assert.Equal(t, 400, ex.ErrorInfo().HTTPStatusCode)
	assert.True(t, ex.ErrorInfo().SenderFault)

	// No error code declared: shape name is the code. Fault flag makes it a
	// server fault.
	s, _ = def.Shape("InternalServerError")
	ise := s.(*ExceptionShape)
	assert.Equal(t, "InternalServerError", ise.Code())
	assert.Equal(t, 500, ise.ErrorInfo().HTTPStatusCode)
	assert.False(t, ise.ErrorInfo().SenderFault)
}

func TestValidate_CleanDefinition(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")
	assert.NoError(t, def.Validate())
}

func TestValidate_DanglingMember(t *testing.T) {
	doc := `{
		"metadata": {"serviceId": "Bogus"},
		"operations": {},
		"shapes": {
			"Thing": {
				"type": "structure",
				"members": {"Gone": {"shape": "Missing"}}
			}
		}
	}`
	def, err := Load([]byte(doc))
	require.NoError(t, err)

	err = def.Validate()
	assert.ErrorIs(t, err, ErrUnresolvedShape)
	assert.Contains(t, err.Error(), "Thing")
	assert.Contains(t, err.Error(), "Gone")
}

func TestValidate_OperationWithMissingInput(t *testing.T) {
	doc := `{
		"metadata": {"serviceId": "Bogus"},
		"operations": {
			"DoThing": {"input": {"shape": "Missing"}}
		},
		"shapes": {}
	}`
	def, err := Load([]byte(doc))
	require.NoError(t, err)

	err = def.Validate()
	assert.ErrorIs(t, err, ErrUnresolvedShape)
	assert.Contains(t, err.Error(), "DoThing")
}
