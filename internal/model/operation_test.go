// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package model

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Refs(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	op := def.Operation("PutItem")
	require.NotNil(t, op)
	assert.Equal(t, "PutItem", op.Name)
	assert.Equal(t, "POST", op.HTTP.Method)

	// Refs must resolve straight off a Load, without Validate (or anything
	// else) having walked the definition first.
	in, err := op.Input.Shape()
	require.NoError(t, err)
	assert.Equal(t, "PutItemInput", in.Name())

	out, err := op.Output.Shape()
	require.NoError(t, err)
	assert.Equal(t, "PutItemOutput", out.Name())

	require.Len(t, op.Errors, 3)
	for _, ref := range op.Errors {
		s, err := ref.Shape()
		require.NoError(t, err)
		assert.IsType(t, &ExceptionShape{}, s)
	}
}

func TestOperation_Unknown(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")
	assert.Nil(t, def.Operation("TimeTravel"))
}

func TestTokenList_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TokenList
		err  bool
	}{
		{name: "scalar", in: `"NextToken"`, want: TokenList{"NextToken"}},
		{name: "array", in: `["A", "B"]`, want: TokenList{"A", "B"}},
		{name: "empty array", in: `[]`, want: TokenList{}},
		{name: "number", in: `7`, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TokenList
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttachPaginators(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	data, err := os.ReadFile(filepath.Join("testdata", "dynamodb-paginators.json"))
	require.NoError(t, err)
	require.NoError(t, def.AttachPaginators(data))

	op := def.Operation("ListTables")
	require.True(t, op.Paginated())
	assert.Equal(t, TokenList{"ExclusiveStartTableName"}, op.Pagination.InputToken)
	assert.Equal(t, TokenList{"LastEvaluatedTableName"}, op.Pagination.OutputToken)
	assert.Equal(t, "Limit", op.Pagination.LimitKey)
	assert.Equal(t, TokenList{"TableNames"}, op.Pagination.ResultKey)

	assert.False(t, def.Operation("PutItem").Paginated())
}

func TestAttachPaginators_UnknownOperation(t *testing.T) {
	def := loadFixture(t, "dynamodb-2012-08-10.json")

	err := def.AttachPaginators([]byte(`{"pagination": {"ListRockets": {}}}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ListRockets")
}
