// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TableName", "TableName"},
		{"message", "Message"},
		{"dynamodb", "Dynamodb"},
		{"http", "HTTP"},
		{"queueUrl", "QueueURL"},
		{"VpcId", "VpcID"},
		{"md5OfBody", "MD5OfBody"},
		{"SSEDescription", "SSEDescription"},
		{"x-amz-date", "XAmzDate"},
		{"2fa", "V2fa"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.in))
		})
	}
}

func TestEnumValueName(t *testing.T) {
	tests := []struct {
		typeName string
		value    string
		want     string
	}{
		{"ReturnValue", "ALL_OLD", "ReturnValueAllOld"},
		{"ReturnValue", "NONE", "ReturnValueNone"},
		{"TableStatus", "ACTIVE", "TableStatusActive"},
		{"InstanceType", "t2.micro", "InstanceTypeT2Micro"},
		{"Runtime", "nodejs18.x", "RuntimeNodejs18X"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, EnumValueName(tt.typeName, tt.value))
		})
	}
}
