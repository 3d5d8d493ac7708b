// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points AWSGEN_CFG at a testdata file and resets the
// package-level Config so each test loads fresh.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err)

	t.Setenv("AWSGEN_CFG", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad_Simple(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Equal(t, "dist", cfg.Data["output"])
	assert.Equal(t, true, cfg.Data["color"])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("AWSGEN_CFG", filepath.Join("testdata", "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString_DottedPath(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	_, err := Load()
	require.NoError(t, err)

	v, err := GetString("generate.output")
	require.NoError(t, err)
	assert.Equal(t, "src/Service", v)

	_, err = GetString("generate.missing")
	assert.Error(t, err)

	v, err = GetString("generate.missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestGetString_Namespaced(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	_, err := Load()
	require.NoError(t, err)

	Config.Namespace = "generate"
	v, err := GetString("output")
	require.NoError(t, err)
	// Namespaced key wins over the top-level "output".
	assert.Equal(t, "src/Service", v)
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "simple.yaml")
	_, err := Load()
	require.NoError(t, err)

	v, err := GetStringSlice("services")
	require.NoError(t, err)
	assert.Equal(t, []string{"dynamodb", "sqs"}, v)

	_, err = GetStringSlice("output")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	v, err := GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	v, err = GetInt("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = GetInt("generate.s3.region")
	assert.Error(t, err)
}

func TestGet_NestedTraversal(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	v, err := GetString("generate.s3.bucket")
	require.NoError(t, err)
	assert.Equal(t, "asyncaws-definitions", v)
}
