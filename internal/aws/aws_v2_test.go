// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticS3Endpoint(t *testing.T) {
	r, err := StaticS3Endpoint("http://localhost:9000")
	require.NoError(t, err)

	ep, err := r.ResolveEndpoint(context.Background(), s3v2.EndpointParameters{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", ep.URI.String())
}

func TestStaticS3Endpoint_BadURL(t *testing.T) {
	_, err := StaticS3Endpoint("%zz")
	assert.Error(t, err)
}
