// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package fetch resolves manifest sources to definition bytes. Local files
// are read directly; s3:// sources go through the AWS SDK with an on-disk
// cache so repeated generator runs do not hammer the bucket.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/nealio82/async-aws/internal/aws"
	"github.com/nealio82/async-aws/internal/cacheutil"
	"github.com/nealio82/async-aws/internal/config"
)

// objectGetter is the slice of the S3 client the fetcher needs.
type objectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Fetcher resolves sources. The zero value works for local files; S3
// sources lazily construct a client from the ambient AWS config chain,
// adjusted by any overrides set here.
type Fetcher struct {
	// S3 overrides the lazily-built client. Tests inject a fake here.
	S3 objectGetter

	// Profile and Region override the shared-config chain.
	Profile string
	Region  string

	// MaxAttempts caps SDK retries when > 0.
	MaxAttempts int

	// S3Endpoint pins requests to one URL, for S3-compatible stores.
	S3Endpoint string
}

// FromConfig builds a Fetcher carrying the aws.* overrides from the config
// file. The zero value stays fine for local-only manifests.
func FromConfig() Fetcher {
	var f Fetcher
	f.Profile, _ = config.GetString("aws.profile", "")
	f.Region, _ = config.GetString("aws.region", "")
	f.S3Endpoint, _ = config.GetString("aws.s3-endpoint", "")
	f.MaxAttempts, _ = config.GetInt("aws.max-attempts", 0)
	return f
}

// Resolve returns the bytes behind a source.
func (f *Fetcher) Resolve(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		return f.fromS3(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", source, err)
	}
	return data, nil
}

// client returns the injected S3 client or lazily builds one with the
// fetcher's overrides applied.
func (f *Fetcher) client(ctx context.Context) (objectGetter, error) {
	if f.S3 != nil {
		return f.S3, nil
	}

	var opts []awsx.Option
	if f.Profile != "" {
		opts = append(opts, awsx.WithProfile(f.Profile))
	}
	if f.Region != "" {
		opts = append(opts, awsx.WithRegion(f.Region))
	}
	if f.MaxAttempts > 0 {
		attempts := f.MaxAttempts
		opts = append(opts, awsx.WithRetryer(func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), attempts)
		}))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3v2.Options)
	if f.S3Endpoint != "" {
		resolver, err := awsx.StaticS3Endpoint(f.S3Endpoint)
		if err != nil {
			return nil, err
		}
		s3Opts = append(s3Opts, awsx.WithS3EndpointResolver(resolver))
	}

	return awsx.NewS3(cfg, s3Opts...), nil
}

// splitS3URI splits s3://bucket/key into its parts.
func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 source %q, want s3://bucket/key", uri)
	}
	return bucket, key, nil
}

// purgeCache drops cache entries older than the cache.clean config hours.
// With no cache.clean key it is a no-op.
func purgeCache() error {
	hours, _ := config.GetInt("cache.clean", 0)
	return cacheutil.Purge(hours)
}

func (f *Fetcher) fromS3(ctx context.Context, source string) ([]byte, error) {
	if err := purgeCache(); err != nil {
		log.WithError(err).Warn("failed to purge cache")
	}

	if entry, ok := cacheutil.Read([]string{"definitions"}, source); ok {
		log.Debugf("cache hit for %s (%s)", source, entry.Path)
		return entry.Data, nil
	}

	bucket, key, err := splitS3URI(source)
	if err != nil {
		return nil, err
	}

	client, err := f.client(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", source, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	if err := cacheutil.Write([]string{"definitions"}, source, data); err != nil {
		log.WithError(err).Warnf("failed to cache %s", source)
	}

	return data, nil
}
