// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build version stamped in by the release
// workflow via -ldflags.
package version

// Version is overridden at build time.
var Version = "dev"
