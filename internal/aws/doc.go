// Copyright © 2026 The asyncaws authors
// SPDX-License-Identifier: MIT

// Package aws contains AWS SDK helpers used by the definition fetcher when a
// manifest source lives in S3.
package aws
