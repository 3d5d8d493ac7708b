// Copyright © 2026 The asyncaws authors
// SPDX-License-Identifier: MIT

// awsgen is the main package for the awsgen command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
