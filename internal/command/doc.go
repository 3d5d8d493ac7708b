// Copyright © 2026 The asyncaws authors
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for awsgen. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
