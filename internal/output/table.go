// Copyright © 2026 The asyncaws authors
// SPDX-License-Identifier: MIT

// Package output renders command results for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

// Table writes a borderless header+rows table. awsgen output goes through
// pipes often enough that decoration stays minimal.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t)
}
