// Copyright © 2026 The asyncaws authors
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/nealio82/async-aws/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
