// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/fetch"
	"github.com/nealio82/async-aws/internal/manifest"
	"github.com/nealio82/async-aws/internal/meta"
	"github.com/nealio82/async-aws/internal/model"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// loadManifest reads the manifest named by --manifest.
func loadManifest(cmd *cli.Command) (*manifest.Manifest, error) {
	return manifest.Load(cmd.String("manifest"))
}

// selectServices applies --service to the manifest's service list.
func selectServices(m *manifest.Manifest, cmd *cli.Command) ([]*manifest.Service, error) {
	name := cmd.String("service")
	if name == "" {
		return m.Services, nil
	}
	svc := m.Service(name)
	if svc == nil {
		return nil, fmt.Errorf("service %s is not in the manifest", name)
	}
	return []*manifest.Service{svc}, nil
}

// loadDefinition resolves and parses one service's definition and, when
// declared, its paginators document.
func loadDefinition(
	ctx context.Context,
	f *fetch.Fetcher,
	m *manifest.Manifest,
	svc *manifest.Service,
) (*model.Definition, error) {
	data, err := f.Resolve(ctx, m.ResolveSource(svc.Source))
	if err != nil {
		return nil, fmt.Errorf("service %s: %w", svc.Name, err)
	}
	def, err := model.Load(data)
	if err != nil {
		return nil, fmt.Errorf("service %s: %w", svc.Name, err)
	}

	if svc.Paginators != "" {
		pag, err := f.Resolve(ctx, m.ResolveSource(svc.Paginators))
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", svc.Name, err)
		}
		if err := def.AttachPaginators(pag); err != nil {
			return nil, fmt.Errorf("service %s: %w", svc.Name, err)
		}
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("service %s: %w", svc.Name, err)
	}
	return def, nil
}
