// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package manifest describes what to generate: which services, where their
// definition documents live, and where the generated packages land.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Service is one generation target.
type Service struct {
	// Name is the short service identifier (e.g. "dynamodb"). It doubles as
	// the default package name and output subdirectory.
	Name string `yaml:"name"`

	// Source locates the service definition document: a local path or an
	// s3://bucket/key URI.
	Source string `yaml:"source"`

	// Paginators optionally locates the paginators document.
	Paginators string `yaml:"paginators"`

	// Package overrides the generated Go package name.
	Package string `yaml:"package"`

	// Dir overrides the output subdirectory, relative to the manifest
	// output root.
	Dir string `yaml:"dir"`

	// Operations restricts generation to the listed operations. Empty means
	// every operation in the definition.
	Operations []string `yaml:"operations"`
}

// PackageName returns the Go package name for the service.
func (s *Service) PackageName() string {
	if s.Package != "" {
		return s.Package
	}
	return strings.ToLower(strings.ReplaceAll(s.Name, "-", ""))
}

// OutDir returns the service output directory under root.
func (s *Service) OutDir(root string) string {
	dir := s.Dir
	if dir == "" {
		dir = s.PackageName()
	}
	return filepath.Join(root, dir)
}

// WantsOperation reports whether the operation survives the allow-list.
func (s *Service) WantsOperation(name string) bool {
	if len(s.Operations) == 0 {
		return true
	}
	for _, op := range s.Operations {
		if op == name {
			return true
		}
	}
	return false
}

// Manifest is the full generation plan.
type Manifest struct {
	// Output is the root directory generated packages are written under.
	Output string `yaml:"output"`

	Services []*Service `yaml:"services"`

	// dir is the manifest's own directory, for resolving relative sources.
	dir string
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	log.Debugf("manifest %s: %d services, output=%s", path, len(m.Services), m.Output)
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Services) == 0 {
		return fmt.Errorf("manifest declares no services")
	}
	seen := make(map[string]bool, len(m.Services))
	for i, svc := range m.Services {
		if svc.Name == "" {
			return fmt.Errorf("service #%d has no name", i+1)
		}
		if seen[svc.Name] {
			return fmt.Errorf("duplicate service %s", svc.Name)
		}
		seen[svc.Name] = true
		if svc.Source == "" {
			return fmt.Errorf("service %s has no source", svc.Name)
		}
	}
	return nil
}

// Service returns the named service, or nil.
func (m *Manifest) Service(name string) *Service {
	for _, svc := range m.Services {
		if svc.Name == name {
			return svc
		}
	}
	return nil
}

// ResolveSource turns a service source into an absolute location. s3:// and
// absolute paths pass through; relative paths resolve against the manifest
// directory so a manifest can be invoked from anywhere.
func (m *Manifest) ResolveSource(source string) string {
	if source == "" || strings.HasPrefix(source, "s3://") || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(m.dir, source)
}
