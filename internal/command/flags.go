// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewManifestFlag constructs the --manifest flag, with env and config-file
// value sources layered under the explicit flag.
func NewManifestFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "generation manifest file",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSGEN_MANIFEST"),
		),
		Value: "awsgen.yaml",
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, flag)
}

// NewOutputFlag constructs the --output flag. An empty value defers to the
// manifest's own output root.
func NewOutputFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output root for generated packages. Overrides the manifest",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSGEN_OUTPUT"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, flag)
}

// NewServiceFlag constructs the --service flag used to narrow a run to one
// manifest entry.
func NewServiceFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "service",
		Aliases: []string{"s"},
		Usage:   "restrict to a single manifest service",
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
