// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/sizewatch/sizewatch/internal/config"
)

// NewMeasureFlags constructs the flags shared by every command that scans the
// build output. ns is the command namespace used for config file lookups.
func NewMeasureFlags(ns string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:    "pattern",
			Aliases: []string{"p"},
			Usage:   "glob matched against bundle files, relative to the bundle dir",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_PATTERN"),
			),
			Value: "dist/**/*.js",
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "compression",
			Usage: "how to count bytes: none, gzip or brotli",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_COMPRESSION"),
			),
			Value: "gzip",
			Validator: func(value string) error {
				return FlagValidators(value, CompressionValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "strip-hash",
			Usage: "regexp whose capture groups locate content hashes to mask in filenames",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_STRIP_HASH"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, StripHashValidator)
			},
		}),
	}
}

// NewOutputFlags constructs the presentation flags for commands that emit
// datasets rather than the markdown report.
func NewOutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "extra left padding between text output columns",
			Value: 1,
		},
	}
}

// NewStoreFlags constructs the baseline store flags. The S3 slot is a fixed,
// versioned document; --baseline switches to a plain local file instead.
func NewStoreFlags(ns string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "bucket",
			Usage: "S3 bucket holding the baseline snapshot",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_BUCKET"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "key",
			Usage: "object key of the baseline snapshot document",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_KEY"),
			),
			Value: "sizewatch-snapshot.json",
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "region",
			Usage: "AWS region override for the baseline bucket",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_REGION"),
				cli.EnvVar("AWS_REGION"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile override",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, &cli.StringFlag{
			Name:  "baseline",
			Usage: "local baseline snapshot file, used instead of S3 when set",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SIZEWATCH_BASELINE"),
			),
		}),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain. The config file path is
// whatever internal/config resolved at startup; with no config file the flag
// is returned untouched.
func NameSpacedValueChainFlagFromConfigFile(ns string, flag *cli.StringFlag) *cli.StringFlag {
	path := config.Config.Source
	if path == "" {
		return flag
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
