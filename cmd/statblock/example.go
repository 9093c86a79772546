package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
	"github.com/KirkDiggler/rpg-entities/internal/fixtures"
)

func (a *app) newExampleCmd() *cobra.Command {
	var (
		kind    string
		minimal bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a documented example payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := codec.ParseEntityKind(kind)
			if err != nil {
				return err
			}
			f, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}

			name, err := exampleFixture(k, f, minimal)
			if err != nil {
				return err
			}
			a.logger.Debug("printing example", "fixture", name)

			data, err := fixtures.Load(name)
			if err != nil {
				return err
			}
			return writeLine(cmd, data)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "payload kind: monster or spell")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "only the required fields")
	cmd.Flags().StringVar(&format, "format", string(codec.FormatJSON), "output format: json or yaml")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func exampleFixture(kind codec.EntityKind, format codec.Format, minimal bool) (string, error) {
	if format == codec.FormatYAML {
		if kind == codec.KindMonster && !minimal {
			return fixtures.MonsterYAML, nil
		}
		return "", errors.Unimplementedf("no YAML example for %s", kind)
	}

	switch kind {
	case codec.KindMonster:
		if minimal {
			return fixtures.MonsterMinimal, nil
		}
		return fixtures.Monster, nil
	case codec.KindSpell:
		if minimal {
			return fixtures.SpellMinimal, nil
		}
		return fixtures.Spell, nil
	}
	return "", errors.InvalidArgumentf("no example for entity kind %q", kind)
}
