package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
	"github.com/KirkDiggler/rpg-entities/schema"
)

func (a *app) newSchemaCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a payload kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := codec.ParseEntityKind(kind)
			if err != nil {
				return err
			}
			s, err := schema.For(k)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", a.cfg.IndentString())
			if err != nil {
				return errors.Wrap(err, "failed to encode schema")
			}
			return writeLine(cmd, out)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "payload kind: monster or spell")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
