package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
)

func (a *app) newValidateCmd() *cobra.Command {
	var opts decodeOptions

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that payloads decode",
		Long: `Decode each payload and report missing required fields, type mismatches and,
with --strict, enumerated values outside their documented codes. Unknown top-level
fields are reported as warnings. Use - to read from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, format, strict, err := a.decodeOptions(cmd, &opts)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				if err := a.validateOne(cmd, path, kind, format, strict); err != nil {
					failed++
				}
			}
			if failed > 0 {
				return errors.Newf(errors.CodeInvalidArgument, "%d of %d payloads failed validation", failed, len(args))
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func (a *app) validateOne(cmd *cobra.Command, path string, kind codec.EntityKind, format codec.Format, strict bool) error {
	raw, err := readInput(cmd, path)
	if err != nil {
		a.logger.Error("unreadable payload", "file", path, "error", err)
		return err
	}

	p, err := decodePayload(raw, path, kind, format, strict)
	if err != nil {
		a.reportInvalid(path, err)
		return err
	}

	for _, field := range p.unknownFields() {
		a.logger.Warn("unknown field ignored", "file", path, "field", field)
	}
	a.logger.Info("valid", "file", path, "kind", p.kind, "name", p.name())
	return nil
}

func (a *app) reportInvalid(path string, err error) {
	fields := errors.GetFields(err)
	if len(fields) == 0 {
		a.logger.Error("invalid payload", "file", path, "error", err)
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range fields[name] {
			a.logger.Error("invalid payload", "file", path, "field", name, "problem", msg)
		}
	}
}
