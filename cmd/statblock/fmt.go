package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newFmtCmd() *cobra.Command {
	var opts decodeOptions

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print a payload in canonical form",
		Long: `Decode a payload and write it back as indented JSON. Unset optional fields are
dropped and unknown fields are removed. YAML input is converted to JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, format, strict, err := a.decodeOptions(cmd, &opts)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := decodePayload(raw, args[0], kind, format, strict)
			if err != nil {
				return err
			}
			for _, field := range p.unknownFields() {
				a.logger.Warn("unknown field dropped", "file", args[0], "field", field)
			}

			out, err := p.encodeIndent(a.cfg.IndentString())
			if err != nil {
				return err
			}
			return writeLine(cmd, out)
		},
	}
	opts.register(cmd)
	return cmd
}

func writeLine(cmd *cobra.Command, data []byte) error {
	w := cmd.OutOrStdout()
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] == '\n' {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}
