package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/entities/monster"
	"github.com/KirkDiggler/rpg-entities/entities/spell"
	"github.com/KirkDiggler/rpg-entities/errors"
)

// payload is one decoded input file
type payload struct {
	path string
	kind codec.EntityKind
	obj  map[string]json.RawMessage

	monster *monster.Monster
	spell   *spell.Spell
}

func (p *payload) name() string {
	switch {
	case p.monster != nil:
		return p.monster.Name
	case p.spell != nil:
		return p.spell.Name
	}
	return ""
}

// unknownFields lists top-level keys the schema does not define
func (p *payload) unknownFields() []string {
	switch p.kind {
	case codec.KindMonster:
		return codec.UnknownKeys(p.obj, codec.Fields(monster.Monster{}))
	case codec.KindSpell:
		return codec.UnknownKeys(p.obj, codec.Fields(spell.Spell{}))
	}
	return nil
}

func (p *payload) encodeIndent(indent string) ([]byte, error) {
	switch {
	case p.monster != nil:
		return monster.EncodeIndent(p.monster, "", indent)
	case p.spell != nil:
		return spell.EncodeIndent(p.spell, "", indent)
	}
	return nil, errors.Internalf("%s: nothing decoded", p.path)
}

// decodeOptions are the per-command decode flags
type decodeOptions struct {
	kind   string
	format string
	strict bool
}

func (o *decodeOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.kind, "kind", string(codec.KindAuto), "payload kind: auto, monster or spell")
	cmd.Flags().StringVar(&o.format, "format", "", "input format: auto, json or yaml")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "reject enumerated values outside their documented codes")
}

func (a *app) decodeOptions(cmd *cobra.Command, o *decodeOptions) (codec.EntityKind, codec.Format, bool, error) {
	kind, err := codec.ParseEntityKind(o.kind)
	if err != nil {
		return "", "", false, err
	}

	rawFormat := a.cfg.Format
	if cmd.Flags().Changed("format") {
		rawFormat = o.format
	}
	format, err := codec.ParseFormat(rawFormat)
	if err != nil {
		return "", "", false, err
	}

	strict := a.cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = o.strict
	}
	return kind, format, strict, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "%s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func decodePayload(raw []byte, path string, kind codec.EntityKind, format codec.Format, strict bool) (*payload, error) {
	data, err := codec.ToJSON(raw, codec.FormatForPath(path, format))
	if err != nil {
		return nil, err
	}

	obj, err := codec.Object(data)
	if err != nil {
		return nil, err
	}

	if kind == codec.KindAuto {
		kind, err = codec.Detect(obj)
		if err != nil {
			return nil, errors.Wrap(err, "cannot detect payload kind, use --kind to choose")
		}
	}

	p := &payload{path: path, kind: kind, obj: obj}
	opt := codec.WithStrictMode(strict)
	switch kind {
	case codec.KindMonster:
		p.monster, err = monster.Decode(data, opt)
	case codec.KindSpell:
		p.spell, err = spell.Decode(data, opt)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
