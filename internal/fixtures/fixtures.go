// Package fixtures embeds the documented example payloads. They double as
// conformance fixtures for the schema tests and as output of the
// `statblock example` command.
package fixtures

import (
	"embed"
	"path"

	"github.com/KirkDiggler/rpg-entities/errors"
)

//go:embed payloads/*.json payloads/*.yaml
var payloads embed.FS

// Fixture names
const (
	Monster        = "monster.json"
	MonsterMinimal = "monster_minimal.json"
	MonsterYAML    = "monster.yaml"
	Spell          = "spell.json"
	SpellMinimal   = "spell_minimal.json"
	Feature        = "feature.json"
	Movement       = "movement.json"
	Senses         = "senses.json"
)

// Load returns the raw bytes of a fixture
func Load(name string) ([]byte, error) {
	data, err := payloads.ReadFile(path.Join("payloads", name))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "fixture %s not found", name)
	}
	return data, nil
}

// MustLoad is Load for tests and package initialisation; it panics when the
// fixture is missing
func MustLoad(name string) []byte {
	data, err := Load(name)
	if err != nil {
		panic(err)
	}
	return data
}

// Names lists every embedded fixture
func Names() []string {
	entries, err := payloads.ReadDir("payloads")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
