package codec

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// EntityKind names a top-level schema
type EntityKind string

// Entity kinds
const (
	KindAuto    EntityKind = "auto"
	KindMonster EntityKind = "monster"
	KindSpell   EntityKind = "spell"
)

// ParseEntityKind parses an entity kind name
func ParseEntityKind(raw string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(KindAuto):
		return KindAuto, nil
	case string(KindMonster):
		return KindMonster, nil
	case string(KindSpell):
		return KindSpell, nil
	default:
		return "", errors.InvalidArgumentf("unknown entity kind %q", raw).
			WithMeta("allowed", []string{string(KindMonster), string(KindSpell)})
	}
}

var monsterMarkers = []string{"cr", "str", "dex", "con", "int", "wis", "cha"}

var spellMarkers = []string{"components", "school", "level", "durationType", "rangeType"}

// Detect guesses the schema of a payload from its top-level keys. Spells are
// recognised by their spell-only keys and monsters by challenge rating or
// ability scores.
func Detect(obj map[string]json.RawMessage) (EntityKind, error) {
	for _, key := range spellMarkers {
		if _, ok := obj[key]; ok {
			return KindSpell, nil
		}
	}
	for _, key := range monsterMarkers {
		if _, ok := obj[key]; ok {
			return KindMonster, nil
		}
	}
	return "", errors.FailedPrecondition("cannot tell whether payload is a monster or a spell")
}
