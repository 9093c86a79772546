package monster

import (
	"github.com/KirkDiggler/rpg-entities/entities/codec"
)

// Size is a creature size code, used by Monster and by map tokens
type Size string

// Creature sizes
const (
	SizeTiny       Size = "T"
	SizeSmall      Size = "S"
	SizeMedium     Size = "M"
	SizeLarge      Size = "L"
	SizeHuge       Size = "H"
	SizeGargantuan Size = "G"
	SizeColossal   Size = "C"
)

// DefaultSize applies when a monster payload has no size
const DefaultSize = SizeMedium

// Sizes is the closed set of creature sizes
var Sizes = codec.NewEnum("size",
	[]Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan, SizeColossal},
	map[Size]string{
		SizeTiny:       "tiny",
		SizeSmall:      "small",
		SizeMedium:     "medium",
		SizeLarge:      "large",
		SizeHuge:       "huge",
		SizeGargantuan: "gargantuan",
		SizeColossal:   "colossal",
	},
)

// grid footprint side length, in squares
var footprints = map[Size]float64{
	SizeTiny:       0.5,
	SizeSmall:      0.7,
	SizeMedium:     1,
	SizeLarge:      2,
	SizeHuge:       3,
	SizeGargantuan: 4,
	SizeColossal:   8,
}

// ParseSize accepts a size code ("T") or name ("tiny")
func ParseSize(raw string) (Size, error) {
	return Sizes.Parse(raw)
}

// String returns the wire code
func (s Size) String() string {
	return string(s)
}

// Name returns the long name, e.g. "gargantuan"
func (s Size) Name() string {
	return Sizes.Name(s)
}

// IsValid reports whether s is one of the documented sizes
func (s Size) IsValid() bool {
	return Sizes.Contains(s)
}

// Footprint returns the side of the square a token of this size covers on a
// battle map, in grid squares. Unknown sizes report 0.
func (s Size) Footprint() float64 {
	return footprints[s]
}
