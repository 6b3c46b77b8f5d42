package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the proficiency shown on a skill card.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

// Levels lists the defined proficiency levels, lowest first.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

var levelCaser = cases.Title(language.English)

// ParseLevel normalises case and surrounding whitespace ("  expert" -> "Expert").
// Values outside the enum are returned as given; they are rendered with the
// default badge colour rather than rejected.
func ParseLevel(s string) Level {
	trimmed := strings.TrimSpace(s)
	titled := Level(levelCaser.String(trimmed))
	if titled.Valid() {
		return titled
	}
	return Level(trimmed)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}
