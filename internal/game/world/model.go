// Package world provides the zone map: zones, their exits and occupants, and
// the arithmetic that links zone ids by direction.
package world

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/wayfarer/internal/game/npc"
)

// Direction is one of the four compass directions.
type Direction string

// Compass directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains all four directions in display order.
var StandardDirections = []Direction{North, South, East, West}

var directionAliases = map[string]Direction{
	"north": North,
	"n":     North,
	"south": South,
	"s":     South,
	"east":  East,
	"e":     East,
	"west":  West,
	"w":     West,
}

var titleCaser = cases.Title(language.English)

// ParseDirection resolves a case-insensitive direction name or its one-letter
// abbreviation.
//
// Postcondition: ok is false for anything that is not a compass direction.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Title returns the display form of d, e.g. "North".
func (d Direction) Title() string {
	return titleCaser.String(string(d))
}

// Opposite returns the opposite direction, or "" for an unknown one.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Destination returns the zone id reached by moving dir from id. Zone ids
// form a grid with north/south stepping by 1 and east/west by 10.
//
// Postcondition: south never goes below 1; west from an id below 10 stays put.
func Destination(id int, dir Direction) int {
	switch dir {
	case North:
		return id + 1
	case South:
		if id-1 < 1 {
			return 1
		}
		return id - 1
	case East:
		return id + 10
	case West:
		if id >= 10 {
			return id - 10
		}
		return id
	default:
		return id
	}
}

// Zone is a discrete location. The zone's NPCs and monsters are owned by the
// zone: NPC quest progress is recorded here, while monsters are only ever
// fought through a Clone.
type Zone struct {
	ID          int
	Name        string
	Description string
	// Exits lists the directions a player may leave by, without duplicates.
	Exits    []Direction
	NPCs     []npc.NPC
	Monsters []npc.Monster
}

// HasExit reports whether the zone lists dir as an exit.
func (z *Zone) HasExit(dir Direction) bool {
	for _, e := range z.Exits {
		if e == dir {
			return true
		}
	}
	return false
}

// NPC returns the zone's NPC with the given id.
//
// Postcondition: the returned pointer aliases the zone's own entry.
func (z *Zone) NPC(id int) (*npc.NPC, bool) {
	for i := range z.NPCs {
		if z.NPCs[i].ID == id {
			return &z.NPCs[i], true
		}
	}
	return nil, false
}

// Validate checks zone invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (z *Zone) Validate() error {
	if z.ID < 1 {
		return fmt.Errorf("zone ID must be >= 1, got %d", z.ID)
	}
	if z.Name == "" {
		return fmt.Errorf("zone %d: name must not be empty", z.ID)
	}
	seen := make(map[Direction]bool, len(z.Exits))
	for _, e := range z.Exits {
		if e.Opposite() == "" {
			return fmt.Errorf("zone %d: unknown exit %q", z.ID, e)
		}
		if seen[e] {
			return fmt.Errorf("zone %d: exit %q listed twice", z.ID, e)
		}
		seen[e] = true
	}
	return nil
}
