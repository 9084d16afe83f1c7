package world

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrZoneNotFound is returned when a zone id is not loaded.
	ErrZoneNotFound = errors.New("zone not found")
	// ErrBlocked is returned when a move has no exit or no destination zone.
	ErrBlocked = errors.New("the way is blocked")
)

// Manager provides thread-safe access to the loaded zone map.
type Manager struct {
	mu        sync.RWMutex
	zones     map[int]*Zone
	startZone int
}

// NewManager creates a Manager from the given zones.
//
// Precondition: zones must contain startZone.
// Postcondition: Returns a Manager with all zones indexed by ID, or an error on
// duplicate zone IDs or a missing start zone.
func NewManager(zones []*Zone, startZone int) (*Manager, error) {
	m := &Manager{
		zones:     make(map[int]*Zone, len(zones)),
		startZone: startZone,
	}
	for _, z := range zones {
		if _, exists := m.zones[z.ID]; exists {
			return nil, fmt.Errorf("duplicate zone ID: %d", z.ID)
		}
		m.zones[z.ID] = z
	}
	if _, ok := m.zones[startZone]; !ok {
		return nil, fmt.Errorf("start zone %d: %w", startZone, ErrZoneNotFound)
	}
	return m, nil
}

// Zone returns the zone with the given ID.
//
// Postcondition: Returns (zone, true) if found, or (nil, false) otherwise.
func (m *Manager) Zone(id int) (*Zone, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	z, ok := m.zones[id]
	return z, ok
}

// Navigate resolves movement from a zone in a direction.
//
// Postcondition: Returns the destination zone. Returns ErrZoneNotFound when
// fromZoneID is not loaded, and ErrBlocked when the zone has no such exit or
// no zone exists at the destination id.
func (m *Manager) Navigate(fromZoneID int, dir Direction) (*Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	from, ok := m.zones[fromZoneID]
	if !ok {
		return nil, fmt.Errorf("zone %d: %w", fromZoneID, ErrZoneNotFound)
	}
	if !from.HasExit(dir) {
		return nil, fmt.Errorf("no exit %s from zone %d: %w", dir, fromZoneID, ErrBlocked)
	}
	dest := Destination(fromZoneID, dir)
	target, ok := m.zones[dest]
	if !ok {
		return nil, fmt.Errorf("exit %s from zone %d leads to missing zone %d: %w", dir, fromZoneID, dest, ErrBlocked)
	}
	return target, nil
}

// StartZone returns the id of the zone players start and respawn in.
func (m *Manager) StartZone() int {
	return m.startZone
}

// ZoneCount returns the number of loaded zones.
func (m *Manager) ZoneCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.zones)
}

// AllZones returns all loaded zones ordered by ID.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (m *Manager) AllZones() []*Zone {
	m.mu.RLock()
	defer m.mu.RUnlock()
	zones := make([]*Zone, 0, len(m.zones))
	for _, z := range m.zones {
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
	return zones
}
