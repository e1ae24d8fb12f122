package level

import "math/rand"

// Manager tracks progression through the level sequence and caches
// generated levels so revisiting one keeps its state.
type Manager struct {
	Current  int
	MaxLevel int

	quota  int
	rng    *rand.Rand
	levels map[int]*Level
}

func NewManager(candyQuota, maxLevel int, rng *rand.Rand) *Manager {
	return &Manager{
		Current:  1,
		MaxLevel: maxLevel,
		quota:    candyQuota,
		rng:      rng,
		levels:   make(map[int]*Level),
	}
}

// Load returns the level for the given index, generating it on first use.
func (m *Manager) Load(number int) *Level {
	m.Current = number
	if l, ok := m.levels[number]; ok {
		return l
	}
	l := New(number, m.quota, m.rng)
	m.levels[number] = l
	return l
}

// Next advances to the following level, or returns nil past the last one.
func (m *Manager) Next() *Level {
	if m.Current >= m.MaxLevel {
		return nil
	}
	return m.Load(m.Current + 1)
}

// Restart regenerates the current level from scratch.
func (m *Manager) Restart() *Level {
	delete(m.levels, m.Current)
	return m.Load(m.Current)
}

func (m *Manager) IsFinal() bool {
	return m.Current >= m.MaxLevel
}
