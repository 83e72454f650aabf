// Package t2048 implements the 2048 sliding-tile puzzle: the board state
// machine, rule presets and the platform adapter that renders it.
package t2048

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by PresetByName for names not in Presets.
var ErrUnknownPreset = errors.New("t2048: unknown preset")

// Preset is a named rule variant. Each preset is registered as its own game
// so scores are kept apart.
type Preset struct {
	ID     string  // Registry and score key
	Name   string  // Short name used on the command line
	Title  string  // Display name
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Presets lists the available variants, classic first.
var Presets = []Preset{
	{ID: "2048", Name: "classic", Title: "2048", Spawn4: 0.10},
	{ID: "2048_easy", Name: "easy", Title: "2048 (Easy)", Spawn4: 0.05},
	{ID: "2048_hard", Name: "hard", Title: "2048 (Hard)", Spawn4: 0.25},
}

// Rules returns the engine rules for this preset.
func (p Preset) Rules() Rules {
	r := DefaultRules()
	r.Spawn4Prob = p.Spawn4
	return r
}

// PresetByName looks a preset up by Name or ID.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name || p.ID == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// PresetNames returns the short names of all presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}
