// SPDX-License-Identifier: MIT
package sky

// Tier is the growth phase of a sky, driven by its total star count.
type Tier struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Intensity float64 `json:"intensity"`
	// Next is the star count that unlocks the following tier; 0 on the last.
	Next int `json:"next,omitempty"`
}

var tiers = []Tier{
	{ID: 1, Name: "First Spark", Color: "#94a3b8", Intensity: 1, Next: 5},
	{ID: 2, Name: "Astral Awakening", Color: "#60a5fa", Intensity: 1.5, Next: 15},
	{ID: 3, Name: "Supernova Bloom", Color: "#fbbf24", Intensity: 2, Next: 30},
	{ID: 4, Name: "Infinite Galaxy", Color: "#22d3ee", Intensity: 3},
}

// TierFor maps a star count to its tier.
func TierFor(count int) Tier {
	for _, t := range tiers {
		if t.Next != 0 && count < t.Next {
			return t
		}
	}

	return tiers[len(tiers)-1]
}

// Mood is the one-line caption shown under a sky.
func Mood(count int) string {
	switch {
	case count <= 0:
		return "A silent void awaits your light"
	case count < 5:
		return "The first lights are gathering"
	case count < 15:
		return "A vibrant cluster is forming"
	default:
		return "A magnificent galaxy of wishes"
	}
}
