// SPDX-License-Identifier: MIT
package sky

import (
	"fmt"
	"math/rand"
	"time"
)

// DemoSlug names the built-in demo sky.
const DemoSlug = "demo"

// DemoSender signs every demo star.
const DemoSender = "ZOLA Voyager"

var demoEmojis = []string{"✨", "❤️", "🔥", "🚀", "⭐", "🌈"}

var demoMessages = []string{
	"May your year be as bright as this star.",
	"To new beginnings and infinite possibilities.",
	"Sending love across the digital cosmos.",
	"A wish for peace, health, and happiness.",
	"Looking forward to a brilliant 2026!",
	"Keep shining, no matter the darkness.",
	"Connected by starlight, even from afar.",
	"The universe is wide, but we are together.",
}

// DemoStars generates the demo sequence: n stars "demo-0".."demo-{n-1}" with
// cycling style, shape, emoji and message, x in [10,89] and y in [15,84].
// Stars are one second apart starting at start.
func DemoStars(n int, rng *rand.Rand, start time.Time) []Star {
	if n < 0 {
		n = 0
	}
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			ID:         fmt.Sprintf("demo-%d", i),
			SkySlug:    DemoSlug,
			Message:    demoMessages[i%len(demoMessages)],
			SenderName: DemoSender,
			Emoji:      demoEmojis[i%len(demoEmojis)],
			PosX:       float64(rng.Intn(80) + 10),
			PosY:       float64(rng.Intn(70) + 15),
			Style:      Styles[i%len(Styles)],
			Shape:      Shapes[i%len(Shapes)],
			CreatedAt:  start.Add(time.Duration(i) * time.Second),
		}
	}

	return stars
}
