// SPDX-License-Identifier: MIT
package sky

import (
	"fmt"
	"time"
)

// Countdown formats the time left until a reveal as "Xd Yh Zm Ws".
// Negative durations read as zero.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, d/time.Second)
}

// Conceal returns stars with their message and sender blanked. Position,
// emoji, style and shape stay so the sky can still be drawn.
func Conceal(stars []Star) []Star {
	out := make([]Star, len(stars))
	for i, st := range stars {
		st.Message, st.SenderName = "", ""
		out[i] = st
	}

	return out
}
