// SPDX-License-Identifier: MIT
package sky_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/sky"
)

func TestStarInput_NormalizeDefaults(t *testing.T) {
	in := sky.StarInput{Message: "  hi  ", SenderName: " zo "}.Normalize()
	assert.Equal(t, "hi", in.Message)
	assert.Equal(t, "zo", in.SenderName)
	assert.Equal(t, sky.DefaultEmoji, in.Emoji)
	assert.Equal(t, sky.StyleClassic, in.Style)
	assert.Equal(t, sky.ShapeCircle, in.Shape)
	require.NoError(t, in.Validate())
}

func TestStarInput_Validate(t *testing.T) {
	valid := sky.StarInput{Message: "wish", Emoji: "🔥", Style: sky.StyleFire, Shape: sky.ShapeGem}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(*sky.StarInput)
		field string
	}{
		{"blank message", func(in *sky.StarInput) { in.Message = "   " }, "message"},
		{"long message", func(in *sky.StarInput) { in.Message = strings.Repeat("a", 501) }, "message"},
		{"long sender", func(in *sky.StarInput) { in.SenderName = strings.Repeat("b", 61) }, "sender_name"},
		{"unknown style", func(in *sky.StarInput) { in.Style = "pink" }, "style"},
		{"unknown shape", func(in *sky.StarInput) { in.Shape = "FaMoon" }, "shape"},
		{"no emoji", func(in *sky.StarInput) { in.Emoji = "" }, "emoji"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.edit(&in)
			err := in.Validate()
			assert.ErrorIs(t, err, sky.ErrInvalidStar)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestStarInput_MessageLimitCountsRunes(t *testing.T) {
	in := sky.StarInput{Message: strings.Repeat("✨", 500)}.Normalize()
	assert.NoError(t, in.Validate())
}

func TestSkyInput_Validate(t *testing.T) {
	assert.NoError(t, sky.SkyInput{CreatorName: "Armaan"}.Validate())
	assert.ErrorIs(t, sky.SkyInput{}.Validate(), sky.ErrInvalidSky)
	assert.ErrorIs(t, sky.SkyInput{CreatorName: strings.Repeat("x", 61)}.Validate(), sky.ErrInvalidSky)
}

func TestValidatePosition(t *testing.T) {
	assert.NoError(t, sky.ValidatePosition(0, 100))
	assert.ErrorIs(t, sky.ValidatePosition(-1, 50), sky.ErrInvalidStar)
	assert.ErrorIs(t, sky.ValidatePosition(50, 100.5), sky.ErrInvalidStar)
}

func TestNewSlug(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s := sky.NewSlug(rng)
		require.Len(t, s, 6)
		for _, c := range s {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z'), "slug %q", s)
		}
		seen[s] = true
	}
	assert.Greater(t, len(seen), 190)

	assert.Equal(t, sky.NewSlug(rand.New(rand.NewSource(7))), sky.NewSlug(rand.New(rand.NewSource(7))))
}

func TestRandomPosition_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		x, y := sky.RandomPosition(rng)
		assert.True(t, x >= 5 && x <= 94, "x=%v", x)
		assert.True(t, y >= 5 && y <= 94, "y=%v", y)
		assert.Equal(t, x, float64(int(x)))
	}
}

func TestPaginate(t *testing.T) {
	stars := sky.DemoStars(23, rand.New(rand.NewSource(1)), time.Unix(0, 0))

	p1, err := sky.Paginate(stars, 1, 0)
	require.NoError(t, err)
	assert.Len(t, p1, 10)
	assert.Equal(t, "demo-0", p1[0].ID)

	p3, err := sky.Paginate(stars, 3, 10)
	require.NoError(t, err)
	assert.Len(t, p3, 3)
	assert.Equal(t, "demo-20", p3[0].ID)

	p4, err := sky.Paginate(stars, 4, 10)
	require.NoError(t, err)
	assert.NotNil(t, p4)
	assert.Empty(t, p4)

	_, err = sky.Paginate(stars, 0, 10)
	assert.ErrorIs(t, err, sky.ErrInvalidPage)

	assert.Equal(t, 3, sky.PageCount(23, 10))
	assert.Equal(t, 2, sky.PageCount(20, 10))
	assert.Equal(t, 1, sky.PageCount(0, 10))
	assert.Equal(t, 3, sky.PageCount(21, 0))
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		count int
		id    int
		name  string
		next  int
	}{
		{0, 1, "First Spark", 5},
		{4, 1, "First Spark", 5},
		{5, 2, "Astral Awakening", 15},
		{14, 2, "Astral Awakening", 15},
		{15, 3, "Supernova Bloom", 30},
		{29, 3, "Supernova Bloom", 30},
		{30, 4, "Infinite Galaxy", 0},
		{1000, 4, "Infinite Galaxy", 0},
	}
	for _, tc := range tests {
		got := sky.TierFor(tc.count)
		assert.Equal(t, tc.id, got.ID, "count=%d", tc.count)
		assert.Equal(t, tc.name, got.Name)
		assert.Equal(t, tc.next, got.Next)
	}
}

func TestMood(t *testing.T) {
	assert.Equal(t, "A silent void awaits your light", sky.Mood(0))
	assert.Equal(t, "The first lights are gathering", sky.Mood(3))
	assert.Equal(t, "A vibrant cluster is forming", sky.Mood(14))
	assert.Equal(t, "A magnificent galaxy of wishes", sky.Mood(15))
}

func TestDemoStars(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stars := sky.DemoStars(30, rand.New(rand.NewSource(9)), start)
	require.Len(t, stars, 30)

	for i, s := range stars {
		assert.True(t, s.PosX >= 10 && s.PosX <= 89)
		assert.True(t, s.PosY >= 15 && s.PosY <= 84)
		assert.Equal(t, sky.Styles[i%6], s.Style)
		assert.Equal(t, sky.Shapes[i%6], s.Shape)
		assert.Equal(t, sky.DemoSender, s.SenderName)
		assert.Equal(t, start.Add(time.Duration(i)*time.Second), s.CreatedAt)
	}
	assert.Equal(t, "demo-29", stars[29].ID)
	assert.Empty(t, sky.DemoStars(-1, rand.New(rand.NewSource(1)), start))
}

func TestPoints(t *testing.T) {
	pts, err := sky.Points([]sky.Star{{ID: "a", PosX: 1, PosY: 2}, {ID: "b", PosX: 3, PosY: 4}})
	require.NoError(t, err)
	assert.Equal(t, []constellation.Point{{ID: "a", X: 1, Y: 2}, {ID: "b", X: 3, Y: 4}}, pts)

	_, err = sky.Points([]sky.Star{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, constellation.ErrDuplicateID)

	_, err = sky.Points([]sky.Star{{ID: "a", PosX: 1}, {ID: "b", PosX: 101}})
	assert.ErrorIs(t, err, sky.ErrInvalidStar)
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "0d 0h 0m 0s", sky.Countdown(0))
	assert.Equal(t, "0d 0h 0m 0s", sky.Countdown(-time.Minute))
	assert.Equal(t, "1d 2h 3m 4s", sky.Countdown(26*time.Hour+3*time.Minute+4900*time.Millisecond))
	assert.Equal(t, "40d 0h 0m 59s", sky.Countdown(40*24*time.Hour+59*time.Second))
}

func TestConceal(t *testing.T) {
	in := []sky.Star{{ID: "a", Message: "m", SenderName: "s", Emoji: "⭐", PosX: 3, Style: sky.StyleGold}}
	out := sky.Conceal(in)

	assert.Equal(t, []sky.Star{{ID: "a", Emoji: "⭐", PosX: 3, Style: sky.StyleGold}}, out)
	assert.Equal(t, "m", in[0].Message, "input is not modified")
}
