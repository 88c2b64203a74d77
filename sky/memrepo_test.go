// SPDX-License-Identifier: MIT
package sky_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/armaan-choudhary/zola/sky"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	mu     sync.Mutex
	skies  map[string]sky.Sky
	stars  map[string][]sky.Star
	nextID int
	taken  int // CreateSky reports ErrSlugTaken this many times first
}

func newMemRepo() *memRepo {
	return &memRepo{skies: map[string]sky.Sky{}, stars: map[string][]sky.Star{}}
}

func (r *memRepo) CreateSky(_ context.Context, s sky.Sky) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken > 0 {
		r.taken--
		return sky.ErrSlugTaken
	}
	if _, ok := r.skies[s.Slug]; ok {
		return sky.ErrSlugTaken
	}
	r.skies[s.Slug] = s
	return nil
}

func (r *memRepo) GetSky(_ context.Context, slug string) (sky.Sky, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.skies[slug]
	if !ok {
		return sky.Sky{}, fmt.Errorf("slug %q: %w", slug, sky.ErrSkyNotFound)
	}
	return s, nil
}

func (r *memRepo) AddStar(_ context.Context, st sky.Star) (sky.Star, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	st.ID = fmt.Sprintf("star-%03d", r.nextID)
	r.stars[st.SkySlug] = append(r.stars[st.SkySlug], st)
	return st, nil
}

func (r *memRepo) ListStars(_ context.Context, slug string) ([]sky.Star, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]sky.Star(nil), r.stars[slug]...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memRepo) CountStars(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.stars {
		n += len(s)
	}
	return n, nil
}

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []sky.Event
	err    error
}

func (r *recorder) Publish(_ context.Context, ev sky.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}
