// SPDX-License-Identifier: MIT
package sky

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/metrics"
)

// slugAttempts bounds the retries on slug collisions.
const slugAttempts = 5

// Repository persists skies and stars.
type Repository interface {
	CreateSky(ctx context.Context, s Sky) error
	GetSky(ctx context.Context, slug string) (Sky, error)
	// AddStar stores st and returns it with its assigned ID.
	AddStar(ctx context.Context, st Star) (Star, error)
	// ListStars returns the stars of slug ordered by CreatedAt, then ID.
	ListStars(ctx context.Context, slug string) ([]Star, error)
	// CountStars counts stars across every sky.
	CountStars(ctx context.Context) (int, error)
}

// Notifier fans sky events out to live viewers.
type Notifier interface {
	Publish(ctx context.Context, ev Event) error
}

// NopNotifier drops every event.
type NopNotifier struct{}

// Publish implements Notifier.
func (NopNotifier) Publish(context.Context, Event) error { return nil }

// Service implements the sky operations on top of a Repository.
type Service struct {
	repo     Repository
	notifier Notifier
	policy   constellation.Policy
	perPage  int
	revealAt time.Time
	now      func() time.Time
	log      *slog.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithNotifier sets the event sink. Nil keeps NopNotifier.
func WithNotifier(n Notifier) ServiceOption {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithPolicy sets the constellation policy used by View.
func WithPolicy(p constellation.Policy) ServiceOption {
	return func(s *Service) { s.policy = p }
}

// WithStarsPerPage sets the page size; values ≤ 0 keep the default.
func WithStarsPerPage(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand seeds slug and position generation, for reproducible runs.
func WithRand(r *rand.Rand) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRevealAt hides star messages and senders until t. The zero time
// reveals everything immediately.
func WithRevealAt(t time.Time) ServiceOption {
	return func(s *Service) { s.revealAt = t }
}

// NewService wires a Service around repo.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		notifier: NopNotifier{},
		policy:   constellation.DefaultPolicy(),
		perPage:  DefaultStarsPerPage,
		now:      time.Now,
		log:      slog.Default(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "sky")

	return s
}

// Policy returns the constellation policy in force.
func (s *Service) Policy() constellation.Policy {
	return s.policy
}

// CreateSky registers a new sky under a fresh slug.
func (s *Service) CreateSky(ctx context.Context, in SkyInput) (Sky, error) {
	if err := in.Validate(); err != nil {
		return Sky{}, err
	}

	var lastErr error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		sk := Sky{
			Slug:        s.slug(),
			CreatorName: in.CreatorName,
			CreatedAt:   s.now().UTC(),
		}
		err := s.repo.CreateSky(ctx, sk)
		if err == nil {
			s.log.Info("sky created", "slug", sk.Slug)
			return sk, nil
		}
		if !errors.Is(err, ErrSlugTaken) {
			return Sky{}, fmt.Errorf("sky: create: %w", err)
		}
		lastErr = err
		s.log.Warn("slug collision, retrying", "slug", sk.Slug, "attempt", attempt+1)
	}

	return Sky{}, fmt.Errorf("sky: create after %d attempts: %w", slugAttempts, lastErr)
}

// GetSky looks a sky up by slug.
func (s *Service) GetSky(ctx context.Context, slug string) (Sky, error) {
	return s.repo.GetSky(ctx, slug)
}

// AddStar places a visitor's star at a random position in slug's sky and
// notifies live viewers. Notification failures are logged, not returned.
func (s *Service) AddStar(ctx context.Context, slug string, in StarInput) (Star, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Star{}, err
	}
	if _, err := s.repo.GetSky(ctx, slug); err != nil {
		return Star{}, err
	}

	x, y := s.position()
	if err := ValidatePosition(x, y); err != nil {
		return Star{}, err
	}
	st, err := s.repo.AddStar(ctx, Star{
		SkySlug:    slug,
		Message:    in.Message,
		SenderName: in.SenderName,
		Emoji:      in.Emoji,
		PosX:       x,
		PosY:       y,
		Style:      in.Style,
		Shape:      in.Shape,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return Star{}, fmt.Errorf("sky: add star: %w", err)
	}
	metrics.StarsAddedTotal.Inc()
	s.log.Info("star added", "slug", slug, "star_id", st.ID)

	// Live viewers only see the content once the sky is revealed.
	ev := Event{Type: EventStarAdded, Slug: slug, Star: st}
	if _, ok := s.revealIn(s.now()); !ok {
		ev.Star = Conceal([]Star{st})[0]
	}
	if err := s.notifier.Publish(ctx, ev); err != nil {
		s.log.Warn("publish failed", "slug", slug, "error", err)
	}

	return st, nil
}

// View renders one page of slug's sky with its constellation.
func (s *Service) View(ctx context.Context, slug string, page int) (View, error) {
	if page < 1 {
		return View{}, fmt.Errorf("page %d: %w", page, ErrInvalidPage)
	}
	sk, err := s.repo.GetSky(ctx, slug)
	if err != nil {
		return View{}, err
	}
	stars, err := s.repo.ListStars(ctx, slug)
	if err != nil {
		return View{}, fmt.Errorf("sky: list stars: %w", err)
	}

	return s.render(sk, stars, page)
}

// Render builds a View from stars that did not come from the repository,
// such as the demo sequence.
func (s *Service) Render(sk Sky, stars []Star, page int) (View, error) {
	return s.render(sk, stars, page)
}

// Universe counts stars across every sky.
func (s *Service) Universe(ctx context.Context) (int, error) {
	return s.repo.CountStars(ctx)
}

func (s *Service) render(sk Sky, stars []Star, page int) (View, error) {
	pageStars, err := Paginate(stars, page, s.perPage)
	if err != nil {
		return View{}, err
	}
	pts, err := Points(pageStars)
	if err != nil {
		return View{}, fmt.Errorf("sky %s page %d: %w", sk.Slug, page, err)
	}

	start := time.Now()
	res, err := constellation.BuildDetailed(pts, s.policy)
	if err != nil {
		return View{}, fmt.Errorf("sky %s page %d: %w", sk.Slug, page, err)
	}
	metrics.ObserveBuild(s.policy.Label(), res.Repaired, time.Since(start))
	if res.Repaired > 0 {
		s.log.Debug("constellation repaired", "slug", sk.Slug, "page", page, "edges", res.Repaired)
	}

	v := View{
		Sky:        sk,
		Page:       page,
		Pages:      PageCount(len(stars), s.perPage),
		TotalStars: len(stars),
		Stars:      pageStars,
		Edges:      res.Edges,
		Hub:        res.Hub,
		Repaired:   res.Repaired,
		Tier:       TierFor(len(stars)),
		Revealed:   true,
		Mood:       Mood(len(stars)),
	}
	if left, ok := s.revealIn(s.now()); !ok {
		// Lines stay: they only carry ids and positions.
		v.Revealed, v.Mood = false, ""
		v.RevealIn = Countdown(left)
		v.Stars = Conceal(pageStars)
	}

	return v, nil
}

// revealIn reports the time left before the reveal, and whether the sky
// is already revealed at now.
func (s *Service) revealIn(now time.Time) (time.Duration, bool) {
	if s.revealAt.IsZero() || !now.Before(s.revealAt) {
		return 0, true
	}

	return s.revealAt.Sub(now), false
}

func (s *Service) slug() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewSlug(s.rng)
}

func (s *Service) position() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RandomPosition(s.rng)
}
