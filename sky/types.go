// SPDX-License-Identifier: MIT
package sky

import (
	"errors"
	"time"

	"github.com/armaan-choudhary/zola/constellation"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrSkyNotFound indicates an unknown slug.
	ErrSkyNotFound = errors.New("sky: not found")

	// ErrSlugTaken indicates that a new sky collided with an existing slug.
	ErrSlugTaken = errors.New("sky: slug already taken")

	// ErrInvalidSky indicates a rejected sky creation request.
	ErrInvalidSky = errors.New("sky: invalid sky")

	// ErrInvalidStar indicates a rejected star submission.
	ErrInvalidStar = errors.New("sky: invalid star")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("sky: page must be ≥ 1")
)

// Star styles (colours).
const (
	StyleClassic = "classic"
	StyleGold    = "gold"
	StyleBlue    = "blue"
	StyleFire    = "fire"
	StylePurple  = "purple"
	StyleGreen   = "green"
)

// Star shapes, named after the icons the client renders.
const (
	ShapeCircle = "FaCircle"
	ShapeSquare = "FaSquare"
	ShapePlay   = "FaPlay"
	ShapeStar   = "FaStar"
	ShapeHeart  = "FaHeart"
	ShapeGem    = "FaGem"
)

// DefaultEmoji is attached to stars submitted without one.
const DefaultEmoji = "✨"

// Styles lists every accepted style in display order.
var Styles = []string{StyleClassic, StyleGold, StyleBlue, StyleFire, StylePurple, StyleGreen}

// Shapes lists every accepted shape in display order.
var Shapes = []string{ShapeCircle, ShapeSquare, ShapePlay, ShapeStar, ShapeHeart, ShapeGem}

// Sky is one creator's page.
type Sky struct {
	Slug        string    `json:"slug"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Star is one wish placed in a sky. PosX and PosY are percentages of the
// viewport.
type Star struct {
	ID         string    `json:"id"`
	SkySlug    string    `json:"sky_slug"`
	Message    string    `json:"message"`
	SenderName string    `json:"sender_name"`
	Emoji      string    `json:"emoji"`
	PosX       float64   `json:"pos_x"`
	PosY       float64   `json:"pos_y"`
	Style      string    `json:"style"`
	Shape      string    `json:"shape"`
	CreatedAt  time.Time `json:"created_at"`
}

// StarInput is what a visitor submits. Empty Emoji, Style and Shape take
// their defaults before validation.
type StarInput struct {
	Message    string `json:"message" validate:"nonblank,max=500"`
	SenderName string `json:"sender_name" validate:"max=60"`
	Emoji      string `json:"emoji" validate:"required,max=16"`
	Style      string `json:"style" validate:"oneof=classic gold blue fire purple green"`
	Shape      string `json:"shape" validate:"oneof=FaCircle FaSquare FaPlay FaStar FaHeart FaGem"`
}

// SkyInput is what a creator submits.
type SkyInput struct {
	CreatorName string `json:"creator_name" validate:"nonblank,max=60"`
}

// Event is published when a sky changes.
type Event struct {
	Type string `json:"type"`
	Slug string `json:"slug"`
	Star Star   `json:"star"`
}

// EventStarAdded is the only event type so far.
const EventStarAdded = "star_added"

// View is one rendered page of a sky. Until the reveal time Revealed is
// false, Stars carry no message or sender, Mood is empty and RevealIn
// counts down.
type View struct {
	Sky        Sky                  `json:"sky"`
	Page       int                  `json:"page"`
	Pages      int                  `json:"pages"`
	TotalStars int                  `json:"total_stars"`
	Stars      []Star               `json:"stars"`
	Edges      []constellation.Edge `json:"edges"`
	Hub        string               `json:"hub,omitempty"`
	Repaired   int                  `json:"repaired"`
	Tier       Tier                 `json:"tier"`
	Revealed   bool                 `json:"revealed"`
	RevealIn   string               `json:"reveal_in,omitempty"`
	Mood       string               `json:"mood,omitempty"`
}
