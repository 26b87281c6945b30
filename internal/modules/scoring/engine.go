// Package scoring computes the commercial priority score assigned to a
// prospective buyer during onboarding.
package scoring

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category has no configured band.
var ErrUnknownCategory = errors.New("unknown category band")

// Band defines the base score and clamp range for one firm category.
type Band struct {
	Base int
	Min  int
	Max  int
}

// Config holds the score tables the engine evaluates against.
// Category bands are a closed set; tag modifiers are advisory and open.
type Config struct {
	Bands        map[string]Band
	TagModifiers map[string]int
}

// DefaultConfig returns the standard four-band table used in production.
// Band A is the top commercial priority, D the lowest.
func DefaultConfig() Config {
	return Config{
		Bands: map[string]Band{
			"A": {Base: 85, Min: 80, Max: 100},
			"B": {Base: 70, Min: 60, Max: 79},
			"C": {Base: 50, Min: 40, Max: 59},
			"D": {Base: 20, Min: 1, Max: 39},
		},
		TagModifiers: map[string]int{
			"key-account":         15,
			"high-volume":         10,
			"chain-store":         8,
			"referral":            5,
			"repeat-inquiry":      4,
			"trade-show":          3,
			"price-sensitive":     -5,
			"competitor-supplied": -6,
			"one-off":             -8,
			"slow-payer":          -10,
		},
	}
}

// Engine evaluates priority scores from an injected config.
type Engine struct {
	cfg Config
}

// NewEngine creates a scoring engine with the given tables.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// ComputeScore returns the priority score for a category and tag set:
// the category's base score plus the sum of tag modifiers, clamped to the
// category's band. Tags outside the vocabulary contribute nothing; tag
// order never affects the result.
func (e *Engine) ComputeScore(category string, tags []string) (int, error) {
	band, ok := e.cfg.Bands[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	score := band.Base
	for _, tag := range tags {
		score += e.cfg.TagModifiers[tag]
	}

	if score < band.Min {
		score = band.Min
	}
	if score > band.Max {
		score = band.Max
	}
	return score, nil
}
