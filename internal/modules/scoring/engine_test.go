package scoring

import (
	"errors"
	"testing"
)

func TestComputeScore(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name     string
		category string
		tags     []string
		want     int
		wantErr  error
	}{
		{
			name:     "empty tag set returns category base",
			category: "B",
			tags:     nil,
			want:     70,
		},
		{
			name:     "modifiers accumulate",
			category: "C",
			tags:     []string{"referral", "trade-show"},
			want:     58,
		},
		{
			name:     "clamped to band ceiling",
			category: "A",
			tags:     []string{"key-account", "chain-store"}, // 85+15+8 = 108
			want:     100,
		},
		{
			name:     "clamped to band floor",
			category: "D",
			tags:     []string{"slow-payer", "one-off", "price-sensitive"}, // 20-23 = -3
			want:     1,
		},
		{
			name:     "unknown tags contribute zero",
			category: "B",
			tags:     []string{"referral", "left-handed", "from-the-moon"},
			want:     75,
		},
		{
			name:     "unknown category is rejected",
			category: "Z",
			tags:     []string{"referral"},
			wantErr:  ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ComputeScore(tt.category, tt.tags)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeScore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ComputeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeScoreCommutative(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	orderings := [][]string{
		{"key-account", "slow-payer", "referral", "trade-show"},
		{"slow-payer", "trade-show", "key-account", "referral"},
		{"referral", "key-account", "trade-show", "slow-payer"},
		{"trade-show", "referral", "slow-payer", "key-account"},
	}

	first, err := engine.ComputeScore("A", orderings[0])
	if err != nil {
		t.Fatalf("ComputeScore() error = %v", err)
	}
	for _, tags := range orderings[1:] {
		got, err := engine.ComputeScore("A", tags)
		if err != nil {
			t.Fatalf("ComputeScore() error = %v", err)
		}
		if got != first {
			t.Errorf("ComputeScore(%v) = %d, want %d regardless of tag order", tags, got, first)
		}
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	tags := []string{"high-volume", "price-sensitive"}

	a, err := engine.ComputeScore("C", tags)
	if err != nil {
		t.Fatalf("ComputeScore() error = %v", err)
	}
	b, err := engine.ComputeScore("C", tags)
	if err != nil {
		t.Fatalf("ComputeScore() error = %v", err)
	}
	if a != b {
		t.Errorf("repeated calls differ: %d vs %d", a, b)
	}
}
