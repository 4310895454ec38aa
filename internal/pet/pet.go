package pet

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Mood is the pet's current disposition.
type Mood string

// Allowed moods. Anything else sanitizes to MoodCalm.
const (
	MoodHappy  Mood = "happy"
	MoodCalm   Mood = "calm"
	MoodSleepy Mood = "sleepy"
	MoodHungry Mood = "hungry"
)

// Stats holds the pet's vital values.
type Stats struct {
	Hunger     float64 `json:"hunger"`     // 0-100
	Energy     float64 `json:"energy"`     // 0-100
	Mood       Mood    `json:"mood"`       // One of the allowed moods
	LastAction string  `json:"lastAction"` // Non-empty description of the last action
}

// Inventory holds the consumables a player owns.
type Inventory struct {
	Food float64 `json:"food"` // 0-999
	Toys float64 `json:"toys"` // 0-999
}

// Save is the single per-user mutable game-state document.
type Save struct {
	Stats          Stats     `json:"stats"`
	Inventory      Inventory `json:"inventory"`
	LastSeen       string    `json:"lastSeen"`
	ActiveDinoSlug string    `json:"activeDinoSlug,omitempty"`
}

// DefaultSave returns the document synthesized for users that have never persisted.
func DefaultSave() Save {
	return Save{
		Stats: Stats{
			Hunger:     50,
			Energy:     50,
			Mood:       MoodCalm,
			LastAction: "Idle",
		},
		Inventory: Inventory{Food: 3, Toys: 1},
		LastSeen:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Sanitize turns an arbitrary decoded JSON value into a valid Save. It is total
// over all inputs: absent, wrong-typed or out-of-range fields are replaced by
// safe defaults instead of causing failure.
func Sanitize(input any) Save {
	payload, _ := input.(map[string]any)
	stats, _ := payload["stats"].(map[string]any)
	inventory, _ := payload["inventory"].(map[string]any)

	save := Save{
		Stats: Stats{
			Hunger:     sanitizeNumber(stats["hunger"], 50, 0, 100),
			Energy:     sanitizeNumber(stats["energy"], 50, 0, 100),
			Mood:       sanitizeMood(stats["mood"]),
			LastAction: sanitizeAction(stats["lastAction"]),
		},
		Inventory: Inventory{
			Food: sanitizeNumber(inventory["food"], 1, 0, 999),
			Toys: sanitizeNumber(inventory["toys"], 1, 0, 999),
		},
		LastSeen: sanitizeTimestamp(payload["lastSeen"]),
	}

	if slug, ok := payload["activeDinoSlug"].(string); ok && slug != "" {
		save.ActiveDinoSlug = slug
	}

	return save
}

func sanitizeNumber(value any, fallback, min, max float64) float64 {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case int:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case string:
		var err error
		parsed, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fallback
		}
	default:
		return fallback
	}

	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fallback
	}

	return math.Min(max, math.Max(min, parsed))
}

func sanitizeMood(value any) Mood {
	if s, ok := value.(string); ok {
		switch Mood(s) {
		case MoodHappy, MoodCalm, MoodSleepy, MoodHungry:
			return Mood(s)
		}
	}
	return MoodCalm
}

func sanitizeAction(value any) string {
	if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return "Idle"
}

func sanitizeTimestamp(value any) string {
	if s, ok := value.(string); ok {
		if _, err := time.Parse(time.RFC3339, s); err == nil {
			return s
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}
