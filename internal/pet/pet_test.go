package pet_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sbilibin2017/dino-pet-server/internal/pet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSave(t *testing.T) {
	save := pet.DefaultSave()

	assert.Equal(t, 50.0, save.Stats.Hunger)
	assert.Equal(t, 50.0, save.Stats.Energy)
	assert.Equal(t, pet.MoodCalm, save.Stats.Mood)
	assert.Equal(t, "Idle", save.Stats.LastAction)
	assert.Equal(t, 3.0, save.Inventory.Food)
	assert.Equal(t, 1.0, save.Inventory.Toys)
	assert.Empty(t, save.ActiveDinoSlug)

	_, err := time.Parse(time.RFC3339, save.LastSeen)
	assert.NoError(t, err)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		check func(t *testing.T, save pet.Save)
	}{
		{
			name:  "nil input yields defaults",
			input: nil,
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, 50.0, save.Stats.Hunger)
				assert.Equal(t, 50.0, save.Stats.Energy)
				assert.Equal(t, pet.MoodCalm, save.Stats.Mood)
				assert.Equal(t, "Idle", save.Stats.LastAction)
				assert.Equal(t, 1.0, save.Inventory.Food)
				assert.Equal(t, 1.0, save.Inventory.Toys)
			},
		},
		{
			name:  "non-object input coerced to defaults",
			input: "garbage",
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, 50.0, save.Stats.Hunger)
			},
		},
		{
			name: "non-numeric hunger falls back",
			input: map[string]any{
				"stats": map[string]any{"hunger": "not-a-number"},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, 50.0, save.Stats.Hunger)
			},
		},
		{
			name: "numeric string is coerced",
			input: map[string]any{
				"stats": map[string]any{"hunger": "72"},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, 72.0, save.Stats.Hunger)
			},
		},
		{
			name: "values clamp to their declared ranges",
			input: map[string]any{
				"stats":     map[string]any{"hunger": 250.0, "energy": -10.0},
				"inventory": map[string]any{"food": 5000.0, "toys": -3.0},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, 100.0, save.Stats.Hunger)
				assert.Equal(t, 0.0, save.Stats.Energy)
				assert.Equal(t, 999.0, save.Inventory.Food)
				assert.Equal(t, 0.0, save.Inventory.Toys)
			},
		},
		{
			name: "unknown mood defaults to calm",
			input: map[string]any{
				"stats": map[string]any{"mood": "furious"},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, pet.MoodCalm, save.Stats.Mood)
			},
		},
		{
			name: "allowed mood is kept",
			input: map[string]any{
				"stats": map[string]any{"mood": "sleepy"},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, pet.MoodSleepy, save.Stats.Mood)
			},
		},
		{
			name: "blank last action defaults to Idle",
			input: map[string]any{
				"stats": map[string]any{"lastAction": "   "},
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, "Idle", save.Stats.LastAction)
			},
		},
		{
			name: "unparsable lastSeen replaced with current time",
			input: map[string]any{
				"lastSeen": "yesterday-ish",
			},
			check: func(t *testing.T, save pet.Save) {
				_, err := time.Parse(time.RFC3339, save.LastSeen)
				assert.NoError(t, err)
			},
		},
		{
			name: "valid lastSeen is kept verbatim",
			input: map[string]any{
				"lastSeen": "2025-01-02T03:04:05Z",
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, "2025-01-02T03:04:05Z", save.LastSeen)
			},
		},
		{
			name: "active dino slug survives sanitization",
			input: map[string]any{
				"activeDinoSlug": "willow",
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Equal(t, "willow", save.ActiveDinoSlug)
			},
		},
		{
			name: "non-string active dino slug is dropped",
			input: map[string]any{
				"activeDinoSlug": 42.0,
			},
			check: func(t *testing.T, save pet.Save) {
				assert.Empty(t, save.ActiveDinoSlug)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, pet.Sanitize(tt.input))
		})
	}
}

func TestSanitize_RoundTripsThroughJSON(t *testing.T) {
	var decoded any
	err := json.Unmarshal([]byte(`{"stats":{"hunger":60,"mood":"happy"},"inventory":{"food":7}}`), &decoded)
	require.NoError(t, err)

	save := pet.Sanitize(decoded)
	assert.Equal(t, 60.0, save.Stats.Hunger)
	assert.Equal(t, pet.MoodHappy, save.Stats.Mood)
	assert.Equal(t, 7.0, save.Inventory.Food)
	assert.Equal(t, 1.0, save.Inventory.Toys)
}
