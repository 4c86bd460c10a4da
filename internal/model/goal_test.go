package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Difficulty
		wantErr bool
	}{
		{name: "empty defaults to medium", input: "", want: DifficultyMedium},
		{name: "exact", input: "hard", want: DifficultyHard},
		{name: "case and space", input: "  Easy ", want: DifficultyEasy},
		{name: "unknown", input: "legendary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoalStatus(t *testing.T) {
	tests := []struct {
		name       string
		goal       Goal
		wantStatus string
		wantActive bool
	}{
		{name: "open", goal: Goal{}, wantStatus: "active", wantActive: true},
		{name: "completed", goal: Goal{Completed: true}, wantStatus: "completed"},
		{name: "archived", goal: Goal{Completed: true, Archived: true}, wantStatus: "archived"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.goal.Status())
			assert.Equal(t, tt.wantActive, tt.goal.IsActive())
		})
	}
}

func TestCloneGoals(t *testing.T) {
	assert.Nil(t, CloneGoals(nil))

	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	original := []Goal{{ID: "a", CompletedAt: &at}, {ID: "b"}}
	clone := CloneGoals(original)

	require.Len(t, clone, 2)
	assert.Equal(t, original, clone)
	assert.NotSame(t, original[0].CompletedAt, clone[0].CompletedAt)

	clone[0].Title = "changed"
	assert.Empty(t, original[0].Title)
}

func TestRarityOrdering(t *testing.T) {
	order := []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
	for i := 1; i < len(order); i++ {
		assert.True(t, order[i-1].Less(order[i]), "%s before %s", order[i-1], order[i])
	}
	assert.False(t, Rarity("mythic").IsValid())
	assert.Equal(t, -1, Rarity("mythic").Rank())
}

func TestUnlockEventTitle(t *testing.T) {
	c := CompanionEvent(Companion{ID: "igris", Name: "Igris"})
	assert.Equal(t, "New companion unlocked: Igris", c.Title())

	i := ItemEvent(Item{ID: "sword", Name: "Shadow Sword"})
	assert.Equal(t, "New item unlocked: Shadow Sword", i.Title())
}
