package goals

import (
	"testing"
	"time"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	built := NewBuilder(t).
		WithGoal("Read", 30, model.DifficultyEasy).
		WithGoal("Run", 20, model.DifficultyHard).Completed().
		WithGoal("Cook", 10, model.DifficultyMedium).Completed().Archived().
		Build()

	require.Len(t, built, 3)

	read := built.MustFind(t, "Read")
	assert.Equal(t, "goal-1", read.ID)
	assert.Equal(t, 48, read.Points)
	assert.InDelta(t, 30.0, read.Weight, 1e-9)
	assert.Equal(t, BaseTime, read.CreatedAt)

	run := built.MustFind(t, "Run")
	assert.True(t, run.Completed)
	assert.Zero(t, run.Weight)
	assert.Equal(t, 60, run.Points)
	require.NotNil(t, run.CompletedAt)
	assert.True(t, run.CompletedAt.After(run.CreatedAt))

	cook := built.MustFind(t, "Cook")
	assert.True(t, cook.Archived)
	assert.Equal(t, BaseTime.Add(2*time.Minute), cook.CreatedAt)

	assert.Nil(t, built.Find("Swim"))
}

func TestBuilderReturnsCopies(t *testing.T) {
	b := NewBuilder(t).WithGoal("Read", 30, model.DifficultyEasy).Completed()
	first := b.Build()
	second := b.Build()

	*first[0].CompletedAt = first[0].CompletedAt.Add(time.Hour)
	assert.NotEqual(t, *first[0].CompletedAt, *second[0].CompletedAt)
}
