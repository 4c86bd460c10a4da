package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
)

func TestGoalForm_Complete(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		start    engine.CreateGoalInput
		expected engine.CreateGoalInput
	}{
		{
			name:  "everything prompted",
			input: "Learn Go\nFinish the tour\nhard\n35\n",
			expected: engine.CreateGoalInput{
				Title:       "Learn Go",
				Description: "Finish the tour",
				Difficulty:  model.DifficultyHard,
				Weight:      35,
			},
		},
		{
			name:  "defaults accepted",
			input: "Read\nTwo books\n\n\n",
			expected: engine.CreateGoalInput{
				Title:       "Read",
				Description: "Two books",
				Difficulty:  model.DifficultyMedium,
				Weight:      20,
			},
		},
		{
			name:  "only missing fields asked",
			input: "Every morning\n",
			start: engine.CreateGoalInput{Title: "Stretch", Difficulty: model.DifficultyEasy, Weight: 10},
			expected: engine.CreateGoalInput{
				Title:       "Stretch",
				Description: "Every morning",
				Difficulty:  model.DifficultyEasy,
				Weight:      10,
			},
		},
		{
			name:  "invalid answers are asked again",
			input: "T\nD\nimpossible\neasy\nlots\n150\n12.5\n",
			expected: engine.CreateGoalInput{
				Title:       "T",
				Description: "D",
				Difficulty:  model.DifficultyEasy,
				Weight:      12.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			form := NewGoalForm(strings.NewReader(tt.input), &out)

			in := tt.start
			require.NoError(t, form.Complete(context.Background(), &in, 20))
			assert.Equal(t, tt.expected, in)
		})
	}
}

func TestGoalForm_EOF(t *testing.T) {
	form := NewGoalForm(strings.NewReader(""), io.Discard)

	in := engine.CreateGoalInput{}
	err := form.Complete(context.Background(), &in, 20)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGoalForm_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pr.Close() }()
	defer func() { _ = pw.Close() }()

	form := NewGoalForm(pr, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	in := engine.CreateGoalInput{}
	err := form.Complete(ctx, &in, 20)
	assert.Equal(t, ErrInputCancelled, err)
}

func TestGoalForm_ReadAfterCancelKeepsLine(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pr.Close() }()

	form := NewGoalForm(pr, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := form.readLine(ctx)
	require.Equal(t, ErrInputCancelled, err)

	go func() {
		_, _ = io.WriteString(pw, "Walk\nDaily\n")
		_ = pw.Close()
	}()

	in := engine.CreateGoalInput{Difficulty: model.DifficultyEasy, Weight: 5}
	require.NoError(t, form.Complete(context.Background(), &in, 20))
	assert.Equal(t, "Walk", in.Title, "the line read for the canceled prompt is not lost")
	assert.Equal(t, "Daily", in.Description)
}
