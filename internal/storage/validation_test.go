package storage

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Veraticus/ascend/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{name: "valid string", str: "test", paramName: "param", wantErr: false},
		{name: "empty string", str: "", paramName: "param", wantErr: true},
		{name: "whitespace only", str: "  \t ", paramName: "param", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyString) {
				t.Errorf("validateString() error = %v, want %v", err, ErrEmptyString)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    model.Goal
		wantErr bool
	}{
		{name: "valid active goal", goal: model.Goal{ID: "a", Weight: 40, Points: 80}},
		{name: "valid released goal", goal: model.Goal{ID: "a", Completed: true, Points: 80}},
		{name: "full budget", goal: model.Goal{ID: "a", Weight: 100}},
		{name: "rounding slack", goal: model.Goal{ID: "a", Weight: 100.0000001}},
		{name: "missing id", goal: model.Goal{Weight: 10}, wantErr: true},
		{name: "negative weight", goal: model.Goal{ID: "a", Weight: -1}, wantErr: true},
		{name: "weight over budget", goal: model.Goal{ID: "a", Weight: 101}, wantErr: true},
		{name: "NaN weight", goal: model.Goal{ID: "a", Weight: math.NaN()}, wantErr: true},
		{name: "infinite weight", goal: model.Goal{ID: "a", Weight: math.Inf(1)}, wantErr: true},
		{name: "negative points", goal: model.Goal{ID: "a", Points: -3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGoal(&tt.goal)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateGoal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGoal) {
				t.Errorf("validateGoal() error = %v, want %v", err, ErrInvalidGoal)
			}
		})
	}
}

func TestValidateGoals_Duplicates(t *testing.T) {
	goals := []model.Goal{{ID: "a"}, {ID: "b"}, {ID: "a"}}
	if err := validateGoals(goals); !errors.Is(err, ErrDuplicateGoal) {
		t.Errorf("validateGoals() error = %v, want %v", err, ErrDuplicateGoal)
	}
	if err := validateGoals(nil); err != nil {
		t.Errorf("validateGoals(nil) error = %v", err)
	}
}
