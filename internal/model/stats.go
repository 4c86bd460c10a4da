package model

// ProgressStats is a projection of the goal collection.
// TotalGoals and CompletedGoals count non-archived goals only, while
// TotalPoints includes archived completed goals.
type ProgressStats struct {
	TotalGoals        int
	CompletedGoals    int
	TotalProgress     float64
	TotalPoints       int
	CurrentLevel      int
	PointsToNextLevel int
}
