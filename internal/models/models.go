package models

// All returns every persisted model in dependency order for migration
func All() []any {
	return []any{
		&Tag{},
		&Exercise{},
		&Analyser{},
		&Annotation{},
		&Clip{},
		&WorkoutExercise{},
		&Workout{},
		&WorkoutSection{},
		&Plan{},
		&WeekPlan{},
		&WorkoutPlan{},
	}
}
