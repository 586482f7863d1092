package models

import "time"

// ExerciseUnit says whether an exercise instance is counted in time or repetitions
type ExerciseUnit string

const (
	UnitTime     ExerciseUnit = "CZAS"
	UnitQuantity ExerciseUnit = "ILOŚĆ"
)

// Valid reports whether the unit is one of the known values
func (u ExerciseUnit) Valid() bool {
	return u == UnitTime || u == UnitQuantity
}

// Workout is an ordered composition of sections
type Workout struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"size:255;not null"`
	Description string           `json:"description" gorm:"type:text"`
	Duration    *int             `json:"duration"`
	CreatedAt   time.Time        `json:"created_at"`
	Sections    []WorkoutSection `json:"sections" gorm:"foreignKey:WorkID"`
}

// TableName returns the table name for the Workout model
func (Workout) TableName() string {
	return "workouts"
}

// WorkoutSection is an ordered block inside a workout
type WorkoutSection struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	WorkID    uint              `json:"work_id" gorm:"column:work_id;not null;index"`
	Name      string            `json:"name" gorm:"size:255;not null"`
	Position  int               `json:"position" gorm:"not null"`
	Exercises []WorkoutExercise `json:"exercises" gorm:"many2many:section_exercises;joinForeignKey:SectionID;joinReferences:WorkoutExerciseID"`
}

// TableName returns the table name for the WorkoutSection model
func (WorkoutSection) TableName() string {
	return "workout_section"
}

// WorkoutExercise is one exercise instance with its own prescription
type WorkoutExercise struct {
	ID       uint         `json:"id" gorm:"primaryKey"`
	ExID     uint         `json:"ex_id" gorm:"column:ex_id;not null;index"`
	Sets     int          `json:"sets" gorm:"not null"`
	Quantity *int         `json:"quantity"`
	Unit     ExerciseUnit `json:"unit" gorm:"size:10;not null"`
	Duration *int         `json:"duration"`
	Rest     int          `json:"rest" gorm:"not null"`
	Position int          `json:"position" gorm:"not null"`
}

// TableName returns the table name for the WorkoutExercise model
func (WorkoutExercise) TableName() string {
	return "workout_exercise"
}
