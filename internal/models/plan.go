package models

import "gorm.io/datatypes"

// DayOfWeek names a training day
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Valid reports whether d is one of the seven day names
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Plan is a multi-week training plan leading up to an event
type Plan struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	EventDate datatypes.Date `json:"event_date" gorm:"not null" swaggertype:"string"`
	Weeks     []WeekPlan     `json:"weeks" gorm:"foreignKey:PlanID"`
}

// TableName returns the table name for the Plan model
func (Plan) TableName() string {
	return "plan"
}

// WeekPlan is one ordered week of a plan
type WeekPlan struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	PlanID   uint          `json:"plan_id" gorm:"not null;index"`
	Position int           `json:"position" gorm:"not null"`
	Notes    string        `json:"notes" gorm:"type:text"`
	Workouts []WorkoutPlan `json:"workouts" gorm:"foreignKey:WeekID"`
}

// TableName returns the table name for the WeekPlan model
func (WeekPlan) TableName() string {
	return "week_plan"
}

// WorkoutPlan schedules an optional Workout on a day of a week.
// WorkID is cleared when the referenced workout is deleted.
type WorkoutPlan struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlanID      uint      `json:"plan_id" gorm:"not null;index"`
	WeekID      uint      `json:"week_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	DayOfWeek   DayOfWeek `json:"day_of_week" gorm:"size:10;not null"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	Notes       string    `json:"notes" gorm:"type:text"`
	WorkID      *uint     `json:"work_id" gorm:"column:work_id;index"`
}

// TableName returns the table name for the WorkoutPlan model
func (WorkoutPlan) TableName() string {
	return "workout_plan"
}
