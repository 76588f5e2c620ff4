// Package plan generates personalized weekly workout plans from an exercise
// catalog, a user profile, and a plan template.
package plan

import (
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
)

// Template identifies the weekly plan layout.
type Template string

// Plan template constants.
const (
	TemplateFullBody   Template = "full_body"
	TemplateUpperLower Template = "upper_lower"
	TemplatePPL        Template = "ppl"
	TemplateCardioCore Template = "cardio_core"
	TemplateMobility   Template = "mobility"
	TemplateGoal       Template = "goal"
)

// EquipmentMode is the coarse equipment availability setting. The mode both
// widens the allowed equipment set and, for quiet mode, drives the noise
// blocklist.
type EquipmentMode string

// Equipment mode constants.
const (
	// ModeWeek is bodyweight-only training at home on weekdays.
	ModeWeek EquipmentMode = "week"
	// ModeWeekend adds free weights and a bench.
	ModeWeekend EquipmentMode = "weekend"
	// ModeGym adds machine-class equipment.
	ModeGym EquipmentMode = "gym"
)

// PrescriptionType distinguishes repetition-based from time-based work.
type PrescriptionType string

// Prescription type constants.
const (
	PrescriptionReps PrescriptionType = "reps"
	PrescriptionTime PrescriptionType = "time"
)

// Prescription is the computed dose for one planned exercise. Reps-type
// prescriptions fill Sets/Reps, time-type prescriptions fill WorkSec.
type Prescription struct {
	Type    PrescriptionType `json:"type"`
	Sets    int              `json:"sets,omitempty"`
	Reps    int              `json:"reps,omitempty"`
	WorkSec int              `json:"workSec,omitempty"`
	RestSec int              `json:"restSec"`
}

// PlannedExercise is a catalog exercise placed into a plan-day slot. The
// InstanceID is unique per placement so the same exercise can occupy two
// slots of a plan without ambiguity.
type PlannedExercise struct {
	catalog.Exercise
	InstanceID   string       `json:"instanceId"`
	Prescription Prescription `json:"prescription"`
}

// PlanDay is one training day of a generated plan.
type PlanDay struct {
	Title         string            `json:"title"`
	Mode          EquipmentMode     `json:"mode"`
	Quiet         bool              `json:"quiet"`
	Focus         string            `json:"focus"`
	EquipmentList []string          `json:"equipmentList,omitempty"`
	Exercises     []PlannedExercise `json:"exercises"`
	XP            int               `json:"xp"`
}

// SlotType marks a calendar weekday as a rest or training slot.
type SlotType string

// Week slot constants.
const (
	SlotRest  SlotType = "rest"
	SlotTrain SlotType = "train"
)

// WeekSlot is one of the seven calendar weekday slots of a plan.
type WeekSlot struct {
	Type  SlotType `json:"type"`
	Title string   `json:"title,omitempty"`
}

// Plan is a complete generated weekly plan together with the pool snapshot it
// was drawn from. Consumers persist it as opaque JSON.
type Plan struct {
	CreatedAt    time.Time          `json:"createdAt"`
	Days         []PlanDay          `json:"days"`
	TotalXP      int                `json:"totalXp"`
	Pool         []catalog.Exercise `json:"pool"`
	Template     Template           `json:"template"`
	WeekSchedule [7]WeekSlot        `json:"weekSchedule"`
}

// Profile is the user input driving plan generation. Field names follow the
// stored profile: nivel is the fitness level name, objetivo the goal name.
type Profile struct {
	Nivel             string   `json:"nivel"`
	Objetivo          string   `json:"objetivo"`
	PlanTemplate      Template `json:"planTemplate"`
	TrainDays         []int    `json:"trainDays"`
	Equipment         []string `json:"equipment,omitempty"`
	Quiet             bool     `json:"quiet"`
	WeeklyXPGoal      int      `json:"weeklyXpGoal"`
	WeeklyMinutesGoal int      `json:"weeklyMinutesGoal"`
}

// LevelProfile holds the numeric ranges for one fitness level.
type LevelProfile struct {
	MinSets          int
	MaxSets          int
	RepBase          int
	RepStep          int
	WorkBase         int
	WorkStep         int
	RestBase         int
	RestStep         int
	DayExerciseCount int
}
