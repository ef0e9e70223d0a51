// Package booking implements the booking dialogue: a per-user draft that is
// walked through day, slot, optional coach, level and contact before it is
// confirmed into a Finalized booking.
package booking

import (
	"errors"

	"github.com/m3rciful/runclub/bots/runclub/catalog"
)

var (
	// ErrUnexpectedInput is returned for input the current stage does not accept.
	ErrUnexpectedInput = errors.New("booking: unexpected input")
	// ErrUnknownOption is returned for a day, slot, coach or level that does not exist.
	ErrUnknownOption = errors.New("booking: unknown option")
	// ErrEmptyContact is returned when the contact text is blank.
	ErrEmptyContact = errors.New("booking: empty contact")
	// ErrNoDraft is returned when no booking is in progress.
	ErrNoDraft = errors.New("booking: no draft in progress")
)

// Placeholder stands in for a value that is not known.
const Placeholder = "—"

// Stage is a step of the booking dialogue.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageDay        Stage = "day_select"
	StageSlot       Stage = "slot_select"
	StageInstructor Stage = "instructor_select"
	StageLevel      Stage = "level_select"
	StageContact    Stage = "contact_entry"
	StageConfirm    Stage = "confirm"
)

// Stages lists the active stages in dialogue order.
var Stages = []Stage{StageDay, StageSlot, StageInstructor, StageLevel, StageContact, StageConfirm}

// Level is the self-assessed fitness level.
type Level string

const (
	LevelBeginner Level = "beginner"
	LevelMedium   Level = "medium"
	LevelAdvanced Level = "advanced"
	LevelUnknown  Level = "unknown"
)

// Levels lists levels in display order.
var Levels = []Level{LevelBeginner, LevelMedium, LevelAdvanced, LevelUnknown}

var levelLabels = map[Level]string{
	LevelBeginner: "Новичок",
	LevelMedium:   "Средний",
	LevelAdvanced: "Продвинутый",
	LevelUnknown:  "Не знаю",
}

// Label is the Russian name of the level.
func (l Level) Label() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return Placeholder
}

// ParseLevel accepts a level key.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	_, ok := levelLabels[l]
	return l, ok
}

// Draft is the in-progress booking of one user. The zero value is idle.
type Draft struct {
	Stage Stage
	Day   catalog.Day
	Slot  string
	// Instructor is the key of a chosen coach; empty for fixed-coach slots.
	Instructor string
	Level      Level
	Contact    string
}

// Active reports whether a booking is in progress.
func (d Draft) Active() bool {
	return d.Stage != "" && d.Stage != StageIdle
}
