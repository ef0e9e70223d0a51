package booking

// Event is an input to the booking machine. The set of variants is closed.
type Event interface {
	kind() eventKind
}

type eventKind string

const (
	kindDay        eventKind = "day"
	kindSlot       eventKind = "slot"
	kindInstructor eventKind = "instructor"
	kindLevel      eventKind = "level"
	kindContact    eventKind = "contact"
	kindDecision   eventKind = "decision"
	kindMenu       eventKind = "menu"
	kindRestart    eventKind = "restart"
)

// Choice is the answer on the review screen.
type Choice string

const (
	ChoiceYes    Choice = "yes"
	ChoiceChange Choice = "change"
)

// DaySelected picks a weekday.
type DaySelected struct{ Day string }

// SlotSelected picks a slot of the chosen day.
type SlotSelected struct{ Slot string }

// InstructorSelected picks a coach.
type InstructorSelected struct{ Instructor string }

// LevelSelected picks a level.
type LevelSelected struct{ Level string }

// ContactSubmitted carries the free-text contact.
type ContactSubmitted struct{ Text string }

// Decision answers the review screen.
type Decision struct{ Choice Choice }

// Menu leaves the dialogue for the main menu.
type Menu struct{}

// Restart leaves the dialogue for the greeting.
type Restart struct{}

func (DaySelected) kind() eventKind        { return kindDay }
func (SlotSelected) kind() eventKind       { return kindSlot }
func (InstructorSelected) kind() eventKind { return kindInstructor }
func (LevelSelected) kind() eventKind      { return kindLevel }
func (ContactSubmitted) kind() eventKind   { return kindContact }
func (Decision) kind() eventKind           { return kindDecision }
func (Menu) kind() eventKind               { return kindMenu }
func (Restart) kind() eventKind            { return kindRestart }

// EventName names an event for logs.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return string(ev.kind())
}
