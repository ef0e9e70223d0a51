package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/runclub/bots/runclub/catalog"
)

// Exit tells the caller where the dialogue went after an event.
type Exit int

const (
	// ExitNone keeps the dialogue going.
	ExitNone Exit = iota
	// ExitMenu discards the draft and shows the main menu.
	ExitMenu
	// ExitRestart discards the draft and shows the greeting.
	ExitRestart
	// ExitDone means the booking was confirmed.
	ExitDone
)

// Result is the outcome of Apply.
type Result struct {
	Draft   Draft
	Exit    Exit
	Booking *Finalized
}

// Options tune a Machine.
type Options struct {
	// KeepDraftOnChange keeps slot, coach, level and contact when the user
	// chooses to change a reviewed booking. By default they are cleared.
	KeepDraftOnChange bool
	Now               func() time.Time
	NewID             func() string
}

type step func(m *Machine, d Draft, ev Event) (Result, error)

// transitions names the only progress event each stage accepts.
// Menu and Restart are accepted everywhere.
var transitions = map[Stage]eventKind{
	StageDay:        kindDay,
	StageSlot:       kindSlot,
	StageInstructor: kindInstructor,
	StageLevel:      kindLevel,
	StageContact:    kindContact,
	StageConfirm:    kindDecision,
}

var steps = map[eventKind]step{
	kindDay: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, err := m.SelectDay(d, ev.(DaySelected).Day)
		return Result{Draft: next}, err
	},
	kindSlot: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, err := m.SelectSlot(d, ev.(SlotSelected).Slot)
		return Result{Draft: next}, err
	},
	kindInstructor: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, err := m.SelectInstructor(d, ev.(InstructorSelected).Instructor)
		return Result{Draft: next}, err
	},
	kindLevel: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, err := m.SelectLevel(d, ev.(LevelSelected).Level)
		return Result{Draft: next}, err
	},
	kindContact: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, err := m.SubmitContact(d, ev.(ContactSubmitted).Text)
		return Result{Draft: next}, err
	},
	kindDecision: func(m *Machine, d Draft, ev Event) (Result, error) {
		next, fin, err := m.Confirm(d, ev.(Decision).Choice)
		res := Result{Draft: next, Booking: fin}
		if fin != nil {
			res.Exit = ExitDone
		}
		return res, err
	},
}

// Machine applies booking events to drafts. Drafts are values: every
// operation returns the next draft and leaves its input untouched, and a
// failed operation returns the input as is.
type Machine struct {
	cat  *catalog.Catalog
	opts Options
}

// NewMachine binds a machine to a catalog and checks the transition table.
func NewMachine(cat *catalog.Catalog, opts Options) (*Machine, error) {
	if cat == nil {
		return nil, errors.New("booking: nil catalog")
	}
	if err := checkTransitions(); err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.NewString() }
	}
	return &Machine{cat: cat, opts: opts}, nil
}

func checkTransitions() error {
	var errs []error
	for _, st := range Stages {
		k, ok := transitions[st]
		if !ok {
			errs = append(errs, fmt.Errorf("stage %s accepts no event", st))
			continue
		}
		if _, ok := steps[k]; !ok {
			errs = append(errs, fmt.Errorf("stage %s: no step for event %s", st, k))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("booking: transition table: %w", err)
	}
	return nil
}

// Catalog returns the catalog the machine resolves against.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.cat
}

// Start returns a fresh draft waiting for a day. It replaces any previous draft.
func (m *Machine) Start() Draft {
	return Draft{Stage: StageDay}
}

// Apply feeds one event to the draft.
func (m *Machine) Apply(d Draft, ev Event) (Result, error) {
	if ev == nil {
		return Result{Draft: d}, ErrUnexpectedInput
	}
	switch ev.kind() {
	case kindMenu:
		return Result{Draft: Draft{Stage: StageIdle}, Exit: ExitMenu}, nil
	case kindRestart:
		return Result{Draft: Draft{Stage: StageIdle}, Exit: ExitRestart}, nil
	}
	if !d.Active() {
		return Result{Draft: d}, ErrNoDraft
	}
	if want, ok := transitions[d.Stage]; !ok || want != ev.kind() {
		return Result{Draft: d}, fmt.Errorf("%w: %s at %s", ErrUnexpectedInput, ev.kind(), d.Stage)
	}
	res, err := steps[ev.kind()](m, d, ev)
	if err != nil {
		return Result{Draft: d}, err
	}
	return res, nil
}

func (m *Machine) expect(d Draft, st Stage) error {
	if !d.Active() {
		return ErrNoDraft
	}
	if d.Stage != st {
		return fmt.Errorf("%w: expected %s, at %s", ErrUnexpectedInput, st, d.Stage)
	}
	return nil
}

// SelectDay records the weekday and moves to slot selection.
func (m *Machine) SelectDay(d Draft, day string) (Draft, error) {
	if err := m.expect(d, StageDay); err != nil {
		return d, err
	}
	info, ok := m.cat.Day(catalog.Day(day))
	if !ok {
		return d, fmt.Errorf("%w: day %q", ErrUnknownOption, day)
	}
	next := d
	next.Day = info.Key
	next.Stage = StageSlot
	return next, nil
}

// SelectSlot records a slot of the chosen day. Slots with a fixed coach skip
// the coach step.
func (m *Machine) SelectSlot(d Draft, slotID string) (Draft, error) {
	if err := m.expect(d, StageSlot); err != nil {
		return d, err
	}
	slot, ok := m.cat.Slot(slotID)
	if !ok || slot.Day != d.Day {
		return d, fmt.Errorf("%w: slot %q on %s", ErrUnknownOption, slotID, d.Day)
	}
	next := d
	next.Slot = slot.ID
	if slot.Selectable() {
		next.Stage = StageInstructor
		return next, nil
	}
	if !m.opts.KeepDraftOnChange {
		next.Instructor = ""
	}
	next.Stage = StageLevel
	return next, nil
}

// SelectInstructor records the coach and moves to level selection.
func (m *Machine) SelectInstructor(d Draft, key string) (Draft, error) {
	if err := m.expect(d, StageInstructor); err != nil {
		return d, err
	}
	in, ok := m.cat.Instructor(key)
	if !ok {
		return d, fmt.Errorf("%w: instructor %q", ErrUnknownOption, key)
	}
	next := d
	next.Instructor = in.Key
	next.Stage = StageLevel
	return next, nil
}

// SelectLevel records the level and moves to contact entry.
func (m *Machine) SelectLevel(d Draft, level string) (Draft, error) {
	if err := m.expect(d, StageLevel); err != nil {
		return d, err
	}
	l, ok := ParseLevel(level)
	if !ok {
		return d, fmt.Errorf("%w: level %q", ErrUnknownOption, level)
	}
	next := d
	next.Level = l
	next.Stage = StageContact
	return next, nil
}

// SubmitContact stores trimmed contact text and moves to review.
func (m *Machine) SubmitContact(d Draft, text string) (Draft, error) {
	if err := m.expect(d, StageContact); err != nil {
		return d, err
	}
	contact := strings.TrimSpace(text)
	if contact == "" {
		return d, ErrEmptyContact
	}
	next := d
	next.Contact = contact
	next.Stage = StageConfirm
	return next, nil
}

// Confirm answers the review screen. ChoiceChange loops back to day
// selection; ChoiceYes finalizes the booking and ends the dialogue.
func (m *Machine) Confirm(d Draft, choice Choice) (Draft, *Finalized, error) {
	if err := m.expect(d, StageConfirm); err != nil {
		return d, nil, err
	}
	switch choice {
	case ChoiceChange:
		if m.opts.KeepDraftOnChange {
			next := d
			next.Stage = StageDay
			return next, nil, nil
		}
		return Draft{Stage: StageDay}, nil, nil
	case ChoiceYes:
		fin, err := m.Finalize(d)
		if err != nil {
			return d, nil, err
		}
		return Draft{Stage: StageIdle}, &fin, nil
	default:
		return d, nil, fmt.Errorf("%w: decision %q", ErrUnknownOption, choice)
	}
}
