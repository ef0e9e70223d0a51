package booking

import (
	"fmt"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/catalog"
)

// Details are the display attributes of a draft resolved from the catalog.
type Details struct {
	Day      catalog.Day
	DayLabel string
	Slot     catalog.Slot
	// SlotLabel is the slot summary, followed by the coach when one was chosen.
	SlotLabel     string
	Address       catalog.AddressType
	Location      string
	GeoURL        string
	CardLabel     string
	OperatorLabel string
	Time          catalog.TimeRange
	Instructor    string
	Level         Level
	Contact       string
}

// Finalized is a confirmed booking. It is never modified.
type Finalized struct {
	Details
	ID          string
	ConfirmedAt time.Time
}

// Resolve derives display attributes of a draft that has a slot.
func (m *Machine) Resolve(d Draft) (Details, error) {
	slot, ok := m.cat.Slot(d.Slot)
	if !ok {
		return Details{}, fmt.Errorf("%w: slot %q", ErrUnknownOption, d.Slot)
	}
	addr := m.cat.Addresses()
	det := Details{
		Day:           d.Day,
		DayLabel:      Placeholder,
		Slot:          slot,
		SlotLabel:     slot.Summary,
		Address:       slot.Address,
		Location:      addr.Location(slot.Address),
		GeoURL:        addr.GeoURL(slot.Address),
		CardLabel:     addr.CardLabel(slot.Address),
		OperatorLabel: addr.OperatorLabel(slot.Address),
		Time:          slot.Time,
		Instructor:    slot.DefaultInstructor,
		Level:         d.Level,
		Contact:       d.Contact,
	}
	if info, ok := m.cat.Day(d.Day); ok {
		det.DayLabel = info.Label
	}
	if in, ok := m.cat.Instructor(d.Instructor); ok && d.Instructor != "" {
		det.Instructor = in.Name
		det.SlotLabel = slot.Summary + ", " + in.Name
	}
	if det.Instructor == "" {
		det.Instructor = Placeholder
	}
	return det, nil
}

// Finalize resolves a draft into a confirmed booking with a fresh id.
func (m *Machine) Finalize(d Draft) (Finalized, error) {
	det, err := m.Resolve(d)
	if err != nil {
		return Finalized{}, err
	}
	return Finalized{
		Details:     det,
		ID:          m.opts.NewID(),
		ConfirmedAt: m.opts.Now().UTC(),
	}, nil
}
