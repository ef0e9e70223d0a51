// Package catalog holds the club timetable: days, training slots, coaches
// and the venues slots are held at. A Catalog is immutable once built and
// safe to share between goroutines.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Day is a weekday key such as "mon".
type Day string

// AddressType classifies a slot by where it takes place.
type AddressType string

const (
	AddressRun  AddressType = "run"
	AddressGym  AddressType = "gym"
	AddressLong AddressType = "long"
)

// NoInstructor is shown when a slot has no named coach.
const NoInstructor = "—"

// TimeRange is a clock interval in "15:04" notation.
type TimeRange struct {
	Start string
	End   string
}

// String renders the range as "19:20–20:50".
func (t TimeRange) String() string {
	return t.Start + "–" + t.End
}

// Prose renders the range as "с 19:20 до 20:50".
func (t TimeRange) Prose() string {
	return "с " + t.Start + " до " + t.End
}

func (t TimeRange) validate() error {
	start, err := time.Parse("15:04", t.Start)
	if err != nil {
		return fmt.Errorf("bad start %q", t.Start)
	}
	end, err := time.Parse("15:04", t.End)
	if err != nil {
		return fmt.Errorf("bad end %q", t.End)
	}
	if !end.After(start) {
		return fmt.Errorf("end %s is not after start %s", t.End, t.Start)
	}
	return nil
}

// DayInfo describes one bookable weekday.
type DayInfo struct {
	Key    Day
	Label  string
	Button string
}

// Instructor is a coach a user can pick for a selectable slot.
type Instructor struct {
	Key  string
	Name string
}

// Slot is one recurring training block.
type Slot struct {
	ID      string
	Day     Day
	Address AddressType
	Time    TimeRange
	// DefaultInstructor is empty when the user picks the coach.
	DefaultInstructor string
	Button            string
	Summary           string
}

// Selectable reports whether the user chooses the coach for this slot.
func (s Slot) Selectable() bool {
	return s.DefaultInstructor == ""
}

// Data is the raw material a Catalog is built from.
type Data struct {
	Days        []DayInfo
	Slots       []Slot
	Venues      []Venue
	Instructors []Instructor
	// City is appended to venue names in map searches.
	City string
}

// Catalog answers timetable lookups.
type Catalog struct {
	days        []DayInfo
	dayIndex    map[Day]int
	slots       map[string]Slot
	byDay       map[Day][]string
	instructors []Instructor
	addresses   Resolver
}

// New validates data and builds a Catalog. All integrity problems are
// reported together.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		dayIndex: make(map[Day]int, len(data.Days)),
		slots:    make(map[string]Slot, len(data.Slots)),
		byDay:    make(map[Day][]string, len(data.Days)),
	}
	var errs []error

	for _, d := range data.Days {
		switch {
		case d.Key == "":
			errs = append(errs, errors.New("day with empty key"))
			continue
		case strings.TrimSpace(d.Label) == "":
			errs = append(errs, fmt.Errorf("day %s: empty label", d.Key))
		}
		if _, dup := c.dayIndex[d.Key]; dup {
			errs = append(errs, fmt.Errorf("day %s: duplicate", d.Key))
			continue
		}
		if d.Button == "" {
			d.Button = d.Label
		}
		c.dayIndex[d.Key] = len(c.days)
		c.days = append(c.days, d)
	}

	resolver, err := newResolver(data.Venues, data.City)
	if err != nil {
		errs = append(errs, err)
	}
	c.addresses = resolver

	seenCoach := map[string]struct{}{}
	for _, in := range data.Instructors {
		if in.Key == "" || strings.TrimSpace(in.Name) == "" {
			errs = append(errs, fmt.Errorf("instructor %q: key and name are required", in.Key))
			continue
		}
		if _, dup := seenCoach[in.Key]; dup {
			errs = append(errs, fmt.Errorf("instructor %s: duplicate", in.Key))
			continue
		}
		seenCoach[in.Key] = struct{}{}
		c.instructors = append(c.instructors, in)
	}

	for _, s := range data.Slots {
		if s.ID == "" {
			errs = append(errs, errors.New("slot with empty id"))
			continue
		}
		if _, dup := c.slots[s.ID]; dup {
			errs = append(errs, fmt.Errorf("slot %s: duplicate id", s.ID))
			continue
		}
		if _, ok := c.dayIndex[s.Day]; !ok {
			errs = append(errs, fmt.Errorf("slot %s: unknown day %q", s.ID, s.Day))
		}
		if !resolver.Has(s.Address) {
			errs = append(errs, fmt.Errorf("slot %s: no venue for address type %q", s.ID, s.Address))
		}
		if err := s.Time.validate(); err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", s.ID, err))
		}
		if s.Button == "" || s.Summary == "" {
			errs = append(errs, fmt.Errorf("slot %s: button and summary labels are required", s.ID))
		}
		if s.Selectable() && len(data.Instructors) == 0 {
			errs = append(errs, fmt.Errorf("slot %s: selectable but no instructors configured", s.ID))
		}
		c.slots[s.ID] = s
		c.byDay[s.Day] = append(c.byDay[s.Day], s.ID)
	}

	for _, d := range c.days {
		if len(c.byDay[d.Key]) == 0 {
			errs = append(errs, fmt.Errorf("day %s: no slots", d.Key))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	for day := range c.byDay {
		ids := c.byDay[day]
		sort.SliceStable(ids, func(i, j int) bool {
			return c.slots[ids[i]].Time.Start < c.slots[ids[j]].Time.Start
		})
	}
	return c, nil
}

// Days returns the bookable days in display order.
func (c *Catalog) Days() []DayInfo {
	return append([]DayInfo(nil), c.days...)
}

// Day looks up a day by key.
func (c *Catalog) Day(key Day) (DayInfo, bool) {
	i, ok := c.dayIndex[key]
	if !ok {
		return DayInfo{}, false
	}
	return c.days[i], true
}

// SlotsFor lists the slots of one day ordered by start time.
func (c *Catalog) SlotsFor(day Day) []Slot {
	ids := c.byDay[day]
	out := make([]Slot, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.slots[id])
	}
	return out
}

// Slot looks up a slot by id.
func (c *Catalog) Slot(id string) (Slot, bool) {
	s, ok := c.slots[id]
	return s, ok
}

// SlotIDs returns every slot id, sorted.
func (c *Catalog) SlotIDs() []string {
	ids := make([]string, 0, len(c.slots))
	for id := range c.slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Instructors lists the coaches offered for selectable slots.
func (c *Catalog) Instructors() []Instructor {
	return append([]Instructor(nil), c.instructors...)
}

// Instructor looks up a coach by key.
func (c *Catalog) Instructor(key string) (Instructor, bool) {
	for _, in := range c.instructors {
		if in.Key == key {
			return in, true
		}
	}
	return Instructor{}, false
}

// Addresses returns the venue resolver.
func (c *Catalog) Addresses() Resolver {
	return c.addresses
}
