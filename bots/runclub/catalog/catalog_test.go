package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := len(c.Days()); got != 6 {
		t.Fatalf("days = %d, want 6", got)
	}
	if got := len(c.SlotIDs()); got != 9 {
		t.Fatalf("slots = %d, want 9", got)
	}
	for _, id := range c.SlotIDs() {
		s, _ := c.Slot(id)
		if _, ok := c.Day(s.Day); !ok {
			t.Errorf("slot %s: day %s missing", id, s.Day)
		}
		if c.Addresses().Location(s.Address) == "" {
			t.Errorf("slot %s: no location", id)
		}
	}
	for _, id := range []string{"mon_run", "wed_run"} {
		s, _ := c.Slot(id)
		if !s.Selectable() {
			t.Errorf("%s should offer a coach choice", id)
		}
	}
	if s, _ := c.Slot("fri_gym"); s.Selectable() || s.Address != AddressGym {
		t.Errorf("fri_gym = %+v", s)
	}
	if len(c.Instructors()) != 2 {
		t.Fatalf("instructors = %v", c.Instructors())
	}
}

func TestSlotsForOrderedByStart(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	wed := c.SlotsFor("wed")
	if len(wed) != 2 || wed[0].ID != "wed_gym" || wed[1].ID != "wed_run" {
		t.Fatalf("wed slots = %+v", wed)
	}
	if got := c.SlotsFor("sat"); len(got) != 0 {
		t.Fatalf("unknown day returned %v", got)
	}
}

func TestNewReportsEveryProblem(t *testing.T) {
	data := DefaultData()
	data.Slots = append(data.Slots,
		Slot{ID: "mon_run", Day: "mon", Address: AddressRun, Time: TimeRange{"10:00", "11:00"}, Button: "x", Summary: "x"},
		Slot{ID: "sat_run", Day: "sat", Address: "pool", Time: TimeRange{"11:00", "10:00"}, Button: "x", Summary: "x"},
	)
	data.Days = append(data.Days, DayInfo{Key: "sat_empty", Label: "Суббота"})

	_, err := New(data)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"slot mon_run: duplicate id",
		`slot sat_run: unknown day "sat"`,
		`no venue for address type "pool"`,
		"end 10:00 is not after start 11:00",
		"day sat_empty: no slots",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestSelectableSlotNeedsInstructors(t *testing.T) {
	data := DefaultData()
	data.Instructors = nil
	if _, err := New(data); err == nil || !strings.Contains(err.Error(), "selectable but no instructors") {
		t.Fatalf("err = %v", err)
	}
}

func TestResolver(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	r := c.Addresses()
	if got := r.Location(AddressGym); got != "Старовиленская, 131/1" {
		t.Fatalf("gym location = %q", got)
	}
	want := "https://www.google.com/maps/search/?api=1&query=%D0%A0%D0%B0%D1%83%D0%B1%D0%B8%D1%87%D0%B8%2C+%D0%9C%D0%B8%D0%BD%D1%81%D0%BA%2C+%D0%91%D0%B5%D0%BB%D0%B0%D1%80%D1%83%D1%81%D1%8C"
	if got := r.GeoURL(AddressLong); got != want {
		t.Fatalf("GeoURL = %q", got)
	}
	if r.CardLabel(AddressRun) != "Беговая (улица)" || r.OperatorLabel(AddressRun) != "Беговая" {
		t.Fatalf("run labels = %q / %q", r.CardLabel(AddressRun), r.OperatorLabel(AddressRun))
	}
	if r.GeoURL("pool") != "" {
		t.Fatal("unknown type should have no url")
	}
	if !strings.Contains(r.FullAddress(AddressRun), "Манеж-стадион") {
		t.Fatalf("full run address = %q", r.FullAddress(AddressRun))
	}
}

func TestTimeRange(t *testing.T) {
	tr := TimeRange{"19:20", "20:50"}
	if tr.String() != "19:20–20:50" {
		t.Fatalf("String = %q", tr.String())
	}
	if tr.Prose() != "с 19:20 до 20:50" {
		t.Fatalf("Prose = %q", tr.Prose())
	}
}
