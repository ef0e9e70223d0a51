package confirm

import (
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
)

func setup(t *testing.T, opts Options) (*booking.Machine, *Formatter) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	m, err := booking.NewMachine(cat, booking.Options{
		NewID: func() string { return "ref" },
		Now:   func() time.Time { return time.Unix(0, 0) },
	})
	if err != nil {
		t.Fatal(err)
	}
	return m, New(m, opts)
}

func walk(t *testing.T, m *booking.Machine, events ...booking.Event) booking.Draft {
	t.Helper()
	d := m.Start()
	for _, ev := range events {
		res, err := m.Apply(d, ev)
		if err != nil {
			t.Fatalf("%s: %v", booking.EventName(ev), err)
		}
		d = res.Draft
	}
	return d
}

func TestReviewIsDeterministicAndEscaped(t *testing.T) {
	m, f := setup(t, Options{})
	d := walk(t, m,
		booking.DaySelected{Day: "wed"},
		booking.SlotSelected{Slot: "wed_gym"},
		booking.LevelSelected{Level: "advanced"},
		booking.ContactSubmitted{Text: "<b>Ivan</b> & co"},
	)
	first, err := f.Review(d, "Anna <script>")
	if err != nil {
		t.Fatal(err)
	}
	second, _ := f.Review(d, "Anna <script>")
	if first != second {
		t.Fatal("review is not deterministic")
	}
	for _, want := range []string{
		"👤 Имя: Anna &lt;script&gt;",
		"📞 Контакт: &lt;b&gt;Ivan&lt;/b&gt; &amp; co",
		"📅 День: Среда",
		"🏃‍♂️ Тренировка: Силовая (зал)",
		"⏰ Время: 07:30–08:40",
		"🎯 Уровень: Продвинутый",
		"📍 Локация: Старовиленская, 131/1",
		`<a href="https://www.google.com/maps/search/?api=1&amp;query=`,
		"Всё верно? 👇",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("review missing %q:\n%s", want, first)
		}
	}
	if strings.Contains(first, "<b>Ivan") {
		t.Fatal("contact not escaped")
	}
}

func TestFinalForStreetRun(t *testing.T) {
	m, f := setup(t, Options{CoachHandle: "@coach_pramuk", PaymentInfo: "на месте", ContactAdmin: "+375 29 000"})
	d := walk(t, m,
		booking.DaySelected{Day: "wed"},
		booking.SlotSelected{Slot: "wed_run"},
		booking.InstructorSelected{Instructor: "maxim"},
		booking.LevelSelected{Level: "beginner"},
		booking.ContactSubmitted{Text: "Ivan, +375291112233"},
	)
	res, err := m.Apply(d, booking.Decision{Choice: booking.ChoiceYes})
	if err != nil {
		t.Fatal(err)
	}
	text := f.Final(*res.Booking)
	for _, want := range []string{
		"Записали вас ✅",
		"📅 День: Среда",
		"🏃‍♂️ Тренировка: Беговая (улица)",
		"⏰ Время: с 19:20 до 20:50",
		"🎯 Уровень: Новичок",
		"👤 Тренер: Максим",
		"• Кроссовки по погоде",
		"напишите руководителю: @coach_pramuk",
		"Оплата: на месте",
		"Контакт: +375 29 000",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("final missing %q", want)
		}
	}
	if strings.Contains(text, "для зала") {
		t.Fatal("street booking got gym guidance")
	}
}

func TestFinalForGymAndOptionalLines(t *testing.T) {
	m, f := setup(t, Options{})
	d := walk(t, m,
		booking.DaySelected{Day: "fri"},
		booking.SlotSelected{Slot: "fri_gym"},
		booking.LevelSelected{Level: "unknown"},
		booking.ContactSubmitted{Text: "@me"},
	)
	fin, err := m.Finalize(d)
	if err != nil {
		t.Fatal(err)
	}
	text := f.Final(fin)
	if !strings.Contains(text, "• Кроссовки для зала") || !strings.Contains(text, "👤 Тренер: Виталик") {
		t.Fatalf("gym final:\n%s", text)
	}
	for _, absent := range []string{"Оплата:", "Контакт:", "руководителю"} {
		if strings.Contains(text, absent) {
			t.Errorf("unconfigured line %q rendered", absent)
		}
	}
}

func TestOperatorSummary(t *testing.T) {
	m, f := setup(t, Options{})
	d := walk(t, m,
		booking.DaySelected{Day: "sun"},
		booking.SlotSelected{Slot: "sun_long"},
		booking.LevelSelected{Level: "medium"},
		booking.ContactSubmitted{Text: "Olga <3"},
	)
	fin, err := m.Finalize(d)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"📝 Новая запись на тренировку",
		"",
		"👤 Имя: Olga",
		"📞 Контакт: Olga <3",
		"📅 День: Воскресенье",
		"🏃‍♂️ Тренировка: Длительная",
		"⏰ Время: 09:00–10:30",
		"🎯 Уровень: Средний",
		"📍 Локация: Раубичи",
	}, "\n")
	if got := f.Operator(fin, "Olga"); got != want {
		t.Fatalf("operator summary:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct{ first, last, user, want string }{
		{"Anna", "Ivanova", "anna", "Anna Ivanova"},
		{" Anna ", "", "anna", "Anna"},
		{"", "", "anna", "@anna"},
		{"", "", "", "—"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.first, tc.last, tc.user); got != tc.want {
			t.Errorf("DisplayName(%q,%q,%q) = %q, want %q", tc.first, tc.last, tc.user, got, tc.want)
		}
	}
}

func TestReviewNeedsSlot(t *testing.T) {
	_, f := setup(t, Options{})
	if _, err := f.Review(booking.Draft{Stage: booking.StageConfirm}, "x"); err == nil {
		t.Fatal("expected error for draft without slot")
	}
}
