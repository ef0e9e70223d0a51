package catalog

// Default builds the club's timetable.
func Default() (*Catalog, error) {
	return New(DefaultData())
}

// DefaultData returns the club's timetable as raw data, for callers that
// want to adjust it before building.
func DefaultData() Data {
	const coach = "Виталик"
	return Data{
		City: "Минск, Беларусь",
		Days: []DayInfo{
			{Key: "mon", Label: "Понедельник", Button: "🏃‍♂️ Понедельник"},
			{Key: "tue", Label: "Вторник", Button: "🏃‍♂️ Вторник"},
			{Key: "wed", Label: "Среда", Button: "🏃‍♂️🏋️‍♂️ Среда"},
			{Key: "thu", Label: "Четверг", Button: "🏃‍♂️ Четверг"},
			{Key: "fri", Label: "Пятница", Button: "🏋️‍♂️ Пятница"},
			{Key: "sun", Label: "Воскресенье", Button: "🏃‍♂️ Воскресенье"},
		},
		Instructors: []Instructor{
			{Key: "dasha", Name: "Даша"},
			{Key: "maxim", Name: "Максим"},
		},
		Venues: []Venue{
			{
				Type:          AddressRun,
				Location:      "Калиновского, 111",
				Full:          "Адрес тренировки\n\n📍 Калиновского, 111\nМанеж-стадион",
				CardLabel:     "Беговая (улица)",
				OperatorLabel: "Беговая",
			},
			{
				Type:          AddressGym,
				Location:      "Старовиленская, 131/1",
				Full:          "Адрес тренировки\n\n📍 Старовиленская, 131/1\n(зал)",
				CardLabel:     "Силовая (зал)",
				OperatorLabel: "Силовая (зал)",
			},
			{
				Type:          AddressLong,
				Location:      "Раубичи",
				Full:          "Адрес тренировки\n\n📍 Раубичи\nдлительная беговая тренировка (лонг)",
				CardLabel:     "Длительная",
				OperatorLabel: "Длительная",
			},
		},
		Slots: []Slot{
			{
				ID: "mon_run", Day: "mon", Address: AddressRun,
				Time:    TimeRange{"19:20", "20:50"},
				Button:  "🏃‍♂️ Беговая 19:20–20:50",
				Summary: "Понедельник — Беговая 19:20–20:50",
			},
			{
				ID: "tue_morning", Day: "tue", Address: AddressRun,
				Time: TimeRange{"07:30", "09:00"}, DefaultInstructor: coach,
				Button:  "🏃‍♂️ Утро 07:30–09:00 (Виталик)",
				Summary: "Вторник — Беговая утро 07:30–09:00 (Виталик)",
			},
			{
				ID: "tue_evening", Day: "tue", Address: AddressRun,
				Time: TimeRange{"19:10", "20:40"}, DefaultInstructor: coach,
				Button:  "🏃‍♂️ Вечер 19:10–20:40 (Виталик)",
				Summary: "Вторник — Беговая вечер 19:10–20:40 (Виталик)",
			},
			{
				ID: "wed_gym", Day: "wed", Address: AddressGym,
				Time: TimeRange{"07:30", "08:40"}, DefaultInstructor: coach,
				Button:  "🏋️‍♂️ Силовая (зал) 07:30–08:40",
				Summary: "Среда — Силовая (зал) 07:30–08:40",
			},
			{
				ID: "wed_run", Day: "wed", Address: AddressRun,
				Time:    TimeRange{"19:20", "20:50"},
				Button:  "🏃‍♂️ Беговая 19:20–20:50",
				Summary: "Среда — Беговая 19:20–20:50",
			},
			{
				ID: "thu_morning", Day: "thu", Address: AddressRun,
				Time: TimeRange{"07:30", "09:00"}, DefaultInstructor: coach,
				Button:  "🏃‍♂️ Утро 07:30–09:00 (Виталик)",
				Summary: "Четверг — Беговая утро 07:30–09:00 (Виталик)",
			},
			{
				ID: "thu_evening", Day: "thu", Address: AddressRun,
				Time: TimeRange{"19:10", "20:40"}, DefaultInstructor: coach,
				Button:  "🏃‍♂️ Вечер 19:10–20:40 (Виталик)",
				Summary: "Четверг — Беговая вечер 19:10–20:40 (Виталик)",
			},
			{
				ID: "fri_gym", Day: "fri", Address: AddressGym,
				Time: TimeRange{"19:10", "20:20"}, DefaultInstructor: coach,
				Button:  "🏋️‍♂️ Силовая (зал) 19:10–20:20",
				Summary: "Пятница — Силовая (зал) 19:10–20:20",
			},
			{
				ID: "sun_long", Day: "sun", Address: AddressLong,
				Time: TimeRange{"09:00", "10:30"}, DefaultInstructor: NoInstructor,
				Button:  "🏃‍♂️ Длительная беговая 09:00–10:30, Раубичи",
				Summary: "Воскресенье — Длительная беговая 09:00–10:30, Раубичи",
			},
		},
	}
}
