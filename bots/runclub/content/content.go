// Package content holds the static screens of the bot: greetings, prices,
// schedule, clothing advice and training descriptions.
package content

import "strings"

const (
	Greeting = "Привет! 👋\n\n" +
		"Я помогу записаться на тренировку и отвечу на вопросы.\n\n" +
		"Нажмите кнопку ниже, чтобы начать 👇"

	RestartGreeting = "Привет 👋\n\n" +
		"• Запись на тренировку\n" +
		"• Ответы на вопросы\n\n" +
		"Нажмите кнопку ниже 👇"

	MainMenu = "Чем помочь?\n\nВыберите 👇"

	ChooseDay        = "Выберите день недели 👇"
	ChooseSlot       = "Выберите тренировку 👇"
	ChooseInstructor = "Выберите тренера 👇"
	ChooseLevel      = "Ваш уровень?\n\nНажмите кнопку ниже 👇"
	ContactPrompt    = "Контакт для связи\n\n" +
		"• Имя и телефон или @ник в Telegram\n\n" +
		"Напишите одним сообщением 👇"
	ContactReprompt = "Напишите имя и контакт одним сообщением 👇"

	Unexpected  = "Похоже, я не понял. Давайте продолжим через меню 👇"
	Unsupported = "Кнопка устарела. Откройте меню 👇"
	SlowDown    = "Слишком много сообщений подряд. Подождите пару секунд 🙏"

	ChooseCoachForPrice = "Выберите тренера 👇"
	ChooseTopic         = "Выберите тему 👇"
	ChooseTrainingType  = "Выберите тип тренировки 👇"
	LocationsChoice     = "Адрес\n\nВыберите тип тренировки 👇"
	FormChoice          = "Что надеть\n\nВыберите тип тренировки 👇"
	WeatherChoice       = "Погода у вас? 👇"

	QuestionPrompt = "✍️ Задайте свой вопрос\n\n" +
		"Напишите ваш вопрос сообщением,\n" +
		"и мы обязательно вам ответим."
	QuestionThanks = "Спасибо, ваш вопрос передан. Мы ответим в ближайшее время."
)

// Prices for the coaches with a fixed price list.
const Prices = "💰 Цены на тренировки\n\n" +
	"Максим\n" +
	"────────\n" +
	"• Разовое занятие — 30 BYN\n" +
	"• Абонемент на 4 занятия — 100 BYN\n" +
	"• Абонемент на 8 занятий — 180 BYN\n\n" +
	"Даша\n" +
	"────────\n" +
	"• Разовое занятие — 30 BYN\n" +
	"• Абонемент на 4 занятия — 100 BYN\n" +
	"• Абонемент на 8 занятий — 180 BYN"

// HeadCoachInfo replaces a price list for the head coach, whose terms are
// agreed individually.
func HeadCoachInfo(handle string) string {
	return "ℹ️ Информация о тренировках\n\n" +
		"Стоимость и возможность записи на тренировки к Виталику\n" +
		"уточняются индивидуально и зависят от наличия свободных мест.\n\n" +
		"Для уточнения актуальной информации напишите в Telegram:\n" +
		"👉 " + handle
}

const Schedule = "Расписание\n\n" +
	"🏃‍♂️ БЕГОВЫЕ ТРЕНИРОВКИ — ВИТАЛИК\n" +
	"📍 Калиновского, 111\n" +
	"Манеж-стадион\n" +
	"• Вторник — утро 07:30–09:00, вечер 19:10–20:40\n" +
	"• Четверг — утро 07:30–09:00, вечер 19:10–20:40\n\n" +
	"🏃‍♂️ БЕГОВЫЕ ТРЕНИРОВКИ — ДАША И МАКСИМ\n" +
	"📍 Калиновского, 111\n" +
	"Манеж-стадион\n" +
	"• Понедельник — 19:20–20:50\n" +
	"• Среда — 19:20–20:50\n\n" +
	"🏋️‍♂️ СИЛОВЫЕ ТРЕНИРОВКИ (ЗАЛ) — ВИТАЛИК\n" +
	"📍 Старовиленская, 131/1\n" +
	"• Среда — 07:30–08:40\n" +
	"• Пятница — 19:10–20:20\n\n" +
	"🏃‍♂️ ДЛИТЕЛЬНАЯ БЕГОВАЯ ТРЕНИРОВКА\n" +
	"• Воскресенье — 09:00–10:30\n" +
	"📍 Раубичи\n" +
	"длительная беговая тренировка (лонг)" +
	"\n\nЗаписаться на удобный день? 👇"

// Address renders the address screen. An empty address yields the
// "not specified yet" variant; hasRoutes tells whether travel options follow.
func Address(address, mapLink string) (text string, hasRoutes bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "Адрес\n\n" +
			"• Пока не указан\n" +
			"• Напишите город/район — подскажу контакт админа или скину гео\n\n" +
			"Нажмите кнопку ниже 👇", false
	}
	text = "Адрес\n\n" + address
	if link := strings.TrimSpace(mapLink); link != "" {
		text += "\n\nКарта: " + link
	}
	return text + "\n\nНа машине или пешком/транспорт? 👇", true
}

const (
	ByCar = "Парковка\n\n" +
		"• У места старта\n" +
		"• Геоточку или подсказку — напишите, скину или передам админу\n\n" +
		"Записать на тренировку? 👇"
	OnFoot = "Пешком / транспорт\n\n" +
		"• Маршрут от метро/остановки — у админа или скину гео\n" +
		"• Напишите район — подскажу\n\n" +
		"Записать на тренировку? 👇"
)

// Clothing advice by place.
const (
	WearGym = "🏋️‍♂️ Что надеть в зал (силовая тренировка)\n\n" +
		"• Удобная спортивная форма\n" +
		"• Кроссовки для зала\n" +
		"• Носки\n" +
		"• Бутылка воды\n" +
		"• Полотенце\n\n" +
		"По желанию:\n" +
		"• Перчатки для тренировок\n" +
		"• Ремень или личная экипировка"

	WearManege = "🏃‍♂️ Что надеть в манеж (беговая тренировка)\n\n" +
		"• Лёгкая спортивная форма\n" +
		"• Кроссовки для бега по покрытию\n" +
		"• Носки\n" +
		"• Бутылка воды\n\n" +
		"По желанию:\n" +
		"• Лёгкая кофта для разминки\n" +
		"• Часы или трекер"
)

// Weather keys of the street clothing advice.
const (
	WeatherWarm = "warm"
	WeatherCool = "cool"
	WeatherCold = "cold"
	WeatherRain = "rain"
)

var streetWear = map[string]string{
	WeatherWarm: "☀️ Что надеть, когда тепло\n\n" +
		"• Футболка или майка\n" +
		"• Шорты или тайтсы\n" +
		"• Кроссовки для бега\n" +
		"• Кепка\n" +
		"• Вода обязательно",
	WeatherCool: "🧢 Что надеть, когда прохладно\n\n" +
		"• Лонгслив или лёгкая кофта\n" +
		"• Тайтсы или лёгкие штаны\n" +
		"• Лёгкая ветровка\n" +
		"• Кроссовки\n" +
		"• Бафф или тонкая шапка — по желанию",
	WeatherCold: "🧥 Что надеть, когда холодно\n\n" +
		"• Термобельё\n" +
		"• Тёплый лонгслив или кофта\n" +
		"• Ветровка\n" +
		"• Тайтсы\n" +
		"• Шапка и перчатки\n" +
		"• Кроссовки по погоде",
	WeatherRain: "🌧 Что надеть в дождь\n\n" +
		"• Ветровка или дождевик\n" +
		"• Быстросохнущая форма\n" +
		"• Тайтсы или штаны\n" +
		"• Кроссовки с хорошим сцеплением\n" +
		"• Кепка",
}

// StreetWear returns clothing advice for the weather key; unknown keys
// fall back to warm weather.
func StreetWear(weather string) string {
	if s, ok := streetWear[weather]; ok {
		return s
	}
	return streetWear[WeatherWarm]
}

const WhatToTake = "🎒 Что взять с собой на тренировку\n\n" +
	"✅ Обязательно:\n" +
	"• Спортивная форма (по формату тренировки)\n" +
	"• Спортивная обувь:\n" +
	"  — для зала\n" +
	"  — для бега (улица / манеж)\n" +
	"• Бутылка воды\n" +
	"• Полотенце\n\n" +
	"🚿 Если планируете принять душ:\n" +
	"• Сланцы\n" +
	"• Средства для душа\n" +
	"• Сменная одежда\n\n" +
	"➕ Дополнительно (по желанию):\n" +
	"• Резинка для волос\n" +
	"• Личная экипировка\n" +
	"• Небольшой рюкзак или сумка\n\n" +
	"ℹ️ Важно:\n" +
	"Форму и обувь подбирайте с учётом погодных условий\n" +
	"и типа тренировки: зал / улица / манеж"

// Training description keys.
const (
	HowRun      = "run"
	HowStrength = "strength"
	HowLong     = "long"
)

var how = map[string]string{
	HowRun: "🏃‍♂️ БЕГОВЫЕ ТРЕНИРОВКИ\n" +
		"────────────────────\n\n" +
		"Тренировки проходят на стадионе или на улице и выстроены\n" +
		"по полной структуре:\n\n" +
		"• разминка\n" +
		"• основная часть\n" +
		"• заминка\n\n" +
		"В процессе уделяется внимание:\n" +
		"• общей физической подготовке\n" +
		"• общеразвивающим упражнениям\n" +
		"• беговым упражнениям и технике\n\n" +
		"Тренировки методически структурированы и адаптируются\n" +
		"под индивидуальные цели и уровень каждого участника.\n\n" +
		"────────────────────",
	HowStrength: "🏋️‍♂️ СИЛОВЫЕ ТРЕНИРОВКИ\n" +
		"────────────────────\n\n" +
		"Тренировки проходят в зале и имеют чёткую структуру занятия.\n\n" +
		"Основной акцент делается на:\n" +
		"• развитие силы\n" +
		"• развитие силовой выносливости\n\n" +
		"Дополнительно развиваются:\n" +
		"• координация\n" +
		"• мобильность\n" +
		"• общая физическая подготовка\n\n" +
		"Упражнения подбираются с учётом уровня подготовки\n" +
		"и индивидуальных целей.\n\n" +
		"────────────────────",
	HowLong: "🏃‍♂️ ДЛИТЕЛЬНЫЕ ВЫЕЗДНЫЕ БЕГОВЫЕ\n" +
		"────────────────────\n\n" +
		"Это совместная длительная пробежка на природе\n" +
		"(выездные локации, например Раубичи).\n\n" +
		"Цель тренировки:\n" +
		"• развитие сердечно-сосудистой системы\n" +
		"• повышение выносливости\n" +
		"• комфортный, спокойный темп\n\n" +
		"После тренировки:\n" +
		"☕ чай, кофе\n" +
		"🥐 завтраки, пирожные\n" +
		"и приятное общение.\n\n" +
		"────────────────────",
}

// HowTrainingsGo describes a training type; unknown keys fall back to runs.
func HowTrainingsGo(kind string) string {
	if s, ok := how[kind]; ok {
		return s
	}
	return how[HowRun]
}

// MyID tells a user their chat id.
func MyID(chatID string) string {
	return "Ваш chat_id: <code>" + chatID + "</code>.\n\n" +
		"Если вы админ — укажите это число в operator.chat_id."
}
