// Package bots holds the questionnaire definitions of the four business
// lines. Texts are user-facing and intentionally verbatim, including emoji.
package bots

import "github.com/James202017/real-estate-bots/core/form"

const (
	backLabel      = "🔙 Назад"
	requiredNotice = "❗Это поле обязательно. Заполните его, пожалуйста."
	chooseNotice   = "❗Пожалуйста, выберите вариант из списка."
)

func backRow() []string { return []string{backLabel} }

// Invest is the investment lead questionnaire.
func Invest() *form.Definition {
	directions := []string{
		"Новостройки (доход до 3 млн руб и выше)",
		"Зарубежная недвижимость",
		"Выкуп лотов ниже рынка",
		"Вклады под 29% годовых",
	}
	return &form.Definition{
		ID: "invest",
		Welcome: []string{
			"<b>Добро пожаловать!</b>\n\n" +
				"С помощью этого помощника вы можете оставить заявку на инвестиционные предложения. " +
				"Выгодные инвестиции: зарубежная недвижимость, вклады под 29% годовых, пассивный доход.\n" +
				"Пожалуйста, заполняйте все поля внимательно и максимально подробно, " +
				"чтобы наши специалисты могли связаться с вами и помочь быстро и качественно.",
			"🔹 <b>Рекомендации:</b>\n" +
				"— Указывайте максимум информации\n" +
				"— Все поля обязательны\n" +
				"— Мы подберем выгодное решение по вашему профилю",
		},
		BackLabel:  backLabel,
		BackNotice: "⬅️ Вернулись на предыдущий шаг. Введите данные снова:",
		Done:       "✅ Спасибо! Ваша заявка отправлена. Наш консультант скоро свяжется с вами.",
		Header:     "📥 Новая заявка на инвестиции:",
		Steps: []form.Step{
			{
				ID:     "direction",
				Label:  "🔸 Направление",
				Prompt: "Выберите направление инвестиций:",
				Keyboard: [][]string{
					{directions[0]},
					{directions[1]},
					{directions[2]},
					{directions[3]},
					backRow(),
				},
				Validate: form.OneOf(chooseNotice, directions...),
			},
			{
				ID:       "amount",
				Label:    "🔸 Сумма",
				Prompt:   "💰 Укажите желаемую сумму инвестиций:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required("❗Это поле обязательно. Укажите сумму."),
			},
			{
				ID:       "term",
				Label:    "🔸 Срок",
				Prompt:   "📅 На какой срок планируете инвестировать?\n(например: 6 месяцев, 1 год, долгосрочно)",
				Keyboard: [][]string{backRow()},
				Validate: form.Required("❗Пожалуйста, укажите срок."),
			},
			{
				ID:       "comment",
				Label:    "🔸 Комментарий",
				Prompt:   "📝 Есть ли дополнительные пожелания или комментарии?",
				Keyboard: [][]string{backRow()},
				Validate: form.Optional(),
			},
			{
				ID:       "contact",
				Label:    "🔸 Контакт",
				Prompt:   "📞 Укажите ваше имя и номер телефона для связи:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required("❗Контактные данные обязательны."),
			},
		},
	}
}

// Property is the property purchase questionnaire.
func Property() *form.Definition {
	return &form.Definition{
		ID: "property",
		Welcome: []string{
			"<b>Добро пожаловать!</b>\n\n" +
				"Этот помощник поможет вам оставить заявку на покупку недвижимости.\n" +
				"Пожалуйста, заполняйте все поля внимательно и максимально подробно, " +
				"чтобы наши специалисты могли связаться с вами и помочь быстро и качественно.",
		},
		BackLabel:  backLabel,
		BackNotice: "Вернулись на предыдущий шаг. Введите данные снова:",
		Done:       "Спасибо! Ваша заявка отправлена. Наш специалист свяжется с вами.",
		Header:     "Новая заявка на покупку:",
		Steps: []form.Step{
			{
				ID:     "property_type",
				Label:  "Тип",
				Prompt: "Для продолжения нажмите нужный вам вариант. Что хотели бы купить?",
				Keyboard: [][]string{
					{"Квартира", "Дом"},
					{"Дача", "Участок"},
					{"Коммерческая недвижимость"},
					backRow(),
				},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "location",
				Label:    "Адрес",
				Prompt:   "Укажите населенный пункт, район, какие есть пожелания:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "details",
				Label:    "Детали",
				Prompt:   "Укажите метраж, количество комнат и прочие детали:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "price",
				Label:    "Цена",
				Prompt:   "Укажите желаемую цену:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "contact",
				Label:    "Контакт",
				Prompt:   "Оставьте ваш телефон и имя:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
		},
	}
}

// Appraisal is the property appraisal questionnaire.
func Appraisal() *form.Definition {
	return &form.Definition{
		ID: "appraisal",
		Welcome: []string{
			"<b>Добро пожаловать!</b>\n\n" +
				"Нужна официальная оценка недвижимости? 🏢 Мы подготовим отчет за 1 день!* ✅ Для банков, судов, сделок ✅ Гарантия принятия документа\n" +
				"Пожалуйста, заполняйте все поля внимательно и максимально подробно, " +
				"чтобы наши специалисты могли связаться с вами и помочь быстро и качественно.",
		},
		BackLabel:  backLabel,
		BackNotice: "⬅️ Вернулись на предыдущий шаг. Введите данные снова:",
		Done:       "✅ Спасибо! Ваша заявка отправлена. Мы скоро свяжемся с вами.",
		Header:     "📩 Новая заявка на оценку:",
		Steps: []form.Step{
			{
				ID:     "object_type",
				Label:  "🏠 Объект",
				Prompt: "Для продолжения нажмите нужный вам вариант. Что хотели бы оценить?",
				Keyboard: [][]string{
					{"1. Квартира", "2. Дом"},
					{"3. Земельный участок", "4. Коммерция"},
					backRow(),
				},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "purpose",
				Label:    "🎯 Цель",
				Prompt:   "🎯 Укажите цель оценки (например: для продажи, для суда, для ипотеки):",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "region",
				Label:    "🌍 Регион",
				Prompt:   "🌍 Укажите регион или адрес объекта:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "area",
				Label:    "📐 Площадь",
				Prompt:   "📐 Укажите площадь объекта в м²:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "comment",
				Label:    "📝 Комментарий",
				Prompt:   "📝 Есть ли дополнительные данные или комментарии?",
				Keyboard: [][]string{backRow()},
				Validate: form.Optional(),
			},
			{
				ID:       "contact",
				Label:    "📞 Контакт",
				Prompt:   "📞 Укажите ваше имя и телефон для связи:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required("❗Контактные данные обязательны."),
			},
		},
	}
}

// Insurance is the insurance lead questionnaire.
func Insurance() *form.Definition {
	directions := []string{
		"1. ОСАГО", "2. Ипотека", "3. Имущество",
		"4. Грузы", "5. Антиклещ", "6. Несчастные случаи", "7. Потеря работы",
	}
	return &form.Definition{
		ID: "insurance",
		Welcome: []string{
			"<b>Добро пожаловать!</b>\n\n" +
				"С помощью этого помощника вы можете оставить заявку на страхование. " +
				"Защита для вас и вашего имущества: ОСАГО, ипотечное страхование, защита от несчастных случаев и потери работы.",
		},
		BackLabel:  backLabel,
		BackNotice: "⬅️ Вернулись на предыдущий шаг. Введите данные заново:",
		Done:       "✅ Спасибо! Ваша заявка принята. Наш специалист скоро свяжется с вами.",
		Header:     "📥 Новая заявка на страхование:",
		Steps: []form.Step{
			{
				ID:     "direction",
				Label:  "🔹 Направление",
				Prompt: "Выберите направление страхования:",
				Keyboard: [][]string{
					{directions[0], directions[1]},
					{directions[2], directions[3]},
					{directions[4], directions[5]},
					{directions[6]},
					backRow(),
				},
				Validate: form.OneOf(chooseNotice, directions...),
			},
			{
				ID:       "object_info",
				Label:    "🔹 Объект",
				Prompt:   "📄 Уточните объект страхования",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "period",
				Label:    "🔹 Срок",
				Prompt:   "📅 Укажите желаемый срок страхования (например: 1 год, 6 месяцев):",
				Keyboard: [][]string{backRow()},
				Validate: form.Required(requiredNotice),
			},
			{
				ID:       "comment",
				Label:    "🔹 Комментарий",
				Prompt:   "📝 Есть ли дополнительные пожелания или комментарии?",
				Keyboard: [][]string{backRow()},
				Validate: form.Optional(),
			},
			{
				ID:       "contact",
				Label:    "🔹 Контакт",
				Prompt:   "📞 Укажите ваше имя и номер телефона для связи:",
				Keyboard: [][]string{backRow()},
				Validate: form.Required("❗Контактные данные обязательны."),
			},
		},
	}
}
