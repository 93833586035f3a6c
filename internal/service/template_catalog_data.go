package service

// Plantillas integradas. El orden de los tonos define el tono por defecto de cada categoría
// y el orden de festiveOverrides define la prioridad de las palabras clave.
var defaultCategories = []CategoryTemplates{
	{
		Name: "promotional",
		Tones: []ToneTemplates{
			{Tone: "friendly", Templates: []string{
				"Hi {name}! 🎉 {prompt_context} Get ready for amazing deals and offers just for you! Shop now and save big! 💰",
				"Hello {name}! ✨ {prompt_context} Don't miss out on our exclusive offers designed specially for valued customers like you! 🛍️",
				"Hey {name}! 🌟 {prompt_context} Treat yourself to something special with our fantastic deals! Limited time only! ⏰",
			}},
			{Tone: "professional", Templates: []string{
				"Dear {name}, {prompt_context} We are pleased to offer you exclusive deals on our premium products. Visit our store today.",
				"Hello {name}, {prompt_context} Take advantage of our professional services with special pricing for valued clients.",
				"Dear Valued Customer, {prompt_context} We invite you to explore our latest offerings with attractive discounts.",
			}},
		},
	},
	{
		Name: "greeting",
		Tones: []ToneTemplates{
			{Tone: "friendly", Templates: []string{
				"Hello {name}! 🎊 {prompt_context} Wishing you joy, happiness, and prosperity! May this celebration bring you countless blessings! ✨",
				"Hi {name}! 🌟 {prompt_context} Sending you warm wishes and heartfelt greetings! Have a wonderful celebration! 🎉",
				"Hey {name}! 💫 {prompt_context} May this special occasion fill your life with happiness and success! Celebrate with joy! 🎈",
			}},
			{Tone: "formal", Templates: []string{
				"Dear {name}, {prompt_context} We extend our warmest greetings and best wishes on this auspicious occasion.",
				"Respected {name}, {prompt_context} May this celebration bring you peace, prosperity, and happiness.",
				"Dear Valued Customer, {prompt_context} We wish you and your family a joyous celebration filled with blessings.",
			}},
		},
	},
	{
		Name: "informational",
		Tones: []ToneTemplates{
			{Tone: "professional", Templates: []string{
				"Dear {name}, {prompt_context} Please find the important information regarding your account/service.",
				"Hello {name}, {prompt_context} We wanted to keep you informed about the latest updates.",
				"Dear Customer, {prompt_context} Here's the information you requested about our services.",
			}},
			{Tone: "friendly", Templates: []string{
				"Hi {name}! 📢 {prompt_context} Just wanted to keep you in the loop with some important updates!",
				"Hello {name}! ℹ️ {prompt_context} Here's some useful information we thought you'd like to know!",
				"Hey {name}! 💡 {prompt_context} Quick update for you - hope this helps!",
			}},
		},
	},
	{
		Name: "reminder",
		Tones: []ToneTemplates{
			{Tone: "friendly", Templates: []string{
				"Hi {name}! ⏰ {prompt_context} Just a friendly reminder about your upcoming appointment/service!",
				"Hello {name}! 🔔 {prompt_context} Don't forget - we're here to help when you need us!",
				"Hey {name}! 📅 {prompt_context} Quick reminder to help you stay on track!",
			}},
			{Tone: "professional", Templates: []string{
				"Dear {name}, {prompt_context} This is a gentle reminder regarding your scheduled service.",
				"Hello {name}, {prompt_context} Please be reminded of your upcoming appointment with us.",
				"Dear Customer, {prompt_context} We wanted to remind you about your pending service request.",
			}},
		},
	},
	{
		Name: "support",
		Tones: []ToneTemplates{
			{Tone: "friendly", Templates: []string{
				"Hi {name}! 🤝 {prompt_context} We're here to help! Feel free to reach out if you need any assistance!",
				"Hello {name}! 💪 {prompt_context} Our support team is ready to assist you with anything you need!",
				"Hey {name}! 🌟 {prompt_context} Don't hesitate to contact us - we're always happy to help!",
			}},
			{Tone: "professional", Templates: []string{
				"Dear {name}, {prompt_context} Our customer support team is available to assist you with your queries.",
				"Hello {name}, {prompt_context} Please contact our support team for any assistance you may require.",
				"Dear Valued Customer, {prompt_context} We are committed to providing you with excellent support.",
			}},
		},
	},
}

var defaultFestiveOverrides = []FestiveOverride{
	{Keyword: "diwali", Message: "May this Diwali illuminate your life with joy, prosperity, and happiness! 🪔 Wishing you and your loved ones a very Happy Diwali!"},
	{Keyword: "christmas", Message: "Merry Christmas, {name}! 🎄 May this festive season bring you peace, joy, and wonderful memories with family and friends!"},
	{Keyword: "new year", Message: "Happy New Year, {name}! 🎊 May this new year bring you success, happiness, and endless opportunities!"},
	{Keyword: "holi", Message: "Happy Holi, {name}! 🌈 May your life be filled with colors of joy, love, and happiness!"},
	{Keyword: "eid", Message: "Eid Mubarak, {name}! 🌙 May this blessed occasion bring peace, happiness, and prosperity to you and your family!"},
	{Keyword: "birthday", Message: "Happy Birthday, {name}! 🎂 Wishing you a day filled with joy and a year filled with success!"},
}

// DefaultTemplateCatalog construye el catálogo integrado.
func DefaultTemplateCatalog() *TemplateCatalog {
	c, err := NewTemplateCatalog(defaultCategories, defaultFestiveOverrides, "promotional")
	if err != nil {
		panic(err)
	}
	return c
}
