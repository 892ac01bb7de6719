package public

// Hard-coded fallbacks mirroring the shape of real rows. Public pages render
// these whenever storage is empty or unreachable so visitors never see an
// empty section.

var fallbackHero = HeroView{
	Title:    "Growing Somalia's Future",
	Subtitle: "Family-run farms producing quality fruit and grain for local and export markets.",
	CtaLabel: "Explore our produce",
	CtaURL:   "/products",
	Stats: []StatView{
		{Label: "Hectares farmed", Value: "120+", Emoji: "🌾"},
		{Label: "Harvests per year", Value: "3", Emoji: "🚜"},
		{Label: "Families supported", Value: "40", Emoji: "🤝"},
	},
}

var fallbackMission = MissionView{
	Title: "Our Mission",
	Body:  "We grow healthy food sustainably, invest in our community, and bring Somali produce to the wider market.",
	Values: []ValueView{
		{Title: "Sustainability", Body: "Water-wise irrigation and soil care on every plot.", Emoji: "💧"},
		{Title: "Community", Body: "Fair work and training for local families.", Emoji: "🤝"},
		{Title: "Quality", Body: "Harvested ripe, handled with care, delivered fresh.", Emoji: "⭐"},
	},
}

var fallbackProducts = ProductsView{
	Title: "Our Produce",
	Intro: "Seasonal fruit and grain grown along the Shabelle valley.",
	Products: []ProductView{
		{Name: "Bananas", Description: "Sweet export-grade bananas available year round."},
		{Name: "Sesame", Description: "Cold-pressed quality sesame harvested twice a year."},
		{Name: "Lemons", Description: "Fragrant lemons for local markets."},
	},
}

var fallbackGallery = GalleryView{
	Title:  "From Our Fields",
	Images: []GalleryEntry{},
}

var fallbackNews = NewsView{
	Articles: []ArticleView{},
}

var fallbackContact = ContactView{
	Address: "Mogadishu, Somalia",
	Hours:   "Saturday - Thursday, 8:00 - 17:00",
	Phone:   "+252 61 000 0000",
	Email:   "info@example.com",
}

var fallbackNav = NavView{
	Languages: []NavLang{
		{Code: "en", Enabled: true},
		{Code: "so", Enabled: false},
		{Code: "ar", Enabled: false},
	},
	Menu: []NavItem{
		{Key: "home", Visible: true},
		{Key: "about", Visible: true},
		{Key: "products", Visible: true},
		{Key: "gallery", Visible: true},
		{Key: "news", Visible: true},
		{Key: "contact", Visible: true},
	},
}
