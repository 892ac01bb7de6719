package public

// Single-language views served to site visitors. Every view carries the
// resolved language and its text direction so the frontend can set dir=rtl
// for Arabic without re-deriving it.

type HeroView struct {
	Lang      string     `json:"lang"`
	Direction string     `json:"direction"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	CtaLabel  string     `json:"cta_label"`
	CtaURL    string     `json:"cta_url"`
	ImageURL  string     `json:"image_url,omitempty"`
	Stats     []StatView `json:"stats"`
}

type StatView struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Emoji string `json:"emoji,omitempty"`
}

type MissionView struct {
	Lang      string      `json:"lang"`
	Direction string      `json:"direction"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	Values    []ValueView `json:"values"`
}

type ValueView struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Emoji    string `json:"emoji,omitempty"`
	ColorTag string `json:"color_tag,omitempty"`
}

type ProductsView struct {
	Lang      string        `json:"lang"`
	Direction string        `json:"direction"`
	Title     string        `json:"title"`
	Intro     string        `json:"intro"`
	Products  []ProductView `json:"products"`
}

type ProductView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	SeasonTag   string `json:"season_tag,omitempty"`
}

type GalleryView struct {
	Lang      string          `json:"lang"`
	Direction string          `json:"direction"`
	Title     string          `json:"title"`
	Images    []GalleryEntry  `json:"images"`
}

type GalleryEntry struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

type NewsView struct {
	Lang      string        `json:"lang"`
	Direction string        `json:"direction"`
	Articles  []ArticleView `json:"articles"`
}

type ArticleView struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type ContactView struct {
	Lang      string `json:"lang"`
	Direction string `json:"direction"`
	Address   string `json:"address"`
	Hours     string `json:"hours"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type NavView struct {
	Lang      string    `json:"lang"`
	Direction string    `json:"direction"`
	Languages []NavLang `json:"languages"`
	Menu      []NavItem `json:"menu"`
}

type NavLang struct {
	Code    string `json:"code"`
	Enabled bool   `json:"enabled"`
}

type NavItem struct {
	Key     string `json:"key"`
	Visible bool   `json:"visible"`
}
