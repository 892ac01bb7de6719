package mission

import "time"

// Header is the singleton mission/vision section row.
type Header struct {
	ID        int64     `db:"id" json:"id"`
	TitleEn   string    `db:"title_en" json:"title_en"`
	TitleSo   *string   `db:"title_so" json:"title_so"`
	TitleAr   *string   `db:"title_ar" json:"title_ar"`
	BodyEn    string    `db:"body_en" json:"body_en"`
	BodySo    *string   `db:"body_so" json:"body_so"`
	BodyAr    *string   `db:"body_ar" json:"body_ar"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Value is one value card (sustainability, community, quality, ...).
type Value struct {
	ID           int64     `db:"id" json:"id"`
	TitleEn      string    `db:"title_en" json:"title_en"`
	TitleSo      *string   `db:"title_so" json:"title_so"`
	TitleAr      *string   `db:"title_ar" json:"title_ar"`
	BodyEn       string    `db:"body_en" json:"body_en"`
	BodySo       *string   `db:"body_so" json:"body_so"`
	BodyAr       *string   `db:"body_ar" json:"body_ar"`
	Emoji        *string   `db:"emoji" json:"emoji"`
	ColorTag     *string   `db:"color_tag" json:"color_tag"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type HeaderInput struct {
	TitleEn string  `json:"title_en"`
	TitleSo *string `json:"title_so"`
	TitleAr *string `json:"title_ar"`
	BodyEn  string  `json:"body_en"`
	BodySo  *string `json:"body_so"`
	BodyAr  *string `json:"body_ar"`
}

func (h HeaderInput) fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en": h.TitleEn,
		"title_so": h.TitleSo,
		"title_ar": h.TitleAr,
		"body_en":  h.BodyEn,
		"body_so":  h.BodySo,
		"body_ar":  h.BodyAr,
	}
}

type ValueInput struct {
	ID           *int64  `json:"id"`
	TitleEn      string  `json:"title_en"`
	TitleSo      *string `json:"title_so"`
	TitleAr      *string `json:"title_ar"`
	BodyEn       string  `json:"body_en"`
	BodySo       *string `json:"body_so"`
	BodyAr       *string `json:"body_ar"`
	Emoji        *string `json:"emoji"`
	ColorTag     *string `json:"color_tag"`
	DisplayOrder int     `json:"display_order"`
}

func (v ValueInput) ItemID() *int64 { return v.ID }

func (v ValueInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en":      v.TitleEn,
		"title_so":      v.TitleSo,
		"title_ar":      v.TitleAr,
		"body_en":       v.BodyEn,
		"body_so":       v.BodySo,
		"body_ar":       v.BodyAr,
		"emoji":         v.Emoji,
		"color_tag":     v.ColorTag,
		"display_order": v.DisplayOrder,
	}
}

type SaveRequest struct {
	Header *HeaderInput `json:"header"`
	Values []ValueInput `json:"values"`
}

type State struct {
	Header *Header `json:"header"`
	Values []Value `json:"values"`
}
