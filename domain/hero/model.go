package hero

import "time"

// Header is the singleton hero section row.
type Header struct {
	ID         int64     `db:"id" json:"id"`
	TitleEn    string    `db:"title_en" json:"title_en"`
	TitleSo    *string   `db:"title_so" json:"title_so"`
	TitleAr    *string   `db:"title_ar" json:"title_ar"`
	SubtitleEn string    `db:"subtitle_en" json:"subtitle_en"`
	SubtitleSo *string   `db:"subtitle_so" json:"subtitle_so"`
	SubtitleAr *string   `db:"subtitle_ar" json:"subtitle_ar"`
	CtaLabelEn string    `db:"cta_label_en" json:"cta_label_en"`
	CtaLabelSo *string   `db:"cta_label_so" json:"cta_label_so"`
	CtaLabelAr *string   `db:"cta_label_ar" json:"cta_label_ar"`
	CtaURL     string    `db:"cta_url" json:"cta_url"`
	ImageURL   *string   `db:"image_url" json:"image_url"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Stat is one headline figure rendered under the hero (e.g. hectares farmed).
type Stat struct {
	ID           int64     `db:"id" json:"id"`
	LabelEn      string    `db:"label_en" json:"label_en"`
	LabelSo      *string   `db:"label_so" json:"label_so"`
	LabelAr      *string   `db:"label_ar" json:"label_ar"`
	Value        string    `db:"value" json:"value"`
	Emoji        *string   `db:"emoji" json:"emoji"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// HeaderInput is the editable header payload.
type HeaderInput struct {
	TitleEn    string  `json:"title_en"`
	TitleSo    *string `json:"title_so"`
	TitleAr    *string `json:"title_ar"`
	SubtitleEn string  `json:"subtitle_en"`
	SubtitleSo *string `json:"subtitle_so"`
	SubtitleAr *string `json:"subtitle_ar"`
	CtaLabelEn string  `json:"cta_label_en"`
	CtaLabelSo *string `json:"cta_label_so"`
	CtaLabelAr *string `json:"cta_label_ar"`
	CtaURL     string  `json:"cta_url"`
	ImageURL   *string `json:"image_url"`
}

func (h HeaderInput) fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en":     h.TitleEn,
		"title_so":     h.TitleSo,
		"title_ar":     h.TitleAr,
		"subtitle_en":  h.SubtitleEn,
		"subtitle_so":  h.SubtitleSo,
		"subtitle_ar":  h.SubtitleAr,
		"cta_label_en": h.CtaLabelEn,
		"cta_label_so": h.CtaLabelSo,
		"cta_label_ar": h.CtaLabelAr,
		"cta_url":      h.CtaURL,
		"image_url":    h.ImageURL,
	}
}

// StatInput is one submitted stat; ID is nil for rows the operator just added.
type StatInput struct {
	ID           *int64  `json:"id"`
	LabelEn      string  `json:"label_en"`
	LabelSo      *string `json:"label_so"`
	LabelAr      *string `json:"label_ar"`
	Value        string  `json:"value"`
	Emoji        *string `json:"emoji"`
	DisplayOrder int     `json:"display_order"`
}

func (s StatInput) ItemID() *int64 { return s.ID }

func (s StatInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"label_en":      s.LabelEn,
		"label_so":      s.LabelSo,
		"label_ar":      s.LabelAr,
		"value":         s.Value,
		"emoji":         s.Emoji,
		"display_order": s.DisplayOrder,
	}
}

// SaveRequest is the full-document save submitted by the hero editor.
type SaveRequest struct {
	Header *HeaderInput `json:"header"`
	Stats  []StatInput  `json:"stats"`
}

// State is what GET returns and what a save returns after reconciliation,
// so the editor re-synchronizes to persisted ground truth (fresh ids included).
type State struct {
	Header *Header `json:"header"`
	Stats  []Stat  `json:"stats"`
}
