package gallery

import "time"

// Header is the singleton gallery section row.
type Header struct {
	ID        int64     `db:"id" json:"id"`
	TitleEn   string    `db:"title_en" json:"title_en"`
	TitleSo   *string   `db:"title_so" json:"title_so"`
	TitleAr   *string   `db:"title_ar" json:"title_ar"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Image is one gallery entry. The image itself lives in external storage;
// only its URL is kept here.
type Image struct {
	ID           int64     `db:"id" json:"id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	CaptionEn    string    `db:"caption_en" json:"caption_en"`
	CaptionSo    *string   `db:"caption_so" json:"caption_so"`
	CaptionAr    *string   `db:"caption_ar" json:"caption_ar"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type HeaderInput struct {
	TitleEn string  `json:"title_en"`
	TitleSo *string `json:"title_so"`
	TitleAr *string `json:"title_ar"`
}

func (h HeaderInput) fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en": h.TitleEn,
		"title_so": h.TitleSo,
		"title_ar": h.TitleAr,
	}
}

type ImageInput struct {
	ID           *int64  `json:"id"`
	ImageURL     string  `json:"image_url"`
	CaptionEn    string  `json:"caption_en"`
	CaptionSo    *string `json:"caption_so"`
	CaptionAr    *string `json:"caption_ar"`
	DisplayOrder int     `json:"display_order"`
}

func (i ImageInput) ItemID() *int64 { return i.ID }

func (i ImageInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"image_url":     i.ImageURL,
		"caption_en":    i.CaptionEn,
		"caption_so":    i.CaptionSo,
		"caption_ar":    i.CaptionAr,
		"display_order": i.DisplayOrder,
	}
}

type SaveRequest struct {
	Header *HeaderInput `json:"header"`
	Images []ImageInput `json:"images"`
}

type State struct {
	Header *Header `json:"header"`
	Images []Image `json:"images"`
}
