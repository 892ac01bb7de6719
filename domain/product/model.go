package product

import "time"

// Header is the singleton products section row.
type Header struct {
	ID        int64     `db:"id" json:"id"`
	TitleEn   string    `db:"title_en" json:"title_en"`
	TitleSo   *string   `db:"title_so" json:"title_so"`
	TitleAr   *string   `db:"title_ar" json:"title_ar"`
	IntroEn   string    `db:"intro_en" json:"intro_en"`
	IntroSo   *string   `db:"intro_so" json:"intro_so"`
	IntroAr   *string   `db:"intro_ar" json:"intro_ar"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Product is one produce item (bananas, sesame, lemons, ...).
type Product struct {
	ID            int64     `db:"id" json:"id"`
	NameEn        string    `db:"name_en" json:"name_en"`
	NameSo        *string   `db:"name_so" json:"name_so"`
	NameAr        *string   `db:"name_ar" json:"name_ar"`
	DescriptionEn string    `db:"description_en" json:"description_en"`
	DescriptionSo *string   `db:"description_so" json:"description_so"`
	DescriptionAr *string   `db:"description_ar" json:"description_ar"`
	ImageURL      *string   `db:"image_url" json:"image_url"`
	SeasonTag     *string   `db:"season_tag" json:"season_tag"`
	DisplayOrder  int       `db:"display_order" json:"display_order"`
	Active        bool      `db:"active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type HeaderInput struct {
	TitleEn string  `json:"title_en"`
	TitleSo *string `json:"title_so"`
	TitleAr *string `json:"title_ar"`
	IntroEn string  `json:"intro_en"`
	IntroSo *string `json:"intro_so"`
	IntroAr *string `json:"intro_ar"`
}

func (h HeaderInput) fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en": h.TitleEn,
		"title_so": h.TitleSo,
		"title_ar": h.TitleAr,
		"intro_en": h.IntroEn,
		"intro_so": h.IntroSo,
		"intro_ar": h.IntroAr,
	}
}

type ProductInput struct {
	ID            *int64  `json:"id"`
	NameEn        string  `json:"name_en"`
	NameSo        *string `json:"name_so"`
	NameAr        *string `json:"name_ar"`
	DescriptionEn string  `json:"description_en"`
	DescriptionSo *string `json:"description_so"`
	DescriptionAr *string `json:"description_ar"`
	ImageURL      *string `json:"image_url"`
	SeasonTag     *string `json:"season_tag"`
	DisplayOrder  int     `json:"display_order"`
}

func (p ProductInput) ItemID() *int64 { return p.ID }

func (p ProductInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name_en":        p.NameEn,
		"name_so":        p.NameSo,
		"name_ar":        p.NameAr,
		"description_en": p.DescriptionEn,
		"description_so": p.DescriptionSo,
		"description_ar": p.DescriptionAr,
		"image_url":      p.ImageURL,
		"season_tag":     p.SeasonTag,
		"display_order":  p.DisplayOrder,
	}
}

type SaveRequest struct {
	Header   *HeaderInput   `json:"header"`
	Products []ProductInput `json:"products"`
}

type State struct {
	Header   *Header   `json:"header"`
	Products []Product `json:"products"`
}
