package news

import "time"

// Article is one news/updates entry. Unlike the other sections news has no
// singleton header; the collection is the whole section.
type Article struct {
	ID           int64      `db:"id" json:"id"`
	TitleEn      string     `db:"title_en" json:"title_en"`
	TitleSo      *string    `db:"title_so" json:"title_so"`
	TitleAr      *string    `db:"title_ar" json:"title_ar"`
	BodyEn       string     `db:"body_en" json:"body_en"`
	BodySo       *string    `db:"body_so" json:"body_so"`
	BodyAr       *string    `db:"body_ar" json:"body_ar"`
	ImageURL     *string    `db:"image_url" json:"image_url"`
	PublishedAt  *time.Time `db:"published_at" json:"published_at"`
	DisplayOrder int        `db:"display_order" json:"display_order"`
	Active       bool       `db:"active" json:"active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ArticleInput is one submitted article. Active is explicit here so an
// operator can unpublish an article without deleting it.
type ArticleInput struct {
	ID           *int64     `json:"id"`
	TitleEn      string     `json:"title_en"`
	TitleSo      *string    `json:"title_so"`
	TitleAr      *string    `json:"title_ar"`
	BodyEn       string     `json:"body_en"`
	BodySo       *string    `json:"body_so"`
	BodyAr       *string    `json:"body_ar"`
	ImageURL     *string    `json:"image_url"`
	PublishedAt  *time.Time `json:"published_at"`
	Active       bool       `json:"active"`
	DisplayOrder int        `json:"display_order"`
}

func (a ArticleInput) ItemID() *int64 { return a.ID }

func (a ArticleInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"title_en":      a.TitleEn,
		"title_so":      a.TitleSo,
		"title_ar":      a.TitleAr,
		"body_en":       a.BodyEn,
		"body_so":       a.BodySo,
		"body_ar":       a.BodyAr,
		"image_url":     a.ImageURL,
		"published_at":  a.PublishedAt,
		"active":        a.Active,
		"display_order": a.DisplayOrder,
	}
}

type SaveRequest struct {
	Articles []ArticleInput `json:"articles"`
}

type State struct {
	Articles []Article `json:"articles"`
}
