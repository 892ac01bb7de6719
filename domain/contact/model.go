package contact

import "time"

// Info is the singleton contact section row.
type Info struct {
	ID        int64     `db:"id" json:"id"`
	AddressEn string    `db:"address_en" json:"address_en"`
	AddressSo *string   `db:"address_so" json:"address_so"`
	AddressAr *string   `db:"address_ar" json:"address_ar"`
	HoursEn   string    `db:"hours_en" json:"hours_en"`
	HoursSo   *string   `db:"hours_so" json:"hours_so"`
	HoursAr   *string   `db:"hours_ar" json:"hours_ar"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Message is an inbound message from the public contact form.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Body      string    `db:"body" json:"body"`
	ReadFlag  bool      `db:"read_flag" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type InfoInput struct {
	AddressEn string  `json:"address_en"`
	AddressSo *string `json:"address_so"`
	AddressAr *string `json:"address_ar"`
	HoursEn   string  `json:"hours_en"`
	HoursSo   *string `json:"hours_so"`
	HoursAr   *string `json:"hours_ar"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
}

func (i InfoInput) fields() map[string]interface{} {
	return map[string]interface{}{
		"address_en": i.AddressEn,
		"address_so": i.AddressSo,
		"address_ar": i.AddressAr,
		"hours_en":   i.HoursEn,
		"hours_so":   i.HoursSo,
		"hours_ar":   i.HoursAr,
		"phone":      i.Phone,
		"email":      i.Email,
	}
}

// MessageRequest is the public contact form payload.
type MessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}
