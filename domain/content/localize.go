package content

import "database/sql"

// Lang is a supported content language. The set is closed: every localizable
// row carries exactly one column per language, so unknown codes can never
// reach a query.
type Lang string

const (
	LangEnglish Lang = "en"
	LangSomali  Lang = "so"
	LangArabic  Lang = "ar"
)

// Langs lists all supported languages in display order.
var Langs = []Lang{LangEnglish, LangSomali, LangArabic}

// ParseLang maps a request language code onto the closed set. Anything
// unknown falls back to English, the site's default language.
func ParseLang(code string) Lang {
	switch code {
	case "so":
		return LangSomali
	case "ar":
		return LangArabic
	default:
		return LangEnglish
	}
}

// Direction returns the text direction for the language.
func (l Lang) Direction() string {
	if l == LangArabic {
		return "rtl"
	}
	return "ltr"
}

// Pick projects one text field of a trilingual row into the requested
// language. English is both the default and the universal fallback: a row
// with only English content renders in every language.
func Pick(lang Lang, en string, so, ar sql.NullString) string {
	switch lang {
	case LangSomali:
		if so.Valid && so.String != "" {
			return so.String
		}
	case LangArabic:
		if ar.Valid && ar.String != "" {
			return ar.String
		}
	}
	return en
}

// PickPtr is Pick for payloads that carry optional translations as pointers.
func PickPtr(lang Lang, en string, so, ar *string) string {
	return Pick(lang, en, toNull(so), toNull(ar))
}

func toNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
