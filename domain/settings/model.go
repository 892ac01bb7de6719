package settings

import "time"

// The key domains are fixed: three site languages and the public menu
// entries. Reads always normalize to these complete sets, whatever subset
// storage happens to hold.

// LanguageCodes is the closed language domain in display order.
var LanguageCodes = []string{"en", "so", "ar"}

// MenuKeys is the closed menu domain in display order.
var MenuKeys = []string{"home", "about", "products", "gallery", "news", "contact"}

// LanguageRow is a stored language-enablement row.
type LanguageRow struct {
	ID           int64     `db:"id" json:"-"`
	LanguageCode string    `db:"language_code" json:"code"`
	Enabled      bool      `db:"enabled" json:"enabled"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// MenuRow is a stored menu-visibility row.
type MenuRow struct {
	ID           int64     `db:"id" json:"-"`
	MenuKey      string    `db:"menu_key" json:"key"`
	Visible      bool      `db:"visible" json:"visible"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// LanguageSetting is the normalized view: one entry per code, always.
type LanguageSetting struct {
	Code         string `json:"code"`
	Enabled      bool   `json:"enabled"`
	DisplayOrder int    `json:"display_order"`
}

// MenuSetting is the normalized view: one entry per menu key, always.
type MenuSetting struct {
	Key          string `json:"key"`
	Visible      bool   `json:"visible"`
	DisplayOrder int    `json:"display_order"`
}

// LanguagesRequest is the full-set save from the settings editor.
type LanguagesRequest struct {
	Languages []LanguageSetting `json:"languages"`
}

// MenusRequest is the full-set save from the settings editor.
type MenusRequest struct {
	Menus []MenuSetting `json:"menus"`
}

// NormalizeLanguages projects whatever language rows exist in storage onto
// the complete fixed code set. Missing codes are synthesized with defaults:
// English enabled, everything else disabled.
func NormalizeLanguages(stored []LanguageRow) []LanguageSetting {
	byCode := make(map[string]LanguageRow, len(stored))
	for _, row := range stored {
		byCode[row.LanguageCode] = row
	}

	out := make([]LanguageSetting, 0, len(LanguageCodes))
	for i, code := range LanguageCodes {
		if row, ok := byCode[code]; ok {
			out = append(out, LanguageSetting{Code: code, Enabled: row.Enabled, DisplayOrder: i})
			continue
		}
		out = append(out, LanguageSetting{Code: code, Enabled: code == "en", DisplayOrder: i})
	}
	return out
}

// NormalizeMenus projects stored menu rows onto the complete fixed key set.
// Missing keys default to visible.
func NormalizeMenus(stored []MenuRow) []MenuSetting {
	byKey := make(map[string]MenuRow, len(stored))
	for _, row := range stored {
		byKey[row.MenuKey] = row
	}

	out := make([]MenuSetting, 0, len(MenuKeys))
	for i, key := range MenuKeys {
		if row, ok := byKey[key]; ok {
			out = append(out, MenuSetting{Key: key, Visible: row.Visible, DisplayOrder: i})
			continue
		}
		out = append(out, MenuSetting{Key: key, Visible: true, DisplayOrder: i})
	}
	return out
}

func isKnownLanguage(code string) bool {
	for _, c := range LanguageCodes {
		if c == code {
			return true
		}
	}
	return false
}

func isKnownMenuKey(key string) bool {
	for _, k := range MenuKeys {
		if k == key {
			return true
		}
	}
	return false
}
