package main

import (
	"log"

	"github.com/spf13/viper"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/utils"
)

// Seeds the initial admin account, the settings rows, and starter content so
// a fresh deployment renders a complete site before anyone touches the editor.
func main() {
	config.InitConfig()
	config.InitDB()
	defer config.CloseDB()

	seedAdmin()
	seedSettings()
	seedContent()

	log.Println("Seeding completed!")
}

func seedAdmin() {
	email := viper.GetString("ADMIN_EMAIL")
	if email == "" {
		email = "admin@barwaaqo.so"
	}
	password := viper.GetString("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	var existing int
	if err := config.DB.Get(&existing, "SELECT COUNT(*) FROM users WHERE email = ?", email); err != nil {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}
	if existing > 0 {
		log.Printf("Admin %s already exists, skipping", email)
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = config.DB.Exec(`
		INSERT INTO users (email, name, password, verified, token_version, created_at, updated_at)
		VALUES (?, 'Administrator', ?, 1, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, email, hashed)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user: %s", email)
}

func seedSettings() {
	languages := []struct {
		code    string
		enabled bool
	}{
		{"en", true},
		{"so", true},
		{"ar", false},
	}
	for i, l := range languages {
		_, err := config.DB.Exec(`
			INSERT IGNORE INTO site_languages (language_code, enabled, display_order, created_at, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		`, l.code, l.enabled, i)
		if err != nil {
			log.Fatalf("Failed to seed language %s: %v", l.code, err)
		}
	}

	menus := []string{"home", "about", "products", "gallery", "news", "contact"}
	for i, key := range menus {
		_, err := config.DB.Exec(`
			INSERT IGNORE INTO site_menus (menu_key, visible, display_order, created_at, updated_at)
			VALUES (?, 1, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		`, key, i)
		if err != nil {
			log.Fatalf("Failed to seed menu %s: %v", key, err)
		}
	}
	log.Println("Seeded settings")
}

func seedContent() {
	var heroCount int
	if err := config.DB.Get(&heroCount, "SELECT COUNT(*) FROM hero_headers"); err != nil {
		log.Fatalf("Failed to check hero content: %v", err)
	}
	if heroCount > 0 {
		log.Println("Content already present, skipping starter content")
		return
	}

	_, err := config.DB.Exec(`
		INSERT INTO hero_headers (title_en, title_so, subtitle_en, cta_label_en, cta_url, active, created_at, updated_at)
		VALUES ('Growing Somalia''s Future', 'Beeraha Mustaqbalka Soomaaliya',
		        'Family-run farms producing quality fruit and grain for local and export markets.',
		        'Explore our produce', '/products', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		log.Fatalf("Failed to seed hero header: %v", err)
	}

	stats := []struct {
		label, value, emoji string
	}{
		{"Hectares farmed", "120+", "🌾"},
		{"Harvests per year", "3", "🚜"},
		{"Families supported", "40", "🤝"},
	}
	for i, s := range stats {
		_, err := config.DB.Exec(`
			INSERT INTO hero_stats (label_en, value, emoji, display_order, active, created_at, updated_at)
			VALUES (?, ?, ?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		`, s.label, s.value, s.emoji, i)
		if err != nil {
			log.Fatalf("Failed to seed hero stat: %v", err)
		}
	}

	_, err = config.DB.Exec(`
		INSERT INTO mission_headers (title_en, body_en, active, created_at, updated_at)
		VALUES ('Our Mission',
		        'We grow healthy food sustainably, invest in our community, and bring Somali produce to the wider market.',
		        1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		log.Fatalf("Failed to seed mission header: %v", err)
	}

	_, err = config.DB.Exec(`
		INSERT INTO product_headers (title_en, intro_en, active, created_at, updated_at)
		VALUES ('Our Produce', 'Seasonal fruit and grain grown along the Shabelle valley.',
		        1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		log.Fatalf("Failed to seed product header: %v", err)
	}

	_, err = config.DB.Exec(`
		INSERT INTO contact_info (address_en, hours_en, phone, email, active, created_at, updated_at)
		VALUES ('Mogadishu, Somalia', 'Saturday - Thursday, 8:00 - 17:00',
		        '+252 61 000 0000', 'info@barwaaqo.so', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		log.Fatalf("Failed to seed contact info: %v", err)
	}

	log.Println("Seeded starter content")
}
