package public

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/domain/contact"
	"github.com/barwaaqo-agri/be-site-backend/domain/content"
	"github.com/barwaaqo-agri/be-site-backend/domain/gallery"
	"github.com/barwaaqo-agri/be-site-backend/domain/hero"
	"github.com/barwaaqo-agri/be-site-backend/domain/mission"
	"github.com/barwaaqo-agri/be-site-backend/domain/news"
	"github.com/barwaaqo-agri/be-site-backend/domain/product"
	"github.com/barwaaqo-agri/be-site-backend/domain/settings"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

// Public reads never fail toward the visitor: a storage error is logged and
// the section's fallback content is served instead. Successful builds are
// cached per section and language; admin saves invalidate the section.

func requestLang(c echo.Context) content.Lang {
	return content.ParseLang(c.QueryParam("lang"))
}

// serveCached returns true if a cached payload was written.
func serveCached(c echo.Context, section string, lang content.Lang) bool {
	cached := config.GetCachedContent(section, string(lang))
	if cached == "" {
		return false
	}
	c.JSONBlob(http.StatusOK, []byte(cached))
	return true
}

func respond(c echo.Context, section string, lang content.Lang, view interface{}, cacheable bool) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return c.JSON(http.StatusOK, view)
	}
	if cacheable {
		config.SetCachedContent(section, string(lang), string(payload))
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// HeroHandler serves the localized hero section.
func HeroHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionHero, lang) {
		return nil
	}

	view, err := buildHero(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving hero fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackHero
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionHero, lang, view, err == nil)
}

func buildHero(lang content.Lang) (HeroView, error) {
	var header hero.Header
	if err := config.DB.Get(&header, "SELECT * FROM hero_headers WHERE active = 1 ORDER BY id LIMIT 1"); err != nil {
		return HeroView{}, err
	}

	var stats []hero.Stat
	if err := config.DB.Select(&stats, "SELECT * FROM hero_stats WHERE active = 1 ORDER BY display_order ASC, id ASC"); err != nil {
		return HeroView{}, err
	}

	view := HeroView{
		Title:    content.PickPtr(lang, header.TitleEn, header.TitleSo, header.TitleAr),
		Subtitle: content.PickPtr(lang, header.SubtitleEn, header.SubtitleSo, header.SubtitleAr),
		CtaLabel: content.PickPtr(lang, header.CtaLabelEn, header.CtaLabelSo, header.CtaLabelAr),
		CtaURL:   header.CtaURL,
		Stats:    make([]StatView, 0, len(stats)),
	}
	if header.ImageURL != nil {
		view.ImageURL = *header.ImageURL
	}
	for _, s := range stats {
		sv := StatView{
			Label: content.PickPtr(lang, s.LabelEn, s.LabelSo, s.LabelAr),
			Value: s.Value,
		}
		if s.Emoji != nil {
			sv.Emoji = *s.Emoji
		}
		view.Stats = append(view.Stats, sv)
	}
	return view, nil
}

// MissionHandler serves the localized mission section.
func MissionHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionMission, lang) {
		return nil
	}

	view, err := buildMission(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving mission fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackMission
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionMission, lang, view, err == nil)
}

func buildMission(lang content.Lang) (MissionView, error) {
	var header mission.Header
	if err := config.DB.Get(&header, "SELECT * FROM mission_headers WHERE active = 1 ORDER BY id LIMIT 1"); err != nil {
		return MissionView{}, err
	}

	var values []mission.Value
	if err := config.DB.Select(&values, "SELECT * FROM mission_values WHERE active = 1 ORDER BY display_order ASC, id ASC"); err != nil {
		return MissionView{}, err
	}

	view := MissionView{
		Title:  content.PickPtr(lang, header.TitleEn, header.TitleSo, header.TitleAr),
		Body:   content.PickPtr(lang, header.BodyEn, header.BodySo, header.BodyAr),
		Values: make([]ValueView, 0, len(values)),
	}
	for _, v := range values {
		vv := ValueView{
			Title: content.PickPtr(lang, v.TitleEn, v.TitleSo, v.TitleAr),
			Body:  content.PickPtr(lang, v.BodyEn, v.BodySo, v.BodyAr),
		}
		if v.Emoji != nil {
			vv.Emoji = *v.Emoji
		}
		if v.ColorTag != nil {
			vv.ColorTag = *v.ColorTag
		}
		view.Values = append(view.Values, vv)
	}
	return view, nil
}

// ProductsHandler serves the localized products section.
func ProductsHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionProducts, lang) {
		return nil
	}

	view, err := buildProducts(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving products fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackProducts
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionProducts, lang, view, err == nil)
}

func buildProducts(lang content.Lang) (ProductsView, error) {
	var header product.Header
	if err := config.DB.Get(&header, "SELECT * FROM product_headers WHERE active = 1 ORDER BY id LIMIT 1"); err != nil {
		return ProductsView{}, err
	}

	var products []product.Product
	if err := config.DB.Select(&products, "SELECT * FROM products WHERE active = 1 ORDER BY display_order ASC, id ASC"); err != nil {
		return ProductsView{}, err
	}

	view := ProductsView{
		Title:    content.PickPtr(lang, header.TitleEn, header.TitleSo, header.TitleAr),
		Intro:    content.PickPtr(lang, header.IntroEn, header.IntroSo, header.IntroAr),
		Products: make([]ProductView, 0, len(products)),
	}
	for _, p := range products {
		pv := ProductView{
			Name:        content.PickPtr(lang, p.NameEn, p.NameSo, p.NameAr),
			Description: content.PickPtr(lang, p.DescriptionEn, p.DescriptionSo, p.DescriptionAr),
		}
		if p.ImageURL != nil {
			pv.ImageURL = *p.ImageURL
		}
		if p.SeasonTag != nil {
			pv.SeasonTag = *p.SeasonTag
		}
		view.Products = append(view.Products, pv)
	}
	return view, nil
}

// GalleryHandler serves the localized gallery.
func GalleryHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionGallery, lang) {
		return nil
	}

	view, err := buildGallery(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving gallery fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackGallery
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionGallery, lang, view, err == nil)
}

func buildGallery(lang content.Lang) (GalleryView, error) {
	view := GalleryView{Title: fallbackGallery.Title, Images: []GalleryEntry{}}

	var header gallery.Header
	err := config.DB.Get(&header, "SELECT * FROM gallery_headers WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		view.Title = content.PickPtr(lang, header.TitleEn, header.TitleSo, header.TitleAr)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return GalleryView{}, err
	}

	var images []gallery.Image
	if err := config.DB.Select(&images, "SELECT * FROM gallery_images WHERE active = 1 ORDER BY display_order ASC, id ASC"); err != nil {
		return GalleryView{}, err
	}
	for _, img := range images {
		view.Images = append(view.Images, GalleryEntry{
			ImageURL: img.ImageURL,
			Caption:  content.PickPtr(lang, img.CaptionEn, img.CaptionSo, img.CaptionAr),
		})
	}
	return view, nil
}

// NewsHandler serves published articles, localized.
func NewsHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionNews, lang) {
		return nil
	}

	view, err := buildNews(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving news fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackNews
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionNews, lang, view, err == nil)
}

func buildNews(lang content.Lang) (NewsView, error) {
	var articles []news.Article
	if err := config.DB.Select(&articles, "SELECT * FROM news_articles WHERE active = 1 ORDER BY display_order ASC, id ASC"); err != nil {
		return NewsView{}, err
	}

	view := NewsView{Articles: make([]ArticleView, 0, len(articles))}
	for _, a := range articles {
		av := ArticleView{
			Title: content.PickPtr(lang, a.TitleEn, a.TitleSo, a.TitleAr),
			Body:  content.PickPtr(lang, a.BodyEn, a.BodySo, a.BodyAr),
		}
		if a.ImageURL != nil {
			av.ImageURL = *a.ImageURL
		}
		if a.PublishedAt != nil {
			av.PublishedAt = a.PublishedAt.Format("2006-01-02")
		}
		view.Articles = append(view.Articles, av)
	}
	return view, nil
}

// ContactHandler serves the localized contact details.
func ContactHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, content.SectionContact, lang) {
		return nil
	}

	view, err := buildContact(lang)
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving contact fallback", logger.Err(err), logger.Lang(string(lang)))
		view = fallbackContact
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, content.SectionContact, lang, view, err == nil)
}

func buildContact(lang content.Lang) (ContactView, error) {
	var info contact.Info
	if err := config.DB.Get(&info, "SELECT * FROM contact_info WHERE active = 1 ORDER BY id LIMIT 1"); err != nil {
		return ContactView{}, err
	}

	return ContactView{
		Address: content.PickPtr(lang, info.AddressEn, info.AddressSo, info.AddressAr),
		Hours:   content.PickPtr(lang, info.HoursEn, info.HoursSo, info.HoursAr),
		Phone:   info.Phone,
		Email:   info.Email,
	}, nil
}

// NavHandler serves the normalized language and menu configuration for the
// public shell.
func NavHandler(c echo.Context) error {
	lang := requestLang(c)
	if serveCached(c, "nav", lang) {
		return nil
	}

	view, err := buildNav()
	if err != nil {
		logger.Get().WithComponent("public").Warn("Serving nav fallback", logger.Err(err))
		view = fallbackNav
	}
	view.Lang = string(lang)
	view.Direction = lang.Direction()
	return respond(c, "nav", lang, view, err == nil)
}

func buildNav() (NavView, error) {
	var languageRows []settings.LanguageRow
	if err := config.DB.Select(&languageRows, "SELECT * FROM site_languages ORDER BY display_order ASC"); err != nil {
		return NavView{}, err
	}
	var menuRows []settings.MenuRow
	if err := config.DB.Select(&menuRows, "SELECT * FROM site_menus ORDER BY display_order ASC"); err != nil {
		return NavView{}, err
	}

	view := NavView{Languages: []NavLang{}, Menu: []NavItem{}}
	for _, l := range settings.NormalizeLanguages(languageRows) {
		view.Languages = append(view.Languages, NavLang{Code: l.Code, Enabled: l.Enabled})
	}
	for _, m := range settings.NormalizeMenus(menuRows) {
		view.Menu = append(view.Menu, NavItem{Key: m.Key, Visible: m.Visible})
	}
	return view, nil
}
