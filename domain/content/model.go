package content

// Section names used for cache keys and logging. Each maps to one editor page.
const (
	SectionHero     = "hero"
	SectionMission  = "mission"
	SectionProducts = "products"
	SectionGallery  = "gallery"
	SectionNews     = "news"
	SectionContact  = "contact"
)
