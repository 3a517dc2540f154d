package models

// CategoryKind separates categories that hold offerings from fixed info pages
type CategoryKind int

const (
	CategoryCatalog CategoryKind = iota
	CategoryInfo
)

// Category is one of the process-wide enumerated categories.
// Offerings reference a category by its Label.
type Category struct {
	Key   string
	Label string
	Kind  CategoryKind
}

// category keys
const (
	CategoryOptimization = "optimization"
	CategoryComponents   = "components"
	CategoryDevices      = "devices"
	CategoryGiveaway     = "giveaway"
	CategoryAbout        = "about"
	CategoryContacts     = "contacts"
)

var categories = []Category{
	{Key: CategoryOptimization, Label: "📦 PC optimization and overclocking", Kind: CategoryCatalog},
	{Key: CategoryComponents, Label: "💻 Components", Kind: CategoryCatalog},
	{Key: CategoryDevices, Label: "🖱 Devices", Kind: CategoryCatalog},
	{Key: CategoryGiveaway, Label: "🎁 Giveaway", Kind: CategoryInfo},
	{Key: CategoryAbout, Label: "🧾 About us", Kind: CategoryInfo},
	{Key: CategoryContacts, Label: "📞 Contacts and ordering", Kind: CategoryInfo},
}

// Categories returns the enumerated categories in menu order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
