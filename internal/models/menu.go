package models

// MenuItem is a single dish on the storefront menu.
type MenuItem struct {
	// ID is unique within the menu collection, e.g. "mains-1".
	ID string `json:"id"`

	Name  string `json:"name"`
	Price int    `json:"price"` // smallest currency unit

	Calories int    `json:"calories,omitempty"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category"`
	Featured bool   `json:"featured,omitempty"`
	Rating   int    `json:"rating,omitempty"`
	IsNew    bool   `json:"isNew,omitempty"`

	// Available is tri-state in the data files: absent means available.
	Available *bool `json:"available,omitempty"`
}

// IsAvailable treats a missing available flag as true.
func (m *MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}

// Categories is the fixed set of menu categories the storefront knows.
var Categories = []string{
	"Mains",
	"Specials",
	"Protein & Sauces",
	"Special Sauces",
	"Sides",
	"Fries",
	"Pizza",
}

// MenuItemPatch is a partial update to a menu item. Nil fields are
// left untouched, matching the merge semantics of the admin edit form.
type MenuItemPatch struct {
	Name      *string `json:"name"`
	Price     *int    `json:"price"`
	Calories  *int    `json:"calories"`
	Image     *string `json:"image"`
	Category  *string `json:"category"`
	Featured  *bool   `json:"featured"`
	Rating    *int    `json:"rating"`
	IsNew     *bool   `json:"isNew"`
	Available *bool   `json:"available"`
}

// Apply merges the patch into the item.
func (p *MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Calories != nil {
		item.Calories = *p.Calories
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Featured != nil {
		item.Featured = *p.Featured
	}
	if p.Rating != nil {
		item.Rating = *p.Rating
	}
	if p.IsNew != nil {
		item.IsNew = *p.IsNew
	}
	if p.Available != nil {
		item.Available = p.Available
	}
}
