package menu

import (
	"fmt"
	"math/rand"
	"strings"

	"star-barista/internal/domain"
)

type Category struct {
	Name  string
	Items []domain.MenuItem
}

// Catalog is the fixed kiosk menu: ordered categories for display plus a
// flattened lower-cased index for lookups and fuzzy matching.
type Catalog struct {
	categories []Category
	byName     map[string]domain.MenuItem
	flat       []domain.MenuItem
}

func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		byName:     make(map[string]domain.MenuItem),
	}
	for ci := range categories {
		cat := &categories[ci]
		for ii := range cat.Items {
			cat.Items[ii].Category = cat.Name
			item := cat.Items[ii]
			key := strings.ToLower(item.Name)
			if _, ok := c.byName[key]; ok {
				return nil, fmt.Errorf("duplicate menu item %q", item.Name)
			}
			c.byName[key] = item
			c.flat = append(c.flat, item)
		}
	}
	return c, nil
}

// Lookup finds an item by exact name, case-insensitive.
func (c *Catalog) Lookup(name string) (domain.MenuItem, bool) {
	item, ok := c.byName[strings.ToLower(name)]
	return item, ok
}

// Items returns the flattened catalog in menu order.
func (c *Catalog) Items() []domain.MenuItem {
	return c.flat
}

func (c *Catalog) Categories() []Category {
	return c.categories
}

// Random picks one item uniformly from the whole catalog.
func (c *Catalog) Random(rng *rand.Rand) domain.MenuItem {
	return c.flat[rng.Intn(len(c.flat))]
}

// Default is the standard Star Barista menu.
func Default() *Catalog {
	c, err := New([]Category{
		{Name: "Hot Drinks", Items: []domain.MenuItem{
			{Name: "Caffe Americano", Price: 3.50},
			{Name: "Cappuccino", Price: 4.50},
			{Name: "Pumpkin Spice Latte", Price: 5.25},
			{Name: "White Chocolate Mocha", Price: 5.00},
			{Name: "Caramel Macchiato", Price: 4.75},
			{Name: "Flat White", Price: 4.75},
		}},
		{Name: "Iced Drinks", Items: []domain.MenuItem{
			{Name: "Iced Coffee", Price: 3.25},
			{Name: "Iced Matcha Lemonade", Price: 4.50},
			{Name: "Nitro Cold Brew", Price: 4.75},
			{Name: "Pink Drink", Price: 5.00},
			{Name: "Iced Chai Latte", Price: 4.50},
			{Name: "Dragon Drink", Price: 5.25},
		}},
		{Name: "Food", Items: []domain.MenuItem{
			{Name: "Butter Croissant", Price: 2.75},
			{Name: "Blueberry Muffin", Price: 2.95},
			{Name: "Bacon & Gouda Sandwich", Price: 5.25},
			{Name: "Cake Pop", Price: 2.25},
			{Name: "Impossible Breakfast Sandwich", Price: 5.75},
		}},
	})
	if err != nil {
		panic(err) // static data, duplicate names are a programming error
	}
	return c
}
