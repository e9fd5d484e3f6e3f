// Package checkout holds the product catalog and order totals that a
// payment settles. Catalogs are loaded from a YAML file at startup.
package checkout

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Product is one sellable item.
type Product struct {
	ID    int     `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Price float64 `yaml:"price" json:"price"`
}

type catalogFile struct {
	Currency string    `yaml:"currency"`
	Products []Product `yaml:"products"`
}

// Catalog is an immutable product listing keyed by product id.
type Catalog struct {
	currency string
	byID     map[int]Product
}

// LoadCatalog reads a catalog YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if f.Currency == "" {
		f.Currency = "PHP"
	}

	byID := make(map[int]Product, len(f.Products))
	for _, p := range f.Products {
		if p.ID <= 0 || p.Name == "" || p.Price < 0 {
			return nil, fmt.Errorf("parse catalog: bad product entry %+v", p)
		}
		byID[p.ID] = p
	}
	return &Catalog{currency: f.Currency, byID: byID}, nil
}

// Currency returns the catalog's pricing currency.
func (c *Catalog) Currency() string {
	return c.currency
}

// Product looks up one product by id.
func (c *Catalog) Product(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrUnknownProduct
	}
	return p, nil
}

// Products returns all products ordered by id.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.byID))
	for _, p := range c.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
