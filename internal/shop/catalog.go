package shop

// Product is a single catalog entry. Prices are kept in cents.
type Product struct {
	ID          int
	Name        string
	Description string
	PriceCents  int
	InStock     bool
}

// Catalog is the in-memory product catalog.
type Catalog struct {
	products []Product
	index    map[int]Product
}

// NewCatalog creates a catalog seeded with the demo products.
func NewCatalog() *Catalog {
	products := []Product{
		{ID: 1, Name: "Laptop Pro 15", Description: "15-inch developer laptop, 32 GB RAM", PriceCents: 189900, InStock: true},
		{ID: 2, Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", PriceCents: 12900, InStock: true},
		{ID: 3, Name: "4K Monitor 27", Description: "27-inch IPS panel, USB-C", PriceCents: 44900, InStock: true},
		{ID: 4, Name: "Wireless Mouse", Description: "Ergonomic, 2.4 GHz receiver", PriceCents: 4900, InStock: true},
		{ID: 5, Name: "USB-C Dock", Description: "Dual display, 100 W passthrough", PriceCents: 15900, InStock: false},
		{ID: 6, Name: "Noise-Cancelling Headphones", Description: "Over-ear, 30 h battery", PriceCents: 27900, InStock: true},
	}

	index := make(map[int]Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return &Catalog{products: products, index: index}
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return c.products
}

// Get looks up a product by id.
func (c *Catalog) Get(id int) (Product, bool) {
	p, ok := c.index[id]
	return p, ok
}
