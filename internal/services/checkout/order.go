package checkout

// Line is one order line: a product and how many of it.
type Line struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Order accumulates lines against a catalog and totals them.
type Order struct {
	catalog *Catalog
	lines   []Line
}

// NewOrder starts an empty order against the catalog.
func NewOrder(catalog *Catalog) *Order {
	return &Order{catalog: catalog}
}

// Add appends a line for quantity units of the given product.
func (o *Order) Add(productID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p, err := o.catalog.Product(productID)
	if err != nil {
		return err
	}
	o.lines = append(o.lines, Line{
		Product:  p,
		Quantity: quantity,
		Subtotal: p.Price * float64(quantity),
	})
	return nil
}

// Lines returns the accumulated order lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.lines {
		total += l.Subtotal
	}
	return total
}
