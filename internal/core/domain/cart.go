package domain

// CartLine is one product/quantity pairing within a cart.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is a collection of lines, unique by product id, scoped to one
// browsing session. All mutations are total functions: invalid input is
// dropped silently, never surfaced as an error. Totals are always
// recomputed from the lines, never cached, so they cannot drift.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges a product into the cart. An existing line for the same
// product id has its quantity incremented; otherwise a new line is
// appended. Lines with a missing name, a negative price, or a
// non-positive quantity are dropped without touching the cart.
func (c *Cart) Add(line CartLine, qty int) {
	if line.ProductID == "" || line.Name == "" || line.Price < 0 || qty <= 0 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += qty
			return
		}
	}
	line.Quantity = qty
	c.Lines = append(c.Lines, line)
}

// Remove deletes the line for productID. Absent lines are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to exactly qty. A quantity of
// zero or below removes the line.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Increment raises the line's quantity by step.
func (c *Cart) Increment(productID string, step int) {
	if step <= 0 {
		step = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += step
			return
		}
	}
}

// Decrement lowers the line's quantity by step. A quantity that would
// fall below 1 removes the line; quantities never persist as <= 0.
func (c *Cart) Decrement(productID string, step int) {
	if step <= 0 {
		step = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if c.Lines[i].Quantity-step < 1 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			} else {
				c.Lines[i].Quantity -= step
			}
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total returns the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the total number of item units, not the line count.
func (c *Cart) Count() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// ItemQuantity returns the quantity for productID, or 0 when absent.
func (c *Cart) ItemQuantity(productID string) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
