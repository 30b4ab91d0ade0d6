package domain

import (
	"errors"

	"github.com/padoca/ordering/internal/shared/money"
)

var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrStockLimitReached = errors.New("requested quantity reached the available stock")
)

// Line is one product and the requested quantity pending checkout. Name and
// unit price are captured from the catalog when the line is created so a
// later checkout snapshot does not depend on catalog lookups.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice money.Money
	Quantity  int64
}

// Subtotal is the line amount in centavos.
func (l Line) Subtotal() money.Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Shortfall reports a reconciliation finding for one line. When the product
// is sold out the line was dropped and Available carries no meaning.
type Shortfall struct {
	ProductID  int64
	Name       string
	Requested  int64
	Available  int64
	OutOfStock bool
}

// Report is the outcome of one reconciliation pass.
type Report struct {
	Lines      []Line
	Shortfalls []Shortfall
}

// Clean reports whether the pass found every line fully available.
func (r Report) Clean() bool {
	return len(r.Shortfalls) == 0
}

// Totals aggregates the cart for display and for the checkout snapshot.
type Totals struct {
	Items  int64
	Amount money.Money
}

// Cart holds the requested lines for one customer. Quantities are always
// positive; a line that would reach zero is removed instead.
type Cart struct {
	Lines []Line
}

// Add increments the line for the product by one, creating it at quantity
// one. The quantity never exceeds the available stock: a sold-out product
// fails with ErrOutOfStock, a line already at the cap fails with
// ErrStockLimitReached. Both leave the cart unchanged.
func (c *Cart) Add(productID int64, name string, unitPrice money.Money, stock int64) error {
	if stock <= 0 {
		return ErrOutOfStock
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if c.Lines[i].Quantity >= stock {
			return ErrStockLimitReached
		}
		c.Lines[i].Quantity++
		return nil
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Name: name, UnitPrice: unitPrice, Quantity: 1})
	return nil
}

// Remove decrements the line by one and drops it when the quantity would
// reach zero. Unknown products are ignored.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if c.Lines[i].Quantity > 1 {
			c.Lines[i].Quantity--
			return
		}
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
}

// Delete drops the line regardless of quantity.
func (c *Cart) Delete(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Reconcile clamps every line to the available stock. Sold-out lines are
// dropped and flagged without an available figure; clamped lines are kept at
// the reduced quantity and flagged with the requested/available pair. A
// second pass against unchanged stock yields no shortfalls.
func (c *Cart) Reconcile(available func(productID int64) int64) Report {
	kept := make([]Line, 0, len(c.Lines))
	var shortfalls []Shortfall
	for _, line := range c.Lines {
		stock := available(line.ProductID)
		if stock <= 0 {
			shortfalls = append(shortfalls, Shortfall{
				ProductID:  line.ProductID,
				Name:       line.Name,
				Requested:  line.Quantity,
				OutOfStock: true,
			})
			continue
		}
		if line.Quantity > stock {
			shortfalls = append(shortfalls, Shortfall{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: stock,
			})
			line.Quantity = stock
		}
		kept = append(kept, line)
	}
	c.Lines = kept
	return Report{Lines: c.CloneLines(), Shortfalls: shortfalls}
}

// Totals sums quantities and subtotals in centavos.
func (c *Cart) Totals() Totals {
	var totals Totals
	for _, line := range c.Lines {
		totals.Items += line.Quantity
		totals.Amount = totals.Amount.Add(line.Subtotal())
	}
	return totals
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// CloneLines returns a by-value copy of the lines.
func (c *Cart) CloneLines() []Line {
	if len(c.Lines) == 0 {
		return nil
	}
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() Cart {
	return Cart{Lines: c.CloneLines()}
}
