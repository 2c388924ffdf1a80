package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/services/cart/cartevents"
	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/orders"
)

// Add puts one unit of the product in the cart: an existing line is
// incremented, otherwise a new line with quantity 1 is inserted.
func (s *service) Add(c context.Context, product catalog.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	userID, found := s.ensureLoaded(c)
	if !found {
		s.logger.Log(c, product.ID, mylog.SeverityInfo, "Ignoring add-to-cart of %s: nobody signed in", product.ID)
		return
	}

	adjusted := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			adjusted = true
			break
		}
	}
	if !adjusted {
		s.lines = append(s.lines, Line{Product: product, Quantity: 1})
	}

	s.persist(c, userID)
}

// Remove deletes the line unconditionally, whatever its quantity.
func (s *service) Remove(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	userID, found := s.ensureLoaded(c)
	if !found {
		return
	}

	lines := make([]Line, 0, len(s.lines))
	removed := false
	for _, line := range s.lines {
		if line.Product.ID == productID {
			removed = true
			continue
		}
		lines = append(lines, line)
	}
	if !removed {
		return
	}

	s.lines = lines
	s.persist(c, userID)
}

// Increase adds one unit to an existing line.
func (s *service) Increase(c context.Context, productID string) {
	s.adjustQuantity(c, productID, 1)
}

// Decrease removes one unit; a line at quantity 1 is removed entirely, so
// a quantity below 1 can never be observed or persisted.
func (s *service) Decrease(c context.Context, productID string) {
	s.adjustQuantity(c, productID, -1)
}

func (s *service) adjustQuantity(c context.Context, productID string, delta int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	userID, found := s.ensureLoaded(c)
	if !found {
		return
	}

	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}

		s.lines[i].Quantity += delta
		if s.lines[i].Quantity < 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}

		s.persist(c, userID)
		return
	}
}

func (s *service) Quantity(c context.Context, productID string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return 0
	}

	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}

func (s *service) Contains(c context.Context, productID string) bool {
	return s.Quantity(c, productID) > 0
}

// Count is the total number of units in the cart, summed over all lines.
func (s *service) Count(c context.Context) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return 0
	}

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *service) Lines(c context.Context) []Line {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return []Line{}
	}

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Checkout snapshots the cart into a new order for the active scope and
// empties the cart. With an empty cart or without an active location it is
// a silent no-op: an order cannot be scoped without one.
func (s *service) Checkout(c context.Context) error {
	s.mutex.Lock()

	userID, found := s.ensureLoaded(c)
	if !found {
		s.mutex.Unlock()
		s.logger.Log(c, "", mylog.SeverityInfo, "Ignoring checkout: nobody signed in")
		return nil
	}
	if len(s.lines) == 0 {
		s.mutex.Unlock()
		s.logger.Log(c, userID, mylog.SeverityInfo, "Ignoring checkout: cart is empty")
		return nil
	}

	current, found := s.scopes.Current(c)
	if !found {
		s.mutex.Unlock()
		s.logger.Log(c, userID, mylog.SeverityInfo, "Ignoring checkout: no location selected")
		return nil
	}

	total := decimal.Zero
	for _, line := range s.lines {
		price, err := catalog.ParsePrice(line.Product.Price)
		if err != nil {
			s.mutex.Unlock()
			return myerrors.NewInternalError(err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	formattedTotal := catalog.FormatPrice(total)

	snapshot := make([]orders.Line, 0, len(s.lines))
	for _, line := range s.lines {
		snapshot = append(snapshot, orders.Line{Product: line.Product, Quantity: line.Quantity})
	}

	orderID, err := s.recorder.Record(c, snapshot, formattedTotal)
	if err != nil {
		// the cart is left untouched: no order, nothing lost
		s.mutex.Unlock()
		return err
	}

	s.lines = []Line{}
	s.persist(c, userID)
	s.mutex.Unlock()

	s.logger.Log(c, orderID, mylog.SeverityInfo, "Checked out order %s (%s) for user %s at %s", orderID, formattedTotal, userID, current.Location)

	err = s.publisher.Publish(c, cartevents.TopicName, cartevents.CartCheckedOut{
		UserID:       userID,
		LocationName: current.Location,
		OrderID:      orderID,
		Total:        formattedTotal,
	})
	if err != nil {
		s.logger.Log(c, orderID, mylog.SeverityWarn, "Error publishing checkout event: %s", err)
	}

	return nil
}
