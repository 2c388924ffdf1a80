package orders

import (
	"context"
	"fmt"

	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/mylog"
)

// Record appends a checkout snapshot to the active scope's order log and
// returns the new order id. The id is sequential within the scope,
// zero-padded for stable lexicographic ordering.
func (s *service) Record(c context.Context, items []Line, total string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, found := s.ensureLoaded(c)
	if !found {
		return "", myerrors.NewInvalidInputErrorf("cannot record an order without an active location")
	}

	snapshot := make([]Line, len(items))
	copy(snapshot, items)

	order := Order{
		ID:    fmt.Sprintf("%03d", len(s.items)+1),
		Date:  s.nower.Now().Format(dateLayout),
		Items: snapshot,
		Total: total,
	}

	s.items = append(s.items, order)
	s.persister.Store(c, current.OrdersKey(), s.items)

	s.logger.Log(c, order.ID, mylog.SeverityInfo, "Recorded order %s (%s) at %s", order.ID, order.Total, current.Location)

	return order.ID, nil
}

// List returns the active scope's orders, newest-last (insertion order).
func (s *service) List(c context.Context) []Order {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return []Order{}
	}

	items := make([]Order, len(s.items))
	copy(items, s.items)
	return items
}
