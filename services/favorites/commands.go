package favorites

import (
	"context"

	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/services/catalog"
)

// Add marks a product as favorite in the active scope. Adding an already
// favorited product has no effect; without an active scope it is a no-op.
func (s *service) Add(c context.Context, product catalog.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, found := s.ensureLoaded(c)
	if !found {
		s.logger.Log(c, product.ID, mylog.SeverityInfo, "Ignoring favorite of %s: no location selected", product.ID)
		return
	}

	for _, item := range s.items {
		if item.ID == product.ID {
			return
		}
	}

	s.items = append(s.items, product)
	s.persister.Store(c, current.FavoritesKey(), s.items)

	s.logger.Log(c, product.ID, mylog.SeverityInfo, "Favorited product %s at %s", product.ID, current.Location)
}

// Remove is idempotent: removing an absent product has no effect.
func (s *service) Remove(c context.Context, productID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, found := s.ensureLoaded(c)
	if !found {
		return
	}

	items := make([]catalog.Product, 0, len(s.items))
	removed := false
	for _, item := range s.items {
		if item.ID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return
	}

	s.items = items
	s.persister.Store(c, current.FavoritesKey(), s.items)

	s.logger.Log(c, productID, mylog.SeverityInfo, "Unfavorited product %s at %s", productID, current.Location)
}

func (s *service) IsFavorite(c context.Context, productID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return false
	}

	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (s *service) List(c context.Context) []catalog.Product {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return []catalog.Product{}
	}

	items := make([]catalog.Product, len(s.items))
	copy(items, s.items)
	return items
}
