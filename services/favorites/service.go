package favorites

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/services/catalog"
	"github.com/grocerly/shopcore/services/scope"
)

// service keeps the favorite products of the active (user, location)
// scope. In-memory state is authoritative; the key-value store is a
// write-behind mirror. Without an active scope every mutation is a no-op:
// favorites are meaningless outside a store.
type service struct {
	kv        kvstore.KV
	persister *kvstore.Persister
	scopes    scope.Resolver
	logger    mylog.Logger

	mutex       sync.Mutex
	loaded      bool
	cachedScope scope.Scope
	items       []catalog.Product
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(kv kvstore.KV, persister *kvstore.Persister, scopes scope.Resolver) *service {
	return &service{
		kv:        kv,
		persister: persister,
		scopes:    scopes,
		logger:    mylog.New("favorites"),
	}
}

// ensureLoaded resolves the active scope and lazily loads its favorites.
// Must be called with the mutex held.
func (s *service) ensureLoaded(c context.Context) (scope.Scope, bool) {
	current, found := s.scopes.Current(c)
	if !found {
		s.loaded = false
		s.cachedScope = scope.Scope{}
		s.items = nil
		return scope.Scope{}, false
	}

	if s.loaded && s.cachedScope == current {
		return current, true
	}

	items := []catalog.Product{}
	raw, exists, err := s.kv.Get(c, current.FavoritesKey())
	if err != nil {
		s.logger.Log(c, current.Location, mylog.SeverityWarn, "Error loading favorites for scope %v, starting empty: %s", current, err)
	} else if exists {
		err = json.Unmarshal([]byte(raw), &items)
		if err != nil {
			s.logger.Log(c, current.Location, mylog.SeverityWarn, "Error parsing favorites for scope %v, starting empty: %s", current, err)
			items = []catalog.Product{}
		}
	}

	s.loaded = true
	s.cachedScope = current
	s.items = items

	return current, true
}

// OnScopeChanged implements location.ScopeSubscriber: the cached favorites
// are dropped and reloaded for the new scope before the transition
// completes, so a read issued right after never sees the old scope's data.
func (s *service) OnScopeChanged(c context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.loaded = false
	s.ensureLoaded(c)

	return nil
}
