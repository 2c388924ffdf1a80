package orders

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mytime"
	"github.com/grocerly/shopcore/services/scope"
)

// service keeps the order history of the active (user, location) scope,
// newest-last. Mutation happens only through Record, which only the cart's
// checkout invokes; everything else is read access.
type service struct {
	kv        kvstore.KV
	persister *kvstore.Persister
	scopes    scope.Resolver
	nower     mytime.Nower
	logger    mylog.Logger

	mutex       sync.Mutex
	loaded      bool
	cachedScope scope.Scope
	items       []Order
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(kv kvstore.KV, persister *kvstore.Persister, scopes scope.Resolver, nower mytime.Nower) *service {
	return &service{
		kv:        kv,
		persister: persister,
		scopes:    scopes,
		nower:     nower,
		logger:    mylog.New("orders"),
	}
}

// ensureLoaded resolves the active scope and lazily loads its order log.
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

	items := []Order{}
	raw, exists, err := s.kv.Get(c, current.OrdersKey())
	if err != nil {
		s.logger.Log(c, current.Location, mylog.SeverityWarn, "Error loading orders for scope %v, starting empty: %s", current, err)
	} else if exists {
		err = json.Unmarshal([]byte(raw), &items)
		if err != nil {
			s.logger.Log(c, current.Location, mylog.SeverityWarn, "Error parsing orders for scope %v, starting empty: %s", current, err)
			items = []Order{}
		}
	}

	s.loaded = true
	s.cachedScope = current
	s.items = items

	return current, true
}

// OnScopeChanged implements location.ScopeSubscriber.
func (s *service) OnScopeChanged(c context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.loaded = false
	s.ensureLoaded(c)

	return nil
}
