package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/lib/mypublisher"
	"github.com/grocerly/shopcore/services/scope"
)

// service keeps the signed-in user's cart. Unlike favorites and orders the
// cart is partitioned by user only, not by location: it is the person's
// in-progress shopping trip and survives switching stores.
type service struct {
	kv        kvstore.KV
	persister *kvstore.Persister
	scopes    scope.Resolver
	recorder  OrderRecorder
	publisher mypublisher.Publisher
	logger    mylog.Logger

	mutex      sync.Mutex
	loaded     bool
	cachedUser string
	lines      []Line
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(kv kvstore.KV, persister *kvstore.Persister, scopes scope.Resolver, recorder OrderRecorder, publisher mypublisher.Publisher) *service {
	return &service{
		kv:        kv,
		persister: persister,
		scopes:    scopes,
		recorder:  recorder,
		publisher: publisher,
		logger:    mylog.New("cart"),
	}
}

// ensureLoaded resolves the signed-in user and lazily loads that user's
// cart. Must be called with the mutex held.
func (s *service) ensureLoaded(c context.Context) (string, bool) {
	userID, found := s.scopes.CurrentUser(c)
	if !found {
		s.loaded = false
		s.cachedUser = ""
		s.lines = nil
		return "", false
	}

	if s.loaded && s.cachedUser == userID {
		return userID, true
	}

	lines := []Line{}
	raw, exists, err := s.kv.Get(c, scope.CartKey(userID))
	if err != nil {
		s.logger.Log(c, userID, mylog.SeverityWarn, "Error loading cart of user %s, starting empty: %s", userID, err)
	} else if exists {
		err = json.Unmarshal([]byte(raw), &lines)
		if err != nil {
			s.logger.Log(c, userID, mylog.SeverityWarn, "Error parsing cart of user %s, starting empty: %s", userID, err)
			lines = []Line{}
		}
	}

	s.loaded = true
	s.cachedUser = userID
	s.lines = lines

	return userID, true
}

// persist mirrors the full line list. Must be called with the mutex held.
func (s *service) persist(c context.Context, userID string) {
	s.persister.Store(c, scope.CartKey(userID), s.lines)
}
