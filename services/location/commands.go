package location

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grocerly/shopcore/lib/myerrors"
	"github.com/grocerly/shopcore/lib/myevents"
	"github.com/grocerly/shopcore/lib/mylog"
	"github.com/grocerly/shopcore/services/location/locationevents"
	"github.com/grocerly/shopcore/services/scope"
)

// ensureLoaded resolves the signed-in user and lazily loads that user's
// registry state. Must be called with the mutex held.
func (s *service) ensureLoaded(c context.Context) (string, bool) {
	userID, found := s.users.CurrentUserID(c)
	if !found {
		s.cachedUser = ""
		s.loaded = false
		s.state = registryState{}
		return "", false
	}

	if s.loaded && s.cachedUser == userID {
		return userID, true
	}

	state := registryState{}
	raw, exists, err := s.kv.Get(c, scope.RegistryKey(userID))
	if err != nil {
		s.logger.Log(c, userID, mylog.SeverityWarn, "Error loading locations of user %s, starting empty: %s", userID, err)
	} else if exists {
		err = json.Unmarshal([]byte(raw), &state)
		if err != nil {
			s.logger.Log(c, userID, mylog.SeverityWarn, "Error parsing locations of user %s, starting empty: %s", userID, err)
			state = registryState{}
		}
	}
	state.reconcile()

	s.cachedUser = userID
	s.loaded = true
	s.state = state

	return userID, true
}

// Visited returns the user's visited locations, active location first.
func (s *service) Visited(c context.Context) []Location {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found {
		return []Location{}
	}

	visited := make([]Location, len(s.state.Visited))
	copy(visited, s.state.Visited)

	if s.state.Active != nil {
		activeID := s.state.Active.ID
		sort.SliceStable(visited, func(i, j int) bool {
			return visited[i].ID == activeID && visited[j].ID != activeID
		})
	}

	return visited
}

// Active returns the currently selected location, if any.
func (s *service) Active(c context.Context) (Location, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, found := s.ensureLoaded(c)
	if !found || s.state.Active == nil {
		return Location{}, false
	}

	return *s.state.Active, true
}

// ActiveLocationName implements scope.ActiveLocator.
func (s *service) ActiveLocationName(c context.Context) (string, bool) {
	active, found := s.Active(c)
	if !found {
		return "", false
	}
	return active.Name, true
}

// Register records a scanned location. A known id is not duplicated: its
// last-visit timestamp is refreshed instead. Either way the location
// becomes the active one.
func (s *service) Register(c context.Context, loc Location) error {
	s.mutex.Lock()

	userID, found := s.ensureLoaded(c)
	if !found {
		s.mutex.Unlock()
		s.logger.Log(c, "", mylog.SeverityInfo, "Ignoring location registration: nobody signed in")
		return nil
	}

	loc.LastVisit = s.nower.Now()

	_, known := s.state.find(loc.ID)
	if known {
		for i := range s.state.Visited {
			if s.state.Visited[i].ID == loc.ID {
				s.state.Visited[i].LastVisit = loc.LastVisit
				loc = s.state.Visited[i]
			}
		}
	} else {
		s.state.Visited = append(s.state.Visited, loc)
	}
	s.state.Active = &loc

	s.persist(c, userID)
	s.mutex.Unlock()

	s.logger.Log(c, loc.ID, mylog.SeverityInfo, "Registered location %s (%s) for user %s", loc.ID, loc.Name, userID)

	err := s.notifySubscribers(c)
	if err != nil {
		return err
	}

	s.publish(c, locationevents.LocationRegistered{
		UserID:       userID,
		LocationID:   loc.ID,
		LocationName: loc.Name,
	})

	return nil
}

// Select activates one of the already-visited locations. The scope reload
// of favorites and orders completes before Select returns: a read issued
// right after never sees the previous location's data.
func (s *service) Select(c context.Context, name string) error {
	s.mutex.Lock()

	userID, found := s.ensureLoaded(c)
	if !found {
		s.mutex.Unlock()
		s.logger.Log(c, "", mylog.SeverityInfo, "Ignoring location selection: nobody signed in")
		return nil
	}

	loc, known := s.state.findByName(name)
	if !known {
		s.mutex.Unlock()
		return myerrors.NewNotFoundError(fmt.Errorf("location %s has not been visited", name))
	}

	s.state.Active = &loc
	s.persist(c, userID)
	s.mutex.Unlock()

	s.logger.Log(c, loc.ID, mylog.SeverityInfo, "Selected location %s (%s) for user %s", loc.ID, loc.Name, userID)

	err := s.notifySubscribers(c)
	if err != nil {
		return err
	}

	s.publish(c, locationevents.LocationSelected{
		UserID:       userID,
		LocationID:   loc.ID,
		LocationName: loc.Name,
	})

	return nil
}

// Delete removes a visited location. Deleting the active location (or the
// last one) transitions to "no location selected"; the detached scope's
// favorites and orders stay persisted under their old keys.
func (s *service) Delete(c context.Context, id string) error {
	s.mutex.Lock()

	userID, found := s.ensureLoaded(c)
	if !found {
		s.mutex.Unlock()
		return nil
	}

	_, known := s.state.find(id)
	if !known {
		// already gone, deletion is idempotent
		s.mutex.Unlock()
		return nil
	}

	wasActive := s.state.Active != nil && s.state.Active.ID == id

	visited := make([]Location, 0, len(s.state.Visited))
	for _, loc := range s.state.Visited {
		if loc.ID != id {
			visited = append(visited, loc)
		}
	}
	s.state.Visited = visited
	if wasActive || len(s.state.Visited) == 0 {
		s.state.Active = nil
	}
	s.state.reconcile()

	s.persist(c, userID)
	s.mutex.Unlock()

	s.logger.Log(c, id, mylog.SeverityInfo, "Deleted location %s for user %s (was active: %v)", id, userID, wasActive)

	err := s.notifySubscribers(c)
	if err != nil {
		return err
	}

	s.publish(c, locationevents.LocationDeleted{
		UserID:     userID,
		LocationID: id,
		WasActive:  wasActive,
	})

	return nil
}

// persist mirrors the whole registry state as one document. Must be called
// with the mutex held.
func (s *service) persist(c context.Context, userID string) {
	s.persister.Store(c, scope.RegistryKey(userID), s.state)
}

func (s *service) notifySubscribers(c context.Context) error {
	for _, subscriber := range s.subscribers {
		err := subscriber.OnScopeChanged(c)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error reloading scoped state: %s", err))
		}
	}
	return nil
}

func (s *service) publish(c context.Context, event myevents.Event) {
	err := s.publisher.Publish(c, locationevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error publishing %s: %s", event.GetEventTypeName(), err)
	}
}
