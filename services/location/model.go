package location

import "time"

// Location is a physical venue the user registered by scanning its code.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	LastVisit time.Time `json:"lastVisit"`
}

// registryState is the single owned state value per user: the visited list
// and the active selection live in one document, mutated and persisted
// together, so they cannot drift apart.
//
// Active == nil means "no location selected".
type registryState struct {
	Visited []Location `json:"visited"`
	Active  *Location  `json:"active"`
}

// reconcile restores the invariant that an active location is always a
// member of the visited list.
func (s *registryState) reconcile() {
	if s.Active == nil {
		return
	}
	for _, loc := range s.Visited {
		if loc.ID == s.Active.ID {
			return
		}
	}
	s.Active = nil
}

func (s *registryState) find(id string) (Location, bool) {
	for _, loc := range s.Visited {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

func (s *registryState) findByName(name string) (Location, bool) {
	for _, loc := range s.Visited {
		if loc.Name == name {
			return loc, true
		}
	}
	return Location{}, false
}
