package scope

import (
	"context"

	"github.com/grocerly/shopcore/lib/kvstore"
	"github.com/grocerly/shopcore/lib/mylog"
)

// Key under which the signed-in user identifier is persisted.
const currentUserKey = "currentUser"

// Session resolves the signed-in user from the key-value store and owns
// sign-in/sign-out. Credential handling lives elsewhere; this only keeps
// the user identifier.
type Session struct {
	kv     kvstore.KV
	logger mylog.Logger
}

func NewSession(kv kvstore.KV) *Session {
	return &Session{
		kv:     kv,
		logger: mylog.New("session"),
	}
}

func (s *Session) CurrentUserID(c context.Context) (string, bool) {
	userID, found, err := s.kv.Get(c, currentUserKey)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error fetching current user: %s", err)
		return "", false
	}
	if !found || userID == "" {
		return "", false
	}

	return userID, true
}

// SignIn persists the user identifier synchronously: everything downstream
// derives its keys from it, so it must be durable before any store operates.
func (s *Session) SignIn(c context.Context, userID string) error {
	s.logger.Log(c, userID, mylog.SeverityInfo, "User %s signed in", userID)

	return s.kv.Set(c, currentUserKey, userID)
}

func (s *Session) SignOut(c context.Context) error {
	s.logger.Log(c, "", mylog.SeverityInfo, "User signed out")

	return s.kv.Remove(c, currentUserKey)
}
