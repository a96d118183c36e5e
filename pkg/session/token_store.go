package session

import "sync"

// TokenStore holds the bearer token used to authenticate calls to the
// backend. It is purged whenever the backend rejects the token so that
// subsequent calls are sent unauthenticated.
type TokenStore interface {
	Token() string
	Set(token string)
	Purge()
}

type tokenStoreImpl struct {
	lock  sync.RWMutex
	token string
}

func NewTokenStore(token string) TokenStore {
	return &tokenStoreImpl{
		token: token,
	}
}

func (s *tokenStoreImpl) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.token
}

func (s *tokenStoreImpl) Set(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.token = token
}

func (s *tokenStoreImpl) Purge() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.token = ""
}
