package session

// DurableStore persists the session across restarts: the token lives in the
// OS keychain/credential manager and the user record in the CLI's config
// directory. Both are written on Save and removed on Clear; Load only
// reports a session when both halves are present.
type DurableStore struct{}

var _ Store = &DurableStore{}

// NewDurableStore creates the default session store
func NewDurableStore() *DurableStore {
	return &DurableStore{}
}

func (s *DurableStore) Save(token string, user UserRecord) error {
	if err := saveToken(token); err != nil {
		return err
	}
	if err := writeUser(user); err != nil {
		// Roll back the token so a failed save never leaves a half-session.
		_ = deleteToken()
		return err
	}
	return nil
}

func (s *DurableStore) Load() (*Session, error) {
	token, err := loadToken()
	if err != nil {
		return nil, err
	}

	user, err := readUser()
	if err != nil {
		return nil, err
	}

	// One half without the other counts as no session.
	if token == "" || user == nil {
		return nil, nil
	}

	return &Session{Token: token, User: *user}, nil
}

func (s *DurableStore) Clear() error {
	if err := deleteToken(); err != nil {
		return err
	}
	return removeUser()
}
