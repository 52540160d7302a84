package session

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/Sproutly/SPROUT-MOBILE/shared"

	"github.com/pkg/errors"
)

// Store holds the opaque token pair and the last-known-user blob. Token reads
// never fail from the caller's perspective: any storage error degrades to
// "logged out".
type Store interface {
	StoreTokens(access, refresh string) error
	AccessToken() string
	RefreshToken() string
	Clear() error

	SaveUser(user json.RawMessage) error
	LoadUser() (json.RawMessage, error)
}

const sessionFileName = "session.json"

type sessionFile struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	SavedUser    json.RawMessage `json:"savedUser,omitempty"`
}

// FileStore persists the session as a 0600 JSON file under the app state
// directory, the closest server-less equivalent of the device secure store.
type FileStore struct {
	Path   string
	Logger *shared.Logger

	mu sync.Mutex
}

func NewFileStore(stateDir string, logger *shared.Logger) *FileStore {
	return &FileStore{
		Path:   filepath.Join(stateDir, sessionFileName),
		Logger: logger,
	}
}

func (f *FileStore) StoreTokens(access, refresh string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.read()
	current.AccessToken = access
	current.RefreshToken = refresh
	return f.write(current)
}

func (f *FileStore) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read().AccessToken
}

func (f *FileStore) RefreshToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read().RefreshToken
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear session file")
	}
	return nil
}

func (f *FileStore) SaveUser(user json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := f.read()
	current.SavedUser = user
	return f.write(current)
}

func (f *FileStore) LoadUser() (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user := f.read().SavedUser
	if len(user) == 0 {
		return nil, ErrNoSavedUser
	}
	return user, nil
}

var ErrNoSavedUser = errors.New("no saved user session")

func (f *FileStore) read() sessionFile {
	current := sessionFile{}

	b, err := ioutil.ReadFile(f.Path)
	if err != nil {
		if !os.IsNotExist(err) && f.Logger != nil {
			f.Logger.Warn(context.Background(), "failed to read session file, treating as logged out", "err", err.Error())
		}
		return current
	}
	if err := json.Unmarshal(b, &current); err != nil {
		if f.Logger != nil {
			f.Logger.Warn(context.Background(), "corrupt session file, treating as logged out", "err", err.Error())
		}
		return sessionFile{}
	}
	return current
}

func (f *FileStore) write(current sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}
	b, err := json.Marshal(current)
	if err != nil {
		return errors.Wrap(err, "failed to encode session file")
	}
	if err := ioutil.WriteFile(f.Path, b, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	return nil
}
