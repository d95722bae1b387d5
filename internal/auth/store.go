package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// Storage keys shared by every store implementation.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// MemoryStore keeps credentials in memory. It is the default store and the
// one used in tests.
type MemoryStore struct {
	mu           sync.RWMutex
	token        string
	refreshToken string
	user         *catalog.User
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token implements catalog.CredentialStore.
func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// RefreshToken implements catalog.CredentialStore.
func (s *MemoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refreshToken
}

// User implements catalog.CredentialStore.
func (s *MemoryStore) User() *catalog.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	user := *s.user

	return &user
}

// SetCredentials implements catalog.CredentialStore.
func (s *MemoryStore) SetCredentials(token, refreshToken string, user *catalog.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.refreshToken = refreshToken
	s.user = user

	return nil
}

// SetUser implements catalog.CredentialStore.
func (s *MemoryStore) SetUser(user *catalog.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user

	return nil
}

// Clear implements catalog.CredentialStore. All three values are removed
// together.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.refreshToken = ""
	s.user = nil

	return nil
}

// FileStore persists credentials to a YAML file through viper, so a CLI
// session survives process restarts.
type FileStore struct {
	mu    sync.Mutex
	path  string
	viper *viper.Viper
}

// NewFileStore creates a file-backed credential store at path. The parent
// directory is created if missing; a missing file reads as empty
// credentials.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, fmt.Errorf("creating credential directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, statErr := os.Stat(path); statErr == nil {
		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading credential file: %w", err)
		}
	}

	return &FileStore{path: path, viper: v}, nil
}

// Token implements catalog.CredentialStore.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viper.GetString(keyAccessToken)
}

// RefreshToken implements catalog.CredentialStore.
func (s *FileStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viper.GetString(keyRefreshToken)
}

// User implements catalog.CredentialStore.
func (s *FileStore) User() *catalog.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.viper.GetString(keyUser)
	if raw == "" {
		return nil
	}

	var user catalog.User

	err := json.Unmarshal([]byte(raw), &user)
	if err != nil {
		return nil
	}

	return &user
}

// SetCredentials implements catalog.CredentialStore.
func (s *FileStore) SetCredentials(token, refreshToken string, user *catalog.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viper.Set(keyAccessToken, token)
	s.viper.Set(keyRefreshToken, refreshToken)
	s.viper.Set(keyUser, encodeUser(user))

	return s.write()
}

// SetUser implements catalog.CredentialStore.
func (s *FileStore) SetUser(user *catalog.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viper.Set(keyUser, encodeUser(user))

	return s.write()
}

// Clear implements catalog.CredentialStore.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viper.Set(keyAccessToken, "")
	s.viper.Set(keyRefreshToken, "")
	s.viper.Set(keyUser, "")

	return s.write()
}

func (s *FileStore) write() error {
	err := s.viper.WriteConfigAs(s.path)
	if err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}

	return nil
}

func encodeUser(user *catalog.User) string {
	if user == nil {
		return ""
	}

	data, err := json.Marshal(user)
	if err != nil {
		return ""
	}

	return string(data)
}
