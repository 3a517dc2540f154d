// Package settings keeps operator-managed values in a JSON file.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

// default values used when the file is missing or unreadable
const (
	DefaultManager  = "phoen1xPC"
	DefaultChannel  = "@helprepairpc"
	DefaultGiveaway = "🎁 Giveaway\n\nCurrent giveaways and their rules are published here.\n\n" +
		"- Subscribe to our channel\n- Press participate\n- Wait for the results in the channel\n\nGood luck!"
)

var channelPattern = regexp.MustCompile(`^(@[A-Za-z][A-Za-z0-9_]{3,}|-?[0-9]+)$`)

// Values is the settings document
type Values struct {
	ManagerUsername     string `json:"manager_username"`
	ChannelID           string `json:"channel_id"`
	GiveawayDescription string `json:"giveaway_description"`
}

func defaults() Values {
	return Values{
		ManagerUsername:     DefaultManager,
		ChannelID:           DefaultChannel,
		GiveawayDescription: DefaultGiveaway,
	}
}

// Store is file-backed settings store, safe for concurrent use
type Store struct {
	mu     sync.RWMutex
	path   string
	values Values
}

// Load reads settings from path.
// A missing file is created with defaults. An unreadable file leaves defaults
// in place without touching the file; the returned error reports why, and the
// store is usable either way.
func Load(path string) (*Store, error) {
	s := &Store{path: path, values: defaults()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Info("settings file not found, writing defaults", zap.String("path", path))
		if err := s.save(s.values); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		logger.Log.Error("read settings, using defaults", zap.String("path", path), zap.Error(err))
		return s, fmt.Errorf("read settings: %w", err)
	}

	// absent keys keep their defaults
	values := defaults()
	if err := json.Unmarshal(data, &values); err != nil {
		logger.Log.Error("decode settings, using defaults", zap.String("path", path), zap.Error(err))
		return s, fmt.Errorf("decode settings: %w", err)
	}
	s.values = values

	return s, nil
}

// Path returns settings file path
func (s *Store) Path() string {
	return s.path
}

// Values returns a snapshot of all settings
func (s *Store) Values() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// ChannelID returns forwarding channel, empty if not configured
func (s *Store) ChannelID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.ChannelID
}

// ManagerUsername returns manager handle without leading @
func (s *Store) ManagerUsername() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.ManagerUsername
}

// GiveawayDescription returns giveaway page text
func (s *Store) GiveawayDescription() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.GiveawayDescription
}

// ValidChannelID reports whether id is @username or numeric chat id
func ValidChannelID(id string) bool {
	return channelPattern.MatchString(id)
}

// SetChannel changes forwarding channel
func (s *Store) SetChannel(id string) error {
	id = strings.TrimSpace(id)
	if !ValidChannelID(id) {
		return fmt.Errorf("%w: %q", models.ErrInvalidChannel, id)
	}
	return s.update(func(v *Values) { v.ChannelID = id })
}

// SetManager changes manager handle, leading @ is dropped
func (s *Store) SetManager(handle string) error {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	return s.update(func(v *Values) { v.ManagerUsername = handle })
}

// SetGiveawayDescription changes giveaway page text
func (s *Store) SetGiveawayDescription(text string) error {
	return s.update(func(v *Values) { v.GiveawayDescription = text })
}

// update applies fn and rewrites the file. The change is kept only if the write succeeds.
func (s *Store) update(fn func(v *Values)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.values
	fn(&next)
	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

func (s *Store) save(v Values) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}
