package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ishworgurung/tilix/internal/errors"
	"github.com/ishworgurung/tilix/internal/logger"
)

// Terminal describes one terminal within a saved layout.
type Terminal struct {
	UUID        string `json:"uuid"`
	ProfileName string `json:"profile,omitempty"`
	Title       string `json:"title,omitempty"`
	Directory   string `json:"directory,omitempty"`
	Command     string `json:"command,omitempty"`
}

// Session is a saved terminal layout loaded from a session file.
type Session struct {
	Name      string     `json:"name"`
	UUID      string     `json:"uuid"`
	Terminals []Terminal `json:"terminals"`
}

// New creates an empty session with a fresh UUID.
func New(name string) *Session {
	return &Session{
		Name:      name,
		UUID:      uuid.New().String(),
		Terminals: []Terminal{},
	}
}

// AddTerminal appends a terminal to the layout, assigning it a UUID if it
// does not carry one.
func (s *Session) AddTerminal(t Terminal) {
	if t.UUID == "" {
		t.UUID = uuid.New().String()
	}
	s.Terminals = append(s.Terminals, t)
}

// FindTerminal returns the terminal with the given UUID, or nil.
func (s *Session) FindTerminal(terminalUUID string) *Terminal {
	for i := range s.Terminals {
		if s.Terminals[i].UUID == terminalUUID {
			return &s.Terminals[i]
		}
	}
	return nil
}

// Validate checks the structural invariants of a loaded session.
func (s *Session) Validate() error {
	if s.UUID == "" {
		return errors.ConfigInvalid("session has no UUID")
	}
	if _, err := uuid.Parse(s.UUID); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("session UUID '%s' is not valid", s.UUID))
	}
	if len(s.Terminals) == 0 {
		return errors.ConfigInvalid(fmt.Sprintf("session '%s' has no terminals", s.Name))
	}
	for _, t := range s.Terminals {
		if t.UUID == "" {
			continue // assigned on save
		}
		if _, err := uuid.Parse(t.UUID); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("terminal UUID '%s' is not valid", t.UUID))
		}
	}
	return nil
}

// Load reads and validates a session file.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.SessionFileNotFound(path)
	}
	if err != nil {
		return nil, errors.SessionFileInvalid(path, err)
	}

	s := &Session{Terminals: []Terminal{}}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.SessionFileInvalid(path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("loaded session '%s' with %d terminals from %s", s.Name, len(s.Terminals), path)
	return s, nil
}

// Save writes the session to a file, assigning UUIDs to any terminals that
// lack one.
func (s *Session) Save(path string) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	for i := range s.Terminals {
		if s.Terminals[i].UUID == "" {
			s.Terminals[i].UUID = uuid.New().String()
		}
	}
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.E(errors.Op("session.Save"), errors.KindIO, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.E(errors.Op("session.Save"), errors.KindIO,
			fmt.Sprintf("failed to write session file %s", path), err)
	}
	return nil
}
