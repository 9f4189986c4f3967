package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/activitylog"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/store"
)

// State returns a copy of the game state.
func (s *Session) State() model.GameState {
	st := s.state
	st.Transactions = slices.Clone(s.state.Transactions)
	st.JournalEntries = slices.Clone(s.state.JournalEntries)
	st.GeneratedDays = slices.Clone(s.state.GeneratedDays)
	st.Progress.Achievements = slices.Clone(s.state.Progress.Achievements)
	st.Progress.MistakePatterns = maps.Clone(s.state.Progress.MistakePatterns)
	st.Progress.Skills = maps.Clone(s.state.Progress.Skills)
	return st
}

// Save writes the game state. A failed save leaves the session untouched.
func (s *Session) Save() error {
	now := s.now()
	st := s.State()
	st.Progress.TimeSpent += int64(now.Sub(s.mark).Seconds())

	saved, err := s.store.Save(st)
	if err != nil {
		s.log.Warn("save failed", zap.Error(err))
		return err
	}
	s.state.Progress.TimeSpent = saved.Progress.TimeSpent
	s.state.LastSaved = saved.LastSaved
	s.state.Version = saved.Version
	s.mark = now
	s.record(activitylog.ActionSave, "", "")
	return nil
}

func (s *Session) autoSave() {
	if !s.state.Settings.AutoSave {
		return
	}
	// Failures are logged by Save; play continues on the in-memory state.
	_ = s.Save()
}

// Load replaces the session with the saved game. Posted entries are replayed
// into fresh books so the ledger is always derived from the journal. On any
// error the current session is kept.
func (s *Session) Load() error {
	state, err := s.store.Load()
	if err != nil {
		return err
	}

	var b *books
	if state.SelectedCompany != "" {
		b, err = s.openBooks(state.SelectedCompany)
		if err != nil {
			return fmt.Errorf("loading save: %w", err)
		}
		if err := b.journal.Restore(state.JournalEntries); err != nil {
			return fmt.Errorf("loading save: %w", err)
		}
		state.JournalEntries = b.journal.Entries()
	}
	if state.SessionID == "" {
		state.SessionID = newSessionID()
	}

	s.books = b
	s.reset(state)
	s.log.Info("game loaded",
		zap.String("company", state.SelectedCompany),
		zap.Int("day", state.CurrentDay),
		zap.Int("entries", len(state.JournalEntries)),
	)
	s.record(activitylog.ActionLoad, fmt.Sprintf("%d entries", len(state.JournalEntries)), "")
	return nil
}

// Resume loads the saved game if there is one. It reports whether a save was
// found.
func (s *Session) Resume() (bool, error) {
	err := s.Load()
	if errors.Is(err, store.ErrNoSave) {
		return false, nil
	}
	return err == nil, err
}

func (s *Session) record(action, details, entryID string) {
	if s.activity == nil {
		return
	}
	err := s.activity.Record(activitylog.Entry{
		Timestamp: s.now(),
		SessionID: s.state.SessionID,
		Company:   s.state.SelectedCompany,
		Day:       s.state.CurrentDay,
		Action:    action,
		Details:   details,
		EntryID:   entryID,
	})
	if err != nil {
		s.log.Warn("activity log write failed", zap.Error(err))
	}
}
