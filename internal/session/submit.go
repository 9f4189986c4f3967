package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/activitylog"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/progress"
)

// SubmitResult is what a successful submission changed.
type SubmitResult struct {
	Entry        model.JournalEntry
	LevelUps     []progress.LevelUp
	Achievements []progress.Achievement
}

// Submit posts entry to the selected company's books. A refused entry is
// returned as a *journal.ValidationError, records one mistake per violated
// rule and changes nothing else.
func (s *Session) Submit(entry model.JournalEntry) (SubmitResult, error) {
	if s.books == nil {
		return SubmitResult{}, ErrNoCompany
	}

	posted, err := s.books.journal.Post(entry)
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			s.reject(verr)
		}
		return SubmitResult{}, err
	}

	s.state.JournalEntries = append(s.state.JournalEntries, posted)
	res := SubmitResult{Entry: posted}

	typ := ""
	if tx, err := s.Transaction(posted.TransactionID); err == nil {
		typ = tx.Type
	}
	for i, skill := range progress.SkillsForType(typ) {
		var up progress.LevelUp
		var ok bool
		if i == 0 {
			up, ok = s.tracker.RecordCorrectAnswer(skill)
		} else {
			up, ok = s.tracker.AddExperience(skill, progress.CorrectAnswerXP)
		}
		if ok {
			res.LevelUps = append(res.LevelUps, up)
			s.record(activitylog.ActionLevelUp, fmt.Sprintf("%s level %d", up.Skill, up.Level), posted.ID)
		}
	}
	res.Achievements = s.checkAchievements()

	s.log.Info("entry submitted",
		zap.String("entry_id", posted.ID),
		zap.String("transaction_id", posted.TransactionID),
		zap.Float64("accuracy", s.state.Progress.AccuracyRate),
	)
	s.record(activitylog.ActionPostEntry,
		fmt.Sprintf("%s, %s", posted.Description, posted.TotalDebits().StringFixed(2)), posted.ID)
	s.autoSave()
	return res, nil
}

func (s *Session) reject(verr *journal.ValidationError) {
	var kinds []string
	for _, v := range verr.Violations {
		if k := string(v.Kind); !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
			s.tracker.RecordMistake(k)
		}
	}
	s.log.Info("entry rejected", zap.Strings("violations", kinds), zap.Float64("accuracy", s.state.Progress.AccuracyRate))
	s.record(activitylog.ActionRejectEntry, strings.Join(kinds, ";"), "")
	s.autoSave()
}

func (s *Session) checkAchievements() []progress.Achievement {
	earned := s.tracker.CheckAchievements(s.state)
	for _, a := range earned {
		s.record(activitylog.ActionAchievement, a.Title, a.ID)
	}
	return earned
}

// CompleteDay marks the current day finished and moves to the next one. The
// day counter stops at the last day of the period.
func (s *Session) CompleteDay() ([]progress.Achievement, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	if s.Over() {
		return nil, ErrSimulationOver
	}
	s.state.CompletedDays++
	if s.state.CurrentDay < s.cfg.Simulation.PeriodDays {
		s.state.CurrentDay++
	}
	earned := s.checkAchievements()

	s.log.Info("day completed", zap.Int("completed", s.state.CompletedDays), zap.Int("day", s.state.CurrentDay))
	s.record(activitylog.ActionCompleteDay, fmt.Sprintf("completed %d of %d", s.state.CompletedDays, s.cfg.Simulation.PeriodDays), "")
	s.autoSave()
	return earned, nil
}
