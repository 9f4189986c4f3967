// Package progress tracks skills, accuracy, mistakes and achievements for a
// learner. All state lives in a model.Progress so it persists with the save.
package progress

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Mastery status values.
const (
	StatusLocked     = "locked"
	StatusBeginner   = "beginner"
	StatusInProgress = "in-progress"
	StatusMaster     = "master"
)

// LevelUp describes a skill gaining a level.
type LevelUp struct {
	Skill string
	Level int
}

// Tracker updates a model.Progress in place.
type Tracker struct {
	p   *model.Progress
	log *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// New wraps p, filling in any skills and maps a freshly decoded record lacks.
func New(p *model.Progress, opts ...Option) *Tracker {
	if p.Skills == nil {
		p.Skills = make(map[string]model.Skill, len(Skills))
	}
	for _, s := range Skills {
		sk, ok := p.Skills[s]
		switch {
		case !ok:
			p.Skills[s] = newSkill()
		case sk.MaxLevel == 0:
			sk.MaxLevel = MaxLevel
			p.Skills[s] = sk
		}
	}
	if p.MistakePatterns == nil {
		p.MistakePatterns = map[string]int{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	t := &Tracker{p: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Progress returns the tracked record.
func (t *Tracker) Progress() *model.Progress {
	return t.p
}

// AddExperience credits points to skill and checks for a level up. Unknown
// skills are ignored.
func (t *Tracker) AddExperience(skill string, points int) (LevelUp, bool) {
	s, ok := t.p.Skills[skill]
	if !ok {
		return LevelUp{}, false
	}
	s.XP += points
	t.p.Skills[skill] = s
	return t.CheckLevelUp(skill)
}

// CheckLevelUp advances skill by at most one level, carrying over any xp
// beyond the threshold.
func (t *Tracker) CheckLevelUp(skill string) (LevelUp, bool) {
	s, ok := t.p.Skills[skill]
	if !ok {
		return LevelUp{}, false
	}
	need := threshold(s.Level)
	if s.XP < need || s.Level >= s.MaxLevel {
		return LevelUp{}, false
	}
	s.Level++
	s.XP -= need
	t.p.Skills[skill] = s
	if s.Level == s.MaxLevel {
		t.p.ConceptsMastered++
	}
	t.log.Info("level up", zap.String("skill", skill), zap.Int("level", s.Level))
	return LevelUp{Skill: skill, Level: s.Level}, true
}

// RecordCorrectAnswer awards xp to skill and nudges accuracy up.
func (t *Tracker) RecordCorrectAnswer(skill string) (LevelUp, bool) {
	t.p.AccuracyRate = min(100, t.p.AccuracyRate+0.5)
	return t.AddExperience(skill, CorrectAnswerXP)
}

// RecordMistake counts a mistake of the given kind and lowers accuracy.
func (t *Tracker) RecordMistake(kind string) {
	t.p.MistakePatterns[kind]++
	t.p.AccuracyRate = max(0, t.p.AccuracyRate-1)
	t.log.Debug("mistake recorded", zap.String("kind", kind), zap.Float64("accuracy", t.p.AccuracyRate))
}

// HasAchievement reports whether id has been earned.
func (t *Tracker) HasAchievement(id string) bool {
	return slices.Contains(t.p.Achievements, id)
}

// CheckAchievements evaluates every unearned achievement against state,
// records the ones now satisfied and returns them.
func (t *Tracker) CheckAchievements(state model.GameState) []Achievement {
	var earned []Achievement
	for _, a := range Achievements() {
		if t.HasAchievement(a.ID) || !a.Earned(state) {
			continue
		}
		t.p.Achievements = append(t.p.Achievements, a.ID)
		earned = append(earned, a)
		t.log.Info("achievement earned", zap.String("achievement", a.ID), zap.Int("points", a.Points))
	}
	return earned
}

// Summary is an overview of skill and achievement completion.
type Summary struct {
	SkillMastery        float64 `json:"skillMastery"`
	AchievementProgress float64 `json:"achievementProgress"`
	MasteredSkills      int     `json:"masteredSkills"`
	TotalSkills         int     `json:"totalSkills"`
	EarnedAchievements  int     `json:"earnedAchievements"`
	TotalAchievements   int     `json:"totalAchievements"`
}

// Summary computes completion percentages.
func (t *Tracker) Summary() Summary {
	s := Summary{TotalSkills: len(t.p.Skills), TotalAchievements: len(Achievements())}
	for _, sk := range t.p.Skills {
		if sk.Level == sk.MaxLevel {
			s.MasteredSkills++
		}
	}
	for _, a := range Achievements() {
		if t.HasAchievement(a.ID) {
			s.EarnedAchievements++
		}
	}
	if s.TotalSkills > 0 {
		s.SkillMastery = float64(s.MasteredSkills) / float64(s.TotalSkills) * 100
	}
	s.AchievementProgress = float64(s.EarnedAchievements) / float64(s.TotalAchievements) * 100
	return s
}

// Mastery describes how far a skill is toward its next level.
type Mastery struct {
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// Mastery reports a skill's level, percent progress and status.
func (t *Tracker) Mastery(skill string) Mastery {
	s, ok := t.p.Skills[skill]
	switch {
	case !ok:
		return Mastery{Status: StatusLocked}
	case s.Level == 0:
		return Mastery{Status: StatusBeginner}
	case s.Level == s.MaxLevel:
		return Mastery{Level: s.Level, Progress: 100, Status: StatusMaster}
	}
	return Mastery{
		Level:    s.Level,
		Progress: float64(s.XP) / float64(threshold(s.Level)) * 100,
		Status:   StatusInProgress,
	}
}

// MistakeCount is one entry in the mistake ranking.
type MistakeCount struct {
	Kind  string `json:"type"`
	Count int    `json:"count"`
}

// TopMistakes returns the three most frequent mistake kinds, most frequent
// first. Ties are broken by kind.
func (t *Tracker) TopMistakes() []MistakeCount {
	out := make([]MistakeCount, 0, len(t.p.MistakePatterns))
	for _, k := range slices.Sorted(maps.Keys(t.p.MistakePatterns)) {
		out = append(out, MistakeCount{Kind: k, Count: t.p.MistakePatterns[k]})
	}
	slices.SortStableFunc(out, func(a, b MistakeCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out[:min(3, len(out))]
}

// Recommendation is a study suggestion.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Recommendations suggests the most common mistake area and the weakest
// skill while it is below level 2.
func (t *Tracker) Recommendations() []Recommendation {
	var recs []Recommendation
	if top := t.TopMistakes(); len(top) > 0 {
		recs = append(recs, Recommendation{
			Type:    "improvement",
			Message: fmt.Sprintf("Focus on %s - this is your most common mistake area", top[0].Kind),
		})
	}
	if skill, level, ok := t.weakest(); ok && level < 2 {
		recs = append(recs, Recommendation{
			Type:    "practice",
			Message: fmt.Sprintf("Practice %s to improve your overall competency", strings.ReplaceAll(skill, "-", " ")),
		})
	}
	return recs
}

func (t *Tracker) weakest() (string, int, bool) {
	best, level, found := "", 0, false
	for _, name := range t.skillNames() {
		s := t.p.Skills[name]
		if !found || s.Level < level {
			best, level, found = name, s.Level, true
		}
	}
	return best, level, found
}

// skillNames lists known skills first in display order, then any extra
// skills carried by a loaded save.
func (t *Tracker) skillNames() []string {
	names := slices.Clone(Skills)
	for _, k := range slices.Sorted(maps.Keys(t.p.Skills)) {
		if !slices.Contains(names, k) {
			names = append(names, k)
		}
	}
	return names
}

// Report bundles everything shown on the progress screen.
type Report struct {
	Summary         Summary                `json:"summary"`
	TopMistakes     []MistakeCount         `json:"topMistakes"`
	Recommendations []Recommendation       `json:"recommendations"`
	Skills          map[string]model.Skill `json:"skillDetails"`
	Achievements    []Achievement          `json:"achievements"`
}

// Report assembles a progress report. Achievements lists earned ones only.
func (t *Tracker) Report() Report {
	var earned []Achievement
	for _, a := range Achievements() {
		if t.HasAchievement(a.ID) {
			earned = append(earned, a)
		}
	}
	return Report{
		Summary:         t.Summary(),
		TopMistakes:     t.TopMistakes(),
		Recommendations: t.Recommendations(),
		Skills:          maps.Clone(t.p.Skills),
		Achievements:    earned,
	}
}
