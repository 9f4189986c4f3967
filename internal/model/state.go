package model

import "time"

// Skill tracks experience toward mastering one accounting topic.
type Skill struct {
	Level    int `json:"level"`
	MaxLevel int `json:"maxLevel"`
	XP       int `json:"xp"`
}

// Progress is the learner's persisted progress record.
type Progress struct {
	ConceptsMastered int              `json:"conceptsMastered"`
	AccuracyRate     float64          `json:"accuracyRate"`
	Achievements     []string         `json:"achievements"`
	TimeSpent        int64            `json:"timeSpent"`
	MistakePatterns  map[string]int   `json:"mistakePatterns"`
	Skills           map[string]Skill `json:"skillLevels"`
}

// Settings are learner preferences carried with the save.
type Settings struct {
	ShowHints  bool   `json:"showHints"`
	AutoSave   bool   `json:"autoSave"`
	Difficulty string `json:"difficulty"`
}

// GameState is the persisted snapshot of a learning session.
type GameState struct {
	SessionID       string         `json:"sessionId,omitempty"`
	SelectedCompany string         `json:"selectedCompany"`
	CurrentDay      int            `json:"currentDay"`
	CompletedDays   int            `json:"completedDays"`
	GeneratedDays   []int          `json:"generatedDays,omitempty"`
	Transactions    []Transaction  `json:"transactions"`
	JournalEntries  []JournalEntry `json:"journalEntries"`
	Progress        Progress       `json:"progress"`
	Settings        Settings       `json:"settings"`
	LastSaved       time.Time      `json:"lastSaved,omitzero"`
	Version         string         `json:"version,omitempty"`
}

// DefaultGameState returns the state of a fresh session.
func DefaultGameState() GameState {
	return GameState{
		CurrentDay:     1,
		Transactions:   []Transaction{},
		JournalEntries: []JournalEntry{},
		Progress: Progress{
			AccuracyRate:    100,
			Achievements:    []string{},
			MistakePatterns: map[string]int{},
			Skills:          map[string]Skill{},
		},
		Settings: Settings{
			ShowHints:  true,
			AutoSave:   true,
			Difficulty: "intermediate",
		},
	}
}
