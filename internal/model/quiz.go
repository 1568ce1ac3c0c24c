package model

import "time"

// Quiz difficulty levels.
const (
	QuizDifficultyEasy   = "easy"
	QuizDifficultyMedium = "medium"
	QuizDifficultyHard   = "hard"
)

// QuizCategory groups questions by theme.
type QuizCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// QuizScore is a completed quiz result.
type QuizScore struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"player_name"`
	Category   string    `json:"category"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}
