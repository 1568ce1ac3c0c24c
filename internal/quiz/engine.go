package quiz

import (
	"errors"
	"sync"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// Session phases.
const (
	PhaseIdle       = "idle"
	PhaseInProgress = "inProgress"
	PhaseCompleted  = "completed"
)

var (
	ErrNotStarted      = errors.New("quiz: no session in progress")
	ErrAlreadyStarted  = errors.New("quiz: session already in progress")
	ErrNameRequired    = errors.New("quiz: player name is required")
	ErrUnknownCategory = errors.New("quiz: unknown category")
	ErrNoQuestions     = errors.New("quiz: category has no questions")
	ErrAnswerLocked    = errors.New("quiz: answer already locked for this question")
	ErrInvalidOption   = errors.New("quiz: option index out of range")
	ErrNotAnswered     = errors.New("quiz: answer the current question first")
)

// State is a snapshot of one quiz session, safe to serialize for clients.
// The correct answer and explanation are revealed only after the lock.
type State struct {
	Phase       string              `json:"phase"`
	PlayerName  string              `json:"player_name,omitempty"`
	Category    string              `json:"category,omitempty"`
	Index       int                 `json:"index"`
	Total       int                 `json:"total"`
	Score       int                 `json:"score"`
	Question    *model.QuizQuestion `json:"question,omitempty"`
	Answered    bool                `json:"answered"`
	ChosenIndex int                 `json:"chosen_index"`
	Correct     bool                `json:"correct"`
	Explanation string              `json:"explanation,omitempty"`
	FinalScore  int                 `json:"final_score,omitempty"`
}

// Engine runs one quiz session through idle, inProgress and completed.
// It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	phase      string
	playerName string
	category   string
	questions  []model.QuizQuestion
	index      int
	score      int

	answered    bool
	chosenIndex int

	finalScore int
}

// NewEngine returns an idle engine.
func NewEngine() *Engine {
	return &Engine{phase: PhaseIdle, chosenIndex: -1}
}

// Start begins a session for the named player in the given category.
func (e *Engine) Start(playerName, categoryID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseInProgress {
		return ErrAlreadyStarted
	}
	if playerName == "" {
		return ErrNameRequired
	}
	if !ValidCategory(categoryID) {
		return ErrUnknownCategory
	}
	questions := QuestionsFor(categoryID)
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	e.phase = PhaseInProgress
	e.playerName = playerName
	e.category = categoryID
	e.questions = questions
	e.index = 0
	e.score = 0
	e.answered = false
	e.chosenIndex = -1
	e.finalScore = 0
	return nil
}

// Answer locks in the choice for the current question. Only the first
// answer counts; repeats return ErrAnswerLocked and change nothing.
func (e *Engine) Answer(option int) (correct bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseInProgress {
		return false, ErrNotStarted
	}
	if e.answered {
		return false, ErrAnswerLocked
	}
	q := e.questions[e.index]
	if option < 0 || option >= len(q.Options) {
		return false, ErrInvalidOption
	}

	e.answered = true
	e.chosenIndex = option
	if option == q.CorrectAnswer {
		e.score++
		return true, nil
	}
	return false, nil
}

// Next advances past an answered question. After the last question the
// session completes and the final score is snapshotted; Result then
// returns the score to persist.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseInProgress {
		return ErrNotStarted
	}
	if !e.answered {
		return ErrNotAnswered
	}

	if e.index+1 >= len(e.questions) {
		// Snapshot including the last answer, before anything persists it.
		e.finalScore = e.score
		e.phase = PhaseCompleted
		return nil
	}
	e.index++
	e.answered = false
	e.chosenIndex = -1
	return nil
}

// Reset returns the engine to idle, discarding the session.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.phase = PhaseIdle
	e.playerName = ""
	e.category = ""
	e.questions = nil
	e.index = 0
	e.score = 0
	e.answered = false
	e.chosenIndex = -1
	e.finalScore = 0
}

// Result returns the completed score for persistence. ok is false until
// the session completes.
func (e *Engine) Result() (score model.QuizScore, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseCompleted {
		return model.QuizScore{}, false
	}
	return model.QuizScore{
		PlayerName: e.playerName,
		Category:   e.category,
		Score:      e.finalScore,
		Total:      len(e.questions),
	}, true
}

// State returns a client-safe snapshot of the session.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{
		Phase:       e.phase,
		PlayerName:  e.playerName,
		Category:    e.category,
		Index:       e.index,
		Total:       len(e.questions),
		Score:       e.score,
		Answered:    e.answered,
		ChosenIndex: e.chosenIndex,
	}
	if e.phase == PhaseInProgress {
		q := e.questions[e.index]
		if !e.answered {
			// Hide the answer until the lock.
			q.CorrectAnswer = -1
			q.Explanation = ""
		} else {
			s.Correct = e.chosenIndex == q.CorrectAnswer
			s.Explanation = q.Explanation
		}
		s.Question = &q
	}
	if e.phase == PhaseCompleted {
		s.FinalScore = e.finalScore
	}
	return s
}
