// Package quiz implements the youth quiz: a built-in question bank and a
// per-session state machine with first-answer locking.
package quiz

import "github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"

// Categories returns the quiz categories in display order.
func Categories() []model.QuizCategory {
	return []model.QuizCategory{
		{ID: "festivals", Name: "Festivals & Traditions", Description: "Utsava, seve and sampradaya basics"},
		{ID: "guruparampara", Name: "Guru Parampara", Description: "Acharyas, lineage and heritage"},
		{ID: "scriptures", Name: "Scriptures & Concepts", Description: "Core ideas in an easy format"},
	}
}

// QuestionsFor returns the questions in one category, in order.
func QuestionsFor(categoryID string) []model.QuizQuestion {
	out := make([]model.QuizQuestion, 0, 3)
	for _, q := range bank {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out
}

// ValidCategory reports whether the id names a known category.
func ValidCategory(id string) bool {
	for _, c := range Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}

var bank = []model.QuizQuestion{
	{
		ID:            "f1",
		Category:      "festivals",
		Question:      "Which special period is widely observed with devotion to Sri Krishna in many Matha traditions?",
		Options:       []string{"Chaturmasya", "Diwali", "Ratha Saptami", "Holi"},
		CorrectAnswer: 0,
		Explanation:   "Chaturmasya is a spiritually significant observance period marked by discipline, study, and devotion.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "f2",
		Category:      "festivals",
		Question:      "On Sri Krishna Janmashtami, what is typically emphasized in temples?",
		Options:       []string{"Harvest rituals", "Night bhajans and Krishna worship", "Kite festival", "New year fire ritual"},
		CorrectAnswer: 1,
		Explanation:   "Janmashtami celebrates the birth of Sri Krishna and is often marked by bhajans and midnight worship.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "f3",
		Category:      "festivals",
		Question:      "What does 'seva' primarily mean in a Matha context?",
		Options:       []string{"Competition", "Service offered with devotion", "Fasting only", "A type of instrument"},
		CorrectAnswer: 1,
		Explanation:   "Seva is selfless service rendered with humility and devotion.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "g1",
		Category:      "guruparampara",
		Question:      "The term 'Guru Parampara' refers to:",
		Options:       []string{"Temple architecture", "A lineage of spiritual teachers", "A festival season", "A script language"},
		CorrectAnswer: 1,
		Explanation:   "Guru Parampara means the continuous lineage through which teachings are preserved and transmitted.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "g2",
		Category:      "guruparampara",
		Question:      "Why is learning through a living lineage considered important?",
		Options:       []string{"It keeps teachings contextual and authentic", "It reduces the need for study", "It changes core principles yearly", "It avoids all rituals"},
		CorrectAnswer: 0,
		Explanation:   "A living lineage helps preserve authenticity while guiding students in proper understanding and practice.",
		Difficulty:    model.QuizDifficultyMedium,
	},
	{
		ID:            "g3",
		Category:      "guruparampara",
		Question:      "A key value commonly highlighted by great Acharyas is:",
		Options:       []string{"Arrogance", "Discipline and humility", "Isolation", "Speed reading only"},
		CorrectAnswer: 1,
		Explanation:   "Discipline, humility, and devotion are repeatedly emphasized in traditional spiritual training.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "s1",
		Category:      "scriptures",
		Question:      "In Dvaita Vedanta, the relation between Jiva and Supreme is generally understood as:",
		Options:       []string{"Absolute identity", "Distinct yet dependent", "Unrelated", "Only symbolic"},
		CorrectAnswer: 1,
		Explanation:   "Dvaita upholds a real distinction where Jiva is dependent on the Supreme.",
		Difficulty:    model.QuizDifficultyMedium,
	},
	{
		ID:            "s2",
		Category:      "scriptures",
		Question:      "What is a healthy first step for youth beginning scriptural learning?",
		Options:       []string{"Memorize advanced debates first", "Ignore guidance and self-interpret everything", "Start with basics under guidance", "Only watch short clips"},
		CorrectAnswer: 2,
		Explanation:   "Starting from foundational concepts with guidance creates clarity and confidence.",
		Difficulty:    model.QuizDifficultyEasy,
	},
	{
		ID:            "s3",
		Category:      "scriptures",
		Question:      "Which habit best supports long-term spiritual learning?",
		Options:       []string{"Consistent daily study and reflection", "Last-minute revision once a year", "Only collecting quotes", "Skipping practice"},
		CorrectAnswer: 0,
		Explanation:   "Steady daily engagement is more effective than occasional bursts.",
		Difficulty:    model.QuizDifficultyMedium,
	},
}
