package entity

import "github.com/google/uuid"

// AnswersPerQuestion is the fixed number of answer options a quiz question carries.
const AnswersPerQuestion = 4

// MiniQuiz is a short multiple-choice quiz attached to a single plant.
// It is deleted together with its plant.
type MiniQuiz struct {
	ID      uuid.UUID
	PlantID uuid.UUID
	Plant   *Plant
	Title   string

	Questions []*QuizQuestion // Questions in authoring order. Loaded on demand.
}

// QuizQuestion is a single multiple-choice question. Answers keeps the
// authoring order; CorrectAnswerIndex points into it and is always 0..3.
type QuizQuestion struct {
	ID                 uuid.UUID
	QuizID             uuid.UUID
	Question           string
	Answers            []string
	CorrectAnswerIndex int
}
