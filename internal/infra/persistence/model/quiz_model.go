package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MiniQuizModel is the database representation of a plant's quiz.
// It is removed together with its plant.
type MiniQuizModel struct {
	ID      uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PlantID uuid.UUID   `gorm:"column:plant_id;type:uuid;not null;index"`
	Plant   *PlantModel `gorm:"foreignKey:PlantID;references:ID;constraint:OnDelete:CASCADE"`
	Title   string      `gorm:"column:title;not null"`

	Questions []*QuizQuestionModel `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the MiniQuizModel
func (MiniQuizModel) TableName() string {
	return "mini_quizzes"
}

// QuizQuestionModel stores one multiple-choice question. Answers keeps
// the authoring order in a Postgres text array.
type QuizQuestionModel struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	QuizID             uuid.UUID      `gorm:"column:quiz_id;type:uuid;not null;index"`
	Question           string         `gorm:"column:question;not null"`
	Answers            pq.StringArray `gorm:"column:answers;type:text[];not null"`
	CorrectAnswerIndex int            `gorm:"column:correct_answer_index;not null"`
}

// TableName specifies the table name for the QuizQuestionModel
func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
