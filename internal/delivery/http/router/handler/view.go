// Package handler contains the HTTP handlers for the application.
package handler

import (
	"flora/internal/domain/entity"

	"github.com/google/uuid"
)

// View models returned by the API. The password hash never appears here.

type userView struct {
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	Role        string      `json:"role"`
	LikedPlants []likeView  `json:"likedPlants,omitempty"`
	Badges      []grantView `json:"badges,omitempty"`
}

type plantView struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	Description     string        `json:"description"`
	Maintenance     string        `json:"maintenance"`
	Planting        string        `json:"planting"`
	Predispositions string        `json:"predispositions"`
	Comments        []commentView `json:"comments,omitempty"`
}

type commentView struct {
	ID             uuid.UUID `json:"id"`
	PlantID        uuid.UUID `json:"plantId"`
	AuthorUsername string    `json:"authorUsername,omitempty"`
	Content        string    `json:"content"`
}

type likeView struct {
	ID      uuid.UUID  `json:"id"`
	PlantID uuid.UUID  `json:"plantId"`
	Plant   *plantView `json:"plant,omitempty"`
}

type quizView struct {
	ID        uuid.UUID      `json:"id"`
	PlantID   uuid.UUID      `json:"plantId"`
	Title     string         `json:"title"`
	Questions []questionView `json:"questions,omitempty"`
}

type questionView struct {
	ID                 uuid.UUID `json:"id"`
	QuizID             uuid.UUID `json:"quizId"`
	Question           string    `json:"question"`
	Answers            []string  `json:"answers"`
	CorrectAnswerIndex int       `json:"correctAnswerIndex"`
}

type badgeView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type grantView struct {
	ID      uuid.UUID  `json:"id"`
	BadgeID uuid.UUID  `json:"badgeId"`
	Badge   *badgeView `json:"badge,omitempty"`
}

type loginView struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
}

func toUserView(user *entity.User) userView {
	view := userView{
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Surname:  user.Surname,
		Role:     user.Role.String(),
	}
	for _, like := range user.LikedPlants {
		view.LikedPlants = append(view.LikedPlants, toLikeView(like))
	}
	for _, grant := range user.Badges {
		view.Badges = append(view.Badges, toGrantView(grant))
	}

	return view
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

func toPlantView(plant *entity.Plant) plantView {
	view := plantView{
		ID:              plant.ID,
		Name:            plant.Name,
		Type:            plant.Type.String(),
		Description:     plant.Description,
		Maintenance:     plant.Maintenance,
		Planting:        plant.Planting,
		Predispositions: plant.Predispositions,
	}
	for _, comment := range plant.Comments {
		view.Comments = append(view.Comments, toCommentView(comment))
	}

	return view
}

func toPlantViews(plants []*entity.Plant) []plantView {
	views := make([]plantView, 0, len(plants))
	for _, plant := range plants {
		views = append(views, toPlantView(plant))
	}

	return views
}

func toCommentView(comment *entity.Comment) commentView {
	return commentView{
		ID:             comment.ID,
		PlantID:        comment.PlantID,
		AuthorUsername: comment.AuthorUsername,
		Content:        comment.Content,
	}
}

func toLikeView(like *entity.UserLikedPlant) likeView {
	view := likeView{
		ID:      like.ID,
		PlantID: like.PlantID,
	}
	if like.Plant != nil {
		plant := toPlantView(like.Plant)
		view.Plant = &plant
	}

	return view
}

func toQuizView(quiz *entity.MiniQuiz) quizView {
	view := quizView{
		ID:      quiz.ID,
		PlantID: quiz.PlantID,
		Title:   quiz.Title,
	}
	for _, question := range quiz.Questions {
		view.Questions = append(view.Questions, toQuestionView(question))
	}

	return view
}

func toQuizViews(quizzes []*entity.MiniQuiz) []quizView {
	views := make([]quizView, 0, len(quizzes))
	for _, quiz := range quizzes {
		views = append(views, toQuizView(quiz))
	}

	return views
}

func toQuestionView(question *entity.QuizQuestion) questionView {
	return questionView{
		ID:                 question.ID,
		QuizID:             question.QuizID,
		Question:           question.Question,
		Answers:            question.Answers,
		CorrectAnswerIndex: question.CorrectAnswerIndex,
	}
}

func toBadgeView(badge *entity.Badge) badgeView {
	return badgeView{
		ID:   badge.ID,
		Name: badge.Name,
	}
}

func toGrantView(grant *entity.UserBadge) grantView {
	view := grantView{
		ID:      grant.ID,
		BadgeID: grant.BadgeID,
	}
	if grant.Badge != nil {
		badge := toBadgeView(grant.Badge)
		view.Badge = &badge
	}

	return view
}
