package postgres

import (
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewCommentStorage creates the persistence capability for plant comments.
func NewCommentStorage(db *gorm.DB) repository.Storage[entity.Comment] {
	return &gormStorage[model.CommentModel, entity.Comment]{
		db:         db,
		toDomain:   commentToDomain,
		fromDomain: commentFromDomain,
		preloads:   []string{"Author"},
		notFound:   domainerrors.ErrCommentNotFound,
	}
}

func commentToDomain(dataModel *model.CommentModel) *entity.Comment {
	if dataModel == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:      dataModel.ID,
		PlantID: dataModel.PlantID,
		Content: dataModel.Content,
	}
	if dataModel.AuthorUsername != nil {
		comment.AuthorUsername = *dataModel.AuthorUsername
	}
	if dataModel.Author != nil {
		comment.Author = userToDomain(dataModel.Author)
	}

	return comment
}

func commentFromDomain(comment *entity.Comment) *model.CommentModel {
	dataModel := &model.CommentModel{
		ID:      comment.ID,
		PlantID: comment.PlantID,
		Content: comment.Content,
	}
	if comment.AuthorUsername != "" {
		author := comment.AuthorUsername
		dataModel.AuthorUsername = &author
	}

	return dataModel
}
