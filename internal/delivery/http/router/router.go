// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/router/handler"
	"flora/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PlantHandler   *handler.PlantHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler
	QuizHandler    *handler.QuizHandler
	BadgeHandler   *handler.BadgeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	plantHandler   *handler.PlantHandler
	commentHandler *handler.CommentHandler
	likeHandler    *handler.LikeHandler
	quizHandler    *handler.QuizHandler
	badgeHandler   *handler.BadgeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		plantHandler:   params.PlantHandler,
		commentHandler: params.CommentHandler,
		likeHandler:    params.LikeHandler,
		quizHandler:    params.QuizHandler,
		badgeHandler:   params.BadgeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdministrator.String())

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes require authentication; only admins may list everyone.
	userGroup := e.Group("/users")
	userGroup.Use(authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers, requireAdmin)
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.GET("/:username", r.userHandler.GetUserByUsername)
	}

	// Catalog reads are public, catalog writes are admin-only.
	plantGroup := e.Group("/plants")
	{
		plantGroup.GET("", r.plantHandler.ListPlants)
		plantGroup.GET("/type/:type", r.plantHandler.ListPlantsByType)
		plantGroup.GET("/name/:name", r.plantHandler.GetPlantByName)
		plantGroup.GET("/:id", r.plantHandler.GetPlantByID)
		plantGroup.GET("/:id/quiz", r.quizHandler.GetQuizByPlantID)

		plantGroup.POST("", r.plantHandler.CreatePlant, authenticate, requireAdmin)
		plantGroup.PUT("/:id", r.plantHandler.UpdatePlant, authenticate, requireAdmin)
		plantGroup.DELETE("/:id", r.plantHandler.DeletePlant, authenticate, requireAdmin)
	}

	// Comments and likes are written by the authenticated caller.
	commentGroup := e.Group("/comments")
	commentGroup.Use(authenticate)
	{
		commentGroup.POST("", r.commentHandler.AddComment)
	}

	likeGroup := e.Group("/likes")
	likeGroup.Use(authenticate)
	{
		likeGroup.POST("", r.likeHandler.AddLike)
	}

	// Quiz reads are public, authoring is admin-only.
	quizGroup := e.Group("/quizzes")
	{
		quizGroup.GET("", r.quizHandler.ListQuizzes)
		quizGroup.GET("/:id", r.quizHandler.GetQuizByID)

		quizGroup.POST("", r.quizHandler.CreateQuiz, authenticate, requireAdmin)
		quizGroup.POST("/questions", r.quizHandler.AddQuestion, authenticate, requireAdmin)
		quizGroup.PUT("/:id", r.quizHandler.UpdateQuiz, authenticate, requireAdmin)
		quizGroup.DELETE("/:id", r.quizHandler.DeleteQuiz, authenticate, requireAdmin)
	}

	// Badge definitions and grants are admin-only; lookup is public.
	badgeGroup := e.Group("/badges")
	{
		badgeGroup.GET("/:name", r.badgeHandler.GetBadgeByName)

		badgeGroup.POST("", r.badgeHandler.AddBadge, authenticate, requireAdmin)
		badgeGroup.POST("/grant", r.badgeHandler.GrantBadge, authenticate, requireAdmin)
	}
}
