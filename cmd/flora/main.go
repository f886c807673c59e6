package main

import (
	"context"
	"log/slog"
	"os"

	"flora/config"
	"flora/internal/delivery"
	"flora/internal/delivery/http"
	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/router/handler"
	deliverymiddleware "flora/internal/delivery/middleware"
	"flora/internal/domain/service"
	"flora/internal/infra/auth"
	logs "flora/internal/infra/log"
	"flora/internal/infra/persistence/postgres"
	"flora/internal/usecase"
	"flora/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPlantStorage,
			postgres.NewPlantLookup,
			postgres.NewCommentStorage,
			postgres.NewLikedPlantStorage,
			postgres.NewMiniQuizStorage,
			postgres.NewQuizLookup,
			postgres.NewQuizQuestionStorage,
			postgres.NewBadgeStorage,
			postgres.NewBadgeLookup,
			postgres.NewUserBadgeStorage,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPlantService,
			impl.NewCommentService,
			impl.NewLikeService,
			impl.NewQuizService,
			impl.NewBadgeService,
			func(uc usecase.PlantUsecase) usecase.PlantReader { return uc },
			func(uc usecase.UserUsecase) usecase.UserReader { return uc },
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPlantHandler,
			handler.NewCommentHandler,
			handler.NewLikeHandler,
			handler.NewQuizHandler,
			handler.NewBadgeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
