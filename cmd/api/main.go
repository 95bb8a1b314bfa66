package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-campus/internal/common/api"
	"go-campus/internal/config"
	"go-campus/internal/database"
	"go-campus/internal/features/academicyear"
	"go-campus/internal/features/auth"
	"go-campus/internal/features/call"
	import_feature "go-campus/internal/features/import"
	"go-campus/internal/features/program"
	"go-campus/internal/features/role"
	"go-campus/internal/features/system"
	"go-campus/internal/features/user"
	"go-campus/internal/logger"
	"go-campus/internal/middleware"
	"go-campus/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags a constructor so Fx adds it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the "routes" group and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down on exit.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(
	lc fx.Lifecycle,
	userRepo user.UserRepository,
	roleRepo role.RoleRepository,
	programRepo program.ProgramRepository,
	yearRepo academicyear.AcademicYearRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := userRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure user indexes: %v", err)
				}
				if err := roleRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure role indexes: %v", err)
				}
				if err := programRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure program indexes: %v", err)
				}
				if err := yearRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure academic year indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			// Repositories
			user.NewUserRepository,
			role.NewRoleRepository,
			program.NewProgramRepository,
			academicyear.NewAcademicYearRepository,
			call.NewCallRepository,
			import_feature.NewImportRepository,

			// Services
			user.NewUserService,
			role.NewRoleService,
			program.NewProgramService,
			academicyear.NewAcademicYearService,
			call.NewCallService,
			call.NewScheduler,
			auth.NewAuthService,
			import_feature.NewImportService,

			// Interface adapters
			func(s role.RoleService) auth.RoleNamer { return s },

			// Controllers
			user.NewUserController,
			role.NewRoleController,
			program.NewProgramController,
			academicyear.NewAcademicYearController,
			call.NewCallController,
			auth.NewAuthController,
			import_feature.NewImportController,

			// API routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(role.NewRoleApi),
			AsRoute(program.NewProgramApi),
			AsRoute(academicyear.NewAcademicYearApi),
			AsRoute(call.NewCallApi),
			AsRoute(import_feature.NewImportApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, scheduler *call.Scheduler) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return scheduler.Start()
					},
					OnStop: func(ctx context.Context) error {
						scheduler.Stop()
						return nil
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
