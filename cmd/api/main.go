package main

import (
	"context"
	"fmt"
	common_api "go-portal/internal/common/api"
	"go-portal/internal/config"
	"go-portal/internal/database"
	"go-portal/internal/features/announcement"
	"go-portal/internal/features/assignment"
	"go-portal/internal/features/auth"
	"go-portal/internal/features/event"
	"go-portal/internal/features/form"
	"go-portal/internal/features/forum"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/project"
	"go-portal/internal/features/realtime"
	"go-portal/internal/features/resource"
	"go-portal/internal/features/roster"
	"go-portal/internal/features/system"
	"go-portal/internal/features/user"
	"go-portal/internal/logger"
	"go-portal/internal/middleware"
	"go-portal/pkg/utils"
	"log"

	_ "go-portal/docs" // Import swagger docs

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

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
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

// ConfigureAuth injects the signing secret before any request hits the
// token middleware.
func ConfigureAuth(cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)
}

// @title           Department Portal API
// @version         1.0
// @description     Backend for the department portal: announcements, assignments, events, projects, resources, forms, forums, and real-time notifications.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Real-time core
			realtime.NewRegistry,
			realtime.NewBus,

			// Initialize Repository
			user.NewUserRepository,
			notification.NewNotificationRepository,
			announcement.NewAnnouncementRepository,
			assignment.NewAssignmentRepository,
			assignment.NewSubmissionRepository,
			event.NewEventRepository,
			project.NewProjectRepository,
			resource.NewResourceRepository,
			form.NewFormRepository,
			forum.NewForumRepository,

			auth.NewAuthService,
			user.NewUserService,
			notification.NewNotificationService,
			announcement.NewAnnouncementService,
			assignment.NewAssignmentService,
			event.NewEventService,
			project.NewProjectService,
			resource.NewResourceService,
			form.NewFormService,
			forum.NewForumService,
			roster.NewRosterService,

			// Interface Adapters
			func(b *realtime.Bus) realtime.Publisher { return b },

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			notification.NewNotificationController,
			announcement.NewAnnouncementController,
			assignment.NewAssignmentController,
			event.NewEventController,
			project.NewProjectController,
			resource.NewResourceController,
			form.NewFormController,
			forum.NewForumController,
			roster.NewRosterController,
			realtime.NewWebSocketController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(notification.NewNotificationApi),
			AsRoute(announcement.NewAnnouncementApi),
			AsRoute(assignment.NewAssignmentApi),
			AsRoute(event.NewEventApi),
			AsRoute(project.NewProjectApi),
			AsRoute(resource.NewResourceApi),
			AsRoute(form.NewFormApi),
			AsRoute(forum.NewForumApi),
			AsRoute(roster.NewRosterApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
			AsRoute(realtime.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureAuth,
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
