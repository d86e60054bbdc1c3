// Package bootstrap wires the configuration, session, API client,
// entity caches and services into one application container.
package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oguzk/unienroll/internal/app/services"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/config"
	"github.com/oguzk/unienroll/internal/pkg/logger"
	"github.com/oguzk/unienroll/internal/session"
)

// App holds every long-lived component of the application.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Session *session.Session
	Client  *client.Client

	Users        *store.UserStore
	Courses      *store.CourseStore
	Enrollments  *store.EnrollmentStore
	LectureTimes *store.LectureTimeStore

	Auth          *services.AuthService
	UserService   *services.UserService
	CourseService *services.CourseService
	Enrollment    *services.EnrollmentService
	LectureTime   *services.LectureTimeService
	StudentSearch *services.StudentSearch
}

// LoadConfigAndSetupLogger loads configuration and initializes the
// logger from its logging section.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Default()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildApp constructs the session, client, caches and services from
// the configuration. The session is restored from the persisted token
// so an unexpired login survives process restarts.
func BuildApp(cfg *config.Config, lgr zerolog.Logger) *App {
	app := &App{Config: cfg, Logger: lgr}

	tokens := session.NewTokenFile(cfg.Auth.TokenFile)
	app.Session = session.NewSession(tokens)
	if err := app.Session.Restore(); err != nil {
		lgr.Debug().Err(err).Msg("No session restored from token file")
	}

	app.Client = client.NewClient(cfg.API.BaseURL, cfg.RequestTimeout(), app.Session, lgr)

	app.Users = store.NewUserStore()
	app.Courses = store.NewCourseStore()
	app.Enrollments = store.NewEnrollmentStore()
	app.LectureTimes = store.NewLectureTimeStore()

	app.Auth = services.NewAuthService(app.Client, app.Session,
		app.Users, app.Courses, app.Enrollments, app.LectureTimes)
	app.UserService = services.NewUserService(app.Client, app.Users, app.Session)
	app.CourseService = services.NewCourseService(app.Client, app.Courses, app.Session)
	app.Enrollment = services.NewEnrollmentService(app.Client, app.Enrollments, app.Session)
	app.LectureTime = services.NewLectureTimeService(app.Client, app.LectureTimes, app.Session)
	app.StudentSearch = services.NewStudentSearch(app.Client, app.Users, cfg.SearchDebounce())

	return app
}
