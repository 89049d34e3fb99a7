package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/hmpssainta/sainta/core"
	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		Validate       *validator.Validate
		Translator     ut.Translator
		DisableReqLogs bool

		MemberSvc      member.Service
		AgendaSvc      agenda.Service
		GallerySvc     gallery.Service
		VideoSvc       video.Service
		OutcomeSvc     outcome.Service
		DocumentSvc    document.Service
		AchievementSvc achievement.Service
		OrgSvc         org.Service
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	admin := adminMiddleware(conf)

	registerMemberAPI(v1, admin, s.deps.MemberSvc, s.deps.Validate)
	registerAgendaAPI(v1, admin, s.deps.AgendaSvc, s.deps.Validate)
	registerGalleryAPI(v1, admin, s.deps.GallerySvc, s.deps.Validate)
	registerVideoAPI(v1, admin, s.deps.VideoSvc, s.deps.Validate)
	registerOutcomeAPI(v1, admin, s.deps.OutcomeSvc, s.deps.Validate)
	registerDocumentAPI(v1, admin, s.deps.DocumentSvc, s.deps.Validate)
	registerAchievementAPI(v1, admin, s.deps.AchievementSvc, s.deps.Validate)
	registerOrgAPI(v1, admin, s.deps.OrgSvc, s.deps.Validate)
	registerStatsAPI(v1, s.deps)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.errs <- s.app.Start(s.deps.Conf.Server.Addr())
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown is handed to the error handler so an integrity issue deep in
// a handler can take the whole API down gracefully.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API!")
}
