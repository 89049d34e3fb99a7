package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/hmpssainta/sainta/apps/api/echo"
	"github.com/hmpssainta/sainta/core"
	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
	logsvc "github.com/hmpssainta/sainta/services/logger"
	uploadsvc "github.com/hmpssainta/sainta/services/upload"
	"github.com/hmpssainta/sainta/storage/memory"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up in-memory storage; collections reset on restart
	db, err := memory.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening storage: %v", err), err)
	}

	// set up services
	uploadSvc := uploadsvc.NewService(conf, logger)
	memberSvc := member.NewService(memory.NewMemberRepository(db), conf)
	agendaSvc := agenda.NewService(memory.NewAgendaRepository(db), conf)
	gallerySvc := gallery.NewService(memory.NewGalleryRepository(db), uploadSvc)
	videoSvc := video.NewService(memory.NewVideoRepository(db), uploadSvc)
	outcomeSvc := outcome.NewService(memory.NewOutcomeRepository(db), conf)
	documentSvc := document.NewService(memory.NewDocumentRepository(db), uploadSvc)
	achievementSvc := achievement.NewService(memory.NewAchievementRepository(db), conf)
	orgSvc := org.NewService(memory.NewOrgRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	document.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         logger,
			Validate:       validate,
			Translator:     translator,
			MemberSvc:      memberSvc,
			AgendaSvc:      agendaSvc,
			GallerySvc:     gallerySvc,
			VideoSvc:       videoSvc,
			OutcomeSvc:     outcomeSvc,
			DocumentSvc:    documentSvc,
			AchievementSvc: achievementSvc,
			OrgSvc:         orgSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
