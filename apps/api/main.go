package main

import (
	"context"
	"expvar"
	"log"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	echoapi "github.com/chayanin/tcasport/apps/api/echo"
	"github.com/chayanin/tcasport/core"
	"github.com/chayanin/tcasport/core/student"
	emailsvc "github.com/chayanin/tcasport/services/email"
	logsvc "github.com/chayanin/tcasport/services/logger"
	inmemdb "github.com/chayanin/tcasport/storage/database/inmem"
)

var build = "dev" // set on build

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if err := run(std); err != nil {
		std.Fatalf("main: error: %+v", err)
	}
}

func run(std *log.Logger) error {

	// =========================================================================
	// Configuration

	conf := core.NewConfig()
	conf.Build = build

	// =========================================================================
	// Logging

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)

	// =========================================================================
	// Database & services

	db, err := inmemdb.Open()
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	studentRepo := inmemdb.NewStudentRepository(db)

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	studentSvc := student.NewService(studentRepo, mailSvc, conf)

	// =========================================================================
	// Validation

	validate := validator.New()
	translator := getTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - profiling endpoints.
	// /debug/vars - build & env info.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/debug/vars", expvar.Handler())
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		logger.Info("debug service listening on " + conf.Server.DebugAddr)
		err := http.ListenAndServe(conf.Server.DebugAddr, mux)
		logger.Error("debug service closed", err)
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		StudentSvc: studentSvc,
		Validate:   validate,
		Translator: translator,
	})
	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		return errors.Wrap(err, "server error")

	case sig := <-server.ShutdownSignal():
		logger.Info("main: start shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}

func getTranslator() ut.Translator {
	enLocale := en.New()
	uniTranslator := ut.New(enLocale, enLocale)
	translator, _ := uniTranslator.GetTranslator(enLocale.Locale())
	return translator
}
