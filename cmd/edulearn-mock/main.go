// Command edulearn-mock serves an in-memory EduLearn API for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/viant/edulearn/client/auth/mock"
	"github.com/viant/edulearn/internal/config"
	"github.com/viant/edulearn/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("edulearn-mock: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	displayAppname("edulearn mock")
	service := mock.New(mock.WithAccessTTL(cfg.MockAccessTTL), mock.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errs := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", cfg.MockAddr, "api", "http://"+cfg.MockAddr+"/api/v1/", "accessTTL", cfg.MockAccessTTL)
		logger.Infow("demo accounts", "student", mock.DemoEmail, "instructor", mock.InstructorEmail)
		if err := service.Start(cfg.MockAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err = <-errs:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = service.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
