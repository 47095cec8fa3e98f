package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/config"
	"github.com/seedscan/seedscan-daemon/internal/core/application"
	"github.com/seedscan/seedscan-daemon/internal/interfaces/web"
)

func main() {
	config.InitLogger()

	scannerSvc, err := application.NewScannerService(application.ScannerServiceOpts{
		ExplorerFactory:      config.NewExplorerFactory(),
		MaxConcurrentLookups: config.GetInt(config.MaxConcurrentLookupsKey),
		ScanTimeout:          config.GetDuration(config.ScanTimeoutKey, time.Second),
	})
	if err != nil {
		log.WithError(err).Panic("error while starting scanner service")
	}

	webSvc, err := web.NewService(web.ServiceOpts{
		Port:    config.GetInt(config.HTTPListeningPortKey),
		Scanner: scannerSvc,
	})
	if err != nil {
		log.WithError(err).Panic("error while starting http interface")
	}

	log.Info("starting daemon")

	errCh := make(chan error, 1)
	go func() {
		errCh <- webSvc.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Panic("error listening on http interface")
		}
	case sig := <-sigCh:
		log.Infof("shutting down daemon on signal %s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webSvc.Stop(ctx); err != nil {
			log.WithError(err).Error("error while stopping http interface")
		}
	}

	log.Info("daemon stopped")
}
