// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package nasiface

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/omec-project/emm-codec/logger"
	"github.com/omec-project/emm-codec/metrics"
)

type NASIface struct {
	conf Conf

	router  *mux.Router
	codec   *CodecService
	metrics *metrics.Service
}

func NewNASIface(conf Conf) (*NASIface, error) {
	nasIface := &NASIface{
		conf:   conf,
		router: mux.NewRouter(),
	}

	var instrument metrics.InstrumentNAS

	if conf.EnableMetrics {
		s, err := setupProm(nasIface.router, prometheus.NewRegistry())
		if err != nil {
			return nil, err
		}

		nasIface.metrics = s
		instrument = s
	}

	codec, err := NewCodecService(&conf, instrument)
	if err != nil {
		clearProm(nasIface.metrics)
		return nil, err
	}

	nasIface.codec = codec
	setupCodecHandler(nasIface.router, codec)

	return nasIface, nil
}

// Handler returns the HTTP handler serving the codec API and metrics.
func (p *NASIface) Handler() http.Handler {
	return p.router
}

func (p *NASIface) Run() {
	// validated by LoadConfigFile
	readTimeout, _ := time.ParseDuration(p.conf.ReadTimeout)

	httpSrv := &http.Server{
		Addr:        ":" + p.conf.HTTPPort,
		Handler:     p.router,
		ReadTimeout: readTimeout,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.AppLog.Fatalln("http server failed", err)
		}

		logger.AppLog.Infoln("http server closed")
	}()

	logger.AppLog.Infof("serving %v on port %s", p.codec.Messages(), p.conf.HTTPPort)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	signal.Notify(sig, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.AppLog.Errorln("Failed to shutdown http:", err)
	}

	clearProm(p.metrics)
}
