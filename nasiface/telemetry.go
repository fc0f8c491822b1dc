// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package nasiface

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omec-project/emm-codec/metrics"
)

// setupProm registers the codec metrics with reg and serves them on /metrics.
func setupProm(r *mux.Router, reg *prometheus.Registry) (*metrics.Service, error) {
	s, err := metrics.NewPrometheusService(reg)
	if err != nil {
		return nil, err
	}

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s, nil
}

func clearProm(s *metrics.Service) {
	if s != nil {
		_ = s.Stop()
	}
}
