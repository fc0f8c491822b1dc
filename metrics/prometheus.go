// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package metrics

import (
	"github.com/ettle/strcase"
	"github.com/prometheus/client_golang/prometheus"
)

type Service struct {
	reg prometheus.Registerer

	msgCount    *prometheus.CounterVec
	msgDuration *prometheus.HistogramVec
	msgBytes    *prometheus.HistogramVec
}

// NewPrometheusService registers the codec metrics with reg.
func NewPrometheusService(reg prometheus.Registerer) (*Service, error) {
	msgCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nas_messages_total",
		Help: "Counter for encoded and decoded NAS messages",
	}, []string{"message_type", "direction", "result"})

	msgDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nas_messages_duration_seconds",
		Help:    "The latency of encoding or decoding a NAS message",
		Buckets: []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
	}, []string{"message_type", "direction"})

	msgBytes := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nas_message_bytes",
		Help:    "Size of successfully encoded or decoded NAS messages",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"message_type", "direction"})

	for _, c := range []prometheus.Collector{msgCount, msgDuration, msgBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	s := &Service{
		reg: reg,

		msgCount:    msgCount,
		msgDuration: msgDuration,
		msgBytes:    msgBytes,
	}

	return s, nil
}

func (s *Service) SaveMessages(msg *Message) {
	msgType := strcase.ToSnake(msg.MsgType)

	s.msgCount.WithLabelValues(msgType, msg.Direction, msg.Result).Inc()
	s.msgDuration.WithLabelValues(msgType, msg.Direction).Observe(msg.Duration)

	if msg.Result == ResultSuccess {
		s.msgBytes.WithLabelValues(msgType, msg.Direction).Observe(float64(msg.Bytes))
	}
}

func (s *Service) Stop() error {
	s.reg.Unregister(s.msgCount)
	s.reg.Unregister(s.msgDuration)
	s.reg.Unregister(s.msgBytes)

	return nil
}
