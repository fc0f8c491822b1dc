// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusService(t *testing.T) {
	t.Run("cannot register multiple times without stop", func(t *testing.T) {
		reg := prometheus.NewRegistry()

		_, err := NewPrometheusService(reg)
		require.NoError(t, err)

		_, err = NewPrometheusService(reg)
		require.Error(t, err)
	})

	t.Run("can register multiple times with stop", func(t *testing.T) {
		reg := prometheus.NewRegistry()

		s, err := NewPrometheusService(reg)
		require.NoError(t, err)

		err = s.Stop()
		require.NoError(t, err)

		_, err = NewPrometheusService(reg)
		require.NoError(t, err)
	})
}

func TestSaveMessages(t *testing.T) {
	s, err := NewPrometheusService(prometheus.NewRegistry())
	require.NoError(t, err)

	m := NewMessage("Service Reject", DirectionEncode)
	m.Finish(ResultSuccess, 4)
	s.SaveMessages(m)

	m = NewMessage("Service Reject", DirectionDecode)
	m.Finish("buffer too short", 0)
	s.SaveMessages(m)

	require.Equal(t, 1.0, testutil.ToFloat64(s.msgCount.WithLabelValues("service_reject", DirectionEncode, ResultSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(s.msgCount.WithLabelValues("service_reject", DirectionDecode, "buffer too short")))
	require.Equal(t, 1, testutil.CollectAndCount(s.msgBytes))
}
