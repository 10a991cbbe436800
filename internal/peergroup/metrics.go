package peergroup

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/nodewallet/internal/peergroup"

type metrics struct {
	peersConnected  metric.Int64UpDownCounter
	headersReceived metric.Int64Counter
}

func newMetrics() *metrics {
	meter := telemetry.Meter(meterName)
	m := &metrics{}

	var err error
	m.peersConnected, err = meter.Int64UpDownCounter("peergroup.peers.connected",
		metric.WithDescription("Connected peers"),
	)
	if err != nil {
		logger.Warn(context.Background(), "metric not registered", "metric", "peergroup.peers.connected", "error", err)
		m.peersConnected = noop.Int64UpDownCounter{}
	}

	m.headersReceived, err = meter.Int64Counter("peergroup.headers.received",
		metric.WithDescription("Block headers received from peers"),
		metric.WithUnit("{header}"),
	)
	if err != nil {
		logger.Warn(context.Background(), "metric not registered", "metric", "peergroup.headers.received", "error", err)
		m.headersReceived = noop.Int64Counter{}
	}

	return m
}
