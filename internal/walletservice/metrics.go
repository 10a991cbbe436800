package walletservice

import (
	"context"

	"github.com/gabapcia/nodewallet/internal/pkg/logger"
	"github.com/gabapcia/nodewallet/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/gabapcia/nodewallet/internal/walletservice"

type metrics struct {
	paymentsSent     metric.Int64Counter
	paymentsRejected metric.Int64Counter
	persistWarnings  metric.Int64Counter
}

func newMetrics() *metrics {
	return &metrics{
		paymentsSent:     newCounter("wallet.payments.sent", "Payments broadcast to the network"),
		paymentsRejected: newCounter("wallet.payments.rejected", "Payments refused before or during broadcast"),
		persistWarnings:  newCounter("wallet.persist.warnings", "Wallet changes that could not be saved"),
	}
}

func newCounter(name, description string) metric.Int64Counter {
	counter, err := telemetry.Meter(meterName).Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		logger.Warn(context.Background(), "metric not registered", "metric", name, "error", err)
		return noop.Int64Counter{}
	}
	return counter
}

func (m *metrics) paymentSent(ctx context.Context) {
	m.paymentsSent.Add(ctx, 1)
}

func (m *metrics) paymentRejected(ctx context.Context, reason string) {
	m.paymentsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *metrics) persistWarning(ctx context.Context) {
	m.persistWarnings.Add(ctx, 1)
}
