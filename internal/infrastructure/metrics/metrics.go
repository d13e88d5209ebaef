package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommissionMetrics covers the performed-service lifecycle and settlement
// operations.
type CommissionMetrics struct {
	ServicesCreatedTotal   prometheus.CounterVec
	ServicesCancelledTotal prometheus.CounterVec
	ServicesAmendedTotal   prometheus.CounterVec

	PaymentsTotal       prometheus.CounterVec
	PaymentsAmountTotal prometheus.CounterVec

	SettlementBatchesTotal prometheus.CounterVec
	SettlementBatchSize    prometheus.Histogram
	SettlementDuration     prometheus.Histogram

	OperationErrorsTotal prometheus.CounterVec
}

func NewCommissionMetrics() *CommissionMetrics {
	return &CommissionMetrics{
		ServicesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "performed_services_created_total",
				Help: "Performed services registered, by service type",
			},
			[]string{"service_type"},
		),
		ServicesCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "performed_services_cancelled_total",
				Help: "Performed services cancelled",
			},
			[]string{"service_type"},
		),
		ServicesAmendedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "performed_services_amended_total",
				Help: "Performed service amendments, split by whether the commission was recomputed",
			},
			[]string{"recomputed"},
		),
		PaymentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_payments_total",
				Help: "Commission payments recorded, by settlement mode",
			},
			[]string{"mode"},
		),
		PaymentsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_payments_amount_total",
				Help: "Sum of commission amounts paid, by settlement mode",
			},
			[]string{"mode"},
		),
		SettlementBatchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_batches_total",
				Help: "Batch settlements, by outcome",
			},
			[]string{"outcome"},
		),
		SettlementBatchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_batch_size",
				Help:    "Services settled per batch",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
			},
		),
		SettlementDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "settlement_batch_duration_seconds",
				Help:    "Wall time of the batch settlement unit of work",
				Buckets: prometheus.DefBuckets,
			},
		),
		OperationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_operation_errors_total",
				Help: "Failed operations, by operation name",
			},
			[]string{"operation"},
		),
	}
}

func (m *CommissionMetrics) RecordServiceCreated(serviceType string) {
	m.ServicesCreatedTotal.WithLabelValues(serviceType).Inc()
}

func (m *CommissionMetrics) RecordServiceCancelled(serviceType string) {
	m.ServicesCancelledTotal.WithLabelValues(serviceType).Inc()
}

func (m *CommissionMetrics) RecordServiceAmended(recomputed bool) {
	label := "false"
	if recomputed {
		label = "true"
	}
	m.ServicesAmendedTotal.WithLabelValues(label).Inc()
}

func (m *CommissionMetrics) RecordPayment(mode string, amount float64) {
	m.PaymentsTotal.WithLabelValues(mode).Inc()
	m.PaymentsAmountTotal.WithLabelValues(mode).Add(amount)
}

func (m *CommissionMetrics) RecordBatchSettled(size int, seconds float64) {
	m.SettlementBatchesTotal.WithLabelValues("settled").Inc()
	m.SettlementBatchSize.Observe(float64(size))
	m.SettlementDuration.Observe(seconds)
}

func (m *CommissionMetrics) RecordBatchFailed() {
	m.SettlementBatchesTotal.WithLabelValues("failed").Inc()
}

func (m *CommissionMetrics) RecordError(operation string) {
	m.OperationErrorsTotal.WithLabelValues(operation).Inc()
}
