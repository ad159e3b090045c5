package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dukerupert/consign/internal/domain"
)

// AllocationMetrics holds Prometheus metrics for delivery-bucket allocation.
// A nil *AllocationMetrics is valid and records nothing.
type AllocationMetrics struct {
	// Classification
	ItemsClassified    *prometheus.CounterVec
	WarehouseFallbacks *prometheus.CounterVec

	// Buckets
	BucketsComputed   *prometheus.CounterVec
	MixConsolidations *prometheus.CounterVec
	BucketsMerged     *prometheus.CounterVec

	// Operations
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec

	// Transport
	RequestsHandled *prometheus.CounterVec
}

// NewAllocationMetrics creates and registers allocation metrics on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewAllocationMetrics(namespace string, reg prometheus.Registerer) *AllocationMetrics {
	if namespace == "" {
		namespace = "consign"
	}

	subsystem := "allocation"
	factory := promauto.With(reg)

	return &AllocationMetrics{
		// =======================================================================
		// Classification
		// =======================================================================
		ItemsClassified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "items_classified_total",
				Help:      "Total cart items classified into a fulfillment group",
			},
			[]string{"group"}, // group: STANDARD, DATE_WAIT, INVENTORY_WAIT, ...
		),
		WarehouseFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "warehouse_fallbacks_total",
				Help:      "Total classifications that ended on a tentative result after trying every candidate",
			},
			[]string{"group"},
		),

		// =======================================================================
		// Buckets
		// =======================================================================
		BucketsComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buckets_computed_total",
				Help:      "Total delivery buckets produced after consolidation",
			},
			[]string{"group"},
		),
		MixConsolidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mix_consolidations_total",
				Help:      "Total mixed deliveries created for suppliers that ship once per order",
			},
			[]string{"supplier"},
		),
		BucketsMerged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "buckets_merged_total",
				Help:      "Total physical buckets folded into a mixed delivery",
			},
			[]string{"supplier"},
		),

		// =======================================================================
		// Operations
		// =======================================================================
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_duration_seconds",
				Help:      "Duration of allocation operations including collaborator lookups",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"}, // operation: buckets, bucket_for_item, multi_delivery
		),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_errors_total",
				Help:      "Total allocation operations aborted by a collaborator error",
			},
			[]string{"operation", "code"},
		),

		// =======================================================================
		// Transport
		// =======================================================================
		RequestsHandled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "transport",
				Name:      "requests_total",
				Help:      "Total allocation requests answered over NATS",
			},
			[]string{"subject", "status"}, // status: ok, error
		),
	}
}

// RecordClassification counts one classified item.
func (m *AllocationMetrics) RecordClassification(group domain.FulfillmentGroup, fallback bool) {
	if m == nil {
		return
	}
	m.ItemsClassified.WithLabelValues(group.Name()).Inc()
	if fallback {
		m.WarehouseFallbacks.WithLabelValues(group.Name()).Inc()
	}
}

// RecordBucket counts one final bucket.
func (m *AllocationMetrics) RecordBucket(bucket domain.DeliveryBucket) {
	if m == nil {
		return
	}
	m.BucketsComputed.WithLabelValues(bucket.Group.Name()).Inc()
}

// RecordConsolidation counts a mixed delivery built from merged buckets.
func (m *AllocationMetrics) RecordConsolidation(supplier string, merged int) {
	if m == nil {
		return
	}
	m.MixConsolidations.WithLabelValues(supplier).Inc()
	m.BucketsMerged.WithLabelValues(supplier).Add(float64(merged))
}

// ObserveOperation records the duration of op and, when err is non-nil, its error code.
func (m *AllocationMetrics) ObserveOperation(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		m.OperationErrors.WithLabelValues(op, domain.ErrorCode(err)).Inc()
	}
}

// RecordRequest counts one transport request.
func (m *AllocationMetrics) RecordRequest(subject string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.RequestsHandled.WithLabelValues(subject, status).Inc()
}
