// Package coordinatormetrics exposes the Coordinator's observability
// surface as prometheus counters and gauges, grounded on the railway
// repo's metricsRegistry pattern (own registry, CounterVec by outcome
// label, one gauge for backlog depth).
package coordinatormetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	registry               *prometheus.Registry
	secretsCoordinatedTotal *prometheus.CounterVec
	secretsConsumedTotal    *prometheus.CounterVec
	checkpointsVerified     *prometheus.CounterVec
	pendingSecrets          prometheus.Gauge
}

func NewRegistry() *Registry {
	coordinated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "atomicswap_secrets_coordinated_total",
		Help: "Total number of secrets relayed through CoordinateSecretFromForeign, by outcome",
	}, []string{"outcome"})

	consumed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "atomicswap_secrets_consumed_total",
		Help: "Total number of secrets consumed on withdraw, by direction",
	}, []string{"direction"})

	checkpoints := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "atomicswap_checkpoints_verified_total",
		Help: "Total number of foreign-chain checkpoints verified, by outcome",
	}, []string{"outcome"})

	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "atomicswap_coordinator_pending_secrets",
		Help: "Number of coordinated secrets not yet consumed",
	})

	r := prometheus.NewRegistry()
	r.MustRegister(coordinated, consumed, checkpoints, pending)

	return &Registry{
		registry:                r,
		secretsCoordinatedTotal: coordinated,
		secretsConsumedTotal:    consumed,
		checkpointsVerified:     checkpoints,
		pendingSecrets:          pending,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) IncSecretCoordinated(outcome string) {
	r.secretsCoordinatedTotal.WithLabelValues(outcome).Inc()
}

func (r *Registry) IncSecretConsumed(direction string) {
	r.secretsConsumedTotal.WithLabelValues(direction).Inc()
}

func (r *Registry) IncCheckpointVerified(outcome string) {
	r.checkpointsVerified.WithLabelValues(outcome).Inc()
}

func (r *Registry) SetPendingSecrets(n int) {
	r.pendingSecrets.Set(float64(n))
}
