// Package telemetry turns movement events into Prometheus metrics and log lines.
package telemetry

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/world"
)

const namespace = "vaultcore"

// MetricsObserver counts movement events for one or more characters
type MetricsObserver struct {
	landings     *prometheus.CounterVec
	impacts      *prometheus.CounterVec
	landingSpeed prometheus.Histogram
	jumps        prometheus.Counter
	fallDamage   prometheus.Counter
	mantles      *prometheus.CounterVec
	fuel         prometheus.Gauge
	velocityY    prometheus.Gauge
}

// NewMetricsObserver creates the collectors and registers them on reg
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	m := &MetricsObserver{
		landings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landings_total",
			Help:      "Air-to-ground transitions by surface.",
		}, []string{"surface"}),
		impacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landing_impacts_total",
			Help:      "Landings hard enough to play an impact sound, by tier.",
		}, []string{"tier"}),
		landingSpeed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "landing_velocity",
			Help:      "Impact speed of landings in units per second.",
			Buckets:   []float64{1, 2.5, 5, 10, 15, 20, 30, 50},
		}),
		jumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Jumps launched.",
		}),
		fallDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fall_damage_total",
			Help:      "Damage reported by hard landings.",
		}),
		mantles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mantles_total",
			Help:      "Started climbs by kind.",
		}, []string{"kind"}),
		fuel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jetpack_fuel",
			Help:      "Jetpack fuel fraction of the observed character.",
		}),
		velocityY: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertical_velocity",
			Help:      "Vertical speed of the observed character.",
		}),
	}

	collectors := []prometheus.Collector{
		m.landings, m.impacts, m.landingSpeed, m.jumps, m.fallDamage, m.mantles, m.fuel, m.velocityY,
	}
	var errs []error
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveState samples the gauges from a controller snapshot
func (m *MetricsObserver) ObserveState(st vertical.State) {
	m.fuel.Set(st.Fuel)
	m.velocityY.Set(st.VelocityY)
}

func (m *MetricsObserver) OnLand(velocity float64, surface world.Surface) {
	m.landings.WithLabelValues(surface.String()).Inc()
	m.landingSpeed.Observe(velocity)
}

func (m *MetricsObserver) OnLandingImpact(tier vertical.ImpactTier, _ world.Surface) {
	m.impacts.WithLabelValues(tier.String()).Inc()
}

func (m *MetricsObserver) OnJump() {
	m.jumps.Inc()
}

func (m *MetricsObserver) OnFallDamage(damage int) {
	m.fallDamage.Add(float64(damage))
}

func (m *MetricsObserver) OnMantleStart() {
	m.mantles.WithLabelValues("mantle").Inc()
}

func (m *MetricsObserver) OnLedgeGrab() {
	m.mantles.WithLabelValues("ledge_grab").Inc()
}

func (m *MetricsObserver) OnMantleProgress(float64, ledge.Phase) {}
func (m *MetricsObserver) OnMantleComplete()                     {}
func (m *MetricsObserver) OnLedgePullUp()                        {}

// NewMetricsServer serves /metrics for g on addr. The caller starts and stops it.
func NewMetricsServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &http.Server{Addr: addr, Handler: mux}
}
