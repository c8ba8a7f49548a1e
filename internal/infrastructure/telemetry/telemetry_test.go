package telemetry

import (
	"bytes"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/vaultcore/internal/application/ledge"
	"github.com/younwookim/vaultcore/internal/application/vertical"
	"github.com/younwookim/vaultcore/internal/domain/world"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

func createTestMetrics(t *testing.T) (*MetricsObserver, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewMetricsObserver(reg)
	require.NoError(t, err)
	return m, reg
}

func TestMetricsObserver_Counts(t *testing.T) {
	m, _ := createTestMetrics(t)

	m.OnJump()
	m.OnJump()
	m.OnLand(12, world.SurfaceRock)
	m.OnLand(3, world.SurfaceRock)
	m.OnLand(4, world.SurfaceIce)
	m.OnLandingImpact(vertical.ImpactHeavy, world.SurfaceRock)
	m.OnFallDamage(13)
	m.OnFallDamage(2)
	m.OnMantleStart()
	m.OnLedgeGrab()
	m.OnLedgeGrab()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.jumps))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.landings.WithLabelValues("rock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.landings.WithLabelValues("ice")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.impacts.WithLabelValues("heavy")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.fallDamage))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mantles.WithLabelValues("mantle")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mantles.WithLabelValues("ledge_grab")))
}

func TestMetricsObserver_ObserveState(t *testing.T) {
	m, _ := createTestMetrics(t)

	m.ObserveState(vertical.State{Fuel: 0.75, VelocityY: -4})

	assert.Equal(t, 0.75, testutil.ToFloat64(m.fuel))
	assert.Equal(t, -4.0, testutil.ToFloat64(m.velocityY))
}

func TestNewMetricsObserver_DuplicateRegistration(t *testing.T) {
	_, reg := createTestMetrics(t)

	_, err := NewMetricsObserver(reg)

	assert.Error(t, err)
}

func TestMetricsServer_ServesMetrics(t *testing.T) {
	m, reg := createTestMetrics(t)
	m.OnJump()

	srv := NewMetricsServer(":0", reg)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "vaultcore_jumps_total 1")
}

func TestMetricsObserver_DrivenByController(t *testing.T) {
	m, _ := createTestMetrics(t)
	cfg := config.Default()
	w := world.NewBoxWorld()
	w.AddBox("hangar_floor", mgl64.Vec3{-50, -1, -50}, mgl64.Vec3{50, 0, 50}, world.SurfaceMetal)
	ctrl := vertical.NewController(&cfg, vertical.NewParts(&cfg, w))
	ctrl.SetObserver(m)

	pos := mgl64.Vec3{0, 0.9, 0}
	fwd := mgl64.Vec3{1, 0, 0}
	ctrl.RequestJump()
	for i := 0; i < 120; i++ {
		pos[1] += ctrl.Update(1.0/64, pos, fwd)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.jumps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.landings.WithLabelValues("metal")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.landingSpeed))
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	o := NewLogObserver(log.New(&buf, "", 0))

	o.OnJump()
	o.OnMantleStart()
	o.OnMantleProgress(0.1, ledge.PhaseReach)
	o.OnMantleProgress(0.2, ledge.PhaseReach)
	o.OnMantleProgress(0.5, ledge.PhasePull)
	o.OnMantleComplete()
	o.OnLand(25, world.SurfaceMetal)
	o.OnLandingImpact(vertical.ImpactHeavy, world.SurfaceMetal)
	o.OnFallDamage(13)
	o.OnLedgeGrab()
	o.OnLedgePullUp()

	want := []string{
		"jump",
		"mantle: start",
		"mantle: reach at 0.10",
		"mantle: pull at 0.50",
		"mantle: complete",
		"land: 25.00 u/s on metal",
		"impact: heavy on metal",
		"fall damage: 13",
		"ledge: grab",
		"ledge: pull up",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(buf.String()), "\n"))
}

func TestLogObserver_DefaultLogger(t *testing.T) {
	assert.NotNil(t, NewLogObserver(nil).logger)
}

func TestObserversCompose(t *testing.T) {
	m, _ := createTestMetrics(t)
	var buf bytes.Buffer
	f := vertical.Fanout{m, NewLogObserver(log.New(&buf, "", 0))}

	f.OnJump()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.jumps))
	assert.Equal(t, "jump\n", buf.String())
}
