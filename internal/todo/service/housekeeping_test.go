package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type recordingGauge struct {
	mu   sync.Mutex
	seen []bool
}

func (g *recordingGauge) SetDatabaseUp(up bool) {
	g.mu.Lock()
	g.seen = append(g.seen, up)
	g.mu.Unlock()
}

func (g *recordingGauge) values() []bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]bool(nil), g.seen...)
}

func TestHousekeepingRunOnce(t *testing.T) {
	e := newEnv(t)
	gauge := &recordingGauge{}
	hk := service.NewHousekeepingService(e.store, slogx.Discard(), gauge, time.Hour)

	hk.RunOnce(context.Background())
	require.Equal(t, []bool{true}, gauge.values())

	require.NoError(t, e.store.Close())
	hk.RunOnce(context.Background())
	require.Equal(t, []bool{true, false}, gauge.values())
}

func TestHousekeepingStartStop(t *testing.T) {
	e := newEnv(t)
	gauge := &recordingGauge{}
	hk := service.NewHousekeepingService(e.store, slogx.Discard(), gauge, 10*time.Millisecond)
	require.Equal(t, 10*time.Millisecond, hk.Interval)

	hk.Start()
	require.Eventually(t, func() bool { return len(gauge.values()) >= 2 }, 2*time.Second, 5*time.Millisecond)
	hk.Stop()

	n := len(gauge.values())
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, n, len(gauge.values()), "no runs after Stop")
}

func TestHousekeepingDefaultInterval(t *testing.T) {
	hk := service.NewHousekeepingService(nil, slogx.Discard(), nil, 0)
	require.Equal(t, time.Hour, hk.Interval)
}
