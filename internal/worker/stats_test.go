package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"clinicdesk/internal/metrics"
)

type fakeCounter struct {
	calls  atomic.Int32
	counts map[string]int64
	err    error
}

func (f *fakeCounter) CountEntities(context.Context) (map[string]int64, error) {
	f.calls.Add(1)
	return f.counts, f.err
}

func TestStatsWorker_SetsGauges(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int64{"customer": 4, "appointment": 9}}
	w := NewStatsWorker(counter, time.Hour, nil)

	w.refresh(context.Background())

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Entities.WithLabelValues("customer")))
	assert.Equal(t, 9.0, testutil.ToFloat64(metrics.Entities.WithLabelValues("appointment")))
}

func TestStatsWorker_KeepsLastValueOnError(t *testing.T) {
	metrics.Entities.WithLabelValues("faq").Set(2)
	w := NewStatsWorker(&fakeCounter{err: errors.New("db down")}, time.Hour, nil)

	w.refresh(context.Background())

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Entities.WithLabelValues("faq")))
}

func TestStatsWorker_StopsWithContext(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int64{}}
	w := NewStatsWorker(counter, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.StartWorker(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return counter.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
