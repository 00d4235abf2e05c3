package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) observe(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebouncerZeroDelayPropagatesImmediately(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.observe)

	d.Observe("a", 0)
	d.Observe("b", 0)

	assert.Equal(t, []string{"a", "b"}, rec.snapshot())
}

func TestDebouncerDiscardsIntermediateValues(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.observe)
	defer d.Stop()

	// 快速连续观察，只有最后一个值在安静期后传播一次
	d.Observe("k", 50*time.Millisecond)
	d.Observe("ka", 50*time.Millisecond)
	d.Observe("kas", 50*time.Millisecond)

	assert.Empty(t, rec.snapshot())

	assert.Eventually(t, func() bool {
		v := rec.snapshot()
		return len(v) == 1 && v[0] == "kas"
	}, time.Second, 5*time.Millisecond)

	// 安静期后不再有额外传播
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"kas"}, rec.snapshot())
}

func TestDebouncerNewValueRestartsTimer(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.observe)
	defer d.Stop()

	d.Observe("first", 60*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	d.Observe("second", 60*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	// first 的计时器已被重启，此刻不应有任何传播
	assert.Empty(t, rec.snapshot())

	assert.Eventually(t, func() bool {
		v := rec.snapshot()
		return len(v) == 1 && v[0] == "second"
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncerRestartSuppressesFiringTimer(t *testing.T) {
	// 紧贴计时器触发点重启，被取代的旧值不得在 Observe 返回后送达
	for i := 0; i < 300; i++ {
		rec := &recorder{}
		d := NewDebouncer(rec.observe)

		d.Observe("old", time.Millisecond)
		time.Sleep(time.Millisecond)
		d.Observe("new", time.Hour)

		// new 远未到期，此刻的快照已是终态
		base := rec.snapshot()
		time.Sleep(2 * time.Millisecond)
		assert.Equal(t, base, rec.snapshot(), "iteration %d", i)
		d.Stop()
	}
}

func TestDebouncerStopSuppressesPendingValue(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(rec.observe)

	d.Observe("pending", 30*time.Millisecond)
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	// 停止后的观察也被忽略
	d.Observe("late", 0)
	assert.Empty(t, rec.snapshot())
}
