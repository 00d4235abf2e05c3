package query

import (
	"sync"
	"time"
)

// Debouncer 延迟传播快速变化的值：每次 Observe 以新值重启计时器，
// 只有 delay 内没有更新的调用时消费者才收到该值。一个安静期恰好
// 传播一次，中间值直接丢弃，不排队。
// 与任何 UI 框架的生命周期解耦，归属方会话结束时调用 Stop。
// fn 在持锁状态下执行，不得回调同一去抖器的 Observe 或 Stop。
type Debouncer[T any] struct {
	mu sync.Mutex
	// gen 标记最新一次 Observe/Stop。已触发但尚未投递的计时器
	// 回调在锁内比对代数，发现被新值取代后放弃投递。
	gen     uint64
	timer   *time.Timer
	fn      func(T)
	stopped bool
}

// NewDebouncer 创建去抖器，fn 为值稳定后的消费回调
func NewDebouncer[T any](fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{fn: fn}
}

// Observe 观察一个新值。delay <= 0 表示不去抖，同步立即传播，
// 方便测试。否则重置待定计时器，丢弃上一个未传播的值。
// 返回后被取代的旧值不会再送达。
func (d *Debouncer[T]) Observe(value T, delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if delay <= 0 {
		d.fn(value)
		return
	}
	gen := d.gen
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped || gen != d.gen {
			return
		}
		d.timer = nil
		d.fn(value)
	})
}

// Stop 取消待定的传播并永久停止去抖器。
// 会话结束后未触发的更新不得再送达。
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
