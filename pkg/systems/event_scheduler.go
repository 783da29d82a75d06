package systems

import (
	"log"
	"sort"
	"time"
)

// scheduledEvent 一个待触发的延迟事件
type scheduledEvent struct {
	name      string
	due       time.Duration
	seq       uint64
	epoch     uint64
	fn        func()
	cancelled bool
}

// EventHandle 已安排事件的句柄，可用于取消
type EventHandle struct {
	ev *scheduledEvent
}

// Cancel 取消事件；事件已触发或已丢弃时无操作
func (h EventHandle) Cancel() {
	if h.ev != nil {
		h.ev.cancelled = true
	}
}

// EventScheduler 每个特效上下文私有的延迟事件队列
//
// 事件不会在后台 goroutine 中运行：Update 在帧开始时同步取出到期事件并按
// (到期时间, 安排顺序) 依次执行。每个事件记录安排时的纪元（epoch），
// Reset 使纪元加一并清空队列，纪元过期的事件被丢弃而不是执行。
type EventScheduler struct {
	clock  Clock
	epoch  uint64
	seq    uint64
	events []*scheduledEvent
}

// NewEventScheduler 创建延迟事件队列
func NewEventScheduler(clock Clock) *EventScheduler {
	if clock == nil {
		clock = NewWallClock()
	}
	return &EventScheduler{clock: clock}
}

// Clock 返回队列使用的时钟
func (s *EventScheduler) Clock() Clock {
	return s.clock
}

// Schedule 安排 fn 在 delay 之后执行（最早在下一次 Update 时）
func (s *EventScheduler) Schedule(name string, delay time.Duration, fn func()) EventHandle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	ev := &scheduledEvent{
		name:  name,
		due:   s.clock.Now() + delay,
		seq:   s.seq,
		epoch: s.epoch,
		fn:    fn,
	}
	s.events = append(s.events, ev)
	return EventHandle{ev: ev}
}

// Update 执行所有已到期的事件，返回实际执行的数量
//
// 回调中新安排的事件留到下一次 Update 处理。
func (s *EventScheduler) Update() int {
	if len(s.events) == 0 {
		return 0
	}

	now := s.clock.Now()
	var due, pending []*scheduledEvent
	for _, ev := range s.events {
		if ev.cancelled {
			continue
		}
		if ev.due <= now {
			due = append(due, ev)
		} else {
			pending = append(pending, ev)
		}
	}
	s.events = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, ev := range due {
		// 回调可能调用 Reset 或取消后续事件
		if ev.cancelled {
			continue
		}
		if ev.epoch != s.epoch {
			log.Printf("[EventScheduler] Dropped stale event %q (epoch %d, current %d)", ev.name, ev.epoch, s.epoch)
			continue
		}
		ev.fn()
		fired++
	}
	return fired
}

// Reset 丢弃所有待触发事件并使之前安排的事件失效
func (s *EventScheduler) Reset() {
	if len(s.events) > 0 {
		log.Printf("[EventScheduler] Reset: discarding %d pending events", len(s.events))
	}
	for _, ev := range s.events {
		ev.cancelled = true
	}
	s.events = nil
	s.epoch++
}

// Pending 待触发（未取消）的事件数量
func (s *EventScheduler) Pending() int {
	n := 0
	for _, ev := range s.events {
		if !ev.cancelled {
			n++
		}
	}
	return n
}

// Epoch 当前纪元
func (s *EventScheduler) Epoch() uint64 {
	return s.epoch
}
