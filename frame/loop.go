// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the single logical thread of the viewer:
// a loop driven by one tick per display frame, with per-tick callbacks
// and one-shot timers.
//
// Everything that touches the scene runs "on the frame": inside [Loop.Tick]
// (callbacks and timers) or inside [Loop.Do] (work handed over from other
// goroutines, such as the completion of a network fetch). Both hold the
// same lock, so a render never observes a half-applied pass.
// Loop methods other than Tick and Do must only be called on the frame.
package frame

import (
	"sort"
	"sync"
	"time"
)

// Loop is the frame-tick driver. The rendering surface calls [Loop.Tick]
// once per display frame; the loop never owns the render loop itself.
type Loop struct {
	mu sync.Mutex

	now    time.Time
	nextID uint64

	tickers []*ticker
	timers  []*Timer
}

type ticker struct {
	id  uint64
	fun func(now time.Time)
}

// Timer is a one-shot callback scheduled with [Loop.After].
type Timer struct {
	loop *Loop
	due  time.Time
	seq  uint64
	fun  func()
	done bool
}

// NewLoop returns a new loop whose frame time starts at now.
func NewLoop(now time.Time) *Loop {
	return &Loop{now: now}
}

// Now returns the time of the most recent tick.
func (lp *Loop) Now() time.Time {
	return lp.now
}

// Tick advances the frame time to now, fires all timers that are due
// (in due order), and then calls every per-tick callback.
func (lp *Loop) Tick(now time.Time) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if now.After(lp.now) {
		lp.now = now
	}
	lp.fireTimers()
	tks := make([]*ticker, len(lp.tickers))
	copy(tks, lp.tickers)
	for _, tk := range tks {
		if lp.hasTicker(tk.id) {
			tk.fun(lp.now)
		}
	}
}

// Do runs fun on the frame, excluded from any tick. It must not be
// called from the frame itself.
func (lp *Loop) Do(fun func()) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	fun()
}

// OnTick registers fun to be called on every tick, and returns
// a function that removes the registration.
func (lp *Loop) OnTick(fun func(now time.Time)) (remove func()) {
	lp.nextID++
	id := lp.nextID
	lp.tickers = append(lp.tickers, &ticker{id: id, fun: fun})
	return func() {
		for i, tk := range lp.tickers {
			if tk.id == id {
				lp.tickers = append(lp.tickers[:i], lp.tickers[i+1:]...)
				return
			}
		}
	}
}

// NumTickers returns the number of registered per-tick callbacks.
func (lp *Loop) NumTickers() int {
	return len(lp.tickers)
}

// After schedules fun to run on the first tick at or after
// the current frame time plus d.
func (lp *Loop) After(d time.Duration, fun func()) *Timer {
	lp.nextID++
	tm := &Timer{loop: lp, due: lp.now.Add(d), seq: lp.nextID, fun: fun}
	lp.timers = append(lp.timers, tm)
	return tm
}

// NumTimers returns the number of pending timers.
func (lp *Loop) NumTimers() int {
	return len(lp.timers)
}

// Stop cancels the timer. It returns false if the timer
// already fired or was stopped.
func (tm *Timer) Stop() bool {
	if tm == nil || tm.done {
		return false
	}
	tm.done = true
	tm.loop.removeTimer(tm)
	return true
}

// Pending returns true if the timer has neither fired nor been stopped.
func (tm *Timer) Pending() bool {
	return tm != nil && !tm.done
}

func (lp *Loop) hasTicker(id uint64) bool {
	for _, tk := range lp.tickers {
		if tk.id == id {
			return true
		}
	}
	return false
}

func (lp *Loop) removeTimer(tm *Timer) {
	for i, t := range lp.timers {
		if t == tm {
			lp.timers = append(lp.timers[:i], lp.timers[i+1:]...)
			return
		}
	}
}

func (lp *Loop) fireTimers() {
	var due []*Timer
	for _, tm := range lp.timers {
		if !tm.due.After(lp.now) {
			due = append(due, tm)
		}
	}
	if len(due) == 0 {
		return
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, tm := range due {
		if tm.done {
			continue // stopped by an earlier timer
		}
		tm.done = true
		lp.removeTimer(tm)
		tm.fun()
	}
}
