// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Bus is the signal medium of one viewer. Delivery is synchronous:
// [Bus.Emit] calls every listener registered for the event type before
// it returns. There is no replay, so a listener added after an emission
// never sees it. Each viewer owns its own Bus; there is no global one.
type Bus struct {
	mu        sync.Mutex
	listeners map[Types][]*Subscription
	nextID    uint64
}

// Subscription is one listener registration. Only its owner can cancel it.
type Subscription struct {
	bus *Bus
	typ Types
	id  uint64
	fun func(ev Event)
}

// NewBus returns a new empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// init ensures that map is constructed
func (b *Bus) init() {
	if b.listeners != nil {
		return
	}
	b.listeners = make(map[Types][]*Subscription)
}

// Listen adds a function for the given type.
func (b *Bus) Listen(typ Types, fun func(ev Event)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.init()
	b.nextID++
	sub := &Subscription{bus: b, typ: typ, id: b.nextID, fun: fun}
	b.listeners[typ] = append(b.listeners[typ], sub)
	return sub
}

// On adds a typed listener for the event type E.
//
//	events.On(bus, func(ev events.FocusOnObjectEvent) { ... })
func On[E Event](b *Bus, fun func(ev E)) *Subscription {
	var zero E
	return b.Listen(zero.Type(), func(ev Event) {
		if e, ok := ev.(E); ok {
			fun(e)
		}
	})
}

// Emit calls all listeners for the type of ev. Listeners may add or
// cancel registrations while being called; those changes apply to
// the next emission.
func (b *Bus) Emit(ev Event) {
	b.mu.Lock()
	subs := make([]*Subscription, len(b.listeners[ev.Type()]))
	copy(subs, b.listeners[ev.Type()])
	b.mu.Unlock()
	for _, sub := range subs {
		sub.fun(ev)
	}
}

// NumListeners returns the number of listeners for the given type.
func (b *Bus) NumListeners(typ Types) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[typ])
}

// Cancel removes the registration. It is safe to call more than once.
func (sub *Subscription) Cancel() {
	if sub == nil || sub.bus == nil {
		return
	}
	b := sub.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.listeners[sub.typ]
	for i, s := range subs {
		if s.id == sub.id {
			b.listeners[sub.typ] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	sub.bus = nil
}

// Group collects the subscriptions of one owner so they can all be
// cancelled on the owner's teardown.
type Group struct {
	subs []*Subscription
}

// Add adds subscriptions to the group.
func (g *Group) Add(subs ...*Subscription) {
	g.subs = append(g.subs, subs...)
}

// Cancel cancels all subscriptions of the group.
func (g *Group) Cancel() {
	for _, sub := range g.subs {
		sub.Cancel()
	}
	g.subs = nil
}

// Len returns the number of subscriptions in the group.
func (g *Group) Len() int {
	return len(g.subs)
}
