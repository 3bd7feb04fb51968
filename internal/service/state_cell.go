// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
)

// stateCell is a single-writer observable value. Set replaces the value and
// pushes it to every subscriber; Subscribe delivers the current value first
// and then every subsequent Set until ctx is cancelled.
//
// Subscriber channels are buffered with capacity one and drained before each
// send, so a slow subscriber only ever misses intermediate values, never the
// latest one, and Set never blocks.
type stateCell[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]chan T
	nextID int
}

func newStateCell[T any](initial T) *stateCell[T] {
	return &stateCell[T]{value: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (c *stateCell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies all subscribers.
func (c *stateCell[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	for _, ch := range c.subs {
		select {
		case <-ch: // drop the stale value
		default:
		}
		ch <- value
	}
}

// Update applies fn to the current value and publishes the outcome atomically
// with respect to other Set/Update calls.
func (c *stateCell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = fn(c.value)
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.value
	}
}

// Subscribe registers a new observer. The returned channel receives the
// current value immediately and is closed when ctx is cancelled.
func (c *stateCell[T]) Subscribe(ctx context.Context) <-chan T {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	ch := make(chan T, 1)
	ch <- c.value
	c.subs[id] = ch
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
		close(ch)
	}()

	return ch
}
