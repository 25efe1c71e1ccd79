// Package com has the shared primitives of the connections.
package com

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("not found")

// Map is a map safe for concurrent use.
// Lookups share the lock, so they don't wait for each other.
type Map[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] { return &Map[K, V]{m: make(map[K]V)} }

func (m *Map[K, V]) Put(key K, value V) {
	m.mu.Lock()
	m.m[key] = value
	m.mu.Unlock()
}

func (m *Map[K, _]) RemoveByKey(key K) {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
}

func (m *Map[_, _]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

func (m *Map[K, _]) Has(key K) bool { _, err := m.Find(key); return err == nil }

// Find returns the value of the key or ErrNotFound.
// The zero key is never found.
func (m *Map[K, V]) Find(key K) (V, error) {
	var zero K
	if key != zero {
		m.mu.RLock()
		v, ok := m.m[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}
	}
	var none V
	return none, ErrNotFound
}

// ForEach calls the function for every value under the read lock,
// the function must not modify the map.
func (m *Map[_, V]) ForEach(fn func(v V)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.m {
		fn(v)
	}
}
