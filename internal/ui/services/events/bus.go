package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publishing goroutine, which for UI services is the update loop.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the key listeners for event subscribe with
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
