package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ranli8/fit8/internal/models"
)

const unlockEventHistoryLimit = 50

type UnlockEvent struct {
	ID          string             `json:"id"`
	Achievement models.Achievement `json:"achievement"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// UnlockBus fans unlock events out to in-process subscribers (the UI
// layer) and keeps a bounded history for poll-based consumers. Publishing
// never blocks: a subscriber that has fallen behind misses the event and
// catches up from the history.
type UnlockBus struct {
	mu          sync.Mutex
	subscribers []chan UnlockEvent
	history     []UnlockEvent
}

func NewUnlockBus() *UnlockBus {
	return &UnlockBus{}
}

func (bus *UnlockBus) Subscribe() <-chan UnlockEvent {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	subscriber := make(chan UnlockEvent, 16)
	bus.subscribers = append(bus.subscribers, subscriber)
	return subscriber
}

func (bus *UnlockBus) Publish(achievement models.Achievement, now time.Time) UnlockEvent {
	event := UnlockEvent{
		ID:          uuid.NewString(),
		Achievement: achievement,
		OccurredAt:  now,
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.history = append(bus.history, event)
	if len(bus.history) > unlockEventHistoryLimit {
		bus.history = bus.history[len(bus.history)-unlockEventHistoryLimit:]
	}

	for _, subscriber := range bus.subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}

	return event
}

// RecentEvents returns up to limit events, newest first.
func (bus *UnlockBus) RecentEvents(limit int) []UnlockEvent {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	if limit <= 0 || limit > len(bus.history) {
		limit = len(bus.history)
	}

	events := make([]UnlockEvent, 0, limit)
	for index := len(bus.history) - 1; index >= len(bus.history)-limit; index-- {
		events = append(events, bus.history[index])
	}
	return events
}
