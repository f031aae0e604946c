package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_FanOut(t *testing.T) {
	hub := NewHub(nil)

	var first, second []Event
	hub.Subscribe(func(e Event) { first = append(first, e) })
	hub.Subscribe(func(e Event) { second = append(second, e) })

	hub.Success("item added to cart")
	hub.Error("failed to load wishlist")

	require.Len(t, first, 2)
	require.Len(t, second, 2)

	assert.Equal(t, LevelSuccess, first[0].Level)
	assert.Equal(t, "item added to cart", first[0].Message)
	assert.Equal(t, LevelError, first[1].Level)

	// Both subscribers observe the same events in the same order.
	assert.Equal(t, first, second)
}

func TestHub_EventIdentity(t *testing.T) {
	hub := NewHub(nil)

	var events []Event
	hub.Subscribe(func(e Event) { events = append(events, e) })

	hub.Info("please login to manage your wishlist")
	hub.Info("please login to manage your wishlist")

	require.Len(t, events, 2)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.False(t, events[0].Time.IsZero())
}

func TestHub_NoSubscribers(t *testing.T) {
	hub := NewHub(nil)

	// Publishing with no subscribers must not panic.
	assert.NotPanics(t, func() { hub.Success("ok") })
}
