package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case data, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
	return Event{}
}

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := NewClient(hub, nil, "u1")
	second := NewClient(hub, nil, "u2")
	require.NoError(t, hub.Register(first))
	require.NoError(t, hub.Register(second))

	assert.Equal(t, TypeConnect, receive(t, first).Type)
	assert.Equal(t, TypeConnect, receive(t, second).Type)
	assert.Equal(t, 2, hub.ClientsCount())

	hub.Publish(TypePostLiked, "p1", "u1", map[string]int{"likes": 1})

	for _, c := range []*Client{first, second} {
		event := receive(t, c)
		assert.Equal(t, TypePostLiked, event.Type)
		assert.Equal(t, "p1", event.PostID)
		assert.Equal(t, "u1", event.UserID)
		assert.JSONEq(t, `{"likes":1}`, string(event.Data))
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := NewClient(hub, nil, "u1")
	require.NoError(t, hub.Register(c))
	receive(t, c)

	hub.Unregister(c)
	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
	assert.Equal(t, 0, hub.ClientsCount())

	hub.Publish(TypePostCreated, "p1", "u1", nil)
}

func TestHubStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := NewClient(hub, nil, "u1")
	require.NoError(t, hub.Register(c))
	receive(t, c)

	hub.Stop()
	assert.Equal(t, 0, hub.ClientsCount())
	assert.ErrorIs(t, hub.Register(NewClient(hub, nil, "u2")), ErrHubStopped)

	// повторная отписка после остановки не блокируется
	hub.Unregister(c)
}

func TestHubSendToFullQueue(t *testing.T) {
	hub := NewHub()
	c := &Client{ID: "c1", UserID: "u1", Send: make(chan []byte, 1), Hub: hub}

	require.NoError(t, hub.sendTo(c, Event{Type: TypePing}))
	assert.ErrorIs(t, hub.sendTo(c, Event{Type: TypePing}), ErrClientQueueFull)

	// Событие для переполненного клиента отбрасывается, остальные получают его
	other := &Client{ID: "c2", UserID: "u2", Send: make(chan []byte, 1), Hub: hub}
	hub.clients[c.ID] = c
	hub.clients[other.ID] = other
	hub.Publish(TypePostCreated, "p1", "u1", nil)

	assert.Equal(t, TypePostCreated, receive(t, other).Type)
	assert.Len(t, c.Send, 1)
}
