package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func newTestClient(hub *Hub, userID uuid.UUID, buffer int) *Client {
	return newClient(hub, nil, userID, "patient", clientOptions{sendBuffer: buffer})
}

func receiveEvent(t *testing.T, c *Client) ServerEvent {
	t.Helper()
	select {
	case data := <-c.send:
		var ev ServerEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return ev
	default:
		t.Fatal("expected a queued event")
		return ServerEvent{}
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	a := newTestClient(hub, userID, 4)
	b := newTestClient(hub, userID, 4)

	hub.Register(a)
	hub.Register(b)
	if got := hub.UserConnections(userID); got != 2 {
		t.Fatalf("UserConnections = %d, want 2", got)
	}

	hub.Unregister(a)
	if got := hub.UserConnections(userID); got != 1 {
		t.Fatalf("UserConnections after unregister = %d, want 1", got)
	}

	hub.Unregister(b)
	if got := hub.UserConnections(userID); got != 0 {
		t.Fatalf("UserConnections after both unregister = %d, want 0", got)
	}
}

func TestHubBroadcastToUserReachesAllConnections(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()
	other := uuid.New()

	a := newTestClient(hub, userID, 4)
	b := newTestClient(hub, userID, 4)
	c := newTestClient(hub, other, 4)
	hub.Register(a)
	hub.Register(b)
	hub.Register(c)

	hub.BroadcastToUser(userID, NewError("ping"))

	for _, cl := range []*Client{a, b} {
		ev := receiveEvent(t, cl)
		if ev.Event != EventError {
			t.Errorf("event = %q, want %q", ev.Event, EventError)
		}
	}
	select {
	case <-c.send:
		t.Error("other user should not receive the event")
	default:
	}
}

func TestHubChatGroups(t *testing.T) {
	hub := NewHub()
	chatID := uuid.New()

	member := newTestClient(hub, uuid.New(), 4)
	outsider := newTestClient(hub, uuid.New(), 4)
	hub.Register(member)
	hub.Register(outsider)

	hub.JoinChat(member, chatID)
	if got := hub.ChatMembers(chatID); got != 1 {
		t.Fatalf("ChatMembers = %d, want 1", got)
	}

	hub.BroadcastToChat(chatID, NewError("hello"))
	receiveEvent(t, member)
	select {
	case <-outsider.send:
		t.Error("outsider should not receive chat events")
	default:
	}

	hub.LeaveChat(member, chatID)
	if got := hub.ChatMembers(chatID); got != 0 {
		t.Fatalf("ChatMembers after leave = %d, want 0", got)
	}
}

func TestHubUnregisterLeavesChats(t *testing.T) {
	hub := NewHub()
	chatID := uuid.New()

	c := newTestClient(hub, uuid.New(), 4)
	hub.Register(c)
	hub.JoinChat(c, chatID)

	hub.Unregister(c)
	if got := hub.ChatMembers(chatID); got != 0 {
		t.Fatalf("ChatMembers after unregister = %d, want 0", got)
	}
}

func TestClientSendDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	c := newTestClient(hub, uuid.New(), 1)

	if err := c.Send(NewError("first")); err != nil {
		t.Fatalf("first Send() error = %v", err)
	}
	if err := c.Send(NewError("second")); err != ErrSendBufferFull {
		t.Fatalf("second Send() error = %v, want ErrSendBufferFull", err)
	}
}

func TestClientSendAfterClose(t *testing.T) {
	hub := NewHub()
	c := newTestClient(hub, uuid.New(), 1)

	close(c.done)
	if err := c.Send(NewError("late")); err != ErrClientClosed {
		t.Fatalf("Send() after close error = %v, want ErrClientClosed", err)
	}
}
