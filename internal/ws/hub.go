package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks which clients belong to which user and chat groups. A user can
// hold several connections (tabs, devices); every one of them gets user-level
// events, and chat events go to whichever connections joined that chat.
type Hub struct {
	mu         sync.RWMutex
	userGroups map[uuid.UUID]map[*Client]struct{}
	chatGroups map[uuid.UUID]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		userGroups: make(map[uuid.UUID]map[*Client]struct{}),
		chatGroups: make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Register adds the client to its user group.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.userGroups[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.userGroups[c.userID] = set
	}
	set[c] = struct{}{}
}

// Unregister drops the client from its user group and every chat group.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.userGroups[c.userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.userGroups, c.userID)
		}
	}
	for chatID, set := range h.chatGroups {
		delete(set, c)
		if len(set) == 0 {
			delete(h.chatGroups, chatID)
		}
	}
}

func (h *Hub) JoinChat(c *Client, chatID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.chatGroups[chatID]
	if !ok {
		set = make(map[*Client]struct{})
		h.chatGroups[chatID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) LeaveChat(c *Client, chatID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.chatGroups[chatID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.chatGroups, chatID)
		}
	}
}

// BroadcastToUser delivers the event to every connection of one user.
// Delivery is at most once; a full or dead connection just misses it.
func (h *Hub) BroadcastToUser(userID uuid.UUID, ev ServerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.userGroups[userID] {
		c.enqueue(data)
	}
}

// BroadcastToChat delivers the event to every connection joined to the chat.
func (h *Hub) BroadcastToChat(chatID uuid.UUID, ev ServerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.chatGroups[chatID] {
		c.enqueue(data)
	}
}

// UserConnections reports how many connections a user currently holds.
func (h *Hub) UserConnections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.userGroups[userID])
}

// ChatMembers reports how many connections joined a chat.
func (h *Hub) ChatMembers(chatID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.chatGroups[chatID])
}
