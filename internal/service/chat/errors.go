package chat

import "errors"

var (
	ErrNotFound       = errors.New("chat not found")
	ErrNotParticipant = errors.New("not a participant in this chat")
	ErrChatClosed     = errors.New("chat is closed")
	ErrEmptyMessage   = errors.New("message body is empty")
)
