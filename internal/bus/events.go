package bus

import "fmt"

// InboundMessage is a chat message arriving from any channel that may
// carry scheduling intent.
type InboundMessage struct {
	Channel            string            // source channel name (e.g. "telegram", "cli", "system")
	SenderID           string            // sender identifier
	ChatID             string            // chat/conversation identifier
	Content            string            // text content
	SessionKeyOverride string            // optional override for session routing
	Metadata           map[string]string // arbitrary metadata
}

// SessionKey returns the routing key used as the job's session target.
// Uses SessionKeyOverride if set, otherwise "channel:chatID".
func (m InboundMessage) SessionKey() string {
	if m.SessionKeyOverride != "" {
		return m.SessionKeyOverride
	}
	return fmt.Sprintf("%s:%s", m.Channel, m.ChatID)
}

// OutboundMessage is a reply to be delivered back to a channel, typically
// the rendered result of a scheduling attempt.
type OutboundMessage struct {
	Channel  string            // target channel
	ChatID   string            // target chat
	Content  string            // text content
	Type     string            // "text" or "error"
	Metadata map[string]string // arbitrary metadata
}
