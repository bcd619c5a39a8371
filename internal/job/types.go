package job

import "time"

// Type says whether a job fires once and cleans itself up, or repeats until
// cancelled.
type Type string

const (
	TypeOneTime   Type = "one-time"
	TypeRecurring Type = "recurring"
)

// ActionType classifies what the job does when it fires.
type ActionType string

const (
	ActionSystemEvent ActionType = "systemEvent"
	ActionCheck       ActionType = "check"
	ActionReport      ActionType = "report"
	ActionSend        ActionType = "send"
	ActionNotify      ActionType = "notify"
)

// Payload carries the message the runner delivers at trigger time, together
// with the originating text and caller context.
type Payload struct {
	Message      string            `json:"message"`
	OriginalText string            `json:"originalText"`
	Context      map[string]string `json:"context,omitempty"`
}

type Action struct {
	Type    ActionType `json:"type"`
	Payload Payload    `json:"payload"`
}

type Metadata struct {
	Source     string `json:"source"`
	ParsedType string `json:"parsedType"`
	UserID     string `json:"userId,omitempty"`
}

// Spec is the persisted job descriptor. It is owned by the store once
// created and is immutable apart from lifecycle deletion.
type Spec struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Schedule      string    `json:"schedule"` // cron expression
	Type          Type      `json:"type"`
	TargetTime    time.Time `json:"targetTime"`
	Action        Action    `json:"action"`
	SessionTarget string    `json:"sessionTarget,omitempty"`
	Channel       string    `json:"channel,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Metadata      Metadata  `json:"metadata"`
}

// Context is the caller-supplied routing context for a new job.
type Context struct {
	SessionTarget string
	Channel       string
	UserID        string
}
