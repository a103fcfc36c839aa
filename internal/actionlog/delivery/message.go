package delivery

import (
	"time"

	"sg-console-srv/internal/actionlog"
)

// ActionMessage is the JSON body of an action event on the event bus, whichever transport
// carries it.
type ActionMessage struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	ProjectID    string    `json:"project_id,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewActionMessage(e actionlog.ActionEvent) ActionMessage {
	return ActionMessage{
		ID:           e.ID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		ProjectID:    e.ProjectID,
		UserID:       e.UserID,
		CreatedAt:    e.CreatedAt,
	}
}

func (m ActionMessage) ToEvent() actionlog.ActionEvent {
	return actionlog.ActionEvent{
		ID:           m.ID,
		Action:       m.Action,
		ResourceType: m.ResourceType,
		ResourceID:   m.ResourceID,
		ProjectID:    m.ProjectID,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}
