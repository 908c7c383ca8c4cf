package dto

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIAuditLogEntry struct {
	Id    string        `json:"id"`
	Actor APIAuditActor `json:"actor"`

	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceId   string `json:"resource_id"`
	ResourceName string `json:"resource_name,omitempty"`

	Changes  []models.FieldChange `json:"changes,omitempty"`
	Metadata map[string]any       `json:"metadata,omitempty"`

	SessionId string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type APIAuditActor struct {
	Id        string `json:"id"`
	Role      string `json:"role"`
	DioceseId string `json:"diocese_id"`
}

func AdaptAuditLogEntryDto(entry models.AuditLogEntry) APIAuditLogEntry {
	return APIAuditLogEntry{
		Id: entry.Id,
		Actor: APIAuditActor{
			Id:        entry.Actor.Id,
			Role:      string(entry.Actor.Role),
			DioceseId: entry.Actor.DioceseId,
		},
		Action:       string(entry.Action),
		ResourceType: entry.ResourceType,
		ResourceId:   entry.ResourceId,
		ResourceName: entry.ResourceName,
		Changes:      entry.Changes,
		Metadata:     entry.Metadata,
		SessionId:    entry.SessionId,
		CreatedAt:    entry.CreatedAt,
	}
}
