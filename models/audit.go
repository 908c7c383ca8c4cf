package models

import (
	"time"
)

// AuditLogEntry is an immutable record of one action. Created once, never
// mutated or deleted.
type AuditLogEntry struct {
	Id    string
	Actor AuditActor

	Action       AuditAction
	ResourceType string
	ResourceId   string
	ResourceName string

	Changes  []FieldChange
	Metadata map[string]any

	SessionId string
	CreatedAt time.Time
}

// AuditActor snapshots who performed the action at the time it happened.
type AuditActor struct {
	Id        string `json:"id"`
	Role      Role   `json:"role"`
	DioceseId string `json:"diocese_id"`
}

type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

type AuditAction string

const (
	AuditChurchCreated         AuditAction = "church.create"
	AuditChurchUpdated         AuditAction = "church.update"
	AuditChurchApproved        AuditAction = "church.approve"
	AuditChurchForwardHeritage AuditAction = "church.forward_heritage"
	AuditChurchHeritageUpdated AuditAction = "church.heritage_update"
	AuditChurchReclassified    AuditAction = "church.reclassify_non_heritage"
	AuditChurchUnpublished     AuditAction = "church.unpublish"

	AuditAnnouncementPublished AuditAction = "announcement.publish"
	AuditAnnouncementDeleted   AuditAction = "announcement.delete"
)

const (
	AuditResourceChurch       = "church"
	AuditResourceAnnouncement = "announcement"
)

type CreateAuditLogEntryAttributes struct {
	Actor        AuditActor
	Action       AuditAction
	ResourceType string
	ResourceId   string
	ResourceName string
	Changes      []FieldChange
	Metadata     map[string]any
	SessionId    string
}

type AuditLogFilters struct {
	DioceseId    string
	ActorId      string
	Action       AuditAction
	ResourceType string
	ResourceId   string
	From         *time.Time
	To           *time.Time
}
