package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBAuditLogEntry struct {
	Id           string          `db:"id"`
	Actor        json.RawMessage `db:"actor"`
	Action       string          `db:"action"`
	ResourceType string          `db:"resource_type"`
	ResourceId   string          `db:"resource_id"`
	ResourceName string          `db:"resource_name"`
	Changes      json.RawMessage `db:"changes"`
	Metadata     json.RawMessage `db:"metadata"`
	SessionId    string          `db:"session_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

const TABLE_AUDIT_LOG = "audit_log"

var SelectAuditLogColumns = utils.ColumnList[DBAuditLogEntry]()

func AdaptAuditLogEntry(db DBAuditLogEntry) (models.AuditLogEntry, error) {
	entry := models.AuditLogEntry{
		Id:           db.Id,
		Action:       models.AuditAction(db.Action),
		ResourceType: db.ResourceType,
		ResourceId:   db.ResourceId,
		ResourceName: db.ResourceName,
		SessionId:    db.SessionId,
		CreatedAt:    db.CreatedAt,
	}

	if err := json.Unmarshal(db.Actor, &entry.Actor); err != nil {
		return models.AuditLogEntry{}, errors.Wrap(err, "failed to unmarshal audit actor")
	}
	if len(db.Changes) > 0 {
		if err := json.Unmarshal(db.Changes, &entry.Changes); err != nil {
			return models.AuditLogEntry{}, errors.Wrap(err, "failed to unmarshal audit changes")
		}
	}
	if len(db.Metadata) > 0 {
		if err := json.Unmarshal(db.Metadata, &entry.Metadata); err != nil {
			return models.AuditLogEntry{}, errors.Wrap(err, "failed to unmarshal audit metadata")
		}
	}

	return entry, nil
}
