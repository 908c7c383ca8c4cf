package models

import "fmt"

type Role string

const (
	ADMIN        Role = "admin"
	REVIEWER     Role = "reviewer"
	RESEARCHER   Role = "researcher"
	PARISH_STAFF Role = "parish_staff"
	NO_ROLE      Role = ""
)

func RoleFrom(s string) (Role, error) {
	switch Role(s) {
	case ADMIN, REVIEWER, RESEARCHER, PARISH_STAFF:
		return Role(s), nil
	default:
		return NO_ROLE, fmt.Errorf("unknown role %q %w", s, BadParameterError)
	}
}

// Credentials identifies the actor behind a request: extracted from the
// bearer token and stored in the request context.
type Credentials struct {
	ActorId   string
	Role      Role
	DioceseId string
}

func (c Credentials) AuditActor() AuditActor {
	return AuditActor{
		Id:        c.ActorId,
		Role:      c.Role,
		DioceseId: c.DioceseId,
	}
}
