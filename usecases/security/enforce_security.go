package security

import (
	"fmt"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

// EnforceSecurity checks the calling actor's role and org unit against the
// resource being touched. Usecases call it before any mutation.
type EnforceSecurity struct {
	Credentials models.Credentials
}

func (e EnforceSecurity) sameDiocese(dioceseId string) error {
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	if e.Credentials.DioceseId != dioceseId {
		return fmt.Errorf("actor does not belong to diocese %s: %w", dioceseId, models.ForbiddenError)
	}
	return nil
}

func (e EnforceSecurity) ReadChurch(church models.Church) error {
	// Published profiles are public, everything else is diocese-scoped.
	if church.Status == models.ChurchApproved {
		return nil
	}
	return e.sameDiocese(church.DioceseId)
}

func (e EnforceSecurity) CreateChurch(dioceseId string) error {
	if err := e.sameDiocese(dioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER, models.PARISH_STAFF:
		return nil
	default:
		return fmt.Errorf("role %s cannot create church records: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) UpdateChurch(church models.Church) error {
	if err := e.sameDiocese(church.DioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER, models.PARISH_STAFF:
		return nil
	default:
		return fmt.Errorf("role %s cannot update church records: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) ReviewChurch(church models.Church) error {
	if err := e.sameDiocese(church.DioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER:
		return nil
	default:
		return fmt.Errorf("role %s cannot review church records: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) HeritageReview(church models.Church) error {
	if err := e.sameDiocese(church.DioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.RESEARCHER:
		return nil
	default:
		return fmt.Errorf("role %s cannot perform heritage review: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) ManageAnnouncements(dioceseId string) error {
	if err := e.sameDiocese(dioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER:
		return nil
	default:
		return fmt.Errorf("role %s cannot manage announcements: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) ModerateFeedback(church models.Church) error {
	if err := e.sameDiocese(church.DioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER, models.PARISH_STAFF:
		return nil
	default:
		return fmt.Errorf("role %s cannot moderate feedback: %w", e.Credentials.Role, models.ForbiddenError)
	}
}

func (e EnforceSecurity) ReadAuditLog(dioceseId string) error {
	if err := e.sameDiocese(dioceseId); err != nil {
		return err
	}
	switch e.Credentials.Role {
	case models.ADMIN, models.REVIEWER:
		return nil
	default:
		return fmt.Errorf("role %s cannot read the audit log: %w", e.Credentials.Role, models.ForbiddenError)
	}
}
