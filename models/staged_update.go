package models

import (
	"fmt"
	"slices"
	"time"
)

// FieldCategory decides whether an edit to an approved record goes live
// immediately or is staged for re-verification by the museum researcher.
type FieldCategory string

const (
	// FieldDirectPublish fields are operational data (schedules, contact
	// info, non-historical media): safe to apply immediately.
	FieldDirectPublish FieldCategory = "direct_publish"

	// FieldReverificationRequired fields carry the historical and heritage
	// narrative: edits are staged in PendingChanges until reviewed.
	FieldReverificationRequired FieldCategory = "reverification_required"
)

// fieldCategories is the static category table. Every form field is listed.
var fieldCategories = map[string]FieldCategory{
	FieldName:                 FieldReverificationRequired,
	FieldMunicipality:         FieldReverificationRequired,
	FieldBarangay:             FieldReverificationRequired,
	FieldDescription:          FieldReverificationRequired,
	FieldClassification:       FieldReverificationRequired,
	FieldFoundingYear:         FieldReverificationRequired,
	FieldHistoricalBackground: FieldReverificationRequired,
	FieldFounders:             FieldReverificationRequired,
	FieldArchitecturalStyle:   FieldReverificationRequired,
	FieldReligiousOrder:       FieldReverificationRequired,
	FieldHeritageDeclaration:  FieldReverificationRequired,

	FieldMassSchedules: FieldDirectPublish,
	FieldContactNumber: FieldDirectPublish,
	FieldEmail:         FieldDirectPublish,
	FieldOfficeHours:   FieldDirectPublish,
	FieldFacebookPage:  FieldDirectPublish,
	FieldCoordinates:   FieldDirectPublish,
	FieldVirtualTour:   FieldDirectPublish,
	FieldCoverPhoto:    FieldDirectPublish,
}

func CategoryOfField(field string) FieldCategory {
	if cat, ok := fieldCategories[field]; ok {
		return cat
	}
	return FieldReverificationRequired
}

// formFields fixes the diff ordering so audit entries list changes in a
// stable, form-layout order.
var formFields = []string{
	FieldName,
	FieldMunicipality,
	FieldBarangay,
	FieldDescription,
	FieldClassification,
	FieldFoundingYear,
	FieldHistoricalBackground,
	FieldFounders,
	FieldArchitecturalStyle,
	FieldReligiousOrder,
	FieldHeritageDeclaration,
	FieldMassSchedules,
	FieldContactNumber,
	FieldEmail,
	FieldOfficeHours,
	FieldFacebookPage,
	FieldCoordinates,
	FieldVirtualTour,
	FieldCoverPhoto,
}

func (f ChurchForm) fieldValue(field string) any {
	switch field {
	case FieldName:
		return f.Name
	case FieldMunicipality:
		return f.Municipality
	case FieldBarangay:
		return f.Barangay
	case FieldDescription:
		return f.Description
	case FieldClassification:
		return string(f.Classification)
	case FieldFoundingYear:
		return f.FoundingYear
	case FieldHistoricalBackground:
		return f.HistoricalBackground
	case FieldFounders:
		return f.Founders
	case FieldArchitecturalStyle:
		return f.ArchitecturalStyle
	case FieldReligiousOrder:
		return f.ReligiousOrder
	case FieldHeritageDeclaration:
		return f.HeritageDeclaration
	case FieldMassSchedules:
		return f.MassSchedules
	case FieldContactNumber:
		return f.ContactNumber
	case FieldEmail:
		return f.Email
	case FieldOfficeHours:
		return f.OfficeHours
	case FieldFacebookPage:
		return f.FacebookPage
	case FieldCoordinates:
		if f.Coordinates == nil {
			return nil
		}
		return *f.Coordinates
	case FieldVirtualTour:
		return f.VirtualTour
	case FieldCoverPhoto:
		return f.CoverPhotoKey
	default:
		return nil
	}
}

func renderFieldValue(v any) string {
	if v == nil {
		return ""
	}
	switch value := v.(type) {
	case Coordinates:
		return fmt.Sprintf("%f,%f", value.Latitude, value.Longitude)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// FormFieldChange is one entry of the declarative diff between the current
// and the desired form.
type FormFieldChange struct {
	Field    string
	OldValue string
	NewValue string

	// NewRaw keeps the typed incoming value for the staged-change payload.
	NewRaw any
}

// DiffChurchForms compares the current record's form view with the incoming
// form and returns the changed fields in stable form order.
func DiffChurchForms(current, incoming ChurchForm) []FormFieldChange {
	var changes []FormFieldChange
	for _, field := range formFields {
		oldValue := current.fieldValue(field)
		newValue := incoming.fieldValue(field)
		if renderFieldValue(oldValue) == renderFieldValue(newValue) {
			continue
		}
		changes = append(changes, FormFieldChange{
			Field:    field,
			OldValue: renderFieldValue(oldValue),
			NewValue: renderFieldValue(newValue),
			NewRaw:   newValue,
		})
	}
	return changes
}

// FieldCategorization partitions a diff into fields safe to apply immediately
// and fields requiring museum re-verification.
type FieldCategorization struct {
	DirectPublish          []FormFieldChange
	ReverificationRequired []FormFieldChange
}

func CategorizeChanges(changes []FormFieldChange) FieldCategorization {
	var out FieldCategorization
	for _, change := range changes {
		switch CategoryOfField(change.Field) {
		case FieldDirectPublish:
			out.DirectPublish = append(out.DirectPublish, change)
		default:
			out.ReverificationRequired = append(out.ReverificationRequired, change)
		}
	}
	return out
}

func FieldNames(changes []FormFieldChange) []string {
	names := make([]string, len(changes))
	for i, change := range changes {
		names[i] = change.Field
	}
	return names
}

// StagedUpdateResult reports how an update to an approved record was split.
type StagedUpdateResult struct {
	DirectlyPublished []string
	StagedForReview   []string
	HasPendingChanges bool
}

// MergePendingChanges accumulates staged edits on top of any previously
// staged but not yet reviewed ones. Changed field names are a set union, a
// repeated edit to the same field overwrites only its staged value.
func MergePendingChanges(
	existing *PendingChanges,
	staged []FormFieldChange,
	submittedBy string,
	now time.Time,
) *PendingChanges {
	merged := &PendingChanges{
		Data:        map[string]any{},
		SubmittedAt: now,
		SubmittedBy: submittedBy,
	}
	if existing != nil {
		for field, value := range existing.Data {
			merged.Data[field] = value
		}
		merged.ChangedFields = slices.Clone(existing.ChangedFields)
	}
	for _, change := range staged {
		merged.Data[change.Field] = change.NewRaw
		if !slices.Contains(merged.ChangedFields, change.Field) {
			merged.ChangedFields = append(merged.ChangedFields, change.Field)
		}
	}
	return merged
}

// ApplyFormFields writes the listed form fields of the incoming form onto a
// sparse update, remapping form names to storage names: the coordinates pair
// splits into the latitude and longitude columns and the virtual tour form
// field maps to virtual_tour_url.
func ApplyFormFields(attrs *UpdateChurchAttributes, form ChurchForm, fields []string) {
	for _, field := range fields {
		switch field {
		case FieldName:
			attrs.Name = &form.Name
		case FieldMunicipality:
			attrs.Municipality = &form.Municipality
		case FieldBarangay:
			attrs.Barangay = &form.Barangay
		case FieldDescription:
			attrs.Description = &form.Description
		case FieldClassification:
			attrs.Classification = &form.Classification
		case FieldFoundingYear:
			attrs.FoundingYear = &form.FoundingYear
		case FieldHistoricalBackground:
			attrs.HistoricalBackground = &form.HistoricalBackground
		case FieldFounders:
			attrs.Founders = &form.Founders
		case FieldArchitecturalStyle:
			attrs.ArchitecturalStyle = &form.ArchitecturalStyle
		case FieldReligiousOrder:
			attrs.ReligiousOrder = &form.ReligiousOrder
		case FieldHeritageDeclaration:
			attrs.HeritageDeclaration = &form.HeritageDeclaration
		case FieldMassSchedules:
			attrs.MassSchedules = &form.MassSchedules
		case FieldContactNumber:
			attrs.ContactNumber = &form.ContactNumber
		case FieldEmail:
			attrs.Email = &form.Email
		case FieldOfficeHours:
			attrs.OfficeHours = &form.OfficeHours
		case FieldFacebookPage:
			attrs.FacebookPage = &form.FacebookPage
		case FieldCoordinates:
			if form.Coordinates != nil {
				attrs.Latitude = &form.Coordinates.Latitude
				attrs.Longitude = &form.Coordinates.Longitude
			}
		case FieldVirtualTour:
			attrs.VirtualTourUrl = &form.VirtualTour
		case FieldCoverPhoto:
			attrs.CoverPhotoKey = &form.CoverPhotoKey
		}
	}
}
