package models

// ChurchForm is the explicit, fully typed view of a church profile as edited
// in the admin dashboard. Workflow operations diff two of these instead of
// merging loosely typed field bags.
type ChurchForm struct {
	Name         string
	Municipality string
	Barangay     string
	Description  string

	Classification HeritageClassification

	FoundingYear         int
	HistoricalBackground string
	Founders             string
	ArchitecturalStyle   string
	ReligiousOrder       string
	HeritageDeclaration  string

	MassSchedules  string
	ContactNumber  string
	Email          string
	OfficeHours    string
	FacebookPage   string
	Coordinates    *Coordinates
	VirtualTour    string
	CoverPhotoKey  string
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Form field names, as exposed to the dashboard and recorded in audit trails
// and staged-change payloads.
const (
	FieldName                 = "name"
	FieldMunicipality         = "municipality"
	FieldBarangay             = "barangay"
	FieldDescription          = "description"
	FieldClassification       = "classification"
	FieldFoundingYear         = "founding_year"
	FieldHistoricalBackground = "historical_background"
	FieldFounders             = "founders"
	FieldArchitecturalStyle   = "architectural_style"
	FieldReligiousOrder       = "religious_order"
	FieldHeritageDeclaration  = "heritage_declaration"
	FieldMassSchedules        = "mass_schedules"
	FieldContactNumber        = "contact_number"
	FieldEmail                = "email"
	FieldOfficeHours          = "office_hours"
	FieldFacebookPage         = "facebook_page"
	FieldCoordinates          = "coordinates"
	FieldVirtualTour          = "virtual_tour"
	FieldCoverPhoto           = "cover_photo"
)

// Form reconstructs the form-equivalent view of the stored record. The
// latitude/longitude scalar columns join back into the coordinates pair and
// the virtual_tour_url storage column maps back to its form field.
func (c Church) Form() ChurchForm {
	form := ChurchForm{
		Name:                 c.Name,
		Municipality:         c.Municipality,
		Barangay:             c.Barangay,
		Description:          c.Description,
		Classification:       c.Classification,
		FoundingYear:         c.FoundingYear,
		HistoricalBackground: c.HistoricalBackground,
		Founders:             c.Founders,
		ArchitecturalStyle:   c.ArchitecturalStyle,
		ReligiousOrder:       c.ReligiousOrder,
		HeritageDeclaration:  c.HeritageDeclaration,
		MassSchedules:        c.MassSchedules,
		ContactNumber:        c.ContactNumber,
		Email:                c.Email,
		OfficeHours:          c.OfficeHours,
		FacebookPage:         c.FacebookPage,
		VirtualTour:          c.VirtualTourUrl,
		CoverPhotoKey:        c.CoverPhotoKey,
	}
	if c.Latitude != nil && c.Longitude != nil {
		form.Coordinates = &Coordinates{Latitude: *c.Latitude, Longitude: *c.Longitude}
	}
	return form
}

func (f ChurchForm) Validate() error {
	if f.Name == "" || f.Municipality == "" || f.Description == "" {
		return ErrMissingRequiredFields
	}
	if f.Classification != "" {
		if _, err := ValidateClassification(string(f.Classification)); err != nil {
			return err
		}
	}
	return nil
}
