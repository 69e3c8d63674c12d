package dto

// StudentProfilePatch enumerates the optional student profile fields. Only
// non-nil fields are written; each maps to a single column assignment.
type StudentProfilePatch struct {
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	University        *string `json:"university,omitempty"`
	Major             *string `json:"major,omitempty"`
	GraduationYear    *int    `json:"graduation_year,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// Columns maps the provided fields to column assignments
func (p *StudentProfilePatch) Columns() map[string]interface{} {
	set := map[string]interface{}{}
	if p.FirstName != nil {
		set["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		set["last_name"] = *p.LastName
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.University != nil {
		set["university"] = *p.University
	}
	if p.Major != nil {
		set["major"] = *p.Major
	}
	if p.GraduationYear != nil {
		set["graduation_year"] = *p.GraduationYear
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.ProfilePictureURL != nil {
		set["profile_picture_url"] = *p.ProfilePictureURL
	}
	return set
}

// CompanyProfilePatch enumerates the optional company profile fields
type CompanyProfilePatch struct {
	CompanyName    *string `json:"company_name,omitempty"`
	Industry       *string `json:"industry,omitempty"`
	Website        *string `json:"website,omitempty"`
	Location       *string `json:"location,omitempty"`
	CompanySize    *string `json:"company_size,omitempty"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`
	About          *string `json:"about,omitempty"`
}

// Columns maps the provided fields to column assignments
func (p *CompanyProfilePatch) Columns() map[string]interface{} {
	set := map[string]interface{}{}
	if p.CompanyName != nil {
		set["company_name"] = *p.CompanyName
	}
	if p.Industry != nil {
		set["industry"] = *p.Industry
	}
	if p.Website != nil {
		set["website"] = *p.Website
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.CompanySize != nil {
		set["company_size"] = *p.CompanySize
	}
	if p.CompanyLogoURL != nil {
		set["company_logo_url"] = *p.CompanyLogoURL
	}
	if p.About != nil {
		set["about"] = *p.About
	}
	return set
}
