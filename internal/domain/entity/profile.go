// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// RelocationChoice expresses how willing a candidate is to relocate for a role.
type RelocationChoice string

const (
	RelocateYes         RelocationChoice = "yes"
	RelocateConditional RelocationChoice = "conditional"
	RelocateNo          RelocationChoice = "no"
)

// WorkLocationMode expresses the preferred working arrangement.
type WorkLocationMode string

const (
	WorkOnsite   WorkLocationMode = "onsite"
	WorkRemote   WorkLocationMode = "remote"
	WorkHybrid   WorkLocationMode = "hybrid"
	WorkFlexible WorkLocationMode = "flexible"
)

// MaxPreferredLocations caps the number of preferred work location slots.
const MaxPreferredLocations = 3

// ProfileRecord is the canonical, de-aliased representation of a candidate
// profile. Every value that historically arrived under several key names is
// held here under exactly one field; the alias package owns the mapping back
// to the wire shapes. All scalar values are strings because they originate
// from free-form form inputs, including latitude/longitude.
type ProfileRecord struct {
	// Identity
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"` // immutable once loaded from the authenticated identity
	Phone       string `json:"phone"`
	AltPhone    string `json:"altPhone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	BloodGroup  string `json:"bloodGroup"`
	Community   string `json:"community"`

	// Residency
	Nationality     string `json:"nationality"`
	ResidentCountry string `json:"residentCountry"`
	CurrentCity     string `json:"currentCity"`
	PostalCode      string `json:"postalCode"`
	Address         string `json:"address"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
	WorkPermit      string `json:"workPermit"`

	// Work-location preference
	PreferredLocations []string         `json:"preferredLocations"` // up to MaxPreferredLocations slots
	WillingToRelocate  RelocationChoice `json:"willingToRelocate"`
	WorkLocation       WorkLocationMode `json:"workLocation"`
	TravelAvailability string           `json:"travelAvailability"`

	// Professional profile
	ProfessionalTitle   string `json:"professionalTitle"`
	ProfessionalSummary string `json:"professionalSummary"`
	YearsExperience     string `json:"yearsExperience"`
	CareerLevel         string `json:"careerLevel"`
	Industry            string `json:"industry"`

	// Job preferences
	PreferredJobTitles string `json:"preferredJobTitles"`
	JobType            string `json:"jobType"`
	NoticePeriod       string `json:"noticePeriod"`
	CurrentSalary      string `json:"currentSalary"`
	ExpectedSalary     string `json:"expectedSalary"`
	CurrencyPreference string `json:"currencyPreference"`

	// Skills
	Skills []string `json:"skills"`
	Tools  []string `json:"tools"`

	// Memberships
	MembershipOrg  string `json:"membershipOrg"`
	MembershipType string `json:"membershipType"`
	MembershipDate string `json:"membershipDate"`

	// Additional
	CareerObjectives   string `json:"careerObjectives"`
	Hobbies            string `json:"hobbies"`
	AdditionalComments string `json:"additionalComments"`
	AgreeTerms         bool   `json:"agreeTerms"`
	AllowContact       bool   `json:"allowContact"`

	// Array sections. Never nil: absent data is the empty slice.
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Languages      []LanguageEntry      `json:"languages"`
	Certifications []CertificationEntry `json:"certifications"`
	References     []ReferenceEntry     `json:"references"`

	ProfessionalLinks ProfessionalLinks `json:"professionalLinks"`
}

// EducationEntry is one row of the education history section.
type EducationEntry struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    string `json:"startYear"`
	EndYear      string `json:"endYear"`
	Grade        string `json:"grade"`
}

// ExperienceEntry is one row of the work experience section.
// CurrentJob forces EndDate to be treated as absent regardless of any stored value.
type ExperienceEntry struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CurrentJob  bool   `json:"currentJob"`
	Description string `json:"description"`
}

// LanguageEntry is one row of the languages section.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// CertificationEntry is one row of the certifications section.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// ReferenceEntry is one row of the references section.
type ReferenceEntry struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Company      string `json:"company"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// ProfessionalLinks is the fixed-key map of public profile URLs.
type ProfessionalLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Website   string `json:"website"`
}

// NewProfileRecord returns an empty record with all array sections initialized,
// never nil.
func NewProfileRecord() *ProfileRecord {
	return &ProfileRecord{
		PreferredLocations: []string{},
		Skills:             []string{},
		Tools:              []string{},
		Education:          []EducationEntry{},
		Experience:         []ExperienceEntry{},
		Languages:          []LanguageEntry{},
		Certifications:     []CertificationEntry{},
		References:         []ReferenceEntry{},
	}
}

// Clone returns a deep copy of the record. Section drafts are clones so that
// local edits never leak into the displayed record before a save completes.
func (p *ProfileRecord) Clone() *ProfileRecord {
	if p == nil {
		return nil
	}

	cp := *p
	cp.PreferredLocations = append([]string{}, p.PreferredLocations...)
	cp.Skills = append([]string{}, p.Skills...)
	cp.Tools = append([]string{}, p.Tools...)
	cp.Education = append([]EducationEntry{}, p.Education...)
	cp.Experience = append([]ExperienceEntry{}, p.Experience...)
	cp.Languages = append([]LanguageEntry{}, p.Languages...)
	cp.Certifications = append([]CertificationEntry{}, p.Certifications...)
	cp.References = append([]ReferenceEntry{}, p.References...)

	return &cp
}

// EnsureArrays replaces any nil array section with the empty slice so the
// "arrays are never null" invariant survives JSON decoding of older payloads.
func (p *ProfileRecord) EnsureArrays() {
	if p.PreferredLocations == nil {
		p.PreferredLocations = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Tools == nil {
		p.Tools = []string{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Languages == nil {
		p.Languages = []LanguageEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []CertificationEntry{}
	}
	if p.References == nil {
		p.References = []ReferenceEntry{}
	}
}
