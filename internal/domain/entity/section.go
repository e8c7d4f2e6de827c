package entity

// SectionName identifies an independently editable grouping of profile fields.
type SectionName string

const (
	SectionPersonal       SectionName = "personal"
	SectionResidency      SectionName = "residency"
	SectionLocation       SectionName = "location"
	SectionProfessional   SectionName = "professional"
	SectionPreferences    SectionName = "preferences"
	SectionSkills         SectionName = "skills"
	SectionMemberships    SectionName = "memberships"
	SectionAdditional     SectionName = "additional"
	SectionEducation      SectionName = "education"
	SectionExperience     SectionName = "experience"
	SectionLanguages      SectionName = "languages"
	SectionCertifications SectionName = "certifications"
	SectionReferences     SectionName = "references"
	SectionLinks          SectionName = "links"
)

// SectionState is the explicit per-section edit lifecycle state. Illegal
// transitions (e.g. Cancel while Saving) are rejected by the usecase layer.
type SectionState string

const (
	SectionViewing SectionState = "viewing"
	SectionEditing SectionState = "editing"
	SectionSaving  SectionState = "saving"
)

// sectionFields maps each section to the canonical fields it owns. Email is
// owned by no section: it is loaded from the authenticated identity and is
// never user-editable.
var sectionFields = map[SectionName][]string{
	SectionPersonal: {
		"firstName", "middleName", "lastName", "phone", "altPhone",
		"dateOfBirth", "gender", "bloodGroup", "community",
	},
	SectionResidency: {
		"nationality", "residentCountry", "currentCity", "postalCode",
		"address", "latitude", "longitude", "workPermit",
	},
	SectionLocation: {
		"preferredLocations", "willingToRelocate", "workLocation", "travelAvailability",
	},
	SectionProfessional: {
		"professionalTitle", "professionalSummary", "yearsExperience",
		"careerLevel", "industry",
	},
	SectionPreferences: {
		"preferredJobTitles", "jobType", "noticePeriod", "currentSalary",
		"expectedSalary", "currencyPreference",
	},
	SectionSkills: {
		"skills", "tools",
	},
	SectionMemberships: {
		"membershipOrg", "membershipType", "membershipDate",
	},
	SectionAdditional: {
		"careerObjectives", "hobbies", "additionalComments", "agreeTerms", "allowContact",
	},
	SectionEducation:      {"education"},
	SectionExperience:     {"experience"},
	SectionLanguages:      {"languages"},
	SectionCertifications: {"certifications"},
	SectionReferences:     {"references"},
	SectionLinks:          {"professionalLinks"},
}

// Sections returns every known section name in a stable order.
func Sections() []SectionName {
	return []SectionName{
		SectionPersonal,
		SectionResidency,
		SectionLocation,
		SectionProfessional,
		SectionPreferences,
		SectionSkills,
		SectionMemberships,
		SectionAdditional,
		SectionEducation,
		SectionExperience,
		SectionLanguages,
		SectionCertifications,
		SectionReferences,
		SectionLinks,
	}
}

// Valid reports whether the section name is known.
func (s SectionName) Valid() bool {
	_, ok := sectionFields[s]

	return ok
}

// Fields returns the canonical field names owned by the section.
func (s SectionName) Fields() []string {
	return sectionFields[s]
}
