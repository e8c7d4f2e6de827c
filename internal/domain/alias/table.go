package alias

import "talenthub/internal/domain/entity"

// The alias tables below are data, not logic: adding a newly discovered legacy
// key name for a field means appending to an alias list here. For every field
// the canonical key is consulted first, then aliases in the listed precedence
// order; on write the value fans out to the canonical key and every alias.

// stringField describes one canonical scalar field.
type stringField struct {
	canonical string
	aliases   []string
	get       func(*entity.ProfileRecord) string
	set       func(*entity.ProfileRecord, string)
}

// boolField describes one canonical boolean field.
type boolField struct {
	canonical string
	aliases   []string
	get       func(*entity.ProfileRecord) bool
	set       func(*entity.ProfileRecord, bool)
}

// listField describes a canonical string-list field. The canonical form is the
// array; joinedAliases receive a comma-joined string on write because older
// backend revisions stored these lists as flat text.
type listField struct {
	canonical     string
	aliases       []string
	joinedAliases []string
	get           func(*entity.ProfileRecord) []string
	set           func(*entity.ProfileRecord, []string)
}

var stringFields = []stringField{
	// Identity
	{
		canonical: "firstName",
		aliases:   []string{"first_name", "fname"},
		get:       func(p *entity.ProfileRecord) string { return p.FirstName },
		set:       func(p *entity.ProfileRecord, v string) { p.FirstName = v },
	},
	{
		canonical: "middleName",
		aliases:   []string{"middle_name", "mname"},
		get:       func(p *entity.ProfileRecord) string { return p.MiddleName },
		set:       func(p *entity.ProfileRecord, v string) { p.MiddleName = v },
	},
	{
		canonical: "lastName",
		aliases:   []string{"last_name", "lname", "surname"},
		get:       func(p *entity.ProfileRecord) string { return p.LastName },
		set:       func(p *entity.ProfileRecord, v string) { p.LastName = v },
	},
	{
		canonical: "email",
		aliases:   []string{"emailAddress", "userEmail"},
		get:       func(p *entity.ProfileRecord) string { return p.Email },
		set:       func(p *entity.ProfileRecord, v string) { p.Email = v },
	},
	{
		canonical: "phone",
		aliases:   []string{"phoneNumber", "mobile"},
		get:       func(p *entity.ProfileRecord) string { return p.Phone },
		set:       func(p *entity.ProfileRecord, v string) { p.Phone = v },
	},
	{
		canonical: "altPhone",
		aliases:   []string{"alternatePhone", "altPhoneNumber"},
		get:       func(p *entity.ProfileRecord) string { return p.AltPhone },
		set:       func(p *entity.ProfileRecord, v string) { p.AltPhone = v },
	},
	{
		canonical: "dateOfBirth",
		aliases:   []string{"dob", "birthDate"},
		get:       func(p *entity.ProfileRecord) string { return p.DateOfBirth },
		set:       func(p *entity.ProfileRecord, v string) { p.DateOfBirth = v },
	},
	{
		canonical: "gender",
		aliases:   []string{"sex"},
		get:       func(p *entity.ProfileRecord) string { return p.Gender },
		set:       func(p *entity.ProfileRecord, v string) { p.Gender = v },
	},
	{
		canonical: "bloodGroup",
		aliases:   []string{"blood_group", "bloodType"},
		get:       func(p *entity.ProfileRecord) string { return p.BloodGroup },
		set:       func(p *entity.ProfileRecord, v string) { p.BloodGroup = v },
	},
	{
		canonical: "community",
		aliases:   []string{"communityName"},
		get:       func(p *entity.ProfileRecord) string { return p.Community },
		set:       func(p *entity.ProfileRecord, v string) { p.Community = v },
	},

	// Residency
	{
		canonical: "nationality",
		aliases:   []string{"citizenship"},
		get:       func(p *entity.ProfileRecord) string { return p.Nationality },
		set:       func(p *entity.ProfileRecord, v string) { p.Nationality = v },
	},
	{
		canonical: "residentCountry",
		aliases:   []string{"countryOfResidence", "residenceCountry"},
		get:       func(p *entity.ProfileRecord) string { return p.ResidentCountry },
		set:       func(p *entity.ProfileRecord, v string) { p.ResidentCountry = v },
	},
	{
		canonical: "currentCity",
		aliases:   []string{"city", "currentLocation"},
		get:       func(p *entity.ProfileRecord) string { return p.CurrentCity },
		set:       func(p *entity.ProfileRecord, v string) { p.CurrentCity = v },
	},
	{
		canonical: "postalCode",
		aliases:   []string{"zipCode", "pincode"},
		get:       func(p *entity.ProfileRecord) string { return p.PostalCode },
		set:       func(p *entity.ProfileRecord, v string) { p.PostalCode = v },
	},
	{
		canonical: "address",
		aliases:   []string{"streetAddress", "fullAddress"},
		get:       func(p *entity.ProfileRecord) string { return p.Address },
		set:       func(p *entity.ProfileRecord, v string) { p.Address = v },
	},
	{
		canonical: "latitude",
		aliases:   []string{"lat"},
		get:       func(p *entity.ProfileRecord) string { return p.Latitude },
		set:       func(p *entity.ProfileRecord, v string) { p.Latitude = v },
	},
	{
		canonical: "longitude",
		aliases:   []string{"lng", "lon"},
		get:       func(p *entity.ProfileRecord) string { return p.Longitude },
		set:       func(p *entity.ProfileRecord, v string) { p.Longitude = v },
	},
	{
		canonical: "workPermit",
		aliases:   []string{"workAuthorization"},
		get:       func(p *entity.ProfileRecord) string { return p.WorkPermit },
		set:       func(p *entity.ProfileRecord, v string) { p.WorkPermit = v },
	},

	// Work-location preference (enum fields degrade to empty on unknown values)
	{
		canonical: "willingToRelocate",
		aliases:   []string{"relocate", "relocation"},
		get:       func(p *entity.ProfileRecord) string { return string(p.WillingToRelocate) },
		set: func(p *entity.ProfileRecord, v string) {
			p.WillingToRelocate = parseRelocationChoice(v)
		},
	},
	{
		canonical: "workLocation",
		aliases:   []string{"workMode", "workplaceType"},
		get:       func(p *entity.ProfileRecord) string { return string(p.WorkLocation) },
		set: func(p *entity.ProfileRecord, v string) {
			p.WorkLocation = parseWorkLocationMode(v)
		},
	},
	{
		canonical: "travelAvailability",
		aliases:   []string{"travelWillingness"},
		get:       func(p *entity.ProfileRecord) string { return p.TravelAvailability },
		set:       func(p *entity.ProfileRecord, v string) { p.TravelAvailability = v },
	},

	// Professional profile
	{
		canonical: "professionalTitle",
		aliases:   []string{"currentTitle", "designation"},
		get:       func(p *entity.ProfileRecord) string { return p.ProfessionalTitle },
		set:       func(p *entity.ProfileRecord, v string) { p.ProfessionalTitle = v },
	},
	{
		canonical: "professionalSummary",
		aliases:   []string{"summary", "aboutMe"},
		get:       func(p *entity.ProfileRecord) string { return p.ProfessionalSummary },
		set:       func(p *entity.ProfileRecord, v string) { p.ProfessionalSummary = v },
	},
	{
		canonical: "yearsExperience",
		aliases:   []string{"experienceYears", "totalExperience"},
		get:       func(p *entity.ProfileRecord) string { return p.YearsExperience },
		set:       func(p *entity.ProfileRecord, v string) { p.YearsExperience = v },
	},
	{
		canonical: "careerLevel",
		aliases:   []string{"seniority"},
		get:       func(p *entity.ProfileRecord) string { return p.CareerLevel },
		set:       func(p *entity.ProfileRecord, v string) { p.CareerLevel = v },
	},
	{
		canonical: "industry",
		aliases:   []string{"industryType"},
		get:       func(p *entity.ProfileRecord) string { return p.Industry },
		set:       func(p *entity.ProfileRecord, v string) { p.Industry = v },
	},

	// Job preferences
	{
		canonical: "preferredJobTitles",
		aliases:   []string{"desiredJobTitles", "targetRoles"},
		get:       func(p *entity.ProfileRecord) string { return p.PreferredJobTitles },
		set:       func(p *entity.ProfileRecord, v string) { p.PreferredJobTitles = v },
	},
	{
		canonical: "jobType",
		aliases:   []string{"employmentType"},
		get:       func(p *entity.ProfileRecord) string { return p.JobType },
		set:       func(p *entity.ProfileRecord, v string) { p.JobType = v },
	},
	{
		canonical: "noticePeriod",
		aliases:   []string{"noticeDuration"},
		get:       func(p *entity.ProfileRecord) string { return p.NoticePeriod },
		set:       func(p *entity.ProfileRecord, v string) { p.NoticePeriod = v },
	},
	{
		canonical: "currentSalary",
		aliases:   []string{"presentSalary"},
		get:       func(p *entity.ProfileRecord) string { return p.CurrentSalary },
		set:       func(p *entity.ProfileRecord, v string) { p.CurrentSalary = v },
	},
	{
		canonical: "expectedSalary",
		aliases:   []string{"desiredSalary", "salaryExpectation"},
		get:       func(p *entity.ProfileRecord) string { return p.ExpectedSalary },
		set:       func(p *entity.ProfileRecord, v string) { p.ExpectedSalary = v },
	},
	{
		canonical: "currencyPreference",
		aliases:   []string{"salaryCurrency", "currency"},
		get:       func(p *entity.ProfileRecord) string { return p.CurrencyPreference },
		set:       func(p *entity.ProfileRecord, v string) { p.CurrencyPreference = v },
	},

	// Memberships
	{
		canonical: "membershipOrg",
		aliases:   []string{"membershipOrganization", "professionalBody"},
		get:       func(p *entity.ProfileRecord) string { return p.MembershipOrg },
		set:       func(p *entity.ProfileRecord, v string) { p.MembershipOrg = v },
	},
	{
		canonical: "membershipType",
		aliases:   []string{"memberType"},
		get:       func(p *entity.ProfileRecord) string { return p.MembershipType },
		set:       func(p *entity.ProfileRecord, v string) { p.MembershipType = v },
	},
	{
		canonical: "membershipDate",
		aliases:   []string{"memberSince"},
		get:       func(p *entity.ProfileRecord) string { return p.MembershipDate },
		set:       func(p *entity.ProfileRecord, v string) { p.MembershipDate = v },
	},

	// Additional
	{
		canonical: "careerObjectives",
		aliases:   []string{"objectives", "careerGoals"},
		get:       func(p *entity.ProfileRecord) string { return p.CareerObjectives },
		set:       func(p *entity.ProfileRecord, v string) { p.CareerObjectives = v },
	},
	{
		canonical: "hobbies",
		aliases:   []string{"interests"},
		get:       func(p *entity.ProfileRecord) string { return p.Hobbies },
		set:       func(p *entity.ProfileRecord, v string) { p.Hobbies = v },
	},
	{
		canonical: "additionalComments",
		aliases:   []string{"comments", "additionalInfo"},
		get:       func(p *entity.ProfileRecord) string { return p.AdditionalComments },
		set:       func(p *entity.ProfileRecord, v string) { p.AdditionalComments = v },
	},
}

var boolFields = []boolField{
	{
		canonical: "agreeTerms",
		aliases:   []string{"termsAccepted", "agreedToTerms"},
		get:       func(p *entity.ProfileRecord) bool { return p.AgreeTerms },
		set:       func(p *entity.ProfileRecord, v bool) { p.AgreeTerms = v },
	},
	{
		canonical: "allowContact",
		aliases:   []string{"contactAllowed", "canContact"},
		get:       func(p *entity.ProfileRecord) bool { return p.AllowContact },
		set:       func(p *entity.ProfileRecord, v bool) { p.AllowContact = v },
	},
}

var listFields = []listField{
	{
		canonical:     "skills",
		aliases:       []string{"skillSet", "keySkills"},
		joinedAliases: []string{"skillsList"},
		get:           func(p *entity.ProfileRecord) []string { return p.Skills },
		set:           func(p *entity.ProfileRecord, v []string) { p.Skills = v },
	},
	{
		canonical:     "tools",
		aliases:       []string{"toolsTechnologies", "software"},
		joinedAliases: []string{"toolsList"},
		get:           func(p *entity.ProfileRecord) []string { return p.Tools },
		set:           func(p *entity.ProfileRecord, v []string) { p.Tools = v },
	},
}

// Array section aliases. The first raw key holding an actual array wins;
// anything else degrades to the empty sequence.
var (
	educationAliases      = []string{"education", "educationEntries", "educationHistory"}
	experienceAliases     = []string{"experience", "experienceEntries", "workExperience"}
	languageAliases       = []string{"languages", "languagesKnown", "languageEntries"}
	certificationAliases  = []string{"certifications", "certificationEntries", "certificates"}
	referenceAliases      = []string{"references", "referenceEntries", "referees"}
	linksAliases          = []string{"professionalLinks", "links", "socialLinks"}
	preferredLocAliases   = []string{"preferredLocations", "locationPreferences"}
	preferredLocSlotNames = []string{"preferredLocation1", "preferredLocation2", "preferredLocation3"}
)

// Entry-level alias tables for the array sections.
var educationEntryFields = []entryField{
	{canonical: "degree", aliases: []string{"qualification", "course"}},
	{canonical: "institution", aliases: []string{"school", "university"}},
	{canonical: "fieldOfStudy", aliases: []string{"major", "specialization"}},
	{canonical: "startYear", aliases: []string{"from"}},
	{canonical: "endYear", aliases: []string{"to"}},
	{canonical: "grade", aliases: []string{"gpa", "score"}},
}

var experienceEntryFields = []entryField{
	{canonical: "jobTitle", aliases: []string{"title", "position"}},
	{canonical: "company", aliases: []string{"employer", "organization"}},
	{canonical: "startDate", aliases: []string{"from", "joinDate"}},
	{canonical: "endDate", aliases: []string{"to", "leaveDate"}},
	{canonical: "description", aliases: []string{"responsibilities", "details"}},
}

var experienceCurrentJobAliases = []string{"currentJob", "isCurrent", "currentlyWorking"}

var languageEntryFields = []entryField{
	{canonical: "language", aliases: []string{"name", "lang"}},
	{canonical: "proficiency", aliases: []string{"level", "fluency"}},
}

var certificationEntryFields = []entryField{
	{canonical: "name", aliases: []string{"title", "certificationName"}},
	{canonical: "issuer", aliases: []string{"issuedBy", "authority"}},
	{canonical: "year", aliases: []string{"issueYear", "date"}},
}

var referenceEntryFields = []entryField{
	{canonical: "name", aliases: []string{"refName", "referenceName"}},
	{canonical: "relationship", aliases: []string{"relation"}},
	{canonical: "company", aliases: []string{"organization"}},
	{canonical: "phone", aliases: []string{"phoneNumber", "contact"}},
	{canonical: "email", aliases: []string{"emailAddress"}},
}

// entryField is a canonical sub-field of an array section entry.
type entryField struct {
	canonical string
	aliases   []string
}

var linkFields = []entryField{
	{canonical: "linkedin", aliases: []string{"linkedIn", "linkedinUrl"}},
	{canonical: "github", aliases: []string{"gitHub", "githubUrl"}},
	{canonical: "portfolio", aliases: []string{"portfolioUrl"}},
	{canonical: "website", aliases: []string{"personalWebsite", "websiteUrl"}},
}

func parseRelocationChoice(v string) entity.RelocationChoice {
	switch entity.RelocationChoice(v) {
	case entity.RelocateYes, entity.RelocateConditional, entity.RelocateNo:
		return entity.RelocationChoice(v)
	default:
		return ""
	}
}

func parseWorkLocationMode(v string) entity.WorkLocationMode {
	switch entity.WorkLocationMode(v) {
	case entity.WorkOnsite, entity.WorkRemote, entity.WorkHybrid, entity.WorkFlexible:
		return entity.WorkLocationMode(v)
	default:
		return ""
	}
}
