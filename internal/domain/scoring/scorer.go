// Package scoring computes the profile completion percentage. It is pure:
// scoring never mutates the record and can be re-run on every mutation.
package scoring

import (
	"math"
	"strings"

	"talenthub/internal/domain/entity"
)

// TotalUnits is the fixed size of the scoring unit table for this schema
// version. Each unit contributes exactly one point to both numerator and
// denominator.
const TotalUnits = 53

// unit is one scoring slot: a scalar field, one professional link, or one
// array section.
type unit struct {
	name   string
	filled func(*entity.ProfileRecord) bool
}

// units is the authoritative unit table: 10 identity + 8 residency +
// 6 work-location + 5 professional + 6 job-preference + 2 skills +
// 3 membership + 3 additional + 1 terms + 5 array sections + 4 links = 53.
// allowContact is a contact-permission toggle, not a completion unit.
var units = []unit{
	// Identity (10)
	{"firstName", func(p *entity.ProfileRecord) bool { return filledString(p.FirstName) }},
	{"middleName", func(p *entity.ProfileRecord) bool { return filledString(p.MiddleName) }},
	{"lastName", func(p *entity.ProfileRecord) bool { return filledString(p.LastName) }},
	{"email", func(p *entity.ProfileRecord) bool { return filledString(p.Email) }},
	{"phone", func(p *entity.ProfileRecord) bool { return filledString(p.Phone) }},
	{"altPhone", func(p *entity.ProfileRecord) bool { return filledString(p.AltPhone) }},
	{"dateOfBirth", func(p *entity.ProfileRecord) bool { return filledString(p.DateOfBirth) }},
	{"gender", func(p *entity.ProfileRecord) bool { return filledString(p.Gender) }},
	{"bloodGroup", func(p *entity.ProfileRecord) bool { return filledString(p.BloodGroup) }},
	{"community", func(p *entity.ProfileRecord) bool { return filledString(p.Community) }},

	// Residency (8)
	{"nationality", func(p *entity.ProfileRecord) bool { return filledString(p.Nationality) }},
	{"residentCountry", func(p *entity.ProfileRecord) bool { return filledString(p.ResidentCountry) }},
	{"currentCity", func(p *entity.ProfileRecord) bool { return filledString(p.CurrentCity) }},
	{"postalCode", func(p *entity.ProfileRecord) bool { return filledString(p.PostalCode) }},
	{"address", func(p *entity.ProfileRecord) bool { return filledString(p.Address) }},
	{"latitude", func(p *entity.ProfileRecord) bool { return filledString(p.Latitude) }},
	{"longitude", func(p *entity.ProfileRecord) bool { return filledString(p.Longitude) }},
	{"workPermit", func(p *entity.ProfileRecord) bool { return filledString(p.WorkPermit) }},

	// Work-location preference (6: one per slot plus three scalars)
	{"preferredLocation1", preferredLocationUnit(0)},
	{"preferredLocation2", preferredLocationUnit(1)},
	{"preferredLocation3", preferredLocationUnit(2)},
	{"willingToRelocate", func(p *entity.ProfileRecord) bool { return filledString(string(p.WillingToRelocate)) }},
	{"workLocation", func(p *entity.ProfileRecord) bool { return filledString(string(p.WorkLocation)) }},
	{"travelAvailability", func(p *entity.ProfileRecord) bool { return filledString(p.TravelAvailability) }},

	// Professional profile (5)
	{"professionalTitle", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalTitle) }},
	{"professionalSummary", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalSummary) }},
	{"yearsExperience", func(p *entity.ProfileRecord) bool { return filledString(p.YearsExperience) }},
	{"careerLevel", func(p *entity.ProfileRecord) bool { return filledString(p.CareerLevel) }},
	{"industry", func(p *entity.ProfileRecord) bool { return filledString(p.Industry) }},

	// Job preferences (6)
	{"preferredJobTitles", func(p *entity.ProfileRecord) bool { return filledString(p.PreferredJobTitles) }},
	{"jobType", func(p *entity.ProfileRecord) bool { return filledString(p.JobType) }},
	{"noticePeriod", func(p *entity.ProfileRecord) bool { return filledString(p.NoticePeriod) }},
	{"currentSalary", func(p *entity.ProfileRecord) bool { return filledString(p.CurrentSalary) }},
	{"expectedSalary", func(p *entity.ProfileRecord) bool { return filledString(p.ExpectedSalary) }},
	{"currencyPreference", func(p *entity.ProfileRecord) bool { return filledString(p.CurrencyPreference) }},

	// Skills (2)
	{"skills", func(p *entity.ProfileRecord) bool { return len(p.Skills) >= 1 }},
	{"tools", func(p *entity.ProfileRecord) bool { return len(p.Tools) >= 1 }},

	// Memberships (3)
	{"membershipOrg", func(p *entity.ProfileRecord) bool { return filledString(p.MembershipOrg) }},
	{"membershipType", func(p *entity.ProfileRecord) bool { return filledString(p.MembershipType) }},
	{"membershipDate", func(p *entity.ProfileRecord) bool { return filledString(p.MembershipDate) }},

	// Additional (3 text + terms)
	{"careerObjectives", func(p *entity.ProfileRecord) bool { return filledString(p.CareerObjectives) }},
	{"hobbies", func(p *entity.ProfileRecord) bool { return filledString(p.Hobbies) }},
	{"additionalComments", func(p *entity.ProfileRecord) bool { return filledString(p.AdditionalComments) }},
	{"agreeTerms", func(p *entity.ProfileRecord) bool { return p.AgreeTerms }},

	// Array sections (5): filled iff length >= 1, contents never inspected.
	{"education", func(p *entity.ProfileRecord) bool { return len(p.Education) >= 1 }},
	{"experience", func(p *entity.ProfileRecord) bool { return len(p.Experience) >= 1 }},
	{"languages", func(p *entity.ProfileRecord) bool { return len(p.Languages) >= 1 }},
	{"certifications", func(p *entity.ProfileRecord) bool { return len(p.Certifications) >= 1 }},
	{"references", func(p *entity.ProfileRecord) bool { return len(p.References) >= 1 }},

	// Professional links (4, counted individually)
	{"linkedin", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalLinks.LinkedIn) }},
	{"github", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalLinks.GitHub) }},
	{"portfolio", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalLinks.Portfolio) }},
	{"website", func(p *entity.ProfileRecord) bool { return filledString(p.ProfessionalLinks.Website) }},
}

// Score returns the completion percentage in [0,100].
func Score(rec *entity.ProfileRecord) int {
	if rec == nil {
		return 0
	}

	filled := 0
	for _, u := range units {
		if u.filled(rec) {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(TotalUnits) * 100))
}

// FilledUnits returns how many of the scoring units are filled. Exposed for
// UIs that render "N of M sections complete" hints.
func FilledUnits(rec *entity.ProfileRecord) int {
	if rec == nil {
		return 0
	}

	filled := 0
	for _, u := range units {
		if u.filled(rec) {
			filled++
		}
	}

	return filled
}

// filledString reports whether a scalar value counts toward completion:
// non-empty after trimming and not a stray "undefined"/"null" literal.
func filledString(s string) bool {
	s = strings.TrimSpace(s)

	return s != "" && s != "undefined" && s != "null"
}

func preferredLocationUnit(slot int) func(*entity.ProfileRecord) bool {
	return func(p *entity.ProfileRecord) bool {
		return len(p.PreferredLocations) > slot && filledString(p.PreferredLocations[slot])
	}
}
