package alias

import (
	"encoding/json"
	"testing"

	"talenthub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireRoundTrip pushes a fan-out payload through JSON, the way it actually
// travels to and from the backend, and normalizes the result.
func wireRoundTrip(t *testing.T, rec *entity.ProfileRecord) *entity.ProfileRecord {
	t.Helper()

	payload, err := json.Marshal(Denormalize(rec))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))

	return Normalize(raw)
}

func TestNormalize_CanonicalWinsOverAlias(t *testing.T) {
	rec := Normalize(map[string]any{
		"phone":       "0111",
		"phoneNumber": "0222",
	})
	assert.Equal(t, "0111", rec.Phone)

	rec = Normalize(map[string]any{"phoneNumber": "0222"})
	assert.Equal(t, "0222", rec.Phone)

	// Later aliases only apply when earlier keys are absent or empty.
	rec = Normalize(map[string]any{
		"phone":  "",
		"mobile": "0333",
	})
	assert.Equal(t, "0333", rec.Phone)
}

func TestNormalize_LegacyKeyNames(t *testing.T) {
	rec := Normalize(map[string]any{
		"last_name":      "Riley",
		"dob":            "1990-04-01",
		"citizenship":    "IE",
		"skillsList":     "Go, SQL , ,Kubernetes",
		"workExperience": []any{map[string]any{"title": "Engineer", "employer": "Acme"}},
	})

	assert.Equal(t, "Riley", rec.LastName)
	assert.Equal(t, "1990-04-01", rec.DateOfBirth)
	assert.Equal(t, "IE", rec.Nationality)
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, rec.Skills)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "Engineer", rec.Experience[0].JobTitle)
	assert.Equal(t, "Acme", rec.Experience[0].Company)
}

func TestNormalize_MalformedValuesDegradeGracefully(t *testing.T) {
	rec := Normalize(map[string]any{
		"firstName":  []any{"not", "a", "string"},
		"agreeTerms": "yes",
		"skills":     42.0,
		"education":  "corrupted",
		"languages":  []any{"not-a-map", map[string]any{"lang": "French", "level": "B2"}},
	})

	assert.Empty(t, rec.FirstName)
	assert.True(t, rec.AgreeTerms)
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Education)
	require.Len(t, rec.Languages, 1)
	assert.Equal(t, "French", rec.Languages[0].Language)
	assert.Equal(t, "B2", rec.Languages[0].Proficiency)
}

func TestNormalize_UndefinedLiteralsTreatedAsEmpty(t *testing.T) {
	rec := Normalize(map[string]any{
		"firstName": "undefined",
		"lastName":  "null",
		"phone":     "  0777  ",
	})

	assert.Empty(t, rec.FirstName)
	assert.Empty(t, rec.LastName)
	assert.Equal(t, "0777", rec.Phone)
}

func TestNormalize_UnknownEnumValuesDegrade(t *testing.T) {
	rec := Normalize(map[string]any{
		"willingToRelocate": "maybe-later",
		"workLocation":      "hybrid",
	})

	assert.Empty(t, string(rec.WillingToRelocate))
	assert.Equal(t, entity.WorkHybrid, rec.WorkLocation)
}

func TestNormalize_PreferredLocationSlots(t *testing.T) {
	// Legacy numbered slots assemble into the canonical list, gaps skipped.
	rec := Normalize(map[string]any{
		"preferredLocation1": "Dublin",
		"preferredLocation2": "",
		"preferredLocation3": "Cork",
	})
	assert.Equal(t, []string{"Dublin", "Cork"}, rec.PreferredLocations)

	// The canonical array wins over slots and is capped at three entries.
	rec = Normalize(map[string]any{
		"preferredLocations": []any{"A", "B", "C", "D"},
		"preferredLocation1": "ignored",
	})
	assert.Equal(t, []string{"A", "B", "C"}, rec.PreferredLocations)
}

func TestNormalize_CurrentJobClearsEndDate(t *testing.T) {
	rec := Normalize(map[string]any{
		"experience": []any{map[string]any{
			"jobTitle":   "Engineer",
			"endDate":    "2024-01-01",
			"currentJob": true,
		}},
	})

	require.Len(t, rec.Experience, 1)
	assert.True(t, rec.Experience[0].CurrentJob)
	assert.Empty(t, rec.Experience[0].EndDate)
}

func TestDenormalize_FansOutToEveryAlias(t *testing.T) {
	rec := entity.NewProfileRecord()
	rec.Phone = "0555"
	rec.Skills = []string{"Go", "SQL"}
	rec.PreferredLocations = []string{"Dublin"}

	out := Denormalize(rec)

	assert.Equal(t, "0555", out["phone"])
	assert.Equal(t, "0555", out["phoneNumber"])
	assert.Equal(t, "0555", out["mobile"])

	assert.Equal(t, []string{"Go", "SQL"}, out["skills"])
	assert.Equal(t, []string{"Go", "SQL"}, out["skillSet"])
	assert.Equal(t, "Go, SQL", out["skillsList"])

	assert.Equal(t, []string{"Dublin"}, out["preferredLocations"])
	assert.Equal(t, "Dublin", out["preferredLocation1"])
	assert.Equal(t, "", out["preferredLocation2"])
	assert.Equal(t, "", out["preferredLocation3"])
}

func TestDenormalize_FansOutInsideEntries(t *testing.T) {
	rec := entity.NewProfileRecord()
	rec.Experience = []entity.ExperienceEntry{{
		JobTitle: "Engineer", Company: "Acme", StartDate: "2020-01", CurrentJob: true,
	}}

	out := Denormalize(rec)

	entries, ok := out["workExperience"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0]["jobTitle"])
	assert.Equal(t, "Engineer", entries[0]["title"])
	assert.Equal(t, "Engineer", entries[0]["position"])
	assert.Equal(t, true, entries[0]["isCurrent"])
	assert.Equal(t, "", entries[0]["endDate"])
}

func TestRoundTrip_PreservesCanonicalRecord(t *testing.T) {
	rec := entity.NewProfileRecord()
	rec.FirstName = "Alex"
	rec.LastName = "Riley"
	rec.Email = "alex@example.com"
	rec.Phone = "0555"
	rec.Nationality = "IE"
	rec.CurrentCity = "Dublin"
	rec.Latitude = "53.35"
	rec.Longitude = "-6.26"
	rec.WillingToRelocate = entity.RelocateConditional
	rec.WorkLocation = entity.WorkRemote
	rec.PreferredLocations = []string{"Dublin", "Cork"}
	rec.ProfessionalTitle = "Engineer"
	rec.Skills = []string{"Go", "SQL"}
	rec.Tools = []string{"Docker"}
	rec.AgreeTerms = true
	rec.Education = []entity.EducationEntry{{Degree: "BSc", Institution: "TCD", StartYear: "2008", EndYear: "2012"}}
	rec.Experience = []entity.ExperienceEntry{{JobTitle: "Engineer", Company: "Acme", StartDate: "2020-01", CurrentJob: true}}
	rec.Languages = []entity.LanguageEntry{{Language: "English", Proficiency: "native"}}
	rec.Certifications = []entity.CertificationEntry{{Name: "CKA", Issuer: "CNCF", Year: "2023"}}
	rec.References = []entity.ReferenceEntry{{Name: "Sam", Relationship: "manager", Email: "sam@example.com"}}
	rec.ProfessionalLinks = entity.ProfessionalLinks{LinkedIn: "li", GitHub: "gh"}

	assert.Equal(t, rec, wireRoundTrip(t, rec))
}

func TestMergeSection_CopiesOnlyOwnedFields(t *testing.T) {
	dst := entity.NewProfileRecord()
	dst.FirstName = "Old"
	dst.Nationality = "IE"
	dst.Email = "keep@example.com"

	src := entity.NewProfileRecord()
	src.FirstName = "New"
	src.Nationality = "FR"
	src.Email = "attacker@example.com"

	MergeSection(dst, src, entity.SectionPersonal)

	assert.Equal(t, "New", dst.FirstName)
	assert.Equal(t, "IE", dst.Nationality)
	// Email belongs to no section and can never be merged in.
	assert.Equal(t, "keep@example.com", dst.Email)
}

func TestMergeSection_PresentButEmptyClears(t *testing.T) {
	dst := entity.NewProfileRecord()
	dst.MiddleName = "Quinn"
	dst.Phone = "0555"

	src := entity.NewProfileRecord()
	src.Phone = "0999"

	MergeSection(dst, src, entity.SectionPersonal)

	assert.Empty(t, dst.MiddleName)
	assert.Equal(t, "0999", dst.Phone)
}

func TestMergeSection_ListCopiesAreIndependent(t *testing.T) {
	dst := entity.NewProfileRecord()
	src := entity.NewProfileRecord()
	src.Skills = []string{"Go"}

	MergeSection(dst, src, entity.SectionSkills)

	src.Skills[0] = "mutated"
	assert.Equal(t, []string{"Go"}, dst.Skills)
}
