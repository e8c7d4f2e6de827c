// Package alias maps between the canonical ProfileRecord and the alias-mixed
// wire shapes that different backend revisions produced over time. Reads
// collapse every known key name into the canonical field (canonical wins);
// writes fan the canonical value back out under every known key name so any
// backend reader, old or new, can consume the payload.
package alias

import (
	"strconv"
	"strings"

	"talenthub/internal/domain/entity"
)

// Normalize converts a raw alias-mixed payload into the canonical record.
// Malformed values never fail the whole operation: a field that does not meet
// its type expectation degrades to its empty/default value.
func Normalize(raw map[string]any) *entity.ProfileRecord {
	rec := entity.NewProfileRecord()
	if raw == nil {
		return rec
	}

	for _, f := range stringFields {
		f.set(rec, firstString(raw, f.canonical, f.aliases))
	}
	for _, f := range boolFields {
		if v, ok := firstBool(raw, f.canonical, f.aliases); ok {
			f.set(rec, v)
		}
	}
	for _, f := range listFields {
		// Joined-text aliases are readable too; coercion splits them on commas.
		aliases := make([]string, 0, len(f.aliases)+len(f.joinedAliases))
		aliases = append(aliases, f.aliases...)
		aliases = append(aliases, f.joinedAliases...)
		f.set(rec, firstList(raw, f.canonical, aliases))
	}

	rec.PreferredLocations = normalizePreferredLocations(raw)
	rec.Education = normalizeEducation(firstArray(raw, educationAliases))
	rec.Experience = normalizeExperience(firstArray(raw, experienceAliases))
	rec.Languages = normalizeLanguages(firstArray(raw, languageAliases))
	rec.Certifications = normalizeCertifications(firstArray(raw, certificationAliases))
	rec.References = normalizeReferences(firstArray(raw, referenceAliases))
	rec.ProfessionalLinks = normalizeLinks(firstMap(raw, linksAliases))

	return rec
}

// Denormalize produces the fan-out payload for a write: the canonical key and
// every known alias key carry the same value. Comma-joined string forms for
// list fields are derived here, never stored.
func Denormalize(rec *entity.ProfileRecord) map[string]any {
	out := make(map[string]any)
	if rec == nil {
		return out
	}

	for _, f := range stringFields {
		fanOut(out, f.canonical, f.aliases, f.get(rec))
	}
	for _, f := range boolFields {
		fanOut(out, f.canonical, f.aliases, f.get(rec))
	}
	for _, f := range listFields {
		list := f.get(rec)
		if list == nil {
			list = []string{}
		}
		fanOut(out, f.canonical, f.aliases, list)
		for _, k := range f.joinedAliases {
			out[k] = strings.Join(list, ", ")
		}
	}

	denormalizePreferredLocations(out, rec.PreferredLocations)

	fanOutEntries(out, educationAliases, denormalizeEducation(rec.Education))
	fanOutEntries(out, experienceAliases, denormalizeExperience(rec.Experience))
	fanOutEntries(out, languageAliases, denormalizeLanguages(rec.Languages))
	fanOutEntries(out, certificationAliases, denormalizeCertifications(rec.Certifications))
	fanOutEntries(out, referenceAliases, denormalizeReferences(rec.References))

	links := denormalizeLinks(rec.ProfessionalLinks)
	for _, k := range linksAliases {
		out[k] = links
	}

	return out
}

// MergeSection copies the fields owned by section from src into dst. This is
// the single merge path for section drafts: precedence is defined per field by
// the section registry, never by ad hoc map spreading. Email belongs to no
// section and is therefore never merged.
func MergeSection(dst, src *entity.ProfileRecord, section entity.SectionName) {
	for _, canonical := range section.Fields() {
		if copyField, ok := fieldCopiers[canonical]; ok {
			copyField(dst, src)
		}
	}
}

var fieldCopiers = map[string]func(dst, src *entity.ProfileRecord){}

func init() {
	for _, f := range stringFields {
		f := f
		fieldCopiers[f.canonical] = func(dst, src *entity.ProfileRecord) { f.set(dst, f.get(src)) }
	}
	for _, f := range boolFields {
		f := f
		fieldCopiers[f.canonical] = func(dst, src *entity.ProfileRecord) { f.set(dst, f.get(src)) }
	}
	for _, f := range listFields {
		f := f
		fieldCopiers[f.canonical] = func(dst, src *entity.ProfileRecord) {
			f.set(dst, append([]string{}, f.get(src)...))
		}
	}

	fieldCopiers["preferredLocations"] = func(dst, src *entity.ProfileRecord) {
		dst.PreferredLocations = append([]string{}, src.PreferredLocations...)
	}
	fieldCopiers["education"] = func(dst, src *entity.ProfileRecord) {
		dst.Education = append([]entity.EducationEntry{}, src.Education...)
	}
	fieldCopiers["experience"] = func(dst, src *entity.ProfileRecord) {
		dst.Experience = append([]entity.ExperienceEntry{}, src.Experience...)
	}
	fieldCopiers["languages"] = func(dst, src *entity.ProfileRecord) {
		dst.Languages = append([]entity.LanguageEntry{}, src.Languages...)
	}
	fieldCopiers["certifications"] = func(dst, src *entity.ProfileRecord) {
		dst.Certifications = append([]entity.CertificationEntry{}, src.Certifications...)
	}
	fieldCopiers["references"] = func(dst, src *entity.ProfileRecord) {
		dst.References = append([]entity.ReferenceEntry{}, src.References...)
	}
	fieldCopiers["professionalLinks"] = func(dst, src *entity.ProfileRecord) {
		dst.ProfessionalLinks = src.ProfessionalLinks
	}
}

// --- raw value coercion ---

// sanitizeString trims and rejects the literal "undefined"/"null" strings
// that older clients persisted verbatim.
func sanitizeString(s string) string {
	s = strings.TrimSpace(s)
	if s == "undefined" || s == "null" {
		return ""
	}

	return s
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return sanitizeString(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
	case float64:
		return t != 0, true
	}

	return false, false
}

func coerceList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []any:
		list := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceString(item); s != "" {
				list = append(list, s)
			}
		}

		return list, len(list) > 0
	case string:
		parts := strings.Split(t, ",")
		list := make([]string, 0, len(parts))
		for _, part := range parts {
			if s := sanitizeString(part); s != "" {
				list = append(list, s)
			}
		}

		return list, len(list) > 0
	}

	return nil, false
}

// firstString consults the canonical key first, then aliases in precedence
// order, and returns the first present, non-empty value.
func firstString(raw map[string]any, canonical string, aliases []string) string {
	for _, key := range keysOf(canonical, aliases) {
		if v, ok := raw[key]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}

	return ""
}

func firstBool(raw map[string]any, canonical string, aliases []string) (bool, bool) {
	for _, key := range keysOf(canonical, aliases) {
		if v, ok := raw[key]; ok {
			if b, defined := coerceBool(v); defined {
				return b, true
			}
		}
	}

	return false, false
}

func firstList(raw map[string]any, canonical string, aliases []string) []string {
	for _, key := range keysOf(canonical, aliases) {
		if v, ok := raw[key]; ok {
			if list, defined := coerceList(v); defined {
				return list
			}
		}
	}

	return []string{}
}

func firstArray(raw map[string]any, keys []string) []any {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if arr, isArr := v.([]any); isArr {
				return arr
			}
		}
	}

	return nil
}

func firstMap(raw map[string]any, keys []string) map[string]any {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if m, isMap := v.(map[string]any); isMap {
				return m
			}
		}
	}

	return nil
}

func keysOf(canonical string, aliases []string) []string {
	keys := make([]string, 0, len(aliases)+1)
	keys = append(keys, canonical)
	keys = append(keys, aliases...)

	return keys
}

func fanOut(out map[string]any, canonical string, aliases []string, v any) {
	out[canonical] = v
	for _, k := range aliases {
		out[k] = v
	}
}

func fanOutEntries(out map[string]any, keys []string, entries []map[string]any) {
	for _, k := range keys {
		out[k] = entries
	}
}

// --- preferred location slots ---

// normalizePreferredLocations accepts either the canonical array form or the
// legacy numbered slot keys (preferredLocation1..3), capped at three slots.
func normalizePreferredLocations(raw map[string]any) []string {
	for _, key := range preferredLocAliases {
		if v, ok := raw[key]; ok {
			if list, defined := coerceList(v); defined {
				if len(list) > entity.MaxPreferredLocations {
					list = list[:entity.MaxPreferredLocations]
				}

				return list
			}
		}
	}

	slots := make([]string, 0, entity.MaxPreferredLocations)
	for _, key := range preferredLocSlotNames {
		if v, ok := raw[key]; ok {
			if s := coerceString(v); s != "" {
				slots = append(slots, s)
			}
		}
	}

	return slots
}

func denormalizePreferredLocations(out map[string]any, locations []string) {
	if locations == nil {
		locations = []string{}
	}
	for _, key := range preferredLocAliases {
		out[key] = locations
	}
	for i, key := range preferredLocSlotNames {
		if i < len(locations) {
			out[key] = locations[i]
		} else {
			out[key] = ""
		}
	}
}

// --- array section entries ---

func entryString(m map[string]any, fields []entryField, canonical string) string {
	for _, f := range fields {
		if f.canonical != canonical {
			continue
		}

		return firstString(m, f.canonical, f.aliases)
	}

	return ""
}

func entryMaps(raw []any) []map[string]any {
	maps := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			maps = append(maps, m)
		}
	}

	return maps
}

func fanOutEntry(fields []entryField, values map[string]string) map[string]any {
	m := make(map[string]any)
	for _, f := range fields {
		fanOut(m, f.canonical, f.aliases, values[f.canonical])
	}

	return m
}

func normalizeEducation(raw []any) []entity.EducationEntry {
	entries := []entity.EducationEntry{}
	for _, m := range entryMaps(raw) {
		entries = append(entries, entity.EducationEntry{
			Degree:       entryString(m, educationEntryFields, "degree"),
			Institution:  entryString(m, educationEntryFields, "institution"),
			FieldOfStudy: entryString(m, educationEntryFields, "fieldOfStudy"),
			StartYear:    entryString(m, educationEntryFields, "startYear"),
			EndYear:      entryString(m, educationEntryFields, "endYear"),
			Grade:        entryString(m, educationEntryFields, "grade"),
		})
	}

	return entries
}

func denormalizeEducation(entries []entity.EducationEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, fanOutEntry(educationEntryFields, map[string]string{
			"degree":       e.Degree,
			"institution":  e.Institution,
			"fieldOfStudy": e.FieldOfStudy,
			"startYear":    e.StartYear,
			"endYear":      e.EndYear,
			"grade":        e.Grade,
		}))
	}

	return out
}

func normalizeExperience(raw []any) []entity.ExperienceEntry {
	entries := []entity.ExperienceEntry{}
	for _, m := range entryMaps(raw) {
		entry := entity.ExperienceEntry{
			JobTitle:    entryString(m, experienceEntryFields, "jobTitle"),
			Company:     entryString(m, experienceEntryFields, "company"),
			StartDate:   entryString(m, experienceEntryFields, "startDate"),
			EndDate:     entryString(m, experienceEntryFields, "endDate"),
			Description: entryString(m, experienceEntryFields, "description"),
		}
		if b, ok := firstBool(m, experienceCurrentJobAliases[0], experienceCurrentJobAliases[1:]); ok {
			entry.CurrentJob = b
		}
		// An ongoing job has no end date, whatever the stored value claims.
		if entry.CurrentJob {
			entry.EndDate = ""
		}
		entries = append(entries, entry)
	}

	return entries
}

func denormalizeExperience(entries []entity.ExperienceEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		endDate := e.EndDate
		if e.CurrentJob {
			endDate = ""
		}
		m := fanOutEntry(experienceEntryFields, map[string]string{
			"jobTitle":    e.JobTitle,
			"company":     e.Company,
			"startDate":   e.StartDate,
			"endDate":     endDate,
			"description": e.Description,
		})
		fanOut(m, experienceCurrentJobAliases[0], experienceCurrentJobAliases[1:], e.CurrentJob)
		out = append(out, m)
	}

	return out
}

func normalizeLanguages(raw []any) []entity.LanguageEntry {
	entries := []entity.LanguageEntry{}
	for _, m := range entryMaps(raw) {
		entries = append(entries, entity.LanguageEntry{
			Language:    entryString(m, languageEntryFields, "language"),
			Proficiency: entryString(m, languageEntryFields, "proficiency"),
		})
	}

	return entries
}

func denormalizeLanguages(entries []entity.LanguageEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, fanOutEntry(languageEntryFields, map[string]string{
			"language":    e.Language,
			"proficiency": e.Proficiency,
		}))
	}

	return out
}

func normalizeCertifications(raw []any) []entity.CertificationEntry {
	entries := []entity.CertificationEntry{}
	for _, m := range entryMaps(raw) {
		entries = append(entries, entity.CertificationEntry{
			Name:   entryString(m, certificationEntryFields, "name"),
			Issuer: entryString(m, certificationEntryFields, "issuer"),
			Year:   entryString(m, certificationEntryFields, "year"),
		})
	}

	return entries
}

func denormalizeCertifications(entries []entity.CertificationEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, fanOutEntry(certificationEntryFields, map[string]string{
			"name":   e.Name,
			"issuer": e.Issuer,
			"year":   e.Year,
		}))
	}

	return out
}

func normalizeReferences(raw []any) []entity.ReferenceEntry {
	entries := []entity.ReferenceEntry{}
	for _, m := range entryMaps(raw) {
		entries = append(entries, entity.ReferenceEntry{
			Name:         entryString(m, referenceEntryFields, "name"),
			Relationship: entryString(m, referenceEntryFields, "relationship"),
			Company:      entryString(m, referenceEntryFields, "company"),
			Phone:        entryString(m, referenceEntryFields, "phone"),
			Email:        entryString(m, referenceEntryFields, "email"),
		})
	}

	return entries
}

func denormalizeReferences(entries []entity.ReferenceEntry) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, fanOutEntry(referenceEntryFields, map[string]string{
			"name":         e.Name,
			"relationship": e.Relationship,
			"company":      e.Company,
			"phone":        e.Phone,
			"email":        e.Email,
		}))
	}

	return out
}

func normalizeLinks(raw map[string]any) entity.ProfessionalLinks {
	if raw == nil {
		return entity.ProfessionalLinks{}
	}

	return entity.ProfessionalLinks{
		LinkedIn:  entryString(raw, linkFields, "linkedin"),
		GitHub:    entryString(raw, linkFields, "github"),
		Portfolio: entryString(raw, linkFields, "portfolio"),
		Website:   entryString(raw, linkFields, "website"),
	}
}

func denormalizeLinks(links entity.ProfessionalLinks) map[string]any {
	return fanOutEntry(linkFields, map[string]string{
		"linkedin":  links.LinkedIn,
		"github":    links.GitHub,
		"portfolio": links.Portfolio,
		"website":   links.Website,
	})
}
