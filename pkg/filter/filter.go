// Package filter implements the per-section filter predicates. Filters are
// pure and stable: they return the ordered subsequence of records matching
// every supplied criterion, and an unset criterion always matches. Free-text
// criteria use case-insensitive substring containment; categorical criteria
// use case-sensitive exact equality.
package filter

import (
	"strings"

	"tablero.dev/tablero/pkg/catalog"
)

// CourseCriteria filters courses: Query over title+description, Level and
// Modality exact.
type CourseCriteria struct {
	Query    string
	Level    string
	Modality string
}

// Courses applies the criteria in collection order.
func Courses(in []catalog.Course, c CourseCriteria) []catalog.Course {
	out := make([]catalog.Course, 0, len(in))
	for _, course := range in {
		if !textMatch(c.Query, course.Title, course.Description) {
			continue
		}
		if !exactMatch(c.Level, course.Level) {
			continue
		}
		if !exactMatch(c.Modality, course.Modality) {
			continue
		}
		out = append(out, course)
	}
	return out
}

// SpecialistCriteria filters specialists: Query over name+specialty, Area
// exact.
type SpecialistCriteria struct {
	Query string
	Area  string
}

// Specialists applies the criteria in collection order.
func Specialists(in []catalog.Specialist, c SpecialistCriteria) []catalog.Specialist {
	out := make([]catalog.Specialist, 0, len(in))
	for _, sp := range in {
		if !textMatch(c.Query, sp.Name, sp.Specialty) {
			continue
		}
		if !exactMatch(c.Area, sp.Area) {
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Skills filters by exact area; empty area is the identity.
func Skills(in []catalog.Skill, area string) []catalog.Skill {
	out := make([]catalog.Skill, 0, len(in))
	for _, sk := range in {
		if exactMatch(area, sk.Area) {
			out = append(out, sk)
		}
	}
	return out
}

// Documents filters by exact document type; empty type is the identity.
func Documents(in []catalog.Document, docType string) []catalog.Document {
	out := make([]catalog.Document, 0, len(in))
	for _, d := range in {
		if exactMatch(docType, d.Type) {
			out = append(out, d)
		}
	}
	return out
}

// textMatch reports whether the lowercased query is a substring of any of
// the lowercased fields. An empty query matches everything.
func textMatch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func exactMatch(criterion, value string) bool {
	return criterion == "" || criterion == value
}
