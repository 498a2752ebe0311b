// Package search implements the global search box: a linear scan over
// courses and specialists only. Other collections are deliberately outside
// its scope.
package search

import (
	"strings"

	"tablero.dev/tablero/pkg/catalog"
)

// Section identifiers used by search results; they match the navigation
// section ids.
const (
	SectionCourses     = "cursos"
	SectionSpecialists = "especialistas"
)

// Result is one search hit. Callers navigate to the Section of the first
// result and discard the rest.
type Result struct {
	Type    string
	Title   string
	ID      string
	Section string
}

// Run scans courses first, then specialists, matching the term
// case-insensitively against each record's two primary text fields. An
// empty term returns no results.
func Run(courses []catalog.Course, specialists []catalog.Specialist, term string) []Result {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return nil
	}

	var results []Result
	for _, c := range courses {
		if contains(c.Title, q) || contains(c.Description, q) {
			results = append(results, Result{Type: "Curso", Title: c.Title, ID: c.ID, Section: SectionCourses})
		}
	}
	for _, s := range specialists {
		if contains(s.Name, q) || contains(s.Specialty, q) {
			results = append(results, Result{Type: "Especialista", Title: s.Name, ID: s.ID, Section: SectionSpecialists})
		}
	}
	return results
}

func contains(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
