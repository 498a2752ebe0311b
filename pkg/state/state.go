// Package state holds the in-memory application state: the seven catalog
// collections plus the current-user profile. The store is populated by one
// bulk load per session and mutated only from the UI dispatch goroutine, so
// it carries no locking of its own.
package state

import (
	"tablero.dev/tablero/pkg/catalog"
)

// Store is the application state store. Collections are ordered and fully
// replaced on each Load; they are never merged incrementally.
type Store struct {
	courses     []catalog.Course
	specialists []catalog.Specialist
	events      []catalog.Event
	skills      []catalog.Skill
	evaluations []catalog.Evaluation
	documents   []catalog.Document
	tasks       []catalog.Task

	profile catalog.Profile
}

// NewStore returns a store with all collections empty and the placeholder
// profile.
func NewStore() *Store {
	s := &Store{profile: catalog.DefaultProfile()}
	s.Load(catalog.Snapshot{})
	return s
}

// Load atomically replaces every collection from the snapshot. Nil slices
// are normalized so accessors always return a non-nil ordered sequence.
func (s *Store) Load(snap catalog.Snapshot) {
	s.courses = orEmptyCourses(snap.Courses)
	s.specialists = orEmptySpecialists(snap.Specialists)
	s.events = orEmptyEvents(snap.Events)
	s.skills = orEmptySkills(snap.Skills)
	s.evaluations = orEmptyEvaluations(snap.Evaluations)
	s.documents = orEmptyDocuments(snap.Documents)
	s.tasks = orEmptyTasks(snap.Tasks)
}

// Courses returns the course collection in load order. Callers must not
// mutate the returned slice.
func (s *Store) Courses() []catalog.Course { return s.courses }

// Specialists returns the specialist collection in load order.
func (s *Store) Specialists() []catalog.Specialist { return s.specialists }

// Events returns the calendar event collection in load order.
func (s *Store) Events() []catalog.Event { return s.events }

// Skills returns the skill collection in load order.
func (s *Store) Skills() []catalog.Skill { return s.skills }

// Evaluations returns the evaluation collection in load order.
func (s *Store) Evaluations() []catalog.Evaluation { return s.evaluations }

// Documents returns the documentation collection in load order.
func (s *Store) Documents() []catalog.Document { return s.documents }

// Tasks returns the pending-task collection in load order.
func (s *Store) Tasks() []catalog.Task { return s.tasks }

// Profile returns the current-user profile.
func (s *Store) Profile() catalog.Profile { return s.profile }

// SetProfile replaces the singleton profile.
func (s *Store) SetProfile(p catalog.Profile) { s.profile = p }

// Summary carries the dashboard counters. It is derived state: recompute it
// with Summary() after every load, never hold onto one.
type Summary struct {
	Courses              int
	Specialists          int
	CompletedEvaluations int
}

// Summary recomputes the dashboard counters from the current collections.
func (s *Store) Summary() Summary {
	completed := 0
	for _, e := range s.evaluations {
		if e.Completed() {
			completed++
		}
	}
	return Summary{
		Courses:              len(s.courses),
		Specialists:          len(s.specialists),
		CompletedEvaluations: completed,
	}
}

func orEmptyCourses(in []catalog.Course) []catalog.Course {
	if in == nil {
		return []catalog.Course{}
	}
	return in
}

func orEmptySpecialists(in []catalog.Specialist) []catalog.Specialist {
	if in == nil {
		return []catalog.Specialist{}
	}
	return in
}

func orEmptyEvents(in []catalog.Event) []catalog.Event {
	if in == nil {
		return []catalog.Event{}
	}
	return in
}

func orEmptySkills(in []catalog.Skill) []catalog.Skill {
	if in == nil {
		return []catalog.Skill{}
	}
	return in
}

func orEmptyEvaluations(in []catalog.Evaluation) []catalog.Evaluation {
	if in == nil {
		return []catalog.Evaluation{}
	}
	return in
}

func orEmptyDocuments(in []catalog.Document) []catalog.Document {
	if in == nil {
		return []catalog.Document{}
	}
	return in
}

func orEmptyTasks(in []catalog.Task) []catalog.Task {
	if in == nil {
		return []catalog.Task{}
	}
	return in
}
