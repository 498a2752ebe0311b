package state

import (
	"testing"

	"tablero.dev/tablero/pkg/catalog"
)

func TestNewStoreStartsEmptyWithDefaultProfile(t *testing.T) {
	s := NewStore()
	if got := s.Courses(); got == nil || len(got) != 0 {
		t.Fatalf("courses should start as an empty sequence, got %#v", got)
	}
	if got := s.Events(); got == nil || len(got) != 0 {
		t.Fatalf("events should start as an empty sequence, got %#v", got)
	}
	if p := s.Profile(); p != catalog.DefaultProfile() {
		t.Fatalf("profile should default to the placeholder identity, got %+v", p)
	}
}

func TestLoadReplacesEverything(t *testing.T) {
	s := NewStore()
	s.Load(catalog.Snapshot{
		Courses: []catalog.Course{{ID: "c1", Title: "Intro"}},
		Skills:  []catalog.Skill{{Employee: "Ana", Name: "Soldadura"}},
	})
	if len(s.Courses()) != 1 || len(s.Skills()) != 1 {
		t.Fatalf("first load not applied")
	}

	// a second load fully replaces, it never merges
	s.Load(catalog.Snapshot{
		Specialists: []catalog.Specialist{{ID: "e1", Name: "Ana Ruiz"}},
	})
	if len(s.Specialists()) != 1 {
		t.Fatalf("second load not applied")
	}
	if len(s.Courses()) != 0 || len(s.Skills()) != 0 {
		t.Fatalf("second load should have replaced the first, still have %d courses %d skills",
			len(s.Courses()), len(s.Skills()))
	}
}

func TestLoadNormalizesNilCollections(t *testing.T) {
	s := NewStore()
	s.Load(catalog.Snapshot{Courses: []catalog.Course{{ID: "c1"}}})
	for name, n := range map[string]int{
		"specialists": len(s.Specialists()),
		"events":      len(s.Events()),
		"tasks":       len(s.Tasks()),
	} {
		if n != 0 {
			t.Fatalf("%s should be empty, got %d", name, n)
		}
	}
	if s.Specialists() == nil || s.Documents() == nil {
		t.Fatalf("missing collections must normalize to empty, not nil")
	}
}

func TestSummaryIsRecomputed(t *testing.T) {
	s := NewStore()
	s.Load(catalog.Snapshot{
		Courses:     []catalog.Course{{ID: "c1"}, {ID: "c2"}},
		Specialists: []catalog.Specialist{{ID: "e1"}},
		Evaluations: []catalog.Evaluation{
			{Name: "Ev1", Status: catalog.StatusCompleted},
			{Name: "Ev2", Status: catalog.StatusInProgress},
			{Name: "Ev3", Status: catalog.StatusCompleted},
		},
	})
	got := s.Summary()
	want := Summary{Courses: 2, Specialists: 1, CompletedEvaluations: 2}
	if got != want {
		t.Fatalf("summary: got %+v, want %+v", got, want)
	}

	// summary must follow a reload, never a cached value
	s.Load(catalog.Snapshot{})
	if got := s.Summary(); got != (Summary{}) {
		t.Fatalf("summary after empty reload: got %+v", got)
	}
}

func TestSetProfile(t *testing.T) {
	s := NewStore()
	p := catalog.Profile{Name: "Ana", Email: "ana@example.com", Area: "Calidad"}
	s.SetProfile(p)
	if got := s.Profile(); got != p {
		t.Fatalf("profile: got %+v", got)
	}
}
