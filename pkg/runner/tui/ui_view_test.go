package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tablero.dev/tablero/pkg/app"
	"tablero.dev/tablero/pkg/calendar"
	"tablero.dev/tablero/pkg/catalog"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewShowsSpinnerWhileLoading(t *testing.T) {
	svc := app.New(&fakeGateway{snap: testSnapshot()}, &memPersistence{})
	m := New(svc)
	view := stripANSI(m.View())
	if !strings.Contains(view, "Cargando datos...") {
		t.Fatalf("loading view should show the spinner line, got:\n%s", view)
	}
}

func TestViewHeaderCounts(t *testing.T) {
	m := newTestModel(t)
	view := stripANSI(m.View())
	if !strings.Contains(view, "Tablero de Capacitación") {
		t.Fatalf("header title missing:\n%s", view)
	}
	if !strings.Contains(view, "Cursos 2") || !strings.Contains(view, "Especialistas 1") {
		t.Fatalf("header counters missing:\n%s", view)
	}
}

func TestRenderHomeTopCourses(t *testing.T) {
	m := newTestModel(t)
	out := stripANSI(m.renderHome())
	if !strings.Contains(out, "Cursos destacados") {
		t.Fatalf("home should list featured courses:\n%s", out)
	}
	if !strings.Contains(out, "Introducción a Redes") {
		t.Fatalf("home should show the first course:\n%s", out)
	}
}

func TestRenderHomeEmpty(t *testing.T) {
	svc := app.New(&fakeGateway{snap: &catalog.Snapshot{}}, &memPersistence{})
	m := New(svc)
	out := stripANSI(m.renderHome())
	if !strings.Contains(out, "Sin cursos registrados") {
		t.Fatalf("empty home placeholder missing:\n%s", out)
	}
}

func TestRenderCoursesShowsCriteriaLine(t *testing.T) {
	m := newTestModel(t)
	m.courseCrit.Level = "Avanzado"
	m.refreshContent()
	out := stripANSI(m.renderCourses())
	if !strings.Contains(out, "nivel: Avanzado") {
		t.Fatalf("criteria line missing:\n%s", out)
	}
	if strings.Contains(out, "Introducción a Redes") {
		t.Fatalf("filtered-out course still rendered:\n%s", out)
	}
	if !strings.Contains(out, "Seguridad Avanzada") {
		t.Fatalf("matching course missing:\n%s", out)
	}
}

func TestRenderCalendarNoEvents(t *testing.T) {
	m := newTestModel(t)
	// pick a month with no events loaded
	m.now = func() time.Time { return time.Date(2030, time.June, 10, 0, 0, 0, 0, time.UTC) }
	out := stripANSI(m.renderCalendar())
	if !strings.Contains(out, "Eventos del día 1") {
		t.Fatalf("day heading should default to day 1:\n%s", out)
	}
	if !strings.Contains(out, "No hay eventos programados") {
		t.Fatalf("empty-day placeholder missing:\n%s", out)
	}
	if !strings.Contains(out, "Do Lu Ma Mi Ju Vi Sa") {
		t.Fatalf("weekday header missing:\n%s", out)
	}
}

func TestRenderCalendarEventWithoutTime(t *testing.T) {
	svc := app.New(&fakeGateway{snap: testSnapshot()}, &memPersistence{})
	svc.Store.Load(catalog.Snapshot{Events: []catalog.Event{
		{DateRaw: "2024-03-15", Title: "Kickoff"},
	}})
	m := New(svc)
	m.now = func() time.Time { return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) }
	m.cursor = calendar.NewCursor(m.now())
	m.selectedDay = 15

	out := stripANSI(m.renderCalendar())
	if !strings.Contains(out, "Marzo 2024") {
		t.Fatalf("month title missing:\n%s", out)
	}
	if !strings.Contains(out, "Kickoff") {
		t.Fatalf("event title missing:\n%s", out)
	}
	if !strings.Contains(out, "Hora no especificada") {
		t.Fatalf("missing-time placeholder missing:\n%s", out)
	}
}

func TestRenderSkillsLevels(t *testing.T) {
	svc := app.New(&fakeGateway{snap: testSnapshot()}, &memPersistence{})
	svc.Store.Load(catalog.Snapshot{Skills: []catalog.Skill{
		{Employee: "Ana", Name: "Soldadura", Area: "Operación", Level: "3"},
	}})
	m := New(svc)
	out := stripANSI(m.renderSkills())
	if !strings.Contains(out, "●●●○") {
		t.Fatalf("level dots missing:\n%s", out)
	}
}

func TestRenderSkillsEmpty(t *testing.T) {
	m := newTestModel(t)
	out := stripANSI(m.renderSkills())
	if !strings.Contains(out, "Sin habilidades registradas") {
		t.Fatalf("empty skills placeholder missing:\n%s", out)
	}
}

func TestRenderEvaluationsProgressBar(t *testing.T) {
	svc := app.New(&fakeGateway{snap: testSnapshot()}, &memPersistence{})
	svc.Store.Load(catalog.Snapshot{Evaluations: []catalog.Evaluation{
		{Name: "Ev1", Type: "Técnica", Progress: 50, Status: catalog.StatusInProgress},
	}})
	m := New(svc)
	out := stripANSI(m.renderEvaluations())
	if !strings.Contains(out, "Progreso: 50% "+strings.Repeat("█", 10)+strings.Repeat("░", 10)) {
		t.Fatalf("progress bar missing:\n%s", out)
	}
	if !strings.Contains(out, catalog.StatusInProgress) {
		t.Fatalf("status badge missing:\n%s", out)
	}
}

func TestRenderTasksSubtasks(t *testing.T) {
	svc := app.New(&fakeGateway{snap: testSnapshot()}, &memPersistence{})
	svc.Store.Load(catalog.Snapshot{Tasks: []catalog.Task{
		{Title: "Auditoría", Completed: true, SubtasksRaw: "revisar, firmar"},
	}})
	m := New(svc)
	out := stripANSI(m.renderTasks())
	if !strings.Contains(out, "[x] Auditoría") {
		t.Fatalf("completed checkbox missing:\n%s", out)
	}
	if !strings.Contains(out, "[ ] revisar") || !strings.Contains(out, "[ ] firmar") {
		t.Fatalf("subtasks missing:\n%s", out)
	}
}

func TestRenderDetailCourse(t *testing.T) {
	m := newTestModel(t)
	m.detail = &detail{kind: "curso", course: m.svc.Store.Courses()[0]}
	out := stripANSI(m.renderDetail())
	if !strings.Contains(out, "Introducción a Redes") {
		t.Fatalf("course title missing:\n%s", out)
	}
	// absent optional fields fall back to the placeholder
	if !strings.Contains(out, "Duración: N/A") || !strings.Contains(out, "Instructor: N/A") {
		t.Fatalf("fallback fields missing:\n%s", out)
	}
	if !strings.Contains(out, "e inscribirse") {
		t.Fatalf("enroll hint missing:\n%s", out)
	}
}

func TestViewShowsAlertStatus(t *testing.T) {
	m := newTestModel(t)
	m.status = "❌ Error al cargar datos. Por favor, verifica tu configuración."
	view := stripANSI(m.View())
	if !strings.Contains(view, "Error al cargar datos") {
		t.Fatalf("alert status missing:\n%s", view)
	}
}
