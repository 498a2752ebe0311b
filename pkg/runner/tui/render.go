package tui

import (
	"fmt"
	"strings"

	"tablero.dev/tablero/pkg/catalog"
	"tablero.dev/tablero/pkg/filter"
	"tablero.dev/tablero/pkg/runner/tui/internal/monthview"
)

// sectionRender maps each section to its render entry point. Navigation
// dispatches through this table; there is no conditional chain.
var sectionRender = map[section]func(*Model) string{
	sectionHome:        (*Model).renderHome,
	sectionCourses:     (*Model).renderCourses,
	sectionSpecialists: (*Model).renderSpecialists,
	sectionCalendar:    (*Model).renderCalendar,
	sectionSkills:      (*Model).renderSkills,
	sectionEvaluations: (*Model).renderEvaluations,
	sectionDocs:        (*Model).renderDocs,
	sectionTasks:       (*Model).renderTasks,
	sectionProfile:     (*Model).renderProfile,
}

const homeCourseCount = 3

func (m *Model) renderHome() string {
	s := m.svc.Summary()
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Inicio") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		m.th.Counter.Render(fmt.Sprintf("%d", s.Courses)), m.th.CounterLabel.Render("cursos"),
		m.th.Counter.Render(fmt.Sprintf("%d", s.Specialists)), m.th.CounterLabel.Render("especialistas"),
		m.th.Counter.Render(fmt.Sprintf("%d", s.CompletedEvaluations)), m.th.CounterLabel.Render("certificaciones")))

	courses := m.svc.Store.Courses()
	if len(courses) > homeCourseCount {
		courses = courses[:homeCourseCount]
	}
	if len(courses) == 0 {
		b.WriteString(m.th.Faint.Render("Sin cursos registrados"))
		return b.String()
	}
	b.WriteString(m.th.Subtitle.Render("Cursos destacados") + "\n")
	for _, c := range courses {
		b.WriteString(m.courseCard(c, false) + "\n")
	}
	return b.String()
}

func (m *Model) courseCard(c catalog.Course, selected bool) string {
	style := m.th.Card
	if selected {
		style = m.th.CardSelected
	}
	body := m.th.CardTitle.Render(c.Title) + "\n" +
		m.th.Subtitle.Render(c.Description) + "\n" +
		m.th.Badge.Render(c.Level) + " " + m.th.Badge.Render(c.Modality) + "  " +
		m.th.Faint.Render("📚 "+catalog.Fallback(c.Duration))
	return style.Render(body)
}

func (m *Model) renderCourses() string {
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Cursos") + "\n")
	b.WriteString(m.criteriaLine(m.courseCrit) + "\n")
	if len(m.visCourses) == 0 {
		b.WriteString("\n" + m.th.Faint.Render("Sin cursos registrados"))
		return b.String()
	}
	for i, c := range m.visCourses {
		b.WriteString(m.courseCard(c, m.focus == 1 && i == m.sel[sectionCourses]) + "\n")
	}
	return b.String()
}

func (m *Model) criteriaLine(c filter.CourseCriteria) string {
	parts := []string{
		"texto: " + orAll(c.Query),
		"nivel: " + orAll(c.Level),
		"modalidad: " + orAll(c.Modality),
	}
	return m.th.Faint.Render(strings.Join(parts, " · "))
}

func orAll(v string) string {
	if v == "" {
		return "todos"
	}
	return v
}

func (m *Model) specialistCard(s catalog.Specialist, selected bool) string {
	style := m.th.Card
	if selected {
		style = m.th.CardSelected
	}
	body := m.th.CardTitle.Render(s.Specialty) + "\n" +
		s.Name + "\n" +
		m.th.Subtitle.Render(s.Area) + "  " +
		m.th.Faint.Render("🎓 "+catalog.Fallback(s.Certifications))
	return style.Render(body)
}

func (m *Model) renderSpecialists() string {
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Especialistas") + "\n")
	b.WriteString(m.th.Faint.Render(
		"texto: "+orAll(m.specCrit.Query)+" · área: "+orAll(m.specCrit.Area)) + "\n")
	if len(m.visSpecialists) == 0 {
		b.WriteString("\n" + m.th.Faint.Render("Sin especialistas registrados"))
		return b.String()
	}
	for i, s := range m.visSpecialists {
		b.WriteString(m.specialistCard(s, m.focus == 1 && i == m.sel[sectionSpecialists]) + "\n")
	}
	return b.String()
}

func (m *Model) renderCalendar() string {
	events := m.svc.Store.Events()
	cells := m.cursor.Grid(events, m.now())
	grid := monthview.Render(m.cursor.Title(), cells, m.selectedDay, monthview.DefaultOptions())

	day := m.selectedDay
	dayEvents := m.cursor.EventsOn(events, day, 0, 0)
	if day == 0 {
		day = 1
	}

	var b strings.Builder
	b.WriteString(grid + "\n\n")
	b.WriteString(m.th.Subtitle.Render(fmt.Sprintf("Eventos del día %d", day)) + "\n")
	if len(dayEvents) == 0 {
		b.WriteString(m.th.Faint.Render("No hay eventos programados"))
		return b.String()
	}
	for _, e := range dayEvents {
		hora := e.Time
		if hora == "" {
			hora = "Hora no especificada"
		}
		b.WriteString(m.th.CardTitle.Render(e.Title) + "\n")
		b.WriteString(m.th.Faint.Render("🕐 "+hora) + "\n")
		if e.Description != "" {
			b.WriteString(m.th.Subtitle.Render(e.Description) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderSkills() string {
	skills := filter.Skills(m.svc.Store.Skills(), m.skillArea)
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Habilidades") + "\n")
	b.WriteString(m.th.Faint.Render("área: "+orAll(m.skillArea)) + "\n\n")
	if len(skills) == 0 {
		b.WriteString(m.th.Faint.Render("Sin habilidades registradas"))
		return b.String()
	}
	for _, s := range skills {
		b.WriteString(fmt.Sprintf("%-20s %-24s N%-2s %s\n",
			s.Employee, s.Name, s.Level, levelIndicator(s.LevelN())))
	}
	return b.String()
}

func levelIndicator(n int) string {
	var b strings.Builder
	for i := 1; i <= catalog.MaxSkillLevel; i++ {
		if i <= n {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

func (m *Model) renderEvaluations() string {
	evals := m.svc.Store.Evaluations()
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Evaluaciones") + "\n\n")
	if len(evals) == 0 {
		b.WriteString(m.th.Faint.Render("Sin evaluaciones registradas"))
		return b.String()
	}
	for _, e := range evals {
		badge := m.th.Badge
		switch e.Status {
		case catalog.StatusCompleted:
			badge = m.th.BadgeSuccess
		case catalog.StatusInProgress:
			badge = m.th.BadgeWarning
		}
		body := m.th.CardTitle.Render(e.Name) + "\n" +
			m.th.Subtitle.Render(e.Type) + "\n" +
			fmt.Sprintf("Progreso: %d%% %s\n", e.Progress, progressBar(e.Progress)) +
			"Estado: " + badge.Render(e.Status)
		b.WriteString(m.th.Card.Render(body) + "\n")
	}
	return b.String()
}

const progressBarWidth = 20

func progressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * progressBarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
}

func (m *Model) renderDocs() string {
	docs := filter.Documents(m.svc.Store.Documents(), m.docType)
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Documentación") + "\n")
	b.WriteString(m.th.Faint.Render("tipo: "+orAll(m.docType)) + "\n\n")
	if len(docs) == 0 {
		b.WriteString(m.th.Faint.Render("Sin documentos registrados"))
		return b.String()
	}
	for _, d := range docs {
		body := m.th.Badge.Render(d.Type) + "\n" +
			m.th.CardTitle.Render(d.Title) + "\n" +
			m.th.Subtitle.Render(d.Description) + "\n" +
			m.th.Link.Render(catalog.Fallback(d.URL))
		b.WriteString(m.th.Card.Render(body) + "\n")
	}
	return b.String()
}

func (m *Model) renderTasks() string {
	tasks := m.svc.Store.Tasks()
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Pendientes") + "\n\n")
	if len(tasks) == 0 {
		b.WriteString(m.th.Faint.Render("Sin tareas pendientes"))
		return b.String()
	}
	for _, t := range tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", box, m.th.CardTitle.Render(t.Title)))
		if t.Description != "" {
			b.WriteString("    " + m.th.Subtitle.Render(t.Description) + "\n")
		}
		for _, st := range t.Subtasks() {
			b.WriteString("    " + m.th.Faint.Render("[ ] "+st) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderProfile() string {
	p := m.svc.Store.Profile()
	var b strings.Builder
	b.WriteString(m.th.SectionTitle.Render("Perfil") + "\n\n")
	b.WriteString(fmt.Sprintf("Nombre: %s\n", p.Name))
	b.WriteString(fmt.Sprintf("Email:  %s\n", p.Email))
	b.WriteString(fmt.Sprintf("Área:   %s\n\n", p.Area))
	b.WriteString(m.th.Faint.Render("e para editar; los campos vacíos conservan el valor guardado"))
	return b.String()
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return ""
	}
	switch m.detail.kind {
	case "curso":
		c := m.detail.course
		return m.th.OverlayTitle.Render(c.Title) + "\n\n" +
			"Descripción: " + c.Description + "\n" +
			"Nivel: " + c.Level + "\n" +
			"Modalidad: " + c.Modality + "\n" +
			"Duración: " + catalog.Fallback(c.Duration) + "\n" +
			"Instructor: " + catalog.Fallback(c.Instructor) + "\n\n" +
			m.th.Faint.Render("e inscribirse · esc cerrar")
	case "especialista":
		s := m.detail.specialist
		return m.th.OverlayTitle.Render(s.Name) + "\n\n" +
			"Especialidad: " + s.Specialty + "\n" +
			"Área: " + s.Area + "\n" +
			"Certificaciones: " + catalog.Fallback(s.Certifications) + "\n" +
			"Experiencia: " + catalog.Fallback(s.Experience) + "\n\n" +
			m.th.Faint.Render("esc cerrar")
	}
	return ""
}
