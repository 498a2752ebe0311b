package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tablero.dev/tablero/pkg/catalog"
	"tablero.dev/tablero/pkg/state"
)

// PrettyPrint renders catalogs as terminal tables.
type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a section title with a faint record count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	switch count {
	case 1:
		_, _ = c.Println(" - 1 registro")
	default:
		_, _ = c.Printf(" - %d registros\n", count)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" sin registros\n\n")
}

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	return table
}

func (pp *PrettyPrint) flush(table *uitable.Table) {
	fmt.Println(table)
	fmt.Println("")
}

// Summary prints the three dashboard counters.
func (pp *PrettyPrint) Summary(s state.Summary) {
	table := newTable()
	table.AddRow("CURSOS", s.Courses)
	table.AddRow("ESPECIALISTAS", s.Specialists)
	table.AddRow("CERTIFICACIONES", s.CompletedEvaluations)
	pp.flush(table)
}

// Courses prints the course catalog.
func (pp *PrettyPrint) Courses(courses []catalog.Course) {
	if len(courses) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("ID", "TÍTULO", "NIVEL", "MODALIDAD", "DURACIÓN")
	for _, c := range courses {
		table.AddRow(c.ID, c.Title, c.Level, c.Modality, catalog.Fallback(c.Duration))
	}
	pp.flush(table)
}

// Specialists prints the specialist directory.
func (pp *PrettyPrint) Specialists(specialists []catalog.Specialist) {
	if len(specialists) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("ID", "NOMBRE", "ESPECIALIDAD", "ÁREA", "CERTIFICACIONES")
	for _, s := range specialists {
		table.AddRow(s.ID, s.Name, s.Specialty, s.Area, catalog.Fallback(s.Certifications))
	}
	pp.flush(table)
}

// Events prints calendar events.
func (pp *PrettyPrint) Events(events []catalog.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("FECHA", "HORA", "TÍTULO", "DESCRIPCIÓN")
	for _, e := range events {
		table.AddRow(e.DateRaw, catalog.Fallback(e.Time), e.Title, e.Description)
	}
	pp.flush(table)
}

// Skills prints the skill matrix with the N1..N4 indicator.
func (pp *PrettyPrint) Skills(skills []catalog.Skill) {
	if len(skills) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("EMPLEADO", "HABILIDAD", "ÁREA", "NIVEL", "PROGRESO")
	for _, s := range skills {
		table.AddRow(s.Employee, s.Name, s.Area, "N"+s.Level, levelDots(s.LevelN()))
	}
	pp.flush(table)
}

func levelDots(n int) string {
	dots := ""
	for i := 1; i <= catalog.MaxSkillLevel; i++ {
		if i <= n {
			dots += "●"
		} else {
			dots += "○"
		}
	}
	return dots
}

// Evaluations prints evaluation progress, coloring the status badge.
func (pp *PrettyPrint) Evaluations(evaluations []catalog.Evaluation) {
	if len(evaluations) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("NOMBRE", "TIPO", "PROGRESO", "ESTADO")
	for _, e := range evaluations {
		table.AddRow(e.Name, e.Type, fmt.Sprintf("%d%%", e.Progress), statusBadge(e.Status))
	}
	pp.flush(table)
}

func statusBadge(status string) string {
	switch status {
	case catalog.StatusCompleted:
		return color.GreenString(status)
	case catalog.StatusInProgress:
		return color.YellowString(status)
	default:
		return status
	}
}

// Documents prints the documentation index.
func (pp *PrettyPrint) Documents(documents []catalog.Document) {
	if len(documents) == 0 {
		pp.none()
		return
	}
	table := newTable()
	table.AddRow("TIPO", "TÍTULO", "DESCRIPCIÓN", "URL")
	for _, d := range documents {
		table.AddRow(d.Type, d.Title, d.Description, catalog.Fallback(d.URL))
	}
	pp.flush(table)
}

// Tasks prints pending tasks with their subtask checklists.
func (pp *PrettyPrint) Tasks(tasks []catalog.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint)
	for _, t := range tasks {
		box := "[ ]"
		line := color.New()
		if t.Completed {
			box = "[x]"
			line = done
		}
		_, _ = line.Printf("%s %s\n", box, t.Title)
		if t.Description != "" {
			_, _ = done.Printf("    %s\n", t.Description)
		}
		for _, st := range t.Subtasks() {
			_, _ = done.Printf("    [ ] %s\n", st)
		}
	}
	fmt.Println("")
}

// Profile prints the current-user profile.
func (pp *PrettyPrint) Profile(p catalog.Profile) {
	table := newTable()
	table.AddRow("NOMBRE", p.Name)
	table.AddRow("EMAIL", p.Email)
	table.AddRow("ÁREA", p.Area)
	pp.flush(table)
}
