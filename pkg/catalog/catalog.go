// Package catalog defines the record types served by the training data
// gateway. Records are tolerant documents: any field may be absent and
// renderers fall back to a placeholder instead of failing.
package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Course is a single training course.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Level       string `json:"nivel"`
	Modality    string `json:"modalidad"`
	Duration    string `json:"duracion,omitempty"`
	Instructor  string `json:"instructor,omitempty"`
}

// Specialist is a subject-matter expert profile.
type Specialist struct {
	ID             string `json:"id"`
	Name           string `json:"nombre"`
	Specialty      string `json:"especialidad"`
	Area           string `json:"area"`
	Certifications string `json:"certificaciones,omitempty"`
	Experience     string `json:"experiencia,omitempty"`
}

// Event is a calendar entry. Events carry no identifier; they are addressed
// by calendar date only.
type Event struct {
	DateRaw     string `json:"fecha"`
	Time        string `json:"hora,omitempty"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion,omitempty"`
}

var eventLayouts = []string{"2006-01-02", time.RFC3339, "2006/01/02", "01/02/2006"}

// Date parses the event's fecha field. Unparseable dates report ok=false and
// the event is simply never matched against a day.
func (e Event) Date() (time.Time, bool) {
	raw := strings.TrimSpace(e.DateRaw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Skill records one employee's proficiency in one skill.
type Skill struct {
	Employee string `json:"empleado"`
	Name     string `json:"habilidad"`
	Area     string `json:"area"`
	Level    string `json:"nivel"`
}

// MaxSkillLevel is the top of the N1..N4 proficiency scale.
const MaxSkillLevel = 4

// LevelN returns the ordinal skill level, 0 when the field is absent or not
// a number.
func (s Skill) LevelN() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Level))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Evaluation status values. The gateway sends free text; these are the
// values the dashboard recognizes.
const (
	StatusPending    = "Pendiente"
	StatusInProgress = "En Proceso"
	StatusCompleted  = "Completado"
)

// Evaluation tracks assessment progress for one person or team.
type Evaluation struct {
	Name     string `json:"nombre"`
	Type     string `json:"tipo"`
	Progress int    `json:"progreso"`
	Status   string `json:"estado"`
}

// Completed reports whether the evaluation reached the completed status.
func (e Evaluation) Completed() bool {
	return e.Status == StatusCompleted
}

// Document is a reference document entry.
type Document struct {
	Type        string `json:"tipo"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Task is a pending work item with an optional comma-joined subtask list.
// Checkbox state is display-only and never written back.
type Task struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion,omitempty"`
	Completed   bool   `json:"completado"`
	SubtasksRaw string `json:"subtareas,omitempty"`
}

// Subtasks splits the comma-joined subtask list, trimming whitespace and
// dropping empty items.
func (t Task) Subtasks() []string {
	if strings.TrimSpace(t.SubtasksRaw) == "" {
		return nil
	}
	parts := strings.Split(t.SubtasksRaw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Profile is the singleton current-user identity.
type Profile struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Area  string `json:"area"`
}

// DefaultProfile returns the placeholder identity used until a stored
// profile is restored or the user saves one.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Usuario",
		Email: "usuario@example.com",
		Area:  "Operación",
	}
}

// Snapshot is the bulk payload: all seven collections, keyed the way the
// gateway names them. Missing collections decode as nil and are normalized
// to empty by the state store.
type Snapshot struct {
	Courses     []Course     `json:"cursos"`
	Specialists []Specialist `json:"especialistas"`
	Events      []Event      `json:"calendario"`
	Skills      []Skill      `json:"habilidades"`
	Evaluations []Evaluation `json:"evaluaciones"`
	Documents   []Document   `json:"documentacion"`
	Tasks       []Task       `json:"pte"`
}

// Fallback substitutes "N/A" for absent field values.
func Fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
