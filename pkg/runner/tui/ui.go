// Package tui implements the dashboard terminal UI. One bulk fetch populates
// the state store at startup; every section renders from that shared state,
// and all mutation happens on the bubbletea dispatch goroutine.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tablero.dev/tablero/pkg/app"
	"tablero.dev/tablero/pkg/calendar"
	"tablero.dev/tablero/pkg/catalog"
	"tablero.dev/tablero/pkg/filter"
	"tablero.dev/tablero/pkg/runner/tui/internal/theme"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeProfile
	modeDetail
	modeHelp
)

// section identifies one navigable view. Home is the initial section.
type section int

const (
	sectionHome section = iota
	sectionCourses
	sectionSpecialists
	sectionCalendar
	sectionSkills
	sectionEvaluations
	sectionDocs
	sectionTasks
	sectionProfile
	sectionCount
)

type sectionInfo struct {
	id    string
	title string
}

var sections = [sectionCount]sectionInfo{
	sectionHome:        {id: "home", title: "Inicio"},
	sectionCourses:     {id: "cursos", title: "Cursos"},
	sectionSpecialists: {id: "especialistas", title: "Especialistas"},
	sectionCalendar:    {id: "calendario", title: "Calendario"},
	sectionSkills:      {id: "habilidades", title: "Habilidades"},
	sectionEvaluations: {id: "evaluaciones", title: "Evaluaciones"},
	sectionDocs:        {id: "documentacion", title: "Documentación"},
	sectionTasks:       {id: "pte", title: "Pendientes"},
	sectionProfile:     {id: "perfil", title: "Perfil"},
}

func sectionByID(id string) (section, bool) {
	for s := sectionHome; s < sectionCount; s++ {
		if sections[s].id == id {
			return s, true
		}
	}
	return sectionHome, false
}

// section item for the left list
type sectionItem struct{ s section }

func (it sectionItem) Title() string       { return sections[it.s].title }
func (it sectionItem) Description() string { return "" }
func (it sectionItem) FilterValue() string { return sections[it.s].title }

// detail identifies the record shown in the detail overlay.
type detail struct {
	kind       string // "curso" or "especialista"
	course     catalog.Course
	specialist catalog.Specialist
}

// Model contains UI state
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	active section
	focus  int // 0: sections, 1: content

	secList list.Model
	content viewport.Model

	input textinput.Model
	spin  spinner.Model

	loading bool
	status  string

	// per-section filter criteria, re-applied synchronously on change
	courseCrit filter.CourseCriteria
	specCrit   filter.SpecialistCriteria
	skillArea  string
	docType    string

	// filtered projections for the current render
	visCourses     []catalog.Course
	visSpecialists []catalog.Specialist

	// card selection per section (cursos / especialistas only)
	sel map[section]int

	cursor      *calendar.Cursor
	selectedDay int

	detail *detail

	profileField int // 0 name, 1 email, 2 area
	profileDraft catalog.Profile

	termWidth  int
	termHeight int

	th  theme.Theme
	now func() time.Time

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

const defaultStatus = "h/l panes, j/k mover, enter abrir, / filtrar, b buscar, [ ] mes, ? ayuda, q salir"

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	items := make([]list.Item, 0, int(sectionCount))
	for s := sectionHome; s < sectionCount; s++ {
		items = append(items, sectionItem{s: s})
	}
	l := list.New(items, dFocus, 24, 20)
	l.Title = "Secciones"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Buscar..."
	ti.CharLimit = 256
	ti.Prompt = ""

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	now := time.Now
	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		mode:     modeNormal,
		active:   sectionHome,
		focus:    0,
		secList:  l,
		content:  viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		input:    ti,
		spin:     sp,
		loading:  true,
		status:   defaultStatus,
		sel:      make(map[section]int),
		cursor:   calendar.NewCursor(now()),
		th:       theme.Default(),
		now:      now,
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	m.refreshContent()
	return m
}

// messages
type errMsg struct{ err error }
type snapshotMsg struct{ snap *catalog.Snapshot }

// Init kicks off the single bulk fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchAll())
}

// fetchAll performs the bulk fetch off-thread and hands the snapshot back as
// a message so the store is only mutated from Update.
func (m *Model) fetchAll() tea.Cmd {
	gw := m.svc.Gateway
	return func() tea.Msg {
		snap, err := gw.FetchAll(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return snapshotMsg{snap: snap}
	}
}

// navigateTo switches the active section: single active section, render
// dispatch, scroll to top, any open overlay closed.
func (m *Model) navigateTo(s section) {
	m.active = s
	m.mode = modeNormal
	m.detail = nil
	m.secList.Select(int(s))
	m.refreshContent()
	m.content.SetYOffset(0)
	m.status = defaultStatus
}

// refreshContent recomputes the filtered projections and re-renders the
// active section through the dispatch table.
func (m *Model) refreshContent() {
	m.visCourses = filter.Courses(m.svc.Store.Courses(), m.courseCrit)
	m.visSpecialists = filter.Specialists(m.svc.Store.Specialists(), m.specCrit)
	m.clampSelection()
	if render, ok := sectionRender[m.active]; ok {
		m.content.SetContent(render(m))
	}
}

func (m *Model) clampSelection() {
	for s, n := range map[section]int{
		sectionCourses:     len(m.visCourses),
		sectionSpecialists: len(m.visSpecialists),
	} {
		if m.sel[s] >= n {
			m.sel[s] = n - 1
		}
		if m.sel[s] < 0 {
			m.sel[s] = 0
		}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		m.refreshContent()
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	case errMsg:
		m.loading = false
		m.status = "❌ Error al cargar datos. Por favor, verifica tu configuración."
		m.refreshContent()
	case snapshotMsg:
		m.loading = false
		m.svc.Store.Load(*msg.snap)
		s := m.svc.Summary()
		m.status = fmt.Sprintf("Datos cargados: %d cursos, %d especialistas", s.Courses, s.Specialists)
		m.refreshContent()
	case tea.KeyPressMsg:
		skipListRouting = m.handleKey(msg, &cmds)
	}

	if m.mode == modeNormal && !skipListRouting && m.focus == 0 {
		prev := m.secList.Index()
		var cmd tea.Cmd
		m.secList, cmd = m.secList.Update(msg)
		cmds = append(cmds, cmd)
		if m.secList.Index() != prev {
			// moving in the section list activates the highlighted section
			m.navigateTo(section(m.secList.Index()))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.mode {
	case modeHelp:
		if key := msg.String(); key == "q" || key == "esc" || key == "?" {
			m.mode = modeNormal
		}
		return true

	case modeDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			m.mode = modeNormal
			m.detail = nil
		case "e":
			if m.detail != nil && m.detail.kind == "curso" {
				m.status = "✓ ¡Te has inscrito al curso! Se enviará un email de confirmación."
				m.mode = modeNormal
				m.detail = nil
			}
		}
		return true

	case modeSearch:
		switch msg.String() {
		case "enter":
			m.runSearch(strings.TrimSpace(m.input.Value()))
			m.input.Reset()
			m.input.Blur()
		case "esc":
			m.mode = modeNormal
			m.input.Reset()
			m.input.Blur()
			m.status = defaultStatus
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return true

	case modeFilter:
		switch msg.String() {
		case "enter", "esc":
			m.mode = modeNormal
			m.input.Blur()
			m.status = defaultStatus
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd)
			// re-filter synchronously on every criterion change
			m.setQuery(m.input.Value())
			m.refreshContent()
		}
		return true

	case modeProfile:
		switch msg.String() {
		case "enter":
			m.applyProfileField(m.input.Value())
		case "esc":
			m.mode = modeNormal
			m.input.Reset()
			m.input.Blur()
			m.status = "Edición cancelada"
			m.refreshContent()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return true
	}

	// modeNormal
	switch msg.String() {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		return true

	case "?":
		m.mode = modeHelp
		return true

	case "h", "left":
		if m.active == sectionCalendar && m.focus == 1 {
			m.moveDay(-1)
			return true
		}
		m.focus = 0
		m.updateFocusHeaders()
		return true
	case "l", "right":
		if m.active == sectionCalendar && m.focus == 1 {
			m.moveDay(1)
			return true
		}
		m.focus = 1
		m.updateFocusHeaders()
		return true

	case "b":
		m.mode = modeSearch
		m.input.Placeholder = "Buscar cursos y especialistas"
		m.input.Reset()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
		m.status = "BUSCAR: enter para ir al primer resultado, esc para cancelar"
		return true

	case "/":
		if m.focus == 1 && (m.active == sectionCourses || m.active == sectionSpecialists) {
			m.mode = modeFilter
			m.input.Placeholder = "Filtrar..."
			m.input.SetValue(m.query())
			m.input.CursorEnd()
			if cmd := m.input.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
			m.status = "FILTRO: escribe para filtrar, enter para volver"
			return true
		}

	case "e":
		if m.active == sectionProfile {
			m.startProfileEdit(cmds)
			return true
		}

	case "enter":
		if m.focus == 0 {
			m.navigateTo(section(m.secList.Index()))
			m.focus = 1
			m.updateFocusHeaders()
			return true
		}
	}

	if m.focus == 1 {
		return m.handleContentKey(msg, cmds)
	}
	return false
}

// handleContentKey handles keys scoped to the right pane.
func (m *Model) handleContentKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.active {
	case sectionCourses, sectionSpecialists:
		switch msg.String() {
		case "j", "down":
			m.moveSelection(1)
			return true
		case "k", "up":
			m.moveSelection(-1)
			return true
		case "enter":
			m.openDetail()
			return true
		}
		// categorical criteria cycle through the values present in the data
		switch {
		case m.active == sectionCourses && msg.String() == "n":
			m.courseCrit.Level = cycle(m.courseCrit.Level, courseLevels(m.svc.Store.Courses()))
			m.refreshContent()
			return true
		case m.active == sectionCourses && msg.String() == "m":
			m.courseCrit.Modality = cycle(m.courseCrit.Modality, courseModalities(m.svc.Store.Courses()))
			m.refreshContent()
			return true
		case m.active == sectionSpecialists && msg.String() == "a":
			m.specCrit.Area = cycle(m.specCrit.Area, specialistAreas(m.svc.Store.Specialists()))
			m.refreshContent()
			return true
		}

	case sectionSkills:
		if msg.String() == "a" {
			m.skillArea = cycle(m.skillArea, skillAreas(m.svc.Store.Skills()))
			m.refreshContent()
			return true
		}

	case sectionDocs:
		if msg.String() == "t" {
			m.docType = cycle(m.docType, documentTypes(m.svc.Store.Documents()))
			m.refreshContent()
			return true
		}

	case sectionCalendar:
		switch msg.String() {
		case "[", "p":
			m.cursor.Advance(-1)
			m.selectedDay = 0
			m.refreshContent()
			return true
		case "]", "n":
			m.cursor.Advance(1)
			m.selectedDay = 0
			m.refreshContent()
			return true
		case "j", "down":
			m.moveDay(7)
			return true
		case "k", "up":
			m.moveDay(-7)
			return true
		}
	}

	// default: the viewport handles scrolling keys itself
	vp, cmd := m.content.Update(msg)
	m.content = vp
	*cmds = append(*cmds, cmd)
	return true
}

func (m *Model) moveSelection(delta int) {
	n := 0
	switch m.active {
	case sectionCourses:
		n = len(m.visCourses)
	case sectionSpecialists:
		n = len(m.visSpecialists)
	}
	if n == 0 {
		return
	}
	next := m.sel[m.active] + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	m.sel[m.active] = next
	m.refreshContent()
}

// moveDay moves the calendar day selection within the viewed month.
// Other-month cells are not selectable.
func (m *Model) moveDay(delta int) {
	days := m.cursor.DaysInMonth()
	next := m.selectedDay
	if next == 0 {
		next = 1
	} else {
		next += delta
	}
	if next < 1 {
		next = 1
	}
	if next > days {
		next = days
	}
	m.selectedDay = next
	m.refreshContent()
}

func (m *Model) openDetail() {
	switch m.active {
	case sectionCourses:
		if i := m.sel[m.active]; i < len(m.visCourses) {
			m.detail = &detail{kind: "curso", course: m.visCourses[i]}
			m.mode = modeDetail
		}
	case sectionSpecialists:
		if i := m.sel[m.active]; i < len(m.visSpecialists) {
			m.detail = &detail{kind: "especialista", specialist: m.visSpecialists[i]}
			m.mode = modeDetail
		}
	}
}

// runSearch navigates to the section of the first hit; the rest of the
// result set is discarded. Zero hits only reports, it never navigates.
func (m *Model) runSearch(term string) {
	m.mode = modeNormal
	if term == "" {
		m.status = defaultStatus
		return
	}
	results := m.svc.Search(term)
	if len(results) == 0 {
		m.status = "No se encontraron resultados"
		return
	}
	first := results[0]
	if s, ok := sectionByID(first.Section); ok {
		m.navigateTo(s)
	}
	m.status = fmt.Sprintf("%d resultado(s) — mostrando %s", len(results), first.Type)
}

func (m *Model) query() string {
	if m.active == sectionSpecialists {
		return m.specCrit.Query
	}
	return m.courseCrit.Query
}

func (m *Model) setQuery(q string) {
	if m.active == sectionSpecialists {
		m.specCrit.Query = q
		return
	}
	m.courseCrit.Query = q
}

var profileFieldNames = [...]string{"Nombre", "Email", "Área"}

func (m *Model) startProfileEdit(cmds *[]tea.Cmd) {
	m.mode = modeProfile
	m.profileField = 0
	m.profileDraft = m.svc.Store.Profile()
	m.input.Placeholder = profileFieldNames[0]
	m.input.SetValue(m.profileDraft.Name)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "PERFIL: enter para el siguiente campo, esc para cancelar"
}

// applyProfileField stores the current field draft and advances; after the
// last field the profile is saved. Empty fields keep their stored values.
func (m *Model) applyProfileField(value string) {
	switch m.profileField {
	case 0:
		m.profileDraft.Name = value
		m.profileField = 1
		m.input.Placeholder = profileFieldNames[1]
		m.input.SetValue(m.profileDraft.Email)
		m.input.CursorEnd()
	case 1:
		m.profileDraft.Email = value
		m.profileField = 2
		m.input.Placeholder = profileFieldNames[2]
		m.input.SetValue(m.profileDraft.Area)
		m.input.CursorEnd()
	default:
		m.profileDraft.Area = value
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		if _, err := m.svc.SaveProfile(m.profileDraft.Name, m.profileDraft.Email, m.profileDraft.Area); err != nil {
			m.status = "❌ No se pudo guardar el perfil: " + err.Error()
		} else {
			m.status = "✓ Perfil guardado correctamente"
		}
		m.refreshContent()
	}
}

// View renders the dashboard: header, section list, content, status line.
func (m Model) View() string {
	header := m.renderHeader()
	left := m.secList.View()

	var right string
	if m.loading {
		right = m.spin.View() + " Cargando datos..."
	} else {
		right = m.content.View()
	}

	gap := lipgloss.NewStyle().Padding(0, 1).Render
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	if m.mode == modeSearch {
		body += "\n\nBuscar: " + m.input.View()
	}
	if m.mode == modeFilter {
		body += "\n\nFiltro: " + m.input.View()
	}
	if m.mode == modeProfile {
		body += fmt.Sprintf("\n\n%s: %s", profileFieldNames[m.profileField], m.input.View())
	}
	if m.mode == modeDetail && m.detail != nil {
		body += "\n\n" + m.th.Overlay.Render(m.renderDetail())
	}
	if m.mode == modeHelp {
		body += "\n\n" + m.th.Overlay.Render(helpText)
	}

	status := m.th.Status.Render(m.status)
	if strings.HasPrefix(m.status, "❌") {
		status = m.th.Alert.Render(m.status)
	}
	return header + "\n" + body + "\n\n" + status
}

const helpText = `Teclas:
  h/l       cambiar de panel (secciones / contenido)
  j/k       mover selección o desplazar
  enter     abrir detalle (cursos, especialistas)
  /         filtro de texto de la sección
  n m a t   rotar filtros de nivel, modalidad, área, tipo
  [ ]       mes anterior / siguiente (calendario)
  b         búsqueda global
  e         editar perfil (sección Perfil) / inscribirse (detalle de curso)
  ?         esta ayuda, q salir`

func (m *Model) renderHeader() string {
	s := m.svc.Summary()
	counts := fmt.Sprintf("Cursos %d · Especialistas %d · Certificaciones %d",
		s.Courses, s.Specialists, s.CompletedEvaluations)
	return m.th.Header.Render("Tablero de Capacitación") + "  " + m.th.CounterLabel.Render(counts)
}

// Program entry
func Run(svc *app.Service) error {
	svc.RestoreProfile()
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates pane sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 4
	if left < 20 {
		left = 20
	}
	if left > 30 {
		left = 30
	}
	right := m.termWidth - left - 4
	if right < 20 {
		right = 20
	}
	height := m.termHeight - 5
	if height < 5 {
		height = 5
	}
	m.secList.SetSize(left, height)
	m.content.SetWidth(right)
	m.content.SetHeight(height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.secList.Title = on + "Secciones"
		m.secList.SetDelegate(m.focusDel)
	} else {
		m.secList.Title = off + "Secciones"
		m.secList.SetDelegate(m.blurDel)
	}
}

// cycle advances a categorical criterion through "" (all) and each distinct
// value present in the collection.
func cycle(current string, values []string) string {
	options := append([]string{""}, values...)
	for i, v := range options {
		if v == current {
			return options[(i+1)%len(options)]
		}
	}
	return ""
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func courseLevels(in []catalog.Course) []string {
	vals := make([]string, 0, len(in))
	for _, c := range in {
		vals = append(vals, c.Level)
	}
	return distinct(vals)
}

func courseModalities(in []catalog.Course) []string {
	vals := make([]string, 0, len(in))
	for _, c := range in {
		vals = append(vals, c.Modality)
	}
	return distinct(vals)
}

func specialistAreas(in []catalog.Specialist) []string {
	vals := make([]string, 0, len(in))
	for _, s := range in {
		vals = append(vals, s.Area)
	}
	return distinct(vals)
}

func skillAreas(in []catalog.Skill) []string {
	vals := make([]string, 0, len(in))
	for _, s := range in {
		vals = append(vals, s.Area)
	}
	return distinct(vals)
}

func documentTypes(in []catalog.Document) []string {
	vals := make([]string, 0, len(in))
	for _, d := range in {
		vals = append(vals, d.Type)
	}
	return distinct(vals)
}
