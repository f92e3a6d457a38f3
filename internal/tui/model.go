package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelmartins/agendapet/internal/config"
	"github.com/rafaelmartins/agendapet/internal/schedule"
	"github.com/rafaelmartins/agendapet/internal/task"
	"github.com/rafaelmartins/agendapet/internal/tui/commands"
	"github.com/rafaelmartins/agendapet/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskForm
	ModalConfirmDelete
)

// Form field indices for the booking modal.
const (
	fieldClient = iota
	fieldPet
	fieldContact
	fieldType
	fieldPrice
	fieldDeadline
	formFieldCount
)

// formPaymentFocus is the pseudo-field after the text inputs: the payment
// status toggle. Submit sits one past it.
const (
	formPaymentFocus = formFieldCount
	formSubmitFocus  = formFieldCount + 1
)

var paymentOptions = []task.PaymentStatus{"", task.PaymentPending, task.PaymentPaid}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   task.Repository
	config *config.Config
	parser *task.Parser

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state
	state    schedule.State
	tasks    []*task.Task
	selected int // index into the visible period events
	loading  bool

	// Modal state
	mode        Mode
	modalType   ModalType
	modalTask   *task.Task // appointment being edited (nil for new)
	deleteTask  *task.Task
	form        [formFieldCount]textinput.Model
	formFocus   int
	formPayment int // index into paymentOptions
	formError   string
	draft       schedule.Draft

	// Search
	search     textinput.Model
	searchTerm string

	// Overlay state
	overlay Overlay

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	now func() time.Time
}

var formPlaceholders = [formFieldCount]string{
	fieldClient:   "Nome do tutor",
	fieldPet:      "Nome do pet",
	fieldContact:  "Telefone ou email",
	fieldType:     "banho, tosa, consulta...",
	fieldPrice:    "0.00",
	fieldDeadline: "DD/MM/AAAA HH:mm",
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}
	styles := NewStyles(t)

	view, verr := schedule.ParseView(cfg.UI.DefaultView)
	if verr != nil {
		view = schedule.ViewWeek
	}

	m := &Model{
		repo:    repo,
		config:  cfg,
		parser:  task.NewParser(task.HourOffset),
		theme:   t,
		styles:  styles,
		state:   schedule.NewState(time.Now(), view),
		mode:    ModeNormal,
		overlay: NewOverlay(),
		loading: true,
		now:     time.Now,
	}

	for i := range m.form {
		ti := textinput.New()
		ti.Placeholder = formPlaceholders[i]
		ti.CharLimit = 128
		ti.Width = 32
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		m.form[i] = ti
	}

	search := textinput.New()
	search.Placeholder = "buscar tutor, pet ou contato"
	search.CharLimit = 64
	search.Width = 40
	m.search = search

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadTasks(m.repo)
}

// findTask resolves an appointment by ID from the loaded collection.
func (m *Model) findTask(id int64) *task.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// visibleTasks applies the active search filter to the loaded collection.
func (m *Model) visibleTasks() []*task.Task {
	if m.searchTerm == "" {
		return m.tasks
	}
	return schedule.FilterMatching(m.tasks, m.searchTerm)
}

// periodEvents flattens the current period's events in day order, giving
// the selection cursor a stable sequence to walk. The sequence covers the
// whole visible range, so month and year cells stay reachable.
func (m *Model) periodEvents() []schedule.EventBox {
	tasks := m.visibleTasks()
	switch m.state.View {
	case schedule.ViewDay:
		return schedule.DayEvents(m.parser, tasks, m.state.Pivot)
	case schedule.ViewWeek:
		var events []schedule.EventBox
		for _, day := range schedule.WeekDays(m.parser, tasks, m.state.Pivot, m.now()) {
			events = append(events, day.Events...)
		}
		return events
	default:
		start, end := m.state.Range()
		buckets := schedule.BucketByDay(m.parser, tasks, start, end)

		days := make([]schedule.DateKey, 0, len(buckets))
		for day := range buckets {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool {
			return days[i].Time().Before(days[j].Time())
		})

		var events []schedule.EventBox
		for _, day := range days {
			events = append(events, schedule.DayEvents(m.parser, buckets[day], day.Time())...)
		}
		return events
	}
}

func (m *Model) clampSelection() {
	n := len(m.periodEvents())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo task.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
