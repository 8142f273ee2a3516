package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmoser/stationcal/internal/calendar"
	"github.com/kmoser/stationcal/internal/prefs"
	"github.com/kmoser/stationcal/internal/rental"
	"github.com/kmoser/stationcal/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewCalendar View = iota
	ViewSearch
	ViewBooking
)

// searchDebounce is how long typing must pause before a search fires.
const searchDebounce = 300 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *rental.Client
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *rental.Client
	store     *state.Store
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Calendar state
	weekStart       time.Time // Monday of the displayed week
	selectedDay     int       // 0..6 within the week
	selectedBooking int       // index within the selected day's bookings

	// Search state
	searchInput    textinput.Model
	searchSeq      int // bumped on every keystroke; stale results are dropped
	searchPending  bool
	searchResults  []rental.Station
	searchSelected int
	searchErr      string

	// Booking detail state
	booking       *rental.Booking
	bookingErr    string
	bookingShowID string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search stations..."
	ti.CharLimit = 100

	now := time.Now()

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		currentView: ViewCalendar,
		weekStart:   calendar.WeekOf(now)[0],
		selectedDay: weekdayIndex(now),
		searchInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampBookingSelection()
		return m, nil

	case searchDebounceMsg:
		return m.handleSearchDebounce(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case bookingMsg:
		return m.handleBookingResult(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewSearch:
		b.WriteString(m.renderSearch())
	case ViewBooking:
		b.WriteString(m.renderBooking())
	default:
		b.WriteString(m.renderCalendar())
	}

	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Search owns the keyboard while the input has focus
	if m.currentView == ViewSearch {
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/", "s":
		return m.openSearch()

	case "esc":
		m.currentView = ViewCalendar
		return m, nil
	}

	switch m.currentView {
	case ViewBooking:
		return m.handleBookingKey(msg)
	default:
		return m.handleCalendarKey(msg)
	}
}

// handleCalendarKey processes keyboard input for the weekly calendar.
func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.selectedDay > 0 {
			m.selectedDay--
		} else {
			m.weekStart = calendar.PrevWeek(m.weekStart)
			m.selectedDay = 6
		}
		m.selectedBooking = 0

	case "right", "l":
		if m.selectedDay < 6 {
			m.selectedDay++
		} else {
			m.weekStart = calendar.NextWeek(m.weekStart)
			m.selectedDay = 0
		}
		m.selectedBooking = 0

	case "H", "pgup":
		m.weekStart = calendar.PrevWeek(m.weekStart)
		m.selectedBooking = 0

	case "L", "pgdown":
		m.weekStart = calendar.NextWeek(m.weekStart)
		m.selectedBooking = 0

	case "j", "down":
		if m.selectedBooking < len(m.selectedDayBookings())-1 {
			m.selectedBooking++
		}

	case "k", "up":
		if m.selectedBooking > 0 {
			m.selectedBooking--
		}

	case "t":
		now := time.Now()
		m.weekStart = calendar.WeekOf(now)[0]
		m.selectedDay = weekdayIndex(now)
		m.selectedBooking = 0

	case "enter":
		return m.openSelectedBooking()
	}

	return m, nil
}

// handleBookingKey processes keyboard input for the booking detail view.
func (m Model) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "backspace":
		m.currentView = ViewCalendar
		m.booking = nil
		m.bookingErr = ""
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// openSelectedBooking switches to the detail view for the highlighted
// booking and kicks off the fetch.
func (m Model) openSelectedBooking() (tea.Model, tea.Cmd) {
	bookings := m.selectedDayBookings()
	if m.selectedBooking >= len(bookings) {
		return m, nil
	}

	b := bookings[m.selectedBooking].Booking
	m.currentView = ViewBooking
	m.booking = nil
	m.bookingErr = ""
	m.bookingShowID = b.ID
	return m, fetchBookingCmd(m.ctx, m.client, m.snapshot.Station.ID, b.ID)
}

// handleBookingResult stores the fetched booking or its error message.
func (m Model) handleBookingResult(msg bookingMsg) (tea.Model, tea.Cmd) {
	if m.currentView != ViewBooking || msg.bookingID != m.bookingShowID {
		return m, nil
	}

	if msg.err != nil {
		var httpErr *rental.HTTPError
		if errors.As(msg.err, &httpErr) && httpErr.Status == 404 {
			m.bookingErr = fmt.Sprintf("Booking with id %s not found", msg.bookingID)
		} else {
			m.bookingErr = "Failed to fetch booking details"
		}
		return m, nil
	}

	m.booking = msg.booking
	return m, nil
}

// selectedDayBookings returns the bookings occupying the highlighted day.
func (m Model) selectedDayBookings() []calendar.DayBooking {
	if !m.snapshot.HasStation {
		return nil
	}
	day := m.weekStart.AddDate(0, 0, m.selectedDay)
	return calendar.BookingsOn(m.snapshot.Station, day)
}

// clampBookingSelection keeps the booking cursor in range after a refresh
// shrinks the selected day.
func (m *Model) clampBookingSelection() {
	n := len(m.selectedDayBookings())
	if n == 0 {
		m.selectedBooking = 0
		return
	}
	if m.selectedBooking >= n {
		m.selectedBooking = n - 1
	}
}

// weekdayIndex maps a time to its Monday-first index in the week.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type searchDebounceMsg struct {
	seq int
}

type searchResultMsg struct {
	seq      int
	stations []rental.Station
	err      error
}

type bookingMsg struct {
	bookingID string
	booking   *rental.Booking
	err       error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func fetchBookingCmd(ctx context.Context, client *rental.Client, stationID, bookingID string) tea.Cmd {
	return func() tea.Msg {
		b, err := client.GetBooking(ctx, stationID, bookingID)
		return bookingMsg{bookingID: bookingID, booking: b, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
