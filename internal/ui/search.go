package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmoser/stationcal/internal/rental"
	"github.com/kmoser/stationcal/internal/state"
)

// openSearch switches to the search view with a fresh input.
func (m Model) openSearch() (tea.Model, tea.Cmd) {
	m.currentView = ViewSearch
	m.searchInput.SetValue("")
	m.searchResults = nil
	m.searchSelected = 0
	m.searchErr = ""
	m.searchPending = false
	return m, m.searchInput.Focus()
}

// handleSearchKey processes keyboard input for the search view.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.currentView = ViewCalendar
		m.searchInput.Blur()
		return m, nil

	case "down":
		if m.searchSelected < len(m.searchResults)-1 {
			m.searchSelected++
		}
		return m, nil

	case "up":
		if m.searchSelected > 0 {
			m.searchSelected--
		}
		return m, nil

	case "enter":
		return m.selectSearchResult()
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Every edit invalidates in-flight queries; only the newest sequence
	// number is allowed to deliver results.
	if m.searchInput.Value() != before {
		m.searchSeq++
		m.searchPending = true
		m.searchErr = ""
		m.searchSelected = 0
		return m, tea.Batch(cmd, searchDebounceCmd(m.searchSeq))
	}

	return m, cmd
}

// handleSearchDebounce fires the query once typing has paused.
func (m Model) handleSearchDebounce(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		return m, nil // superseded by later keystrokes
	}

	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.searchPending = false
		m.searchResults = nil
		return m, nil
	}

	return m, searchCmd(m.ctx, m.client, msg.seq, query)
}

// handleSearchResult applies a finished query, dropping stale responses.
func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		return m, nil
	}

	m.searchPending = false
	if msg.err != nil {
		m.searchErr = "Failed to fetch stations"
		m.searchResults = nil
		return m, nil
	}

	m.searchErr = ""
	m.searchResults = msg.stations
	if m.searchSelected >= len(m.searchResults) {
		m.searchSelected = 0
	}
	return m, nil
}

// selectSearchResult makes the highlighted station the dashboard's subject.
func (m Model) selectSearchResult() (tea.Model, tea.Cmd) {
	if m.searchSelected >= len(m.searchResults) {
		return m, nil
	}

	station := m.searchResults[m.searchSelected]
	m.currentView = ViewCalendar
	m.searchInput.Blur()
	m.selectedBooking = 0

	if m.store == nil {
		return m, nil
	}
	m.store.SelectStation(station.ID)
	return m, selectStationCmd(m.ctx, m.client, m.store, station.ID)
}

// renderSearch renders the station search view.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(styles.AccentText.Bold(true).Render("Station search"))
	b.WriteString("\n\n ")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	switch {
	case m.searchErr != "":
		b.WriteString(" ")
		b.WriteString(styles.DangerText.Render(m.searchErr))
		b.WriteString("\n")

	case m.searchPending:
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render("Searching..."))
		b.WriteString("\n")

	case len(m.searchResults) == 0:
		hint := "Type to search stations by name"
		if strings.TrimSpace(m.searchInput.Value()) != "" {
			hint = "No stations found"
		}
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(hint))
		b.WriteString("\n")

	default:
		for i, station := range m.searchResults {
			line := fmt.Sprintf(" %s  #%s ", station.Name, station.ID)
			if i == m.searchSelected {
				b.WriteString(styles.Selected.Render(" >" + line))
			} else {
				b.WriteString(styles.Text.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n ")
	b.WriteString(styles.FaintText.Render("enter select • esc cancel"))
	return b.String()
}

// Commands

func searchDebounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func searchCmd(ctx context.Context, client *rental.Client, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		stations, err := client.SearchStations(ctx, query)
		return searchResultMsg{seq: seq, stations: stations, err: err}
	}
}

func selectStationCmd(ctx context.Context, client *rental.Client, store *state.Store, stationID string) tea.Cmd {
	return func() tea.Msg {
		station, err := client.GetStation(ctx, stationID)
		store.Update(station, err)
		return snapshotMsg(store.Snapshot())
	}
}
