// Package tui provides a Bubble Tea terminal interface for searching
// Bandcamp and browsing the metadata records derived from a release.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snejus/beetcamp-sub000/internal/bandcamp"
	"github.com/snejus/beetcamp-sub000/internal/config"
	"github.com/snejus/beetcamp-sub000/internal/fetch"
	"github.com/snejus/beetcamp-sub000/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateSearching
	StateResults
	StateFetching
	StateView
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   fetch.ProgressLevel
}

// record pairs one release record with the page it came from.
type record struct {
	url string
	rec model.ReleaseRecord
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	fetcher   *fetch.Fetcher
	events    chan fetch.ProgressEvent
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	// search results and the cursor within them
	results  []bandcamp.SearchResult
	selected int

	// fetched records and the one on display
	records []record
	current int
	rawJSON bool

	fetched int
	toFetch int

	// Options
	tracksOnly bool
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "release URL or search query"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	events := make(chan fetch.ProgressEvent, 64)
	fetcher, err := fetch.New(settings, func(event fetch.ProgressEvent) {
		select {
		case events <- event:
		default:
		}
	})
	if err != nil {
		return Model{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		fetcher:   fetcher,
		events:    events,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.listenEvents())
}

// Message types
type (
	// SearchDoneMsg is sent when a search completes.
	SearchDoneMsg struct {
		Results []bandcamp.SearchResult
		Err     error
	}

	// FetchDoneMsg is sent when release pages have been fetched and
	// parsed.
	FetchDoneMsg struct {
		Results []*fetch.Result
		Err     error
	}

	// ProgressMsg carries one fetcher progress event.
	ProgressMsg struct {
		Event fetch.ProgressEvent
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		newModel, cmd, handled := m.handleKey(msg)
		if handled {
			return newModel, cmd
		}
		m = newModel

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.listenEvents())
		if msg.Event.Level == fetch.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		if m.state == StateFetching && msg.Event.Level == fetch.LevelInfo {
			m.fetched++
			if m.toFetch > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.fetched)/float64(m.toFetch)))
			}
		}

	case SearchDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.results = msg.Results
			m.selected = 0
			m.state = StateResults
		}

	case FetchDoneMsg:
		switch {
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		case len(msg.Results) == 0:
			m.state = StateError
			m.err = fmt.Errorf("no releases could be fetched")
		default:
			m.records = nil
			for _, res := range msg.Results {
				for _, rec := range res.Records {
					m.records = append(m.records, record{url: res.URL, rec: rec})
				}
			}
			m.current = 0
			m.state = StateView
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses. handled reports that the key ended
// the update cycle.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true

	case "esc":
		switch m.state {
		case StateInput:
			return m, tea.Quit, true
		case StateSearching, StateFetching:
			m.cancel()
			m.ctx, m.cancel = context.WithCancel(context.Background())
			m.state = StateInput
			m.textInput.Focus()
		case StateResults, StateView, StateError:
			m.reset()
		}

	case "enter":
		switch m.state {
		case StateInput:
			if input := strings.TrimSpace(m.textInput.Value()); input != "" {
				return m.submit(input)
			}
		case StateResults:
			if len(m.results) > 0 {
				m.state = StateFetching
				m.fetched, m.toFetch = 0, 1
				return m, tea.Batch(m.fetchReleases(m.results[m.selected].URL), m.spinner.Tick), true
			}
		}

	case "up", "k":
		if m.state == StateResults && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == StateResults && m.selected < len(m.results)-1 {
			m.selected++
		}

	case "left", "h":
		if m.state == StateView && m.current > 0 {
			m.current--
		}

	case "right", "l":
		if m.state == StateView && m.current < len(m.records)-1 {
			m.current++
		}

	case "J":
		if m.state == StateView {
			m.rawJSON = !m.rawJSON
		}

	case "t":
		if m.state == StateInput {
			m.tracksOnly = !m.tracksOnly
		}

	case "v":
		if m.state == StateInput {
			m.verbose = !m.verbose
		}

	case "q":
		if m.state == StateResults || m.state == StateView || m.state == StateError {
			return m, tea.Quit, true
		}

	case "r":
		if m.state == StateView || m.state == StateError {
			m.reset()
		}
	}
	return m, nil, false
}

// submit routes the input line: URLs are fetched directly, anything
// else becomes a search query.
func (m Model) submit(input string) (Model, tea.Cmd, bool) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		m.state = StateFetching
		m.fetched, m.toFetch = 0, 1
		return m, tea.Batch(m.fetchReleases(input), m.spinner.Tick), true
	}
	m.state = StateSearching
	return m, tea.Batch(m.search(input), m.spinner.Tick), true
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.results = nil
	m.records = nil
	m.selected = 0
	m.current = 0
	m.err = nil
	m.rawJSON = false
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-m.events}
	}
}

func (m Model) search(query string) tea.Cmd {
	ctx := m.ctx
	itemType := ""
	if m.tracksOnly {
		itemType = "t"
	}
	fetcher := m.fetcher
	return func() tea.Msg {
		results, err := fetcher.Search(ctx, bandcamp.SearchQuery{Name: query}, itemType)
		return SearchDoneMsg{Results: results, Err: err}
	}
}

func (m Model) fetchReleases(input string) tea.Cmd {
	ctx := m.ctx
	fetcher := m.fetcher
	return func() tea.Msg {
		urls, err := fetcher.ExpandURL(ctx, input)
		if err != nil {
			return FetchDoneMsg{Err: err}
		}
		results, err := fetcher.Releases(ctx, urls)
		return FetchDoneMsg{Results: results, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("beetcamp"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Bandcamp release metadata browser"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateSearching:
		b.WriteString(m.spinner.View() + " " + subtitleStyle.Render("Searching..."))
		b.WriteString("\n\n" + m.renderLogs())
	case StateResults:
		b.WriteString(m.viewResults())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateView:
		b.WriteString(m.viewRecord())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a Bandcamp URL or a search query:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	tracksCheck := "[ ]"
	if m.tracksOnly {
		tracksCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Search tracks only (t)\n", tracksCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("%d results:", len(m.results))))
	b.WriteString("\n\n")

	for i, res := range m.results {
		line := fmt.Sprintf("%2d. [%s] %s", res.Index, res.Type, res.Name)
		if res.Artist != "" {
			line += " by " + res.Artist
		}
		if res.Genre != "" {
			line += dimStyle.Render(" · " + res.Genre)
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching release metadata..."))
	b.WriteString("\n\n")
	if m.toFetch > 1 {
		b.WriteString(m.progress.ViewAs(float64(m.fetched) / float64(m.toFetch)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewRecord() string {
	if len(m.records) == 0 {
		return errorStyle.Render("nothing to show")
	}
	cur := m.records[m.current]
	rec := cur.rec

	header := fmt.Sprintf("Record %d/%d · %s", m.current+1, len(m.records), cur.url)

	if m.rawJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return dimStyle.Render(header) + "\n\n" + string(data)
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(header))
	b.WriteString("\n\n")

	field := func(name, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", fieldStyle.Render(name+":"), value))
		}
	}
	title := rec.Album
	if title == "" && len(rec.Tracks) == 1 {
		title = rec.Tracks[0].Title
	}
	b.WriteString(boxStyle.Render(fmt.Sprintf("%s - %s", rec.Artist, title)))
	b.WriteString("\n\n")
	field("Type", rec.AlbumType)
	field("Label", rec.Label)
	field("Catalognum", rec.Catalognum)
	if rec.Year > 0 {
		field("Released", fmt.Sprintf("%04d-%02d-%02d", rec.Year, rec.Month, rec.Day))
	}
	field("Country", rec.Country)
	field("Media", rec.Media)
	field("Style", rec.Style)
	field("Genres", strings.Join(rec.Genres, ", "))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d tracks:", len(rec.Tracks))))
	b.WriteString("\n")
	for _, tr := range rec.Tracks {
		alt := ""
		if tr.TrackAlt != "" {
			alt = " [" + tr.TrackAlt + "]"
		}
		length := ""
		if tr.Length > 0 {
			length = fmt.Sprintf(" (%d:%02d)", tr.Length/60, tr.Length%60)
		}
		b.WriteString(fmt.Sprintf("  %2d.%s %s - %s%s\n", tr.Index, alt, tr.Artist, tr.Title, length))
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + m.err.Error())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch log.Level {
		case fetch.LevelError:
			style = errorStyle
			prefix = "x"
		case fetch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case fetch.LevelSuccess:
			style = successStyle
			prefix = "+"
		case fetch.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: go · t: tracks only · v: verbose · esc: quit"
	case StateSearching, StateFetching:
		return "esc: cancel"
	case StateResults:
		return "up/down: select · enter: fetch · esc: back · q: quit"
	case StateView:
		return "left/right: records · J: toggle json · r: new search · q: quit"
	case StateError:
		return "r: retry · q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	m, err := NewModel(settings)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
