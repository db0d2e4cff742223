package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/domain"
	"burrow/internal/services"
	"burrow/internal/state"
)

type Model struct {
	session   *state.Session
	lister    services.Lister
	protector services.Protector
	keys      KeyMap
	theme     string

	listing     domain.Listing
	haveListing bool
	loading     bool
	generation  uint64
	cancel      context.CancelFunc
	spin        spinner.Model

	cursor  int
	viewTop int
	width   int
	height  int
	status  string

	showHelp         bool
	confirmingDelete bool
	deleteTarget     domain.Entry
}

func NewModel(session *state.Session, lister services.Lister, protector services.Protector, theme string) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return Model{
		session:   session,
		lister:    lister,
		protector: protector,
		keys:      DefaultKeyMap(),
		theme:     theme,
		spin:      spin,
		width:     100,
		height:    30,
		status:    "Loading...",
	}
}

func (model Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case startMsg:
		return model.beginList(model.session.Current(), false)
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.clampView()
		return model, nil
	case spinner.TickMsg:
		if !model.loading {
			return model, nil
		}
		var cmd tea.Cmd
		model.spin, cmd = model.spin.Update(typed)
		return model, cmd
	case listResultMsg:
		if typed.generation != model.generation {
			// Superseded while in flight; interest was cancelled.
			return model, nil
		}
		model.loading = false
		model.listing = typed.listing
		model.haveListing = true
		model.cursor = 0
		model.viewTop = 0
		switch {
		case typed.listing.Failed():
			model.status = fmt.Sprintf("! %s: %s", typed.listing.Fail, typed.listing.FailDetail)
		case len(typed.listing.Entries) == 0:
			model.status = "Empty directory"
		default:
			model.status = "Ready"
		}
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		if model.cancel != nil {
			model.cancel()
		}
		model.session.Quit()
		return model, tea.Quit
	case model.confirmingDelete:
		// The prompt is modal: only y/n settle it, everything else
		// is swallowed until it is answered.
		switch {
		case key.Matches(msg, model.keys.Confirm):
			model.confirmingDelete = false
			model.status = fmt.Sprintf("Deleting %s is handled by the cleanup commands", model.deleteTarget.Name)
		case key.Matches(msg, model.keys.Cancel):
			model.confirmingDelete = false
			model.status = "Delete cancelled"
		}
		return model, nil
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Back), key.Matches(msg, model.keys.Left):
		return model.goUp()
	case key.Matches(msg, model.keys.Refresh):
		return model.beginList(model.session.Refresh(), true)
	case model.loading:
		// Remaining intents need a settled listing.
		return model, nil
	case key.Matches(msg, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
			model.clampView()
		}
		return model, nil
	case key.Matches(msg, model.keys.Down):
		if model.cursor < model.rowCount()-1 {
			model.cursor++
			model.clampView()
		}
		return model, nil
	case key.Matches(msg, model.keys.Enter), key.Matches(msg, model.keys.Right):
		return model.openSelected()
	case key.Matches(msg, model.keys.Delete):
		return model.deleteSelected()
	default:
		return model, nil
	}
}

// rowCount includes the synthetic parent row when one is shown.
func (model Model) rowCount() int {
	count := len(model.listing.Entries)
	if model.hasParentRow() {
		count++
	}
	return count
}

func (model Model) hasParentRow() bool {
	return !model.session.AtFilesystemRoot()
}

// selectedEntry maps the cursor to an entry; parentRow reports the
// synthetic "/.." row, which carries no entry of its own.
func (model Model) selectedEntry() (domain.Entry, bool, bool) {
	index := model.cursor
	if model.hasParentRow() {
		if index == 0 {
			return domain.Entry{}, true, true
		}
		index--
	}
	if index < 0 || index >= len(model.listing.Entries) {
		return domain.Entry{}, false, false
	}
	return model.listing.Entries[index], false, true
}

func (model Model) openSelected() (tea.Model, tea.Cmd) {
	entry, parentRow, ok := model.selectedEntry()
	if !ok {
		return model, nil
	}
	if parentRow {
		return model.goUp()
	}
	target, entered := model.session.Enter(entry)
	if !entered {
		model.status = fmt.Sprintf("Cannot enter file: %s", entry.Name)
		return model, nil
	}
	return model.beginList(target, false)
}

func (model Model) goUp() (tea.Model, tea.Cmd) {
	target, ok := model.session.Up()
	if !ok {
		model.status = "Already at root directory"
		return model, nil
	}
	return model.beginList(target, false)
}

func (model Model) deleteSelected() (tea.Model, tea.Cmd) {
	entry, parentRow, ok := model.selectedEntry()
	if !ok || parentRow {
		model.status = "Nothing to delete here"
		return model, nil
	}
	if model.protector != nil && model.protector.Protected(entry.Path) {
		model.status = fmt.Sprintf("Protected by whitelist: %s", entry.Name)
		return model, nil
	}
	model.confirmingDelete = true
	model.deleteTarget = entry
	model.status = fmt.Sprintf("Delete %s? (y/n)", entry.Name)
	return model, nil
}

// beginList starts listing path. Any in-flight listing is superseded:
// its context is cancelled and its eventual result discarded by the
// generation stamp (queue-of-one, no stale display).
func (model Model) beginList(path string, bypassCache bool) (Model, tea.Cmd) {
	if model.cancel != nil {
		model.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	model.cancel = cancel
	model.generation++
	model.loading = true
	model.confirmingDelete = false
	// Clear the previous listing so the view never mixes an old table
	// with the new path while the scan runs.
	model.listing = domain.Listing{Path: path}
	model.haveListing = false
	model.cursor = 0
	model.viewTop = 0
	model.status = fmt.Sprintf("Scanning %s ...", path)

	generation := model.generation
	lister := model.lister
	request := services.ListRequest{Path: path, BypassCache: bypassCache}
	listCmd := func() tea.Msg {
		return listResultMsg{generation: generation, listing: lister.List(ctx, request)}
	}
	return model, tea.Batch(listCmd, model.spin.Tick)
}

func (model *Model) clampView() {
	rows := model.rowCount()
	if rows == 0 {
		model.cursor = 0
		model.viewTop = 0
		return
	}
	if model.cursor >= rows {
		model.cursor = rows - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	height := model.listHeight()
	if height <= 0 {
		return
	}
	if model.cursor < model.viewTop {
		model.viewTop = model.cursor
	}
	if model.cursor >= model.viewTop+height {
		model.viewTop = model.cursor - height + 1
	}
	maxTop := rows - height
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	return model.height - 7
}
