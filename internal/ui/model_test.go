package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burrow/internal/domain"
	"burrow/internal/services"
	"burrow/internal/state"
)

func dataListing() domain.Listing {
	return domain.Listing{
		Path: "/data",
		Entries: []domain.Entry{
			{Name: "sub", Path: "/data/sub", Kind: domain.KindDir, SizeBytes: 2048},
			{Name: "notes.txt", Path: "/data/notes.txt", Kind: domain.KindFile, SizeBytes: 512},
		},
		TotalBytes: 2560,
	}
}

func newTestModel(root string, lister services.Lister, protector services.Protector) Model {
	return NewModel(state.NewSession(root), lister, protector, "dark")
}

func update(t *testing.T, model Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := model.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

// collectMsgs runs a command tree and flattens the messages it yields.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, collectMsgs(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findListResult(t *testing.T, msgs []tea.Msg) listResultMsg {
	t.Helper()
	for _, msg := range msgs {
		if result, ok := msg.(listResultMsg); ok {
			return result
		}
	}
	t.Fatal("no listing result produced")
	return listResultMsg{}
}

func keyMsg(runes string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)}
}

func loadModel(t *testing.T, model Model) Model {
	t.Helper()
	model, cmd := update(t, model, startMsg{})
	result := findListResult(t, collectMsgs(cmd))
	model, _ = update(t, model, result)
	return model
}

func TestLoadsListingOnStart(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := newTestModel("/data", lister, nil)

	model, cmd := update(t, model, startMsg{})
	assert.True(t, model.loading)
	assert.True(t, strings.HasPrefix(model.status, "Scanning /data"))

	result := findListResult(t, collectMsgs(cmd))
	model, _ = update(t, model, result)

	assert.False(t, model.loading)
	assert.True(t, model.haveListing)
	assert.Equal(t, "Ready", model.status)
	assert.Len(t, model.listing.Entries, 2)

	calls := lister.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/data", calls[0].Path)
	assert.False(t, calls[0].BypassCache)
}

func TestStaleResultDropped(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := newTestModel("/data", lister, nil)

	model, _ = update(t, model, startMsg{})
	stale := listResultMsg{generation: model.generation - 1, listing: dataListing()}
	model, _ = update(t, model, stale)

	assert.True(t, model.loading)
	assert.False(t, model.haveListing)
}

func TestRefreshBypassesCache(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, cmd := update(t, model, keyMsg("r"))
	assert.True(t, model.loading)
	findListResult(t, collectMsgs(cmd))

	calls := lister.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/data", calls[1].Path)
	assert.True(t, calls[1].BypassCache)
}

func TestEnterFileShowsNotice(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	// Cursor 0 is the parent row; two steps down selects the file.
	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, model.loading)
	assert.Equal(t, "Cannot enter file: notes.txt", model.status)
	assert.Len(t, lister.Calls(), 1)
}

func TestEnterDirectoryStartsScan(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, _ = update(t, model, keyMsg("j"))
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, model.loading)
	findListResult(t, collectMsgs(cmd))

	calls := lister.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/data/sub", calls[1].Path)
}

func TestParentRowGoesUp(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, model.loading)
	findListResult(t, collectMsgs(cmd))

	calls := lister.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/", calls[1].Path)
}

func TestUpAtFilesystemRootBlocked(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/"] = domain.Listing{Path: "/"}
	model := loadModel(t, newTestModel("/", lister, nil))

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.False(t, model.loading)
	assert.Equal(t, "Already at root directory", model.status)
	assert.Len(t, lister.Calls(), 1)
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := newTestModel("/data", lister, nil)

	model, cmd := update(t, model, startMsg{})
	require.True(t, model.loading)
	findListResult(t, collectMsgs(cmd))

	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, model.cursor)
	assert.Len(t, lister.Calls(), 1)
}

func TestDeleteProtectedEntry(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	protector := services.ProtectorFunc(func(path string) bool {
		return path == "/data/sub"
	})
	model := loadModel(t, newTestModel("/data", lister, protector))

	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, keyMsg("d"))

	assert.False(t, model.confirmingDelete)
	assert.Equal(t, "Protected by whitelist: sub", model.status)
}

func TestDeleteConfirmFlow(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, keyMsg("d"))

	assert.True(t, model.confirmingDelete)
	assert.Equal(t, "Delete sub? (y/n)", model.status)

	model, _ = update(t, model, keyMsg("y"))
	assert.False(t, model.confirmingDelete)
	assert.Contains(t, model.status, "Deleting sub")
}

func TestDeletePromptIsModal(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, keyMsg("d"))
	require.True(t, model.confirmingDelete)

	// Navigation and refresh keys do nothing until y/n answers.
	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model, _ = update(t, model, keyMsg("r"))
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.True(t, model.confirmingDelete)
	assert.Equal(t, 1, model.cursor)
	assert.Equal(t, "Delete sub? (y/n)", model.status)
	assert.Len(t, lister.Calls(), 1)

	model, _ = update(t, model, keyMsg("n"))
	assert.False(t, model.confirmingDelete)
}

func TestDeleteCancelFlow(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	model := loadModel(t, newTestModel("/data", lister, nil))

	model, _ = update(t, model, keyMsg("j"))
	model, _ = update(t, model, keyMsg("d"))
	require.True(t, model.confirmingDelete)

	model, _ = update(t, model, keyMsg("n"))
	assert.False(t, model.confirmingDelete)
	assert.Equal(t, "Delete cancelled", model.status)
}

func TestFailedListingShowsDiagnostic(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = domain.Listing{
		Path:       "/data",
		Fail:       domain.FailPermission,
		FailDetail: "open /data: permission denied",
	}
	model := loadModel(t, newTestModel("/data", lister, nil))

	assert.True(t, strings.HasPrefix(model.status, "! permission denied"))
	view := model.View()
	assert.Contains(t, view, "permission denied")
}

func TestQuitExitsSession(t *testing.T) {
	lister := services.NewMockLister()
	lister.Listings["/data"] = dataListing()
	session := state.NewSession("/data")
	model := loadModel(t, NewModel(session, lister, nil, "dark"))

	_, cmd := update(t, model, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, state.Exited, session.Phase())
}
