package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

func testClient() *api.Client {
	// nothing in these tests executes a command, so the URL is never hit
	return api.New("http://127.0.0.1:1", time.Second, nil, nil)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResourcePage_FilterSwitchTriggersSingleFetch(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())

	seqBefore := p.seq
	p, cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyRight})

	if cmd == nil {
		t.Fatal("switching filter should return a fetch command")
	}
	if p.filter != 1 {
		t.Errorf("filter = %d, want 1", p.filter)
	}
	if p.seq != seqBefore+1 {
		t.Errorf("seq = %d, want %d (each switch invalidates in-flight fetches)", p.seq, seqBefore+1)
	}
	if !p.loading {
		t.Error("page should be loading after a filter switch")
	}
}

func TestResourcePage_FilterWrapsAround(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())

	p, _ = p.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if p.filter != 1 {
		t.Errorf("filter = %d, want 1 (left from first tab wraps to last)", p.filter)
	}
}

func TestResourcePage_FetchReplacesRows(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 3
	p.loading = true

	visits := []models.Visit{
		{ID: "v1", DockNumber: "A-1", CheckInTime: time.Now()},
		{ID: "v2", DockNumber: "A-2", CheckInTime: time.Now()},
	}
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 3, items: visits})

	if p.loading {
		t.Error("page should not be loading after the fetch lands")
	}
	if got := len(p.table.Rows()); got != 2 {
		t.Errorf("table has %d rows, want 2", got)
	}

	// a smaller result set replaces, never appends
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 3, items: visits[:1]})
	if got := len(p.table.Rows()); got != 1 {
		t.Errorf("table has %d rows after refetch, want 1", got)
	}
}

func TestResourcePage_StaleFetchIsIgnored(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 5
	p.loading = true

	stale := []models.Visit{{ID: "old", DockNumber: "Z-9", CheckInTime: time.Now()}}
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 4, items: stale})

	if !p.loading {
		t.Error("stale response must not clear the loading state")
	}
	if len(p.table.Rows()) != 0 {
		t.Error("stale response must not replace rows")
	}
}

func TestResourcePage_WrongPageFetchIsIgnored(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 1

	p, _ = p.update(listFetchedMsg{page: pageDocks, seq: 1, items: []models.Dock{{ID: "d1"}}})
	if len(p.table.Rows()) != 0 {
		t.Error("a fetch for another page must be ignored")
	}
}

func TestResourcePage_FetchErrorKeepsRows(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 1
	visits := []models.Visit{{ID: "v1", DockNumber: "A-1", CheckInTime: time.Now()}}
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 1, items: visits})

	p.seq = 2
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 2, err: &api.Error{Status: 500, Message: "boom"}})

	if got := len(p.table.Rows()); got != 1 {
		t.Errorf("table has %d rows after failed refresh, want 1 (stale rows kept)", got)
	}
	if p.notice != "boom" {
		t.Errorf("notice = %q, want backend message", p.notice)
	}
}

func TestResourcePage_DeleteConfirmFlow(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 1
	visits := []models.Visit{{ID: "v1", DockNumber: "A-1", CheckInTime: time.Now()}}
	p, _ = p.update(listFetchedMsg{page: pageVisits, seq: 1, items: visits})

	p, _ = p.handleKey(keyRune('d'))
	if p.mode != modeConfirm {
		t.Fatalf("mode = %v, want modeConfirm after d", p.mode)
	}

	// n backs out without a command
	p, cmd := p.handleKey(keyRune('n'))
	if p.mode != modeBrowse {
		t.Errorf("mode = %v, want modeBrowse after n", p.mode)
	}
	if cmd != nil {
		t.Error("cancelling a delete must not return a command")
	}

	// y issues the delete
	p, _ = p.handleKey(keyRune('d'))
	p, cmd = p.handleKey(keyRune('y'))
	if cmd == nil {
		t.Error("confirming a delete should return a command")
	}
	if p.mode != modeBrowse {
		t.Errorf("mode = %v, want modeBrowse after confirming", p.mode)
	}
}

func TestResourcePage_DeleteWithNoRowsIsNoop(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())

	p, _ = p.handleKey(keyRune('d'))
	if p.mode != modeBrowse {
		t.Errorf("mode = %v, want modeBrowse (nothing to delete)", p.mode)
	}
}

func TestResourcePage_DeleteDoneRefetches(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())
	p.seq = 1

	p, cmd := p.update(deleteDoneMsg{page: pageVisits})
	if cmd == nil {
		t.Error("a successful delete should trigger a refetch")
	}
	if p.seq != 2 {
		t.Errorf("seq = %d, want 2 after refetch", p.seq)
	}
}

func TestResourcePage_FormValidationBlocksSubmit(t *testing.T) {
	p := newResourcePage(testClient(), customersSpec())

	p, _ = p.handleKey(keyRune('n'))
	if p.mode != modeForm {
		t.Fatalf("mode = %v, want modeForm after n", p.mode)
	}

	// submitting an empty form sets inline errors and makes no call
	p, cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("invalid form must not produce a network command")
	}
	if p.mode != modeForm {
		t.Error("invalid form must stay open")
	}
	if p.form.errs["firstName"] != "Required" {
		t.Errorf("errs[firstName] = %q, want Required", p.form.errs["firstName"])
	}
	if p.form.submitting {
		t.Error("invalid form must not enter submitting state")
	}
}

func TestResourcePage_EscClosesFormDiscardingInput(t *testing.T) {
	p := newResourcePage(testClient(), customersSpec())

	p, _ = p.handleKey(keyRune('n'))
	p, _ = p.handleKey(keyRune('J')) // type into the first field
	p, _ = p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if p.mode != modeBrowse {
		t.Fatalf("mode = %v, want modeBrowse after esc", p.mode)
	}

	// reopening starts from defaults
	p, _ = p.handleKey(keyRune('n'))
	if got := p.form.value("firstName"); got != "" {
		t.Errorf("firstName = %q, want empty (discarded input must not survive)", got)
	}
}

func TestResourcePage_MutationErrorKeepsModalOpen(t *testing.T) {
	p := newResourcePage(testClient(), customersSpec())
	p, _ = p.handleKey(keyRune('n'))
	p.form.submitting = true

	p, _ = p.update(mutationDoneMsg{page: pageCustomers, err: &api.Error{Status: 400, Message: "email must be an email"}})

	if p.mode != modeForm {
		t.Error("failed save must keep the modal open")
	}
	if p.form.notice != "email must be an email" {
		t.Errorf("form.notice = %q, want backend message", p.form.notice)
	}
	if p.form.submitting {
		t.Error("failed save must clear the submitting flag")
	}
}

func TestResourcePage_MutationSuccessClosesAndRefetches(t *testing.T) {
	p := newResourcePage(testClient(), customersSpec())
	p, _ = p.handleKey(keyRune('n'))
	p.seq = 1

	p, cmd := p.update(mutationDoneMsg{page: pageCustomers})
	if p.mode != modeBrowse {
		t.Error("successful save must close the modal")
	}
	if cmd == nil {
		t.Error("successful save must trigger a refetch")
	}
}

func TestResourcePage_SearchRestoresFilterOnEsc(t *testing.T) {
	p := newResourcePage(testClient(), customersSpec())

	p, _ = p.handleKey(keyRune('/'))
	if p.mode != modeSearch {
		t.Fatalf("mode = %v, want modeSearch after /", p.mode)
	}

	p, cmd := p.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if p.mode != modeBrowse {
		t.Errorf("mode = %v, want modeBrowse after esc", p.mode)
	}
	if cmd == nil {
		t.Error("leaving search should refetch the active filter")
	}
}

func TestResourcePage_NoSearchOnPagesWithoutIt(t *testing.T) {
	p := newResourcePage(testClient(), visitsSpec())

	p, _ = p.handleKey(keyRune('/'))
	if p.mode != modeBrowse {
		t.Errorf("mode = %v, want modeBrowse (visits page has no search)", p.mode)
	}
}

func TestResourcePage_HelpListsExtrasInStableOrder(t *testing.T) {
	spec := customersSpec()
	spec.extras["z"] = extraAction{name: "Zap"}
	spec.extras["a"] = extraAction{name: "Audit"}
	p := newResourcePage(testClient(), spec)

	help := p.helpLine()
	ai := strings.Index(help, "a: Audit")
	pi := strings.Index(help, "p: ")
	zi := strings.Index(help, "z: Zap")
	if ai < 0 || pi < 0 || zi < 0 {
		t.Fatalf("helpLine() = %q, want all extras listed", help)
	}
	if !(ai < pi && pi < zi) {
		t.Errorf("helpLine() = %q, want extras ordered a, p, z", help)
	}
}
