package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborview/marinadesk/internal/api"
)

// page identifies a top-level screen
type page int

const (
	pageDashboard page = iota
	pageCustomers
	pageVisits
	pageDocks
	pageAssets
	pageMaintenance
	pageRequests
	pageFeedback
	pageAnalytics
	pageLogin
)

// filterTab is one tab on a resource page. Switching to it replaces the
// table contents with exactly one fetch.
type filterTab struct {
	name  string
	fetch func(ctx context.Context, c *api.Client) (any, error)
}

// submitFn validates the open form and either sets its errors (returning
// nil, no network call) or returns the command that performs the write
type submitFn func(c *api.Client, f *formModel) tea.Cmd

// extraAction is a keyboard shortcut on a resource page that opens its
// own modal (e.g. adding loyalty points to a customer)
type extraAction struct {
	name string
	form func(items any, idx int) (formModel, submitFn, bool)
}

// resourceSpec describes one resource page: its filters, table shape, and
// form wiring. The generic resourcePage drives everything else.
type resourceSpec struct {
	page          page
	title         string
	filters       []filterTab
	columns       []table.Column
	rows          func(items any) []table.Row
	count         func(items any) int
	confirmPrompt func(items any, idx int) string
	newForm       func() (formModel, submitFn)
	editForm      func(items any, idx int) (formModel, submitFn)
	remove        func(ctx context.Context, c *api.Client, items any, idx int) error
	search        func(ctx context.Context, c *api.Client, term string) (any, error)
	extras        map[string]extraAction
}

type resourceMode int

const (
	modeBrowse resourceMode = iota
	modeForm
	modeConfirm
	modeSearch
)

// resourcePage is the shared list/filter/modal machinery behind every
// resource screen
type resourcePage struct {
	client *api.Client
	spec   resourceSpec

	table   table.Model
	spinner spinner.Model
	items   any
	filter  int
	seq     int
	loading bool
	loaded  bool
	notice  string
	isErr   bool

	mode       resourceMode
	form       formModel
	submit     submitFn
	confirmIdx int
	searchIn   textinput.Model
}

func newResourcePage(client *api.Client, spec resourceSpec) resourcePage {
	t := table.New(
		table.WithColumns(spec.columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(colorPrimary).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("#FFFFFF")).Background(colorBorder)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 80
	si.Width = 40

	return resourcePage{client: client, spec: spec, table: t, spinner: sp, searchIn: si}
}

// fetchList runs one filter fetch in the background
func fetchList(p page, seq int, fn func(ctx context.Context) (any, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := fn(ctx)
		return listFetchedMsg{page: p, seq: seq, items: items, err: err}
	}
}

// mutate runs a create or update in the background
func mutate(p page, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return mutationDoneMsg{page: p, err: fn(ctx)}
	}
}

// refresh re-runs the active filter, invalidating any in-flight fetch
func (p *resourcePage) refresh() tea.Cmd {
	p.seq++
	p.loading = true
	p.notice = ""
	tab := p.spec.filters[p.filter]
	client := p.client
	return tea.Batch(
		p.spinner.Tick,
		fetchList(p.spec.page, p.seq, func(ctx context.Context) (any, error) {
			return tab.fetch(ctx, client)
		}),
	)
}

func (p *resourcePage) runSearch(term string) tea.Cmd {
	p.seq++
	p.loading = true
	p.notice = ""
	client := p.client
	search := p.spec.search
	return tea.Batch(
		p.spinner.Tick,
		fetchList(p.spec.page, p.seq, func(ctx context.Context) (any, error) {
			return search(ctx, client, term)
		}),
	)
}

func (p *resourcePage) openForm(f formModel, submit submitFn) {
	p.mode = modeForm
	p.form = f
	p.submit = submit
}

func (p resourcePage) update(msg tea.Msg) (resourcePage, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
		return p, nil

	case listFetchedMsg:
		if msg.page != p.spec.page || msg.seq != p.seq {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			// keep whatever rows we already have
			p.notice = api.UserMessage(msg.err)
			p.isErr = true
			return p, nil
		}
		p.items = msg.items
		p.loaded = true
		p.table.SetRows(p.spec.rows(msg.items))
		p.table.SetCursor(0)
		return p, nil

	case mutationDoneMsg:
		if msg.page != p.spec.page {
			return p, nil
		}
		p.form.submitting = false
		if msg.err != nil {
			// leave the modal open so the input survives a retry
			p.form.notice = api.UserMessage(msg.err)
			return p, nil
		}
		p.mode = modeBrowse
		return p, p.refresh()

	case deleteDoneMsg:
		if msg.page != p.spec.page {
			return p, nil
		}
		if msg.err != nil {
			p.loading = false
			p.notice = api.UserMessage(msg.err)
			p.isErr = true
			return p, nil
		}
		return p, p.refresh()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p resourcePage) handleKey(msg tea.KeyMsg) (resourcePage, tea.Cmd) {
	switch p.mode {
	case modeForm:
		if msg.String() == "esc" {
			p.mode = modeBrowse
			return p, nil
		}
		if p.form.submitting {
			return p, nil
		}
		var cmd tea.Cmd
		var submit bool
		p.form, cmd, submit = p.form.update(msg)
		if !submit {
			return p, cmd
		}
		if c := p.submit(p.client, &p.form); c != nil {
			p.form.submitting = true
			return p, c
		}
		return p, nil

	case modeConfirm:
		switch msg.String() {
		case "y", "enter":
			p.mode = modeBrowse
			p.loading = true
			idx := p.confirmIdx
			items := p.items
			client := p.client
			remove := p.spec.remove
			pg := p.spec.page
			return p, tea.Batch(p.spinner.Tick, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
				defer cancel()
				return deleteDoneMsg{page: pg, err: remove(ctx, client, items, idx)}
			})
		case "n", "esc":
			p.mode = modeBrowse
		}
		return p, nil

	case modeSearch:
		switch msg.String() {
		case "esc":
			p.mode = modeBrowse
			p.searchIn.SetValue("")
			return p, p.refresh()
		case "enter":
			term := strings.TrimSpace(p.searchIn.Value())
			p.mode = modeBrowse
			if term == "" {
				return p, p.refresh()
			}
			return p, p.runSearch(term)
		}
		var cmd tea.Cmd
		p.searchIn, cmd = p.searchIn.Update(msg)
		return p, cmd
	}

	// browse mode
	switch msg.String() {
	case "left", "[":
		if len(p.spec.filters) > 1 {
			p.filter--
			if p.filter < 0 {
				p.filter = len(p.spec.filters) - 1
			}
			return p, p.refresh()
		}
		return p, nil

	case "right", "]":
		if len(p.spec.filters) > 1 {
			p.filter = (p.filter + 1) % len(p.spec.filters)
			return p, p.refresh()
		}
		return p, nil

	case "r":
		return p, p.refresh()

	case "/":
		if p.spec.search != nil {
			p.mode = modeSearch
			p.searchIn.SetValue("")
			p.searchIn.Focus()
			return p, textinput.Blink
		}

	case "n":
		if p.spec.newForm != nil {
			f, submit := p.spec.newForm()
			p.openForm(f, submit)
		}
		return p, nil

	case "e", "enter":
		if p.spec.editForm != nil && p.selectable() {
			f, submit := p.spec.editForm(p.items, p.table.Cursor())
			p.openForm(f, submit)
		}
		return p, nil

	case "d":
		if p.spec.remove != nil && p.selectable() {
			p.mode = modeConfirm
			p.confirmIdx = p.table.Cursor()
		}
		return p, nil
	}

	if action, ok := p.spec.extras[msg.String()]; ok {
		idx := -1
		if p.selectable() {
			idx = p.table.Cursor()
		}
		if f, submit, ok := action.form(p.items, idx); ok {
			p.openForm(f, submit)
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p resourcePage) selectable() bool {
	return p.spec.count != nil && p.spec.count(p.items) > 0
}

func (p resourcePage) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.spec.title))
	b.WriteString("\n\n")

	if len(p.spec.filters) > 1 {
		var tabs []string
		for i, tab := range p.spec.filters {
			if i == p.filter {
				tabs = append(tabs, activeTabStyle.Render(tab.name))
			} else {
				tabs = append(tabs, tabStyle.Render(tab.name))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n\n")
	}

	switch p.mode {
	case modeForm:
		b.WriteString(p.form.view())
		return b.String()

	case modeConfirm:
		prompt := "Delete this record?"
		if p.spec.confirmPrompt != nil {
			prompt = p.spec.confirmPrompt(p.items, p.confirmIdx)
		}
		b.WriteString(modalStyle.Render(prompt + "\n\n" + helpStyle.Render("y: Delete • n: Cancel")))
		return b.String()

	case modeSearch:
		b.WriteString(p.searchIn.View())
		b.WriteString("\n\n")
	}

	if p.loading && !p.loaded {
		b.WriteString(p.spinner.View() + " Loading...")
		return b.String()
	}

	if p.loaded && p.spec.count(p.items) == 0 {
		b.WriteString(mutedStyle.Render("No records found"))
	} else {
		b.WriteString(p.table.View())
	}

	if p.notice != "" {
		b.WriteString("\n")
		if p.isErr {
			b.WriteString(errorStyle.Render("✗ " + p.notice))
		} else {
			b.WriteString(successStyle.Render("✓ " + p.notice))
		}
	}
	if p.loading {
		b.WriteString("\n" + p.spinner.View() + " Refreshing...")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(p.helpLine()))
	return b.String()
}

func (p resourcePage) helpLine() string {
	parts := []string{"↑/↓: Navigate"}
	if len(p.spec.filters) > 1 {
		parts = append(parts, "←/→: Filter")
	}
	if p.spec.search != nil {
		parts = append(parts, "/: Search")
	}
	if p.spec.newForm != nil {
		parts = append(parts, "n: New")
	}
	if p.spec.editForm != nil {
		parts = append(parts, "e: Edit")
	}
	if p.spec.remove != nil {
		parts = append(parts, "d: Delete")
	}
	keys := make([]string, 0, len(p.spec.extras))
	for key := range p.spec.extras {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, p.spec.extras[key].name))
	}
	parts = append(parts, "r: Refresh")
	return strings.Join(parts, " • ")
}

// listOf recovers the typed slice a page's fetch produced
func listOf[T any](items any) []T {
	v, _ := items.([]T)
	return v
}
