// Package ui implements the terminal front end: a login screen, a
// dashboard, per-resource list/filter pages with modal forms, and an
// analytics view. All data comes from the REST API; nothing is computed
// here beyond the derived metrics.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"go.uber.org/zap"
)

var navOrder = []page{
	pageDashboard,
	pageCustomers,
	pageVisits,
	pageDocks,
	pageAssets,
	pageMaintenance,
	pageRequests,
	pageFeedback,
	pageAnalytics,
}

var navLabels = map[page]string{
	pageDashboard:   "Dashboard",
	pageCustomers:   "Customers",
	pageVisits:      "Visits",
	pageDocks:       "Docks",
	pageAssets:      "Assets",
	pageMaintenance: "Maintenance",
	pageRequests:    "Requests",
	pageFeedback:    "Feedback",
	pageAnalytics:   "Analytics",
}

// Model is the root program model
type Model struct {
	client *api.Client
	logger *zap.Logger

	active    page
	login     loginModel
	dashboard dashboardModel
	analytics analyticsModel
	resources map[page]resourcePage

	width  int
	height int
}

// New builds the root model. If the client already holds a saved token
// the program starts on the dashboard; otherwise it starts on the login
// screen.
func New(client *api.Client, logger *zap.Logger) Model {
	resources := map[page]resourcePage{}
	for _, spec := range []resourceSpec{
		customersSpec(),
		visitsSpec(),
		docksSpec(),
		assetsSpec(),
		maintenanceSpec(),
		requestsSpec(),
		feedbackSpec(),
	} {
		resources[spec.page] = newResourcePage(client, spec)
	}

	active := pageLogin
	if client.Token() != "" {
		active = pageDashboard
	}
	return Model{
		client:    client,
		logger:    logger,
		active:    active,
		login:     newLogin(),
		dashboard: newDashboard(client),
		analytics: newAnalytics(client),
		resources: resources,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.active == pageDashboard {
		return m.dashboard.refresh()
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SessionExpiredMsg:
		m.logger.Info("session expired, returning to login")
		m.active = pageLogin
		m.login = newLogin()
		m.login.notice = "Session expired, please sign in again"
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.login.fail(msg.err)
			return m, nil
		}
		m.logger.Info("signed in", zap.String("email", msg.user.Email))
		m.active = pageDashboard
		return m, m.dashboard.refresh()

	case dashboardFetchedMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.update(msg)
		return m, cmd

	case analyticsFetchedMsg:
		var cmd tea.Cmd
		m.analytics, cmd = m.analytics.update(msg)
		return m, cmd

	case listFetchedMsg:
		return m.routeResource(msg.page, msg)

	case mutationDoneMsg:
		return m.routeResource(msg.page, msg)

	case deleteDoneMsg:
		return m.routeResource(msg.page, msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// spinner ticks and other component messages go to the active page
	return m.routeActive(msg)
}

func (m Model) routeResource(p page, msg tea.Msg) (tea.Model, tea.Cmd) {
	rp, ok := m.resources[p]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	rp, cmd = rp.update(msg)
	m.resources[p] = rp
	return m, cmd
}

func (m Model) routeActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.active {
	case pageDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.update(msg)
		return m, cmd
	case pageAnalytics:
		var cmd tea.Cmd
		m.analytics, cmd = m.analytics.update(msg)
		return m, cmd
	case pageLogin:
		return m, nil
	default:
		return m.routeResource(m.active, msg)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.active == pageLogin {
		var cmd tea.Cmd
		var submit bool
		m.login, cmd, submit = m.login.update(msg)
		if submit {
			return m, login(m.client, m.login.email.Value(), m.login.password.Value())
		}
		return m, cmd
	}

	// global navigation only while no modal or input is capturing keys
	if !m.capturing() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(msg.String()[0] - '1')
			return m.switchTo(navOrder[idx])
		}
	}

	return m.routeActive(msg)
}

// capturing reports whether the active page has a modal or text input
// open, which must see every keystroke
func (m Model) capturing() bool {
	if rp, ok := m.resources[m.active]; ok {
		return rp.mode != modeBrowse
	}
	return false
}

func (m Model) switchTo(p page) (tea.Model, tea.Cmd) {
	m.active = p
	switch p {
	case pageDashboard:
		return m, m.dashboard.refresh()
	case pageAnalytics:
		return m, m.analytics.refresh()
	default:
		rp := m.resources[p]
		cmd := rp.refresh()
		m.resources[p] = rp
		return m, cmd
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.active == pageLogin {
		return m.login.view()
	}

	var body string
	switch m.active {
	case pageDashboard:
		body = m.dashboard.view()
	case pageAnalytics:
		body = m.analytics.view()
	default:
		body = m.resources[m.active].view()
	}

	return m.navBar() + "\n\n" + body + "\n"
}

func (m Model) navBar() string {
	var tabs []string
	for i, p := range navOrder {
		label := fmt.Sprintf("%d %s", i+1, navLabels[p])
		if p == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, "")
}
