package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/metrics"
)

// dashboardModel renders the landing screen: stat cards, the occupancy
// bar, and the derived activity panel
type dashboardModel struct {
	client  *api.Client
	spinner spinner.Model
	data    *dashboardData
	seq     int
	loading bool
	notice  string
}

func newDashboard(client *api.Client) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	return dashboardModel{client: client, spinner: sp}
}

func (m *dashboardModel) refresh() tea.Cmd {
	m.seq++
	m.loading = true
	m.notice = ""
	return tea.Batch(m.spinner.Tick, fetchDashboard(m.client, m.seq))
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case dashboardFetchedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.notice = api.UserMessage(msg.err)
			return m, nil
		}
		m.data = msg.data
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m dashboardModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.loading && m.data == nil {
		b.WriteString(m.spinner.View() + " Loading...")
		return b.String()
	}
	if m.data == nil {
		if m.notice != "" {
			b.WriteString(errorStyle.Render("✗ " + m.notice))
		} else {
			b.WriteString(mutedStyle.Render("No data"))
		}
		b.WriteString("\n" + helpStyle.Render("r: Retry"))
		return b.String()
	}

	stats := m.data.stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Customers", stats.TotalCustomers.Int(), stats.CustomersChange),
		statCard("Active Visits", stats.ActiveVisits.Int(), stats.VisitsChange),
		statCard("Pending Requests", stats.PendingRequests.Int(), stats.RequestsChange),
		statCard("Unreviewed Feedback", stats.UnreviewedFeedback.Int(), stats.FeedbackChange),
	)
	b.WriteString(cards)
	b.WriteString("\n")

	occ := m.data.occupancy
	b.WriteString(sectionHeaderStyle.Render("Dock Occupancy"))
	b.WriteString("\n")
	rate := occ.OccupancyRate.Float()
	b.WriteString(fmt.Sprintf("  %s %.1f%%\n", progressBar(metrics.ClampPercent(rate), 40), rate))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d occupied • %d available • %d maintenance • %d out of service • %d total",
		occ.OccupiedDocks.Int(),
		occ.AvailableDocks.Int(),
		occ.MaintenanceDocks.Int(),
		occ.OutOfServiceDocks.Int(),
		occ.TotalDocks.Int(),
	)))
	b.WriteString("\n")

	activity := metrics.DeriveActivity(time.Now(), m.data.overdue, m.data.customers, m.data.visits)
	b.WriteString(sectionHeaderStyle.Render("Recent Activity"))
	b.WriteString("\n")
	b.WriteString(activityLine(activity.OverdueMaintenance, "%d maintenance task is overdue", "%d maintenance tasks are overdue", noticeStyle))
	b.WriteString(activityLine(activity.NewCustomersThisWeek, "%d new customer this week", "%d new customers this week", successStyle))
	b.WriteString(activityLine(activity.VisitsCompletedToday, "%d visit completed today", "%d visits completed today", valueStyle))

	if m.notice != "" {
		b.WriteString("\n" + errorStyle.Render("✗ "+m.notice))
	}
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " Refreshing...")
	}
	b.WriteString("\n" + helpStyle.Render("r: Refresh"))
	return b.String()
}

func statCard(label string, value int, change string) string {
	content := statValueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + labelStyle.Render(label)
	if change != "" {
		content += "\n" + mutedStyle.Render(change)
	}
	return statCardStyle.Render(content)
}

func activityLine(n int, singular, plural string, style lipgloss.Style) string {
	format := plural
	if n == 1 {
		format = singular
	}
	line := fmt.Sprintf(format, n)
	if n == 0 {
		return "  " + mutedStyle.Render(line) + "\n"
	}
	return "  " + style.Render(line) + "\n"
}
