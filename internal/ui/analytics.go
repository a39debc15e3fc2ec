package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/metrics"
)

var monthWindows = []int{3, 6, 12}

// analyticsModel renders the reporting screen: revenue, customer
// insights, maintenance spending, service breakdowns, and ratings
type analyticsModel struct {
	client  *api.Client
	spinner spinner.Model
	data    *analyticsData
	seq     int
	months  int // index into monthWindows
	loading bool
	notice  string
}

func newAnalytics(client *api.Client) analyticsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	return analyticsModel{client: client, spinner: sp, months: 1}
}

func (m *analyticsModel) refresh() tea.Cmd {
	m.seq++
	m.loading = true
	m.notice = ""
	return tea.Batch(m.spinner.Tick, fetchAnalytics(m.client, m.seq, monthWindows[m.months]))
}

func (m analyticsModel) update(msg tea.Msg) (analyticsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case analyticsFetchedMsg:
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
		switch msg.String() {
		case "r":
			return m, m.refresh()
		case "m":
			m.months = (m.months + 1) % len(monthWindows)
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m analyticsModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Analytics"))
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

	rev := m.data.revenue
	b.WriteString(sectionHeaderStyle.Render("Revenue"))
	b.WriteString(fmt.Sprintf("\n  Total: %s across %d visits (avg %s)\n",
		fmtMoney(rev.TotalRevenue.Float()),
		rev.TotalVisits.Int(),
		fmtMoney(rev.AverageRevenue.Float()),
	))

	b.WriteString(sectionHeaderStyle.Render("Membership"))
	b.WriteString("\n")
	for _, p := range metrics.MembershipSeries(m.data.insights.MembershipDistribution) {
		b.WriteString(fmt.Sprintf("  %-10s %d\n", p.Name, int(p.Value)))
	}

	b.WriteString(sectionHeaderStyle.Render("Top Customers"))
	b.WriteString("\n")
	for i, tc := range m.data.insights.TopCustomers {
		b.WriteString(fmt.Sprintf("  %d. %s %s (%s): %d visits, %s\n",
			i+1, tc.FirstName, tc.LastName, tc.MembershipTier,
			tc.VisitCount.Int(), fmtMoney(tc.TotalSpent.Float())))
	}

	b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("Maintenance Spending (%d months)", monthWindows[m.months])))
	b.WriteString("\n")
	spending := metrics.MonthlySpendingSeries(m.data.maintenance.MonthlySpending)
	if len(spending) > 0 {
		points := make([]metrics.NameValue, 0, len(spending))
		for _, s := range spending {
			points = append(points, metrics.NameValue{Name: s.Month, Value: s.Cost})
		}
		b.WriteString(renderBarChart(points, 60, 8))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  Total: %s\n", fmtMoney(m.data.maintenance.TotalCost.Float())))

	b.WriteString(sectionHeaderStyle.Render("Service Requests"))
	b.WriteString("\n")
	for _, t := range metrics.ServiceTypeSeries(m.data.services.RequestsByType) {
		b.WriteString(fmt.Sprintf("  %-20s %3d requests, avg %s\n", t.Name, t.Count, fmtMoney(t.AvgCost)))
	}
	for _, s := range metrics.ServiceStatusSeries(m.data.services.RequestsByStatus) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %-20s %d", s.Name, int(s.Value))))
		b.WriteString("\n")
	}

	b.WriteString(sectionHeaderStyle.Render("Customer Ratings"))
	b.WriteString("\n")
	ratings := metrics.RatingSeries(m.data.feedback)
	if len(ratings) == 0 {
		b.WriteString(mutedStyle.Render("  No feedback yet"))
		b.WriteString("\n")
	} else {
		b.WriteString(renderBarChart(ratings, 40, 6))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + errorStyle.Render("✗ "+m.notice))
	}
	if m.loading {
		b.WriteString("\n" + m.spinner.View() + " Refreshing...")
	}
	b.WriteString("\n" + helpStyle.Render("m: Month Window • r: Refresh"))
	return b.String()
}

func renderBarChart(points []metrics.NameValue, width, height int) string {
	bc := barchart.New(width, height)
	for _, p := range points {
		bc.Push(barchart.BarData{
			Label: p.Name,
			Values: []barchart.BarValue{
				{Name: p.Name, Value: p.Value, Style: barFilledStyle},
			},
		})
	}
	bc.Draw()
	return bc.View()
}
