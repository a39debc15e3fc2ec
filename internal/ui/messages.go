package ui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/models"
)

const fetchTimeout = 30 * time.Second

// SessionExpiredMsg is sent from outside the program (the API client's
// unauthorized hook) when a 401 ended the session
type SessionExpiredMsg struct{}

// loginResultMsg is sent when a login attempt settles
type loginResultMsg struct {
	user *models.User
	err  error
}

// listFetchedMsg carries a fetched collection for one resource page. seq
// lets the page drop responses that arrive after a newer fetch or after
// navigation; a stale response is a no-op.
type listFetchedMsg struct {
	page  page
	seq   int
	items any
	err   error
}

// mutationDoneMsg is sent when a create/update settles. The modal stays
// open on error so the user can retry or cancel.
type mutationDoneMsg struct {
	page page
	err  error
}

// deleteDoneMsg is sent when a delete settles
type deleteDoneMsg struct {
	page page
	err  error
}

// dashboardData is the joined payload of the dashboard's five concurrent
// fetches
type dashboardData struct {
	stats     *models.DashboardStats
	occupancy *models.Occupancy
	overdue   []models.MaintenanceRecord
	customers []models.Customer
	visits    []models.Visit
}

// dashboardFetchedMsg is sent when all dashboard fetches settle. Any
// failure aborts the whole join; data is nil and the page shows its empty
// state.
type dashboardFetchedMsg struct {
	seq  int
	data *dashboardData
	err  error
}

// analyticsData is the joined payload of the analytics page fetches
type analyticsData struct {
	revenue     *models.RevenueSummary
	insights    *models.CustomerInsights
	maintenance *models.MaintenanceAnalytics
	services    *models.ServiceAnalytics
	feedback    []models.Feedback
}

// analyticsFetchedMsg is sent when all analytics fetches settle
type analyticsFetchedMsg struct {
	seq  int
	data *analyticsData
	err  error
}

// login performs authentication in the background
func login(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		user, err := client.Login(ctx, api.LoginRequest{Email: email, Password: password})
		return loginResultMsg{user: user, err: err}
	}
}

// fetchDashboard issues the dashboard's five fetches concurrently and
// joins them all-or-nothing
func fetchDashboard(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var (
			data dashboardData
			errs [5]error
			wg   sync.WaitGroup
		)
		wg.Add(5)
		go func() {
			defer wg.Done()
			data.stats, errs[0] = client.DashboardStats(ctx)
		}()
		go func() {
			defer wg.Done()
			data.occupancy, errs[1] = client.OccupancySnapshot(ctx)
		}()
		go func() {
			defer wg.Done()
			data.overdue, errs[2] = client.OverdueMaintenance(ctx)
		}()
		go func() {
			defer wg.Done()
			data.customers, errs[3] = client.ListCustomers(ctx)
		}()
		go func() {
			defer wg.Done()
			data.visits, errs[4] = client.ListVisits(ctx)
		}()
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return dashboardFetchedMsg{seq: seq, err: err}
			}
		}
		return dashboardFetchedMsg{seq: seq, data: &data}
	}
}

// fetchAnalytics issues the analytics page fetches concurrently and joins
// them all-or-nothing
func fetchAnalytics(client *api.Client, seq int, months int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var (
			data analyticsData
			errs [5]error
			wg   sync.WaitGroup
		)
		wg.Add(5)
		go func() {
			defer wg.Done()
			data.revenue, errs[0] = client.Revenue(ctx, "", "")
		}()
		go func() {
			defer wg.Done()
			data.insights, errs[1] = client.CustomerInsights(ctx)
		}()
		go func() {
			defer wg.Done()
			data.maintenance, errs[2] = client.MaintenanceAnalytics(ctx, months)
		}()
		go func() {
			defer wg.Done()
			data.services, errs[3] = client.ServiceAnalytics(ctx)
		}()
		go func() {
			defer wg.Done()
			data.feedback, errs[4] = client.ListFeedback(ctx)
		}()
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return analyticsFetchedMsg{seq: seq, err: err}
			}
		}
		return analyticsFetchedMsg{seq: seq, data: &data}
	}
}
