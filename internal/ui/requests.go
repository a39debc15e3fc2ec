package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/forms"
	"github.com/harborview/marinadesk/internal/models"
)

func requestsSpec() resourceSpec {
	return resourceSpec{
		page:  pageRequests,
		title: "Service Requests",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListServiceRequests(ctx)
			}},
			{name: "Pending", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.PendingServiceRequests(ctx)
			}},
		},
		columns: []table.Column{
			{Title: "Title", Width: 24},
			{Title: "Customer", Width: 20},
			{Title: "Service", Width: 16},
			{Title: "Priority", Width: 10},
			{Title: "Status", Width: 12},
			{Title: "Est. Cost", Width: 10},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, r := range listOf[models.ServiceRequest](items) {
				customer := r.CustomerID
				if r.Customer != nil {
					customer = r.Customer.FullName()
				}
				rows = append(rows, table.Row{
					r.Title,
					customer,
					r.ServiceType,
					string(r.Priority),
					string(r.Status),
					fmtMoney(r.EstimatedCost),
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.ServiceRequest](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.ServiceRequest](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this service request?"
			}
			return fmt.Sprintf("Delete service request %q?", list[idx].Title)
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Service Request", requestFields(forms.NewServiceRequestForm()))
			return f, submitRequest("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			r := listOf[models.ServiceRequest](items)[idx]
			f := newForm("Edit Service Request", requestFields(forms.ServiceRequestFormFrom(r)))
			return f, submitRequest(r.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteServiceRequest(ctx, listOf[models.ServiceRequest](items)[idx].ID)
		},
	}
}

func requestFields(rf forms.ServiceRequestForm) []formField {
	return []formField{
		textField("customerId", "Customer ID", rf.CustomerID, "", true),
		textField("serviceType", "Service Type", rf.ServiceType, "e.g. Dock Repair", true),
		textField("title", "Title", rf.Title, "", true),
		textField("description", "Description", rf.Description, "", true),
		selectField("priority", "Priority", rf.Priority, []string{
			string(models.PriorityLow),
			string(models.PriorityMedium),
			string(models.PriorityHigh),
			string(models.PriorityUrgent),
		}, false),
		selectField("status", "Status", rf.Status, []string{
			string(models.RequestPending),
			string(models.RequestInProgress),
			string(models.RequestCompleted),
			string(models.RequestCancelled),
		}, false),
		textField("requestedDate", "Requested", rf.RequestedDate, forms.DateTimeInput, false),
		textField("estimatedCost", "Estimated Cost", rf.EstimatedCost, "0.00", false),
	}
}

func readRequestForm(f *formModel) forms.ServiceRequestForm {
	return forms.ServiceRequestForm{
		CustomerID:    f.value("customerId"),
		ServiceType:   f.value("serviceType"),
		Title:         f.value("title"),
		Description:   f.value("description"),
		Priority:      f.value("priority"),
		Status:        f.value("status"),
		RequestedDate: f.value("requestedDate"),
		EstimatedCost: f.value("estimatedCost"),
	}
}

func submitRequest(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		rf := readRequestForm(f)
		if errs := rf.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := rf.Payload(time.Now())
		return mutate(pageRequests, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateServiceRequest(ctx, payload)
			} else {
				_, err = c.UpdateServiceRequest(ctx, id, payload)
			}
			return err
		})
	}
}
