package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/forms"
	"github.com/harborview/marinadesk/internal/models"
)

func maintenanceSpec() resourceSpec {
	return resourceSpec{
		page:  pageMaintenance,
		title: "Maintenance",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListMaintenance(ctx)
			}},
			{name: "Upcoming", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.UpcomingMaintenance(ctx)
			}},
			{name: "Overdue", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.OverdueMaintenance(ctx)
			}},
		},
		columns: []table.Column{
			{Title: "Title", Width: 24},
			{Title: "Asset", Width: 18},
			{Title: "Type", Width: 12},
			{Title: "Status", Width: 12},
			{Title: "Scheduled", Width: 12},
			{Title: "Est. Cost", Width: 10},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, r := range listOf[models.MaintenanceRecord](items) {
				asset := r.AssetID
				if r.Asset != nil {
					asset = r.Asset.Name
				}
				rows = append(rows, table.Row{
					r.Title,
					asset,
					string(r.Type),
					string(r.Status),
					fmtDatePtr(r.ScheduledDate),
					fmtMoneyPtr(r.EstimatedCost),
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.MaintenanceRecord](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.MaintenanceRecord](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this maintenance record?"
			}
			return fmt.Sprintf("Delete maintenance record %q?", list[idx].Title)
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Maintenance Record", maintenanceFields(forms.NewMaintenanceForm(), false))
			return f, submitMaintenance("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			r := listOf[models.MaintenanceRecord](items)[idx]
			f := newForm("Edit Maintenance Record", maintenanceFields(forms.MaintenanceFormFrom(r), true))
			return f, submitMaintenance(r.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteMaintenance(ctx, listOf[models.MaintenanceRecord](items)[idx].ID)
		},
	}
}

// maintenanceFields lays out the modal; completion fields only exist in
// edit mode because the create DTO rejects them
func maintenanceFields(mf forms.MaintenanceForm, isUpdate bool) []formField {
	fields := []formField{
		textField("assetId", "Asset ID", mf.AssetID, "", true),
		textField("title", "Title", mf.Title, "", true),
		selectField("type", "Type", mf.Type, []string{
			string(models.MaintenanceRoutine),
			string(models.MaintenancePreventive),
			string(models.MaintenanceCorrective),
			string(models.MaintenanceEmergency),
		}, true),
		textField("description", "Description", mf.Description, "", true),
		textField("scheduledDate", "Scheduled", mf.ScheduledDate, forms.DateTimeInput, true),
		selectField("status", "Status", mf.Status, []string{
			string(models.MaintenanceScheduled),
			string(models.MaintenanceInProgress),
			string(models.MaintenanceCompleted),
			string(models.MaintenanceCancelled),
		}, false),
		textField("estimatedCost", "Estimated Cost", mf.EstimatedCost, "0.00", false),
		textField("assignedTo", "Assigned To", mf.AssignedTo, "", false),
	}
	if isUpdate {
		fields = append(fields,
			textField("completedDate", "Completed", mf.CompletedDate, forms.DateTimeInput, false),
			textField("actualCost", "Actual Cost", mf.ActualCost, "0.00", false),
		)
	}
	fields = append(fields, textField("notes", "Notes", mf.Notes, "", false))
	return fields
}

func readMaintenanceForm(f *formModel) forms.MaintenanceForm {
	return forms.MaintenanceForm{
		AssetID:       f.value("assetId"),
		Type:          f.value("type"),
		Title:         f.value("title"),
		Description:   f.value("description"),
		ScheduledDate: f.value("scheduledDate"),
		CompletedDate: f.value("completedDate"),
		Status:        f.value("status"),
		EstimatedCost: f.value("estimatedCost"),
		ActualCost:    f.value("actualCost"),
		AssignedTo:    f.value("assignedTo"),
		Notes:         f.value("notes"),
	}
}

func submitMaintenance(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		mf := readMaintenanceForm(f)
		if errs := mf.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := mf.Payload(id != "")
		return mutate(pageMaintenance, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateMaintenance(ctx, payload)
			} else {
				_, err = c.UpdateMaintenance(ctx, id, payload)
			}
			return err
		})
	}
}
