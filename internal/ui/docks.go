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

func docksSpec() resourceSpec {
	return resourceSpec{
		page:  pageDocks,
		title: "Docks",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListDocks(ctx, "", "")
			}},
			{name: "Available", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.AvailableDocks(ctx)
			}},
			{name: "Occupied", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListDocks(ctx, models.DockOccupied, "")
			}},
			{name: "Maintenance", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListDocks(ctx, models.DockMaintenance, "")
			}},
			{name: "Large", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListDocks(ctx, "", models.DockLarge)
			}},
		},
		columns: []table.Column{
			{Title: "Dock", Width: 8},
			{Title: "Name", Width: 20},
			{Title: "Size", Width: 12},
			{Title: "Status", Width: 15},
			{Title: "Services", Width: 18},
			{Title: "Next Maint.", Width: 12},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, d := range listOf[models.Dock](items) {
				services := joinNonEmpty("/",
					flagStr(d.HasWater, "water"),
					flagStr(d.HasSewage, "sewage"),
					flagStr(d.HasFuel, "fuel"),
				)
				rows = append(rows, table.Row{
					d.DockNumber,
					d.Name,
					string(d.Size),
					string(d.Status),
					services,
					fmtDatePtr(d.NextMaintenanceDate),
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.Dock](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.Dock](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this dock?"
			}
			return fmt.Sprintf("Delete dock %s?", list[idx].DockNumber)
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Dock", dockFields(forms.NewDockForm(), false))
			return f, submitDock("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			d := listOf[models.Dock](items)[idx]
			f := newForm("Edit Dock", dockFields(forms.DockFormFrom(d), true))
			return f, submitDock(d.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteDock(ctx, listOf[models.Dock](items)[idx].ID)
		},
	}
}

// dockFields lays out the dock modal; maintenance dates are edit-only
// because the backend manages them on create
func dockFields(df forms.DockForm, isUpdate bool) []formField {
	fields := []formField{
		textField("dockNumber", "Dock Number", df.DockNumber, "e.g. A-12", true),
		textField("name", "Name", df.Name, "", true),
		selectField("size", "Size", df.Size, []string{
			string(models.DockSmall),
			string(models.DockMedium),
			string(models.DockLarge),
			string(models.DockExtraLarge),
		}, true),
		selectField("status", "Status", df.Status, []string{
			string(models.DockAvailable),
			string(models.DockOccupied),
			string(models.DockMaintenance),
			string(models.DockOutOfService),
		}, true),
		textField("location", "Location", df.Location, "", false),
		textField("description", "Description", df.Description, "", false),
		textField("maxBoatLength", "Max Boat Length", df.MaxBoatLength, "feet", false),
		textField("depth", "Depth", df.Depth, "feet", false),
		textField("powerAmperage", "Power Amperage", df.PowerAmperage, "", false),
		checkboxField("hasWater", "Water Hookup", df.HasWater),
		checkboxField("hasSewage", "Sewage Hookup", df.HasSewage),
		checkboxField("hasFuel", "Fuel Access", df.HasFuel),
		checkboxField("amenityWifi", "Wifi", df.AmenityWifi),
		checkboxField("amenitySecurity", "Security", df.AmenitySecurity),
		checkboxField("amenityLighting", "Lighting", df.AmenityLighting),
		textField("amenityCleats", "Cleats", df.AmenityCleats, "", false),
		textField("builtDate", "Built Date", df.BuiltDate, forms.DateInput, false),
		textField("maintenanceInterval", "Maint. Interval", df.MaintenanceInterval, "days", false),
	}
	if isUpdate {
		fields = append(fields,
			textField("lastMaintenanceDate", "Last Maintenance", df.LastMaintenanceDate, forms.DateInput, false),
			textField("nextMaintenanceDate", "Next Maintenance", df.NextMaintenanceDate, forms.DateInput, false),
		)
	}
	fields = append(fields, textField("notes", "Notes", df.Notes, "", false))
	return fields
}

func readDockForm(f *formModel) forms.DockForm {
	return forms.DockForm{
		DockNumber:          f.value("dockNumber"),
		Name:                f.value("name"),
		Size:                f.value("size"),
		Status:              f.value("status"),
		Location:            f.value("location"),
		Description:         f.value("description"),
		MaxBoatLength:       f.value("maxBoatLength"),
		Depth:               f.value("depth"),
		PowerAmperage:       f.value("powerAmperage"),
		HasWater:            f.checked("hasWater"),
		HasSewage:           f.checked("hasSewage"),
		HasFuel:             f.checked("hasFuel"),
		BuiltDate:           f.value("builtDate"),
		MaintenanceInterval: f.value("maintenanceInterval"),
		LastMaintenanceDate: f.value("lastMaintenanceDate"),
		NextMaintenanceDate: f.value("nextMaintenanceDate"),
		AmenityWifi:         f.checked("amenityWifi"),
		AmenitySecurity:     f.checked("amenitySecurity"),
		AmenityLighting:     f.checked("amenityLighting"),
		AmenityCleats:       f.value("amenityCleats"),
		Notes:               f.value("notes"),
	}
}

func submitDock(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		df := readDockForm(f)
		if errs := df.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := df.Payload(id != "")
		return mutate(pageDocks, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateDock(ctx, payload)
			} else {
				_, err = c.UpdateDock(ctx, id, payload)
			}
			return err
		})
	}
}

func flagStr(on bool, label string) string {
	if on {
		return label
	}
	return ""
}
