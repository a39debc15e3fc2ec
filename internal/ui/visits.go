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

func visitsSpec() resourceSpec {
	return resourceSpec{
		page:  pageVisits,
		title: "Visits",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListVisits(ctx)
			}},
			{name: "Current", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.CurrentVisits(ctx)
			}},
		},
		columns: []table.Column{
			{Title: "Customer", Width: 22},
			{Title: "Dock", Width: 8},
			{Title: "Boat", Width: 16},
			{Title: "Check-In", Width: 17},
			{Title: "Status", Width: 10},
			{Title: "Charges", Width: 10},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, v := range listOf[models.Visit](items) {
				customer := v.CustomerID
				if v.Customer != nil {
					customer = v.Customer.FullName()
				}
				rows = append(rows, table.Row{
					customer,
					v.DockNumber,
					v.BoatName,
					v.CheckInTime.Local().Format("2006-01-02 15:04"),
					v.DisplayStatus(),
					fmtMoney(v.ServiceCharges),
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.Visit](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.Visit](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this visit?"
			}
			return fmt.Sprintf("Delete visit at dock %s?", list[idx].DockNumber)
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Visit", visitFields(forms.NewVisitForm()))
			return f, submitVisit("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			v := listOf[models.Visit](items)[idx]
			f := newForm("Edit Visit", visitFields(forms.VisitFormFrom(v)))
			return f, submitVisit(v.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteVisit(ctx, listOf[models.Visit](items)[idx].ID)
		},
	}
}

func visitFields(vf forms.VisitForm) []formField {
	return []formField{
		textField("customerId", "Customer ID", vf.CustomerID, "", true),
		textField("dockNumber", "Dock Number", vf.DockNumber, "e.g. A-12", true),
		textField("boatName", "Boat Name", vf.BoatName, "", false),
		textField("boatType", "Boat Type", vf.BoatType, "", false),
		textField("checkInTime", "Check-In", vf.CheckInTime, forms.DateTimeInput, true),
		textField("checkOutTime", "Check-Out", vf.CheckOutTime, "blank while docked", false),
		textField("serviceCharges", "Service Charges", vf.ServiceCharges, "0.00", false),
		checkboxField("power", "Power", vf.Power),
		checkboxField("water", "Water", vf.Water),
		checkboxField("waste", "Waste", vf.Waste),
		checkboxField("fuel", "Fuel", vf.Fuel),
		textField("notes", "Notes", vf.Notes, "", false),
	}
}

func readVisitForm(f *formModel) forms.VisitForm {
	return forms.VisitForm{
		CustomerID:     f.value("customerId"),
		DockNumber:     f.value("dockNumber"),
		BoatName:       f.value("boatName"),
		BoatType:       f.value("boatType"),
		CheckInTime:    f.value("checkInTime"),
		CheckOutTime:   f.value("checkOutTime"),
		ServiceCharges: f.value("serviceCharges"),
		Power:          f.checked("power"),
		Water:          f.checked("water"),
		Waste:          f.checked("waste"),
		Fuel:           f.checked("fuel"),
		Notes:          f.value("notes"),
	}
}

func submitVisit(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		vf := readVisitForm(f)
		if errs := vf.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := vf.Payload(time.Now())
		return mutate(pageVisits, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateVisit(ctx, payload)
			} else {
				_, err = c.UpdateVisit(ctx, id, payload)
			}
			return err
		})
	}
}
