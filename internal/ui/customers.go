package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/forms"
	"github.com/harborview/marinadesk/internal/models"
)

func customersSpec() resourceSpec {
	return resourceSpec{
		page:  pageCustomers,
		title: "Customers",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListCustomers(ctx)
			}},
		},
		search: func(ctx context.Context, c *api.Client, term string) (any, error) {
			return c.SearchCustomers(ctx, term)
		},
		columns: []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 28},
			{Title: "Tier", Width: 10},
			{Title: "Points", Width: 8},
			{Title: "Phone", Width: 15},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, c := range listOf[models.Customer](items) {
				rows = append(rows, table.Row{
					c.FullName(),
					c.Email,
					string(c.MembershipTier),
					strconv.Itoa(c.LoyaltyPoints),
					c.Phone,
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.Customer](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.Customer](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this customer?"
			}
			return fmt.Sprintf("Delete customer %s?", list[idx].FullName())
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Customer", customerFields(forms.NewCustomerForm()))
			return f, submitCustomer("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			cust := listOf[models.Customer](items)[idx]
			f := newForm("Edit Customer", customerFields(forms.CustomerFormFrom(cust)))
			return f, submitCustomer(cust.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteCustomer(ctx, listOf[models.Customer](items)[idx].ID)
		},
		extras: map[string]extraAction{
			"p": {name: "Points", form: loyaltyForm},
		},
	}
}

func customerFields(cf forms.CustomerForm) []formField {
	return []formField{
		textField("firstName", "First Name", cf.FirstName, "", true),
		textField("lastName", "Last Name", cf.LastName, "", true),
		textField("email", "Email", cf.Email, "name@example.com", true),
		textField("phone", "Phone", cf.Phone, "", false),
		textField("address", "Address", cf.Address, "", false),
		selectField("membershipTier", "Membership Tier", cf.MembershipTier, []string{
			string(models.TierBasic),
			string(models.TierSilver),
			string(models.TierGold),
			string(models.TierPlatinum),
		}, false),
		textField("notes", "Notes", cf.Notes, "", false),
	}
}

func readCustomerForm(f *formModel) forms.CustomerForm {
	return forms.CustomerForm{
		FirstName:      f.value("firstName"),
		LastName:       f.value("lastName"),
		Email:          f.value("email"),
		Phone:          f.value("phone"),
		Address:        f.value("address"),
		MembershipTier: f.value("membershipTier"),
		Notes:          f.value("notes"),
	}
}

// submitCustomer returns the save handler for the customer modal; a blank
// id means create
func submitCustomer(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		cf := readCustomerForm(f)
		if errs := cf.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := cf.Payload()
		return mutate(pageCustomers, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateCustomer(ctx, payload)
			} else {
				_, err = c.UpdateCustomer(ctx, id, payload)
			}
			return err
		})
	}
}

// loyaltyForm opens the single-field dialog behind the "p" shortcut
func loyaltyForm(items any, idx int) (formModel, submitFn, bool) {
	list := listOf[models.Customer](items)
	if idx < 0 || idx >= len(list) {
		return formModel{}, nil, false
	}
	cust := list[idx]
	f := newForm("Add Loyalty Points: "+cust.FullName(), []formField{
		textField("points", "Points", "", "e.g. 50", true),
	})
	submit := func(c *api.Client, fm *formModel) tea.Cmd {
		points := forms.Int(fm.value("points"))
		if points <= 0 {
			fm.errs = forms.Errors{"points": "Must be a positive number"}
			return nil
		}
		return mutate(pageCustomers, func(ctx context.Context) error {
			return c.AddLoyaltyPoints(ctx, cust.ID, points)
		})
	}
	return f, submit, true
}
