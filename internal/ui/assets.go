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

func assetsSpec() resourceSpec {
	return resourceSpec{
		page:  pageAssets,
		title: "Assets",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListAssets(ctx)
			}},
			{name: "Maintenance Due", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.MaintenanceDueAssets(ctx)
			}},
		},
		columns: []table.Column{
			{Title: "Name", Width: 22},
			{Title: "Type", Width: 14},
			{Title: "Status", Width: 22},
			{Title: "Location", Width: 16},
			{Title: "Value", Width: 12},
			{Title: "Next Maint.", Width: 12},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, a := range listOf[models.Asset](items) {
				rows = append(rows, table.Row{
					a.Name,
					string(a.Type),
					string(a.Status),
					a.Location,
					fmtMoney(a.PurchasePrice),
					fmtDatePtr(a.NextMaintenanceDate),
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.Asset](items)) },
		confirmPrompt: func(items any, idx int) string {
			list := listOf[models.Asset](items)
			if idx < 0 || idx >= len(list) {
				return "Delete this asset?"
			}
			return fmt.Sprintf("Delete asset %s?", list[idx].Name)
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Asset", assetFields(forms.NewAssetForm()))
			return f, submitAsset("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			a := listOf[models.Asset](items)[idx]
			f := newForm("Edit Asset", assetFields(forms.AssetFormFrom(a)))
			return f, submitAsset(a.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteAsset(ctx, listOf[models.Asset](items)[idx].ID)
		},
	}
}

func assetFields(af forms.AssetForm) []formField {
	return []formField{
		textField("name", "Name", af.Name, "", true),
		selectField("type", "Type", af.Type, []string{
			string(models.AssetDock),
			string(models.AssetPowerStation),
			string(models.AssetWaterSystem),
			string(models.AssetFuelStation),
			string(models.AssetEquipment),
			string(models.AssetBuilding),
			string(models.AssetOther),
		}, true),
		selectField("status", "Status", af.Status, []string{
			string(models.AssetOperational),
			string(models.AssetMaintenanceRequired),
			string(models.AssetUnderMaintenance),
			string(models.AssetOutOfService),
		}, false),
		textField("location", "Location", af.Location, "", false),
		textField("description", "Description", af.Description, "", false),
		textField("purchaseDate", "Purchase Date", af.PurchaseDate, forms.DateInput, false),
		textField("purchasePrice", "Purchase Price", af.PurchasePrice, "0.00", false),
		textField("warrantyExpiry", "Warranty Expiry", af.WarrantyExpiry, forms.DateInput, false),
		textField("maintenanceInterval", "Maint. Interval", af.MaintenanceInterval, "days", false),
		textField("lastMaintenanceDate", "Last Maintenance", af.LastMaintenanceDate, forms.DateInput, false),
		textField("nextMaintenanceDate", "Next Maintenance", af.NextMaintenanceDate, forms.DateInput, false),
	}
}

func readAssetForm(f *formModel) forms.AssetForm {
	return forms.AssetForm{
		Name:                f.value("name"),
		Type:                f.value("type"),
		Status:              f.value("status"),
		Location:            f.value("location"),
		Description:         f.value("description"),
		PurchaseDate:        f.value("purchaseDate"),
		PurchasePrice:       f.value("purchasePrice"),
		WarrantyExpiry:      f.value("warrantyExpiry"),
		MaintenanceInterval: f.value("maintenanceInterval"),
		LastMaintenanceDate: f.value("lastMaintenanceDate"),
		NextMaintenanceDate: f.value("nextMaintenanceDate"),
	}
}

func submitAsset(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		af := readAssetForm(f)
		if errs := af.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := af.Payload()
		return mutate(pageAssets, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateAsset(ctx, payload)
			} else {
				_, err = c.UpdateAsset(ctx, id, payload)
			}
			return err
		})
	}
}
