package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/forms"
	"github.com/harborview/marinadesk/internal/models"
)

func feedbackSpec() resourceSpec {
	return resourceSpec{
		page:  pageFeedback,
		title: "Feedback",
		filters: []filterTab{
			{name: "All", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.ListFeedback(ctx)
			}},
			{name: "Unreviewed", fetch: func(ctx context.Context, c *api.Client) (any, error) {
				return c.UnreviewedFeedback(ctx)
			}},
		},
		columns: []table.Column{
			{Title: "Customer", Width: 20},
			{Title: "Rating", Width: 8},
			{Title: "Category", Width: 14},
			{Title: "Comments", Width: 34},
			{Title: "Reviewed", Width: 9},
		},
		rows: func(items any) []table.Row {
			var rows []table.Row
			for _, fb := range listOf[models.Feedback](items) {
				customer := fb.CustomerID
				if fb.Customer != nil {
					customer = fb.Customer.FullName()
				}
				reviewed := "no"
				if fb.Reviewed {
					reviewed = "yes"
				}
				rows = append(rows, table.Row{
					customer,
					renderStars(fb.Rating),
					fb.Category,
					fb.Comments,
					reviewed,
				})
			}
			return rows
		},
		count: func(items any) int { return len(listOf[models.Feedback](items)) },
		confirmPrompt: func(items any, idx int) string {
			return "Delete this feedback entry?"
		},
		newForm: func() (formModel, submitFn) {
			f := newForm("New Feedback", feedbackFields(forms.NewFeedbackForm()))
			return f, submitFeedback("")
		},
		editForm: func(items any, idx int) (formModel, submitFn) {
			fb := listOf[models.Feedback](items)[idx]
			f := newForm("Edit Feedback", feedbackFields(forms.FeedbackFormFrom(fb)))
			return f, submitFeedback(fb.ID)
		},
		remove: func(ctx context.Context, c *api.Client, items any, idx int) error {
			return c.DeleteFeedback(ctx, listOf[models.Feedback](items)[idx].ID)
		},
	}
}

// renderStars paints a fixed five-star row; out-of-range ratings from the
// backend just render as all-empty or all-full
func renderStars(rating int) string {
	var b strings.Builder
	for star := 1; star <= 5; star++ {
		if star <= rating {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

func feedbackFields(ff forms.FeedbackForm) []formField {
	ratings := make([]string, 0, 5)
	for r := 5; r >= 1; r-- {
		ratings = append(ratings, strconv.Itoa(r))
	}
	return []formField{
		textField("customerId", "Customer ID", ff.CustomerID, "", true),
		selectField("rating", "Rating", ff.Rating, ratings, true),
		textField("category", "Category", ff.Category, "e.g. Facilities", false),
		textField("comments", "Comments", ff.Comments, "", false),
		checkboxField("reviewed", "Reviewed", ff.Reviewed),
		textField("staffResponse", "Staff Response", ff.StaffResponse, "", false),
	}
}

func readFeedbackForm(f *formModel) forms.FeedbackForm {
	return forms.FeedbackForm{
		CustomerID:    f.value("customerId"),
		Rating:        f.value("rating"),
		Category:      f.value("category"),
		Comments:      f.value("comments"),
		Reviewed:      f.checked("reviewed"),
		StaffResponse: f.value("staffResponse"),
	}
}

func submitFeedback(id string) submitFn {
	return func(c *api.Client, f *formModel) tea.Cmd {
		ff := readFeedbackForm(f)
		if errs := ff.Validate(); len(errs) > 0 {
			f.errs = errs
			return nil
		}
		payload := ff.Payload()
		return mutate(pageFeedback, func(ctx context.Context) error {
			var err error
			if id == "" {
				_, err = c.CreateFeedback(ctx, payload)
			} else {
				_, err = c.UpdateFeedback(ctx, id, payload)
			}
			return err
		})
	}
}
