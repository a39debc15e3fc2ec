package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborview/marinadesk/internal/forms"
)

// fieldKind determines how a form field is edited and rendered
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
	fieldCheckbox
)

// formField is one line of a modal form
type formField struct {
	name     string // payload field name, matches forms.Errors keys
	label    string
	kind     fieldKind
	required bool

	input   textinput.Model // fieldText
	options []string        // fieldSelect
	option  int
	checked bool // fieldCheckbox
}

func textField(name, label, value, placeholder string, required bool) formField {
	ti := textinput.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 40
	return formField{name: name, label: label, kind: fieldText, required: required, input: ti}
}

func selectField(name, label, value string, options []string, required bool) formField {
	idx := 0
	for i, o := range options {
		if o == value {
			idx = i
			break
		}
	}
	return formField{name: name, label: label, kind: fieldSelect, required: required, options: options, option: idx}
}

func checkboxField(name, label string, checked bool) formField {
	return formField{name: name, label: label, kind: fieldCheckbox, checked: checked}
}

// formModel is a dialog-scoped create/edit form bound to one entity.
// Closing it discards unsaved input; the parent re-creates it from the
// entity on the next open.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	errs       forms.Errors
	notice     string // backend error message after a failed submit
	submitting bool
}

func newForm(title string, fields []formField) formModel {
	f := formModel{title: title, fields: fields}
	f.focusField(0)
	return f
}

// value returns a text or select field's current value
func (f *formModel) value(name string) string {
	for i := range f.fields {
		if f.fields[i].name != name {
			continue
		}
		switch f.fields[i].kind {
		case fieldSelect:
			if len(f.fields[i].options) == 0 {
				return ""
			}
			return f.fields[i].options[f.fields[i].option]
		default:
			return f.fields[i].input.Value()
		}
	}
	return ""
}

// checked returns a checkbox field's state
func (f *formModel) checked(name string) bool {
	for i := range f.fields {
		if f.fields[i].name == name {
			return f.fields[i].checked
		}
	}
	return false
}

func (f *formModel) focusField(idx int) {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
	f.focus = idx
	if f.fields[f.focus].kind == fieldText {
		f.fields[f.focus].input.Focus()
	}
}

// update handles navigation and editing. Returns submit=true when the
// user pressed enter on the last field or ctrl+s anywhere.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch keyMsg.String() {
	case "ctrl+s":
		return f, nil, true

	case "tab", "down":
		next := (f.focus + 1) % len(f.fields)
		f.focusField(next)
		return f, nil, false

	case "shift+tab", "up":
		prev := f.focus - 1
		if prev < 0 {
			prev = len(f.fields) - 1
		}
		f.focusField(prev)
		return f, nil, false

	case "enter":
		if f.focus == len(f.fields)-1 {
			return f, nil, true
		}
		f.focusField(f.focus + 1)
		return f, nil, false
	}

	field := &f.fields[f.focus]
	switch field.kind {
	case fieldSelect:
		switch keyMsg.String() {
		case "left", "h":
			field.option--
			if field.option < 0 {
				field.option = len(field.options) - 1
			}
		case "right", "l", " ":
			field.option = (field.option + 1) % len(field.options)
		}
		return f, nil, false

	case fieldCheckbox:
		if keyMsg.String() == " " || keyMsg.String() == "x" {
			field.checked = !field.checked
		}
		return f, nil, false

	default:
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		return f, cmd, false
	}
}

func (f formModel) view() string {
	var lines []string
	lines = append(lines, titleStyle.Render(f.title), "")

	for i, field := range f.fields {
		label := field.label
		if field.required {
			label += " *"
		}
		ls := fieldLabelStyle
		if i == f.focus {
			ls = focusedFieldLabelStyle
		}

		var val string
		switch field.kind {
		case fieldSelect:
			opt := ""
			if len(field.options) > 0 {
				opt = field.options[field.option]
			}
			if opt == "" {
				opt = "(select)"
			}
			val = "< " + opt + " >"
		case fieldCheckbox:
			if field.checked {
				val = "[x]"
			} else {
				val = "[ ]"
			}
		default:
			val = field.input.View()
		}

		line := ls.Render(label) + " " + val
		if msg, bad := f.errs[field.name]; bad {
			line += " " + requiredMarkStyle.Render(msg)
		}
		lines = append(lines, line)
	}

	if f.notice != "" {
		lines = append(lines, "", errorStyle.Render("✗ "+f.notice))
	}
	if f.submitting {
		lines = append(lines, "", mutedStyle.Render("Saving..."))
	}
	lines = append(lines, "", helpStyle.Render("Tab/↑↓: Fields • ←/→/Space: Options • Ctrl+S/Enter on last field: Save • Esc: Cancel"))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// joinNonEmpty builds a table cell from optional parts
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
