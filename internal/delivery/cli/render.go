package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eventsportal/internal/domain"
	"eventsportal/internal/i18n"
	"eventsportal/internal/validation"
)

// Renderer turns screen state into localized terminal text.
type Renderer struct {
	text *i18n.Catalog
}

func NewRenderer(text *i18n.Catalog) Renderer {
	return Renderer{text: text}
}

// EventList renders the list page: title, active filters and one row per event.
func (r Renderer) EventList(events []domain.Event, filters domain.EventFilters) string {
	sections := []string{styleTitle.Render(r.text.T(i18n.MsgEvents))}
	if summary := r.filterSummary(filters); summary != "" {
		sections = append(sections, styleDimmed.Render(summary))
	}
	if len(events) == 0 {
		sections = append(sections, "", styleDimmed.Render(r.text.T(i18n.MsgNoEvents)))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styleHeader.Width(idWidth).Render("#"),
		styleHeader.Width(nameWidth).Render(r.text.T(i18n.MsgLabelName)),
		styleHeader.Width(dateWidth).Render(r.text.T(i18n.MsgLabelDate)),
		styleHeader.Width(placeWidth).Render(r.text.T(i18n.MsgLabelPlace)),
	)
	rows := []string{header}
	for _, ev := range events {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			styleDimmed.Width(idWidth).Render(strconv.FormatInt(ev.ID, 10)),
			styleValue.Width(nameWidth).Render(truncate(ev.Name, nameWidth-1)),
			styleValue.Width(dateWidth).Render(r.text.FormatDate(ev.Date)),
			styleValue.Width(placeWidth).Render(truncate(ev.Place, placeWidth-1)),
		))
	}
	sections = append(sections, stylePanel.Render(strings.Join(rows, "\n")))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r Renderer) filterSummary(f domain.EventFilters) string {
	if !f.HasActive() {
		return ""
	}
	var parts []string
	if f.Name != "" {
		parts = append(parts, r.text.T(i18n.MsgLabelName)+": "+f.Name)
	}
	if f.Place != "" {
		parts = append(parts, r.text.T(i18n.MsgLabelPlace)+": "+f.Place)
	}
	if !f.StartDate.IsZero() {
		parts = append(parts, r.text.T(i18n.MsgLabelFrom)+": "+r.text.FormatDate(f.StartDate))
	}
	if !f.EndDate.IsZero() {
		parts = append(parts, r.text.T(i18n.MsgLabelTo)+": "+r.text.FormatDate(f.EndDate))
	}
	f = f.WithDefaults()
	parts = append(parts, fmt.Sprintf("%s: %s (%s)", r.text.T(i18n.MsgLabelSortBy), r.sortLabel(f.SortBy), r.orderLabel(f.SortOrder)))
	return strings.Join(parts, "  ·  ")
}

func (r Renderer) sortLabel(s domain.SortField) string {
	switch s {
	case domain.SortByName:
		return r.text.T(i18n.MsgSortName)
	case domain.SortByCreatedAt:
		return r.text.T(i18n.MsgSortCreatedAt)
	}
	return r.text.T(i18n.MsgSortDate)
}

func (r Renderer) orderLabel(o domain.SortOrder) string {
	if o == domain.SortDesc {
		return r.text.T(i18n.MsgOrderDesc)
	}
	return r.text.T(i18n.MsgOrderAsc)
}

// EventDetail renders one event as a labelled panel.
func (r Renderer) EventDetail(ev domain.Event) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(ev.Name) + "\n\n")
	writeRow(&b, r.text.T(i18n.MsgLabelDate), r.text.FormatDate(ev.Date))
	if ev.Place != "" {
		writeRow(&b, r.text.T(i18n.MsgLabelPlace), ev.Place)
	}
	if ev.Description != "" {
		writeRow(&b, r.text.T(i18n.MsgLabelDescription), ev.Description)
	}
	if !ev.CreatedAt.IsZero() {
		writeRow(&b, r.text.T(i18n.MsgLabelCreated), r.text.FormatDate(ev.CreatedAt))
	}
	if !ev.UpdatedAt.IsZero() {
		writeRow(&b, r.text.T(i18n.MsgLabelUpdated), r.text.FormatDate(ev.UpdatedAt))
	}
	return stylePanel.Render(strings.TrimRight(b.String(), "\n"))
}

// NotFound is the empty state of the detail page.
func (r Renderer) NotFound() string {
	return styleDimmed.Render(r.text.T(i18n.MsgEventNotFound))
}

// Alert renders an error message. Known messages are translated.
func (r Renderer) Alert(msg string) string {
	return styleAlert.Render(styleTitle.Foreground(colorDanger).Render(r.text.T(i18n.MsgError)) + "\n" + r.text.Text(msg))
}

// Toast renders a success message.
func (r Renderer) Toast(msg string) string {
	return styleToast.Render("✓ " + msg)
}

// FieldErrors renders one line per invalid field, in field order.
func (r Renderer) FieldErrors(fe validation.FieldErrors) string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = styleLabel.Render(f+":") + r.text.Text(fe[f])
	}
	return styleAlert.Render(strings.Join(lines, "\n"))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(styleLabel.Render(label+":") + styleValue.Render(value) + "\n")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
