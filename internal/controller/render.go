package controller

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	yesLabel = "yes"
	noLabel  = "no"
	// maxPreview is the number of value labels shown per column.
	maxPreview = 3
)

func newTable(buffer *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderSummaryTable(summary m.RunSummary) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Column", "New name", "Kind", "Method", "One-to-one", "Distinct"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT,
	})

	for _, column := range summary.Columns {
		newName := column.NewName
		if newName == column.Name {
			newName = "-"
		}

		table.Append([]string{
			column.Name,
			newName,
			column.Kind.String(),
			column.Method.String(),
			yesNo(column.OneToOne),
			humanize.Comma(int64(column.Distinct)),
		})
	}

	table.SetFooter([]string{"", "", "", "", "Rows", humanize.Comma(int64(summary.Rows))})
	table.Render()

	return buffer.String()
}

func renderColumnsTable(columns []m.Column) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"#", "Name", "Kind", "Width", "Value labels", "Missing values"})

	for _, column := range columns {
		width := "-"
		if column.IsText() {
			width = strconv.Itoa(column.Width)
		}

		table.Append([]string{
			strconv.Itoa(column.Index + 1),
			column.Name,
			column.Kind.String(),
			width,
			previewLabels(column.ValueLabels),
			strings.Join(column.MissingValues, ", "),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total columns %d", len(columns)), "", "", "", ""})
	table.Render()

	return buffer.String()
}

func renderMappingTable(mapping m.MappingTable) string {
	var buffer bytes.Buffer

	table := newTable(&buffer, []string{"Substitute", "Original"})

	for _, entry := range mapping.Entries {
		table.Append([]string{entry.Substitute.String(), entry.Original.String()})
	}

	table.SetFooter([]string{"Entries", humanize.Comma(int64(len(mapping.Entries)))})
	table.Render()

	return buffer.String()
}

func renderMappings(tables []m.MappingTable) string {
	if len(tables) == 0 {
		return "no mappings found\n"
	}

	var b strings.Builder

	for i, mapping := range tables {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s\n", mapping.Column)

		if len(mapping.Entries) == 0 {
			b.WriteString("  (no entries)\n")
			continue
		}

		b.WriteString(renderMappingTable(mapping))
	}

	return b.String()
}

func previewLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	parts := make([]string, 0, maxPreview+1)
	for _, key := range keys[:min(len(keys), maxPreview)] {
		parts = append(parts, key+"="+labels[key])
	}

	if len(keys) > maxPreview {
		parts = append(parts, fmt.Sprintf("+%d more", len(keys)-maxPreview))
	}

	return strings.Join(parts, ", ")
}

func formatRows(rows int) string {
	if rows < 0 {
		return "?"
	}

	return humanize.Comma(int64(rows))
}

func yesNo(v bool) string {
	if v {
		return yesLabel
	}

	return noLabel
}
