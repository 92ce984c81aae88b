package display

import "github.com/ajxudir/toolcatalog/pkg/output"

// ColumnDef defines a single table column's properties.
//
// Fields:
//   - Name: Column header text (displayed in uppercase)
//   - MaxWidth: Longest a value may be before it is truncated; zero means unbounded
//   - Optional: If true, column can be hidden via TableOptions
type ColumnDef struct {
	Name     string
	MaxWidth int
	Optional bool
}

// Schema defines a complete table structure.
type Schema struct {
	// Columns defines the table columns in display order.
	Columns []ColumnDef
}

// Predefined table schemas.
//
// These schemas define the exact column structure for each command's
// table output. All table creation should use these schemas.
var (
	// ToolSchema defines columns for each category table of the list command.
	// Columns: TITLE, LANGUAGE, TECHNOLOGIES, PRICING, OWNER, DESCRIPTION*
	// * DESCRIPTION is optional
	ToolSchema = Schema{
		Columns: []ColumnDef{
			{Name: "TITLE", MaxWidth: 40},
			{Name: "LANGUAGE"},
			{Name: "TECHNOLOGIES", MaxWidth: 36},
			{Name: "PRICING"},
			{Name: "OWNER"},
			{Name: "DESCRIPTION", MaxWidth: 60, Optional: true},
		},
	}

	// FacetSchema defines columns for the facets command.
	FacetSchema = Schema{
		Columns: []ColumnDef{
			{Name: "VALUE", MaxWidth: 40},
			{Name: "TOOLS"},
		},
	}
)

// TableOptions configures table creation from a schema.
type TableOptions struct {
	// ShowOptional lists optional columns to show, by name.
	ShowOptional map[string]bool
}

// NewTableFromSchema creates an output.Table from a schema definition.
//
// Parameters:
//   - schema: Table schema defining columns
//   - options: Options for optional column visibility
//
// Returns:
//   - *output.Table: Configured table ready for use
func NewTableFromSchema(schema Schema, options TableOptions) *output.Table {
	table := output.NewTable()
	for _, col := range schema.Columns {
		if col.Optional {
			table.AddConditionalColumn(col.Name, options.ShowOptional[col.Name])
		} else {
			table.AddColumn(col.Name)
		}
		if col.MaxWidth > 0 {
			table.LimitLastColumn(col.MaxWidth)
		}
	}
	return table
}

// NewToolTable creates a table for one category of tools.
func NewToolTable(showDescription bool) *output.Table {
	return NewTableFromSchema(ToolSchema, TableOptions{
		ShowOptional: map[string]bool{"DESCRIPTION": showDescription},
	})
}

// NewFacetTable creates a table for one facet list.
func NewFacetTable() *output.Table {
	return NewTableFromSchema(FacetSchema, TableOptions{})
}
