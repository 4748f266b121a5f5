// Package report renders extraction results into an Excel workbook: one
// sheet per statement per frequency, plus one sheet per mined table.
package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/extract"
	"github.com/sells-group/edgar-extract/internal/statement"
)

// maxSheetName is the Excel hard limit on sheet name length.
const maxSheetName = 31

// maxQuarterlyPeriods caps how many quarter columns a sheet shows. Purely a
// presentation limit; the underlying series keep the full history.
const maxQuarterlyPeriods = 60

// maxTableSheets caps how many mined tables get their own sheet.
const maxTableSheets = 25

var sheetTitles = map[concept.Category]string{
	concept.IncomeStatement: "Income Stmt",
	concept.BalanceSheet:    "Balance Sheet",
	concept.CashFlow:        "Cash Flow",
	concept.Other:           "Other",
}

// WriteWorkbook writes the full result to an xlsx file at path.
func WriteWorkbook(path string, res *extract.Result) error {
	f := xlsx.NewFile()

	for _, cat := range concept.Categories {
		if st, ok := res.Annual[cat]; ok {
			periods := reversed(st.Periods)
			if err := writeStatementSheet(f, "Annual "+sheetTitles[cat], res.Entity, "Fiscal Year", st, periods); err != nil {
				return err
			}
		}
	}
	for _, cat := range concept.Categories {
		if st, ok := res.Quarterly[cat]; ok {
			periods := st.Periods
			if len(periods) > maxQuarterlyPeriods {
				periods = periods[:maxQuarterlyPeriods]
			}
			if err := writeStatementSheet(f, "Quarterly "+sheetTitles[cat], res.Entity, "Quarter Ended", st, periods); err != nil {
				return err
			}
		}
	}

	tables := res.Tables
	if len(tables) > maxTableSheets {
		tables = tables[:maxTableSheets]
	}
	for i, mt := range tables {
		name := clampSheetName(fmt.Sprintf("Seg-KPI %s (%d)", mt.FilingDate, i+1))
		if err := writeTableSheet(f, name, mt.FilingDate, mt.Rows); err != nil {
			return err
		}
	}

	if len(f.Sheets) == 0 {
		return eris.New("report: nothing to write")
	}
	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "report: save workbook")
	}
	return nil
}

// writeStatementSheet lays a statement out with a title row, a period header
// row, and one row per line item. Annual sheets run oldest to newest;
// quarterly sheets newest first.
func writeStatementSheet(f *xlsx.File, name, entity, periodLabel string, st statement.Statement, periods []string) error {
	sheet, err := f.AddSheet(clampSheetName(name))
	if err != nil {
		return eris.Wrapf(err, "report: add sheet %s", name)
	}

	title := sheet.AddRow()
	title.AddCell().SetString(fmt.Sprintf("%s  |  %s", entity, name))

	hdr := sheet.AddRow()
	hdr.AddCell().SetString(periodLabel)
	for _, p := range periods {
		hdr.AddCell().SetString(p)
	}

	bold := boldStyle()
	for _, line := range st.Lines {
		row := sheet.AddRow()
		labelCell := row.AddCell()
		labelCell.SetString(line.Label)
		if line.Total {
			labelCell.SetStyle(bold)
		}
		for _, p := range periods {
			cell := row.AddCell()
			v, ok := line.Values[p]
			if !ok {
				cell.SetString("-")
				continue
			}
			cell.SetFloatWithFormat(v, numberFormat(v))
			if line.Total {
				cell.SetStyle(bold)
			}
		}
	}
	return nil
}

func writeTableSheet(f *xlsx.File, name, filingDate string, rows [][]string) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "report: add sheet %s", name)
	}

	title := sheet.AddRow()
	title.AddCell().SetString("Extracted Table  |  Filing: " + filingDate)

	for _, r := range rows {
		row := sheet.AddRow()
		for _, cell := range r {
			row.AddCell().SetString(cell)
		}
	}
	return nil
}

// numberFormat picks two decimals for small fractional values (per-share
// figures) and one decimal for everything else.
func numberFormat(v float64) string {
	if v < 100 && v > -100 && v != float64(int64(v)) {
		return `#,##0.00;(#,##0.00);"-"`
	}
	return `#,##0.0;(#,##0.0);"-"`
}

func boldStyle() *xlsx.Style {
	s := xlsx.NewStyle()
	s.Font.Bold = true
	s.ApplyFont = true
	return s
}

func clampSheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	return name
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
