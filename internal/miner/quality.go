package miner

import (
	"regexp"
	"strings"
)

// junkPattern matches boilerplate that shows up near filing tables but never
// inside real disclosure data: navigation, auditor signatures, certification
// language, XBRL cover-page artifacts, accounting-standard adoption text.
var junkPattern = regexp.MustCompile(`(?i)` +
	`table of contents|exhibit index|incorporated herein by reference|` +
	`certification of chief|pursuant to rule 13a|pursuant to section 906|` +
	`instance document|taxonomy extension|inline xbrl|` +
	`ernst.*young|deloitte|kpmg|pricewaterhousecoopers|/s/ |` +
	`trading arrangement|rule 10b5|shares to be sold|expiration date|` +
	`accounting standard|fasb issued|asc 842|adoption method|` +
	`bylaws|certificate of incorporation|indenture.*trustee`)

var digitRun = regexp.MustCompile(`\d{2,}`)

const (
	minRows        = 3
	minCols        = 2
	sampleRows     = 4
	minFilledShare = 0.15
)

// IsUseful reports whether a parsed table looks like a real data disclosure.
// Small tables, junk-adjacent tables, tables without numeric runs, and
// near-empty layout grids are all rejected.
func IsUseful(rows [][]string) bool {
	if len(rows) < minRows {
		return false
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols < minCols {
		return false
	}

	sample := joinCells(rows[:min(sampleRows, len(rows))])
	if junkPattern.MatchString(sample) {
		return false
	}

	all := joinCells(rows)
	if !digitRun.MatchString(all) {
		return false
	}

	total, filled := 0, 0
	for _, row := range rows {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
	}
	if total == 0 {
		return false
	}
	return float64(filled)/float64(total) >= minFilledShare
}

func joinCells(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			if cell == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}
