// Package miner scans filing HTML for keyword-adjacent disclosure tables
// (segments, KPIs) and filters them with structural quality heuristics.
package miner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// maxMatchesPerTopic bounds how many text occurrences of one keyword
	// phrase are followed up per document.
	maxMatchesPerTopic = 5
	// maxAncestorHops bounds the climb through enclosing elements when
	// looking for the nearest following table.
	maxAncestorHops = 8
	// fingerprintLen bounds the content fingerprint used for dedup.
	fingerprintLen = 300
)

// ExtractTables returns the row matrices of keyword-adjacent tables in the
// document that pass the quality gate. seen carries content fingerprints
// across calls so duplicate tables are returned once per run.
func ExtractTables(htmlText string, topics []string, seen map[string]struct{}) [][][]string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	var results [][][]string
	for _, topic := range topics {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(topic) + `\b`)
		if err != nil {
			continue
		}

		for _, textNode := range findTextMatches(doc, re, maxMatchesPerTopic) {
			table := nearestFollowingTable(textNode)
			if table == nil {
				continue
			}

			rows := parseTable(table)
			fp := Fingerprint(rows)
			if _, dup := seen[fp]; dup {
				continue
			}
			if !IsUseful(rows) {
				continue
			}
			seen[fp] = struct{}{}
			results = append(results, stripEmptyRows(rows))
		}
	}
	return results
}

// findTextMatches walks the document's text nodes in order and returns up to
// limit nodes whose text matches the pattern.
func findTextMatches(doc *goquery.Document, re *regexp.Regexp, limit int) []*html.Node {
	var matches []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(matches) >= limit {
			return
		}
		if n.Type == html.TextNode && re.MatchString(n.Data) {
			matches = append(matches, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return matches
}

// nearestFollowingTable climbs from the matched text node through enclosing
// elements and returns the first table element following each level in
// document order. Stops at the first table found, useful or not.
func nearestFollowingTable(textNode *html.Node) *html.Node {
	parent := textNode.Parent
	for range maxAncestorHops {
		if parent == nil {
			return nil
		}
		if table := findNextTable(parent); table != nil {
			return table
		}
		parent = parent.Parent
	}
	return nil
}

// findNextTable scans document order starting inside n for a table element.
func findNextTable(n *html.Node) *html.Node {
	for node := successor(n); node != nil; node = successor(node) {
		if node.Type == html.ElementNode && node.Data == "table" {
			return node
		}
	}
	return nil
}

// successor returns the next node in document order.
func successor(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// parseTable renders a table element as a rectangular cell matrix. Colspan
// and rowspan are expanded onto a virtual grid so columns stay aligned;
// spanned positions beyond the anchoring cell are left empty.
func parseTable(table *html.Node) [][]string {
	sel := goquery.NewDocumentFromNode(table).Find("tr")
	rowCount := sel.Length()
	if rowCount == 0 {
		return nil
	}

	// Pre-scan for the widest row, counting colspans.
	maxCols := 0
	sel.Each(func(_ int, tr *goquery.Selection) {
		cols := 0
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cols += spanAttr(cell, "colspan")
		})
		if cols > maxCols {
			maxCols = cols
		}
	})
	if maxCols == 0 {
		return nil
	}

	grid := make([][]string, rowCount)
	filled := make([][]bool, rowCount)
	for i := range grid {
		grid[i] = make([]string, maxCols)
		filled[i] = make([]bool, maxCols)
	}

	sel.Each(func(rowIdx int, tr *goquery.Selection) {
		colIdx := 0
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			for colIdx < maxCols && filled[rowIdx][colIdx] {
				colIdx++
			}
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			text := cleanCellText(cell.Text())

			for r := range rowspan {
				for c := range colspan {
					rr, cc := rowIdx+r, colIdx+c
					if rr < rowCount && cc < maxCols {
						filled[rr][cc] = true
						if r == 0 && c == 0 {
							grid[rr][cc] = text
						}
					}
				}
			}
			colIdx += colspan
		})
	})

	return grid
}

func spanAttr(cell *goquery.Selection, attr string) int {
	n, err := strconv.Atoi(cell.AttrOr(attr, "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func cleanCellText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// stripEmptyRows removes rows whose cells are all empty.
func stripEmptyRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

// Fingerprint serializes the cell values into a bounded-length string used to
// detect duplicate table discoveries.
func Fingerprint(rows [][]string) string {
	s := fmt.Sprintf("%v", rows)
	if len(s) > fingerprintLen {
		s = s[:fingerprintLen]
	}
	return s
}
