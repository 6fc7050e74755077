// Package parser converts raw back-office markup into typed records. Each
// function targets one physical page layout and locates data by structural
// markers; when a layout changes, parsing fails loudly instead of emitting
// fabricated values.
package parser

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// noDataMarker is the literal the back office renders instead of a table
// when a report has nothing to show.
const noDataMarker = "данные не найдены"

var panelReplacer = strings.NewReplacer(" ", "", "₽", "", "%", "", "\r", "", "\t", "")

// cleanPanelText strips locale punctuation (NBSP, currency and percent
// glyphs, thousands separators, control whitespace) so numeric panel text
// can be coerced. Newlines survive: multi-line panels are split afterwards.
func cleanPanelText(text string) string {
	text = norm.NFKD.String(text)
	text = panelReplacer.Replace(text)
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", ".")
	return strings.ReplaceAll(text, "−", "-")
}

func parseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(err, "coercing %q to int", value)
	}
	return n, nil
}

func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "coercing %q to float", value)
	}
	return f, nil
}

// parsePrice coerces a money label like "1 234 ₽" into integer rubles.
func parsePrice(value string) (int, error) {
	return parseInt(cleanPanelText(value))
}

// rowCells collects the trimmed text of every td in a table row.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}

func newDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parsing markup")
	}
	return doc, nil
}

func hasNoDataMarker(doc *goquery.Document) bool {
	return strings.Contains(strings.ToLower(doc.Text()), noDataMarker)
}
