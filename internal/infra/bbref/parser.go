package bbref

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"nba-voice-stats/internal/domain"
)

var (
	ErrTableNotFound       = errors.New("stats table not found")
	ErrPlayerColumnMissing = errors.New("stats table has no Player column")
)

// ParseTable reads an HTML page and extracts the table with the given id.
func ParseTable(r io.Reader, tableID string) (*domain.StatsTable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return ParseDocument(doc, tableID)
}

// ParseDocument extracts the table with the given id. Tables the site ships
// inside HTML comments are found as well.
func ParseDocument(doc *goquery.Document, tableID string) (*domain.StatsTable, error) {
	sel := doc.Find("table#" + tableID).First()
	if sel.Length() == 0 {
		commented, err := findCommentedTable(doc, tableID)
		if err != nil {
			return nil, err
		}
		sel = commented
	}
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrTableNotFound, tableID)
	}

	columns := parseHeader(sel)
	playerIdx := indexOf(columns, domain.ColumnPlayer)
	if playerIdx < 0 {
		return nil, ErrPlayerColumnMissing
	}

	table := &domain.StatsTable{Columns: columns}
	sel.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") || tr.HasClass("over_header") {
			return
		}
		record := rowCells(tr)
		if playerIdx < len(record) && record[playerIdx] == domain.ColumnPlayer {
			return
		}
		if row, ok := domain.NewPlayerRow(columns, record); ok {
			table.Rows = append(table.Rows, row)
		}
	})

	return table, nil
}

func findCommentedTable(doc *goquery.Document, tableID string) (*goquery.Selection, error) {
	marker := `id="` + tableID + `"`
	var found *goquery.Selection
	var parseErr error

	doc.Find("*").Contents().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		node := s.Get(0)
		if node.Type != html.CommentNode || !strings.Contains(node.Data, marker) {
			return true
		}
		inner, err := goquery.NewDocumentFromReader(strings.NewReader(node.Data))
		if err != nil {
			parseErr = fmt.Errorf("parsing commented table: %w", err)
			return false
		}
		found = inner.Find("table#" + tableID).First()
		return false
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if found == nil {
		return doc.Find("table#" + tableID), nil
	}
	return found, nil
}

// parseHeader reads column names from the last header row. Repeated names get
// a numeric suffix so every column stays addressable.
func parseHeader(table *goquery.Selection) []string {
	var columns []string
	seen := make(map[string]int)

	table.Find("thead tr").Last().Children().Filter("th, td").Each(func(_ int, th *goquery.Selection) {
		name := strings.TrimSpace(th.Text())
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n)
		} else {
			seen[name] = 1
		}
		columns = append(columns, name)
	})
	return columns
}

func rowCells(tr *goquery.Selection) []string {
	var record []string
	tr.Children().Filter("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		record = append(record, text)
		for i := 1; i < colspan(cell); i++ {
			record = append(record, "")
		}
	})
	return record
}

func colspan(s *goquery.Selection) int {
	v, ok := s.Attr("colspan")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func indexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
