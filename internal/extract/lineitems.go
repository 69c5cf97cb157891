package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsift/docsift/internal/entity"
)

var (
	tableHeaderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Item\s+Description.*Price.*Qty.*Total`),
		regexp.MustCompile(`(?i)Description.*Price.*Quantity.*Amount`),
	}
	// a bare row with no header: leading integer then letters
	reBareRow = regexp.MustCompile(`^\s*\d+\s+[A-Za-z]`)
	// totals/footer section ends the table
	reTableEnd = regexp.MustCompile(`(?i)Sub\s*Total|Thank\s*you|Terms|Payment`)

	// strict shape: number, description, price, qty, total — anchored both ends
	reStrictRow = regexp.MustCompile(`^(\d+)\s+(.+?)\s+\$?(\d+\.?\d*)\s+(\d+)\s+\$?(\d+\.?\d*)$`)

	reRowAmount = regexp.MustCompile(`\$(\d+\.?\d*)`)
	reRowLetter = regexp.MustCompile(`[A-Za-z]`)
	reRowDesc   = regexp.MustCompile(`^(\d+\s+)?(.+?)\s+\$`)
	reRowQty    = regexp.MustCompile(`\$\d+\.?\d*\s+(\d+)\s+\$`)
)

// parseLineItems walks the document's line sequence as a small state
// machine: locate the table start (header shape, else first bare row), locate
// the end (totals/footer keyword, else end of document), then parse each row
// with the strict 5-field shape, degrading to a loose currency-token
// heuristic. No table found means an empty list, never an error.
func parseLineItems(text string) []entity.LineItem {
	items := []entity.LineItem{}
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		matched := false
		for _, h := range tableHeaderPatterns {
			if h.MatchString(line) {
				start = i + 1
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	if start == -1 {
		for i, line := range lines {
			if reBareRow.MatchString(line) {
				start = i
				break
			}
		}
	}
	if start == -1 {
		return items
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if reTableEnd.MatchString(lines[i]) {
			end = i
			break
		}
	}

	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if m := reStrictRow.FindStringSubmatch(line); m != nil {
			items = append(items, entity.LineItem{
				ItemNumber:  m[1],
				Description: strings.TrimSpace(m[2]),
				UnitPrice:   m[3],
				Quantity:    m[4],
				Amount:      m[5],
			})
			continue
		}

		// Loose heuristic: at least two currency amounts plus some letters.
		amounts := reRowAmount.FindAllStringSubmatch(line, -1)
		if len(amounts) < 2 || !reRowLetter.MatchString(line) {
			continue
		}
		desc := reRowDesc.FindStringSubmatch(line)
		if desc == nil {
			continue
		}
		itemNumber := strings.TrimSpace(desc[1])
		if itemNumber == "" {
			// default to the row's 1-based position among parsed items
			itemNumber = strconv.Itoa(len(items) + 1)
		}
		quantity := "1"
		if q := reRowQty.FindStringSubmatch(line); q != nil {
			quantity = q[1]
		}
		items = append(items, entity.LineItem{
			ItemNumber:  itemNumber,
			Description: strings.TrimSpace(desc[2]),
			UnitPrice:   amounts[0][1],
			Quantity:    quantity,
			Amount:      amounts[len(amounts)-1][1], // last amount is the row total
		})
	}

	return items
}
