package parser

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// History row markers of the order detail page. The refund receipt event is
// what distinguishes a confirmed cancellation from a rejection that may
// still be reverted.
const (
	acceptedMarker       = "has been accepted"
	rejectedMarker       = "has been rejected"
	refundReceiptMarker  = "refund receipt"
	receiptPrintedMarker = "has been printed"
)

// ParseCanceledOrderSummaries reads one page of the canceled orders listing.
// An empty page parses to an empty slice, which terminates pagination.
func ParseCanceledOrderSummaries(html string) ([]domain.CanceledOrderSummary, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	allRows := doc.Find("tr")
	if allRows.Length() <= 1 {
		return nil, nil
	}

	var (
		summaries []domain.CanceledOrderSummary
		parseErr  error
	)
	allRows.Slice(1, goquery.ToEnd).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 8 {
			parseErr = errors.Errorf("canceled orders listing: expected at least 8 cells, got %d", cells.Length())
			return false
		}

		link, ok := cells.Eq(0).Find("a").Attr("href")
		if !ok {
			parseErr = errors.New("canceled orders listing: order link not found")
			return false
		}
		orderUUID := link[strings.LastIndex(link, "=")+1:]

		price, err := parsePrice(cells.Eq(4).Text())
		if err != nil {
			parseErr = errors.Wrap(err, "canceled orders listing: order price")
			return false
		}

		summaries = append(summaries, domain.CanceledOrderSummary{
			UUID:  orderUUID,
			No:    strings.TrimSpace(cells.Eq(1).Text()),
			Price: price,
			Type:  strings.TrimSpace(cells.Eq(7).Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return summaries, nil
}

// ParseCanceledOrder reads the order detail page and resolves the creation
// and cancellation instants from the embedded event history. The rejection
// time counts as the cancellation instant only when a refund receipt was
// printed; otherwise the cancellation is left unconfirmed.
func ParseCanceledOrder(html string, summary domain.CanceledOrderSummary) (*domain.CanceledOrder, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	orderNo := strings.TrimSpace(doc.Find("span#orderNumber").Text())
	if orderNo == "" {
		return nil, errors.New("canceled order detail: order number not found")
	}

	department := strings.TrimSpace(doc.Find("div.headerDepartment").Text())
	if department == "" {
		return nil, errors.New("canceled order detail: department header not found")
	}

	history := doc.Find("div#history")
	if history.Length() == 0 {
		return nil, errors.New("canceled order detail: history section not found")
	}

	rows := history.Find("tr")
	if rows.Length() <= 1 {
		return nil, errors.New("canceled order detail: empty history")
	}
	rows = rows.Slice(1, goquery.ToEnd)

	receiptPrinted := false
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		message := historyMessage(row)
		if strings.Contains(message, refundReceiptMarker) && strings.Contains(message, receiptPrintedMarker) {
			receiptPrinted = true
			return false
		}
		return true
	})

	var (
		createdAt  *time.Time
		rejectedAt *time.Time
		parseErr   error
	)
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 {
			parseErr = errors.New("canceled order detail: malformed history row")
			return false
		}

		message := historyMessage(row)
		switch {
		case strings.Contains(message, acceptedMarker):
			at, err := utils.ParseReportTime(cells.Eq(0).Text())
			if err != nil {
				parseErr = errors.Wrap(err, "canceled order detail: accepted at")
				return false
			}
			createdAt = &at
		case strings.Contains(message, rejectedMarker) && receiptPrinted:
			at, err := utils.ParseReportTime(cells.Eq(0).Text())
			if err != nil {
				parseErr = errors.Wrap(err, "canceled order detail: rejected at")
				return false
			}
			rejectedAt = &at
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return &domain.CanceledOrder{
		Department: domain.NormalizeDepartmentName(department),
		CreatedAt:  createdAt,
		RejectedAt: rejectedAt,
		No:         orderNo,
		Type:       summary.Type,
		Price:      summary.Price,
		UUID:       summary.UUID,
	}, nil
}

func historyMessage(row *goquery.Selection) string {
	return strings.ToLower(strings.TrimSpace(row.Find("td").Eq(1).Text()))
}
