package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// ParseBeingLateCertificates reads the lateness certificates report. The
// report renders an explicit no-data marker instead of the table when the
// period has no certificates.
func ParseBeingLateCertificates(html string) ([]domain.BeingLateCertificate, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	if hasNoDataMarker(doc) {
		return nil, nil
	}

	tables := doc.Find("table")
	if tables.Length() < 2 {
		return nil, errors.Errorf("being late certificates: expected 2 tables, got %d", tables.Length())
	}

	rows := tables.Eq(1).Find("tr")
	if rows.Length() <= 1 {
		return nil, nil
	}

	var certificates []domain.BeingLateCertificate
	err = collectRows(rows.Slice(1, goquery.ToEnd), 8, func(cells []string) error {
		issuedAt, err := utils.ParseReportTime(normalizeCertificateTimestamp(cells[1]))
		if err != nil {
			return errors.Wrap(err, "being late certificates: issued at")
		}
		certificates = append(certificates, domain.BeingLateCertificate{
			Department:        domain.NormalizeDepartmentName(cells[0]),
			IssuedAt:          issuedAt,
			OrderNo:           cells[2],
			EstimatedDelivery: cells[3],
			CourierMarkAt:     cells[4],
			DeliveryDeadline:  cells[5],
			CertificateType:   cells[6],
			GivenBy:           cells[7],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return certificates, nil
}

// normalizeCertificateTimestamp collapses the multi-line timestamp cell into
// "DD.MM.YYYY HH:MM:SS".
func normalizeCertificateTimestamp(value string) string {
	value = strings.NewReplacer("\t", "", "\r", "", "\n", " ").Replace(value)
	for strings.Contains(value, "  ") {
		value = strings.ReplaceAll(value, "  ", " ")
	}
	return strings.TrimSpace(value)
}

// ParseRestaurantOrders reads the restaurant orders report table.
func ParseRestaurantOrders(html string) ([]domain.Order, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	body := doc.Find("tbody")
	if body.Length() == 0 {
		return nil, errors.New("restaurant orders: table body not found")
	}

	var orders []domain.Order
	err = collectRows(body.Find("tr"), 10, func(cells []string) error {
		acceptedAt, err := utils.ParseReportTime(cells[1])
		if err != nil {
			return errors.Wrap(err, "restaurant orders: accepted at")
		}
		price, err := parsePrice(cells[6])
		if err != nil {
			return errors.Wrap(err, "restaurant orders: price")
		}
		orders = append(orders, domain.Order{
			Department:          cells[0],
			AcceptedAt:          acceptedAt,
			No:                  cells[2],
			Type:                cells[3],
			CustomerName:        cells[4],
			CustomerPhoneNumber: cells[5],
			Price:               price,
			PaymentMethod:       cells[7],
			Status:              cells[8],
			AcceptedByEmployee:  cells[9],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
