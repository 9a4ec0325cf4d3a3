package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/reachronakofficial756/excelSort/pkg/model"
	"github.com/reachronakofficial756/excelSort/pkg/sanitizer"
)

// Column headers must match the exports byte for byte, including the line
// break inside the alternate-number header. Case and inner whitespace are
// significant; a renamed phone column fails the load.
const (
	LeadMobileColumn           = "MOBILE NO"
	LeadNameColumn             = "FIRST NAME"
	LeadPresentAddressColumn   = "PRESENT ADDRESS"
	LeadPermanentAddressColumn = "PERMANENT ADDRESS"
	LeadAltNumberColumn        = "ALTERNATE\nNUMBER"

	OrderPhoneColumn           = "user_phone_number"
	OrderNameColumn            = "user_name"
	OrderValueColumn           = "order_value"
	OrderTimeColumn            = "order_time"
	OrderRestaurantColumn      = "restaurant_name"
	OrderDeliveryAddressColumn = "delivery_address"
	OrderCityColumn            = "city_name"
	OrderLatitudeColumn        = "user_saved_latitude"
	OrderLongitudeColumn       = "user_saved_longitude"
)

// table is a parsed source file: a header index plus raw data rows. Rows may
// be ragged, cell lookups past a row's end yield "".
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(path string) (*table, error) {
	var (
		records [][]string
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		records, err = readXLSX(path)
	case ".csv":
		records, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s of %s: %w", sheets[0], path, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

func (t *table) cell(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (t *table) requireColumn(path, column string) error {
	if _, ok := t.columns[column]; !ok {
		return fmt.Errorf("%w: %q in %s", ErrMissingColumn, column, path)
	}
	return nil
}

// LoadLeads reads the CRM export. Only the mobile column is mandatory; rows
// missing other cells get empty-string defaults.
func LoadLeads(path string) ([]model.LeadRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumn(path, LeadMobileColumn); err != nil {
		return nil, err
	}

	leads := make([]model.LeadRecord, 0, len(t.rows))
	for i, row := range t.rows {
		rawMobile := t.cell(row, LeadMobileColumn)
		leads = append(leads, model.LeadRecord{
			RowIndex:         i,
			Mobile:           strings.TrimSpace(rawMobile),
			Name:             sanitizer.NormalizeName(t.cell(row, LeadNameColumn)),
			PresentAddress:   sanitizer.TrimAndNormalize(t.cell(row, LeadPresentAddressColumn)),
			PermanentAddress: sanitizer.TrimAndNormalize(t.cell(row, LeadPermanentAddressColumn)),
			AltNumber:        strings.TrimSpace(t.cell(row, LeadAltNumberColumn)),
			CanonicalPhone:   sanitizer.NormalizeMobile(rawMobile, sanitizer.LeadMobile),
		})
	}
	return leads, nil
}

// LoadOrders reads the order-history export. Only the phone column is
// mandatory; numeric cells degrade to zero when unparseable.
func LoadOrders(path string) ([]model.OrderRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumn(path, OrderPhoneColumn); err != nil {
		return nil, err
	}

	orders := make([]model.OrderRecord, 0, len(t.rows))
	for i, row := range t.rows {
		rawPhone := t.cell(row, OrderPhoneColumn)
		orders = append(orders, model.OrderRecord{
			RowIndex:        i,
			Phone:           strings.TrimSpace(rawPhone),
			CustomerName:    sanitizer.NormalizeName(t.cell(row, OrderNameColumn)),
			OrderValue:      sanitizer.ParseOrderValue(t.cell(row, OrderValueColumn)),
			OrderTime:       strings.TrimSpace(t.cell(row, OrderTimeColumn)),
			Restaurant:      sanitizer.TrimAndNormalize(t.cell(row, OrderRestaurantColumn)),
			DeliveryAddress: sanitizer.TrimAndNormalize(t.cell(row, OrderDeliveryAddressColumn)),
			City:            sanitizer.NormalizeCity(t.cell(row, OrderCityColumn)),
			Latitude:        sanitizer.ParseCoordinate(t.cell(row, OrderLatitudeColumn)),
			Longitude:       sanitizer.ParseCoordinate(t.cell(row, OrderLongitudeColumn)),
			CanonicalPhone:  sanitizer.NormalizeMobile(rawPhone, sanitizer.OrderMobile),
		})
	}
	return orders, nil
}

// Load reads both exports and builds the immutable snapshot. Any failure
// leaves the caller with no snapshot; serving an empty one instead is the
// caller's decision.
func Load(leadPath, orderPath string) (*Snapshot, error) {
	leads, err := LoadLeads(leadPath)
	if err != nil {
		return nil, fmt.Errorf("lead table: %w", err)
	}

	orders, err := LoadOrders(orderPath)
	if err != nil {
		return nil, fmt.Errorf("order table: %w", err)
	}

	return BuildSnapshot(leads, orders, leadPath, orderPath), nil
}
