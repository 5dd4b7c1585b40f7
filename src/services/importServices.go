package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
	"github.com/sirupsen/logrus"
	excelize "github.com/xuri/excelize/v2"
)

const (
	TradingCardsSheet = "TradingCards"
	CoinsSheet        = "Coins"
)

// TradingCardColumns is the column layout of the TradingCards sheet.
var TradingCardColumns = []string{"itemName", "athlete", "cardVariation", "sport", "prevCollectorID", "seriesName", "releaseDate", "manufacturerName", "country"}

// CoinColumns is the column layout of the Coins sheet.
var CoinColumns = []string{"itemName", "currency", "denomination", "prevCollectorID", "seriesName", "releaseDate", "manufacturerName", "country"}

type ImportService struct {
	items *ItemService
}

// NewImportService creates a new instance of ImportService
func NewImportService(items *ItemService) *ImportService {
	return &ImportService{items: items}
}

// ImportItemsFromExcel inserts every row of the TradingCards and Coins sheets.
// Each row is its own transaction; failing rows are reported and skipped.
func (s *ImportService) ImportItemsFromExcel(ctx context.Context, r io.Reader) (*dtos.ImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, validationError("invalid excel file: %v", err)
	}
	defer f.Close()

	result := &dtos.ImportResultDTO{Errors: []string{}}
	found := false

	if index, _ := f.GetSheetIndex(TradingCardsSheet); index >= 0 {
		found = true
		rows, err := f.GetRows(TradingCardsSheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, validationError("cannot read sheet %s: %v", TradingCardsSheet, err)
		}
		for i, row := range rows {
			if i == 0 || blankRow(row) {
				continue
			}
			cells := cellReader(row)
			req := dtos.InsertTradingCardRequest{
				Athlete:       cells(1),
				CardVariation: cells(2),
				Sport:         cells(3),
				ItemFields:    itemFieldsFromCells(cells, 0, 4),
			}
			if err := checkRowDate(&req.ItemFields); err != nil {
				result.Errors = append(result.Errors, rowError(TradingCardsSheet, i, err))
				continue
			}
			if _, err := s.items.InsertTradingCard(ctx, req); err != nil {
				result.Errors = append(result.Errors, rowError(TradingCardsSheet, i, err))
				continue
			}
			result.Imported++
		}
	}

	if index, _ := f.GetSheetIndex(CoinsSheet); index >= 0 {
		found = true
		rows, err := f.GetRows(CoinsSheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, validationError("cannot read sheet %s: %v", CoinsSheet, err)
		}
		for i, row := range rows {
			if i == 0 || blankRow(row) {
				continue
			}
			cells := cellReader(row)
			req := dtos.InsertCoinRequest{
				Currency:     cells(1),
				Denomination: cells(2),
				ItemFields:   itemFieldsFromCells(cells, 0, 3),
			}
			if err := checkRowDate(&req.ItemFields); err != nil {
				result.Errors = append(result.Errors, rowError(CoinsSheet, i, err))
				continue
			}
			if _, err := s.items.InsertCoin(ctx, req); err != nil {
				result.Errors = append(result.Errors, rowError(CoinsSheet, i, err))
				continue
			}
			result.Imported++
		}
	}

	if !found {
		return nil, validationError("workbook needs a %s or %s sheet", TradingCardsSheet, CoinsSheet)
	}

	logrus.WithFields(logrus.Fields{"imported": result.Imported, "failed": len(result.Errors)}).Info("items imported from excel")

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("%w: no item could be imported", ErrValidation)
	}
	return result, nil
}

// Template builds an empty workbook with both sheets and their header rows.
func (s *ImportService) Template() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TradingCardsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(CoinsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(TradingCardsSheet, "A1", &TradingCardColumns); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(CoinsSheet, "A1", &CoinColumns); err != nil {
		return nil, err
	}
	return f, nil
}

func blankRow(row []string) bool {
	return strings.TrimSpace(strings.Join(row, "")) == ""
}

func cellReader(row []string) func(int) string {
	return func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
}

// itemFieldsFromCells reads itemName at nameCol and the shared item columns starting at first.
func itemFieldsFromCells(cells func(int) string, nameCol, first int) dtos.ItemFields {
	fields := dtos.ItemFields{
		ItemName:         cells(nameCol),
		SeriesName:       cells(first + 1),
		ReleaseDate:      cells(first + 2),
		ManufacturerName: cells(first + 3),
		Country:          cells(first + 4),
	}
	if prev := cells(first); prev != "" {
		n, err := strconv.Atoi(prev)
		if err != nil {
			n = 0
		}
		fields.PrevCollectorID = dtos.OptionalInt{Set: true, Value: n}
	}
	return fields
}

// checkRowDate accepts YYYY-MM-DD text or an excel date serial and rewrites it as YYYY-MM-DD.
func checkRowDate(fields *dtos.ItemFields) error {
	if _, err := utils.ParseDate(fields.ReleaseDate); err == nil {
		return nil
	}
	serial, err := strconv.ParseFloat(fields.ReleaseDate, 64)
	if err != nil {
		return validationError("invalid release date %q", fields.ReleaseDate)
	}
	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return validationError("invalid release date %q", fields.ReleaseDate)
	}
	fields.ReleaseDate = utils.FormatDate(date)
	return nil
}

// rowError numbers rows the way a spreadsheet shows them.
func rowError(sheet string, index int, err error) string {
	return fmt.Sprintf("%s row %d: %v", sheet, index+1, err)
}
