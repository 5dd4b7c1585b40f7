package services

import (
	"context"
	"strings"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
	"gorm.io/gorm"
)

type historyColumn struct {
	Name string
	Expr string
}

// historyColumns is the only set of identifiers a projection may select.
var historyColumns = []historyColumn{
	{Name: "itemID", Expr: "item_id"},
	{Name: "prevCollectorID", Expr: "prev_collector_id"},
	{Name: "prevCollectorName", Expr: "prev_collector_name"},
	{Name: "acquireDate", Expr: "acquire_date"},
	{Name: "sellDate", Expr: "sell_date"},
	{Name: "priceSold", Expr: "CAST(price_sold AS DOUBLE PRECISION)"},
}

type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new instance of HistoryService
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// HistoryColumnNames lists the columns a projection may ask for.
func HistoryColumnNames() []string {
	names := make([]string, 0, len(historyColumns))
	for _, column := range historyColumns {
		names = append(names, column.Name)
	}
	return names
}

// BuildHistoryProjection validates the requested columns against the
// allow-list and returns the SELECT statement. Names match case-insensitively,
// duplicates are dropped and the requested order is kept.
func BuildHistoryProjection(columns []string) (string, error) {
	if len(columns) == 0 {
		return "", validationError("select at least one history column")
	}

	seen := make(map[string]bool, len(columns))
	exprs := make([]string, 0, len(columns))
	for _, requested := range columns {
		column, ok := lookupHistoryColumn(requested)
		if !ok {
			return "", validationError("unknown history column %q", requested)
		}
		if seen[column.Name] {
			continue
		}
		seen[column.Name] = true
		exprs = append(exprs, column.Expr)
	}

	return "SELECT " + strings.Join(exprs, ", ") + " FROM history ORDER BY history_id", nil
}

func lookupHistoryColumn(name string) (historyColumn, bool) {
	name = strings.TrimSpace(name)
	for _, column := range historyColumns {
		if strings.EqualFold(column.Name, name) {
			return column, true
		}
	}
	return historyColumn{}, false
}

// ProjectHistory returns the requested columns of every history row.
func (s *HistoryService) ProjectHistory(ctx context.Context, columns []string) ([][]any, error) {
	query, err := BuildHistoryProjection(columns)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, storageError("project history", err)
	}
	defer rows.Close()

	selected, err := rows.Columns()
	if err != nil {
		return nil, storageError("project history", err)
	}

	table := [][]any{}
	for rows.Next() {
		values := make([]any, len(selected))
		targets := make([]any, len(selected))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, storageError("project history", err)
		}
		for i, value := range values {
			values[i] = wireValue(value)
		}
		table = append(table, values)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("project history", err)
	}
	return table, nil
}

func wireValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return utils.FormatDate(v)
	case []byte:
		return string(v)
	default:
		return v
	}
}
