package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"backend-doctor/core/database"

	"gorm.io/gorm"
)

// Table statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusMissing = "missing"
)

// ErrNilDatabase is returned when no connection was given.
var ErrNilDatabase = errors.New("database connection is nil")

// Report is the result of comparing the database with the models.
type Report struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists what one table lacks compared to its model.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"`
}

type tabler interface {
	TableName() string
}

// CheckTables verifies the database schema using the given gorm models as the source of truth.
// Each model must implement TableName. Inspection failures are reported per table, not returned.
func CheckTables(db *gorm.DB, models ...any) (*Report, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	report := &Report{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport, len(models)),
		Errors:  []string{},
	}

	for _, model := range models {
		typ := reflect.TypeOf(model)
		t, ok := reflect.New(typ).Interface().(tabler)
		if typ.Kind() != reflect.Struct || !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", typ)
		}
		tableName := t.TableName()

		actual, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(typ, actual)
		if tbl.Status != StatusOK {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

func compareTable(typ reflect.Type, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         StatusOK,
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}

	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, exists := actualMap[colName]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = StatusError
			continue
		}

		// Only columns with an explicit type are compared, and loosely.
		expType := strings.ToLower(parseGormType(tag))
		if expType != "" && !strings.Contains(col.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			tbl.Status = StatusError
		}
	}

	// The inspector reports a missing table as a table without columns.
	if len(actual) == 0 {
		tbl.Status = StatusMissing
	}
	return tbl
}

func parseGormColumn(tag string) string {
	return gormTagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return gormTagValue(tag, "type:")
}

func gormTagValue(tag, prefix string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, prefix) {
			return strings.TrimPrefix(p, prefix)
		}
	}
	return ""
}
