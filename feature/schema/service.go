package schema

import (
	"context"
	"sort"

	"backend-doctor/core/medusa"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models are the tables the diagnostics read from.
var Models = []any{medusa.User{}, medusa.Store{}}

// Service compares the connected database with Models.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new schema service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Check inspects every table in Models and logs the outcome per table.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	var db *gorm.DB
	if s.db != nil {
		db = s.db.WithContext(ctx)
	}

	report, err := CheckTables(db, Models...)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(report.Tables))
	for name := range report.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tbl := report.Tables[name]
		fields := []zap.Field{
			zap.String("table", name),
			zap.String("status", tbl.Status),
			zap.Strings("missing_columns", tbl.MissingColumns),
			zap.Strings("type_mismatches", tbl.TypeMismatches),
		}
		switch tbl.Status {
		case StatusOK:
			s.logger.Info("Table matches model", fields...)
		case StatusMissing:
			s.logger.Error("Table does not exist", fields...)
		default:
			s.logger.Error("Table does not match model", fields...)
		}
	}
	for _, msg := range report.Errors {
		s.logger.Error(msg)
	}

	return report, nil
}
