package admin

import (
	"context"
	"fmt"

	"backend-doctor/core/medusa"
	"backend-doctor/core/report"
	"backend-doctor/core/storage"

	"go.uber.org/zap"
)

// Service runs the admin panel diagnostic. It only reports: every failure is
// recorded and the remaining checks still run.
type Service struct {
	cfg      medusa.Config
	services medusa.Services
	files    storage.Target
	logger   *zap.Logger
}

// NewService creates a new admin diagnostic service.
func NewService(cfg medusa.Config, services medusa.Services, files storage.Target, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		services: services,
		files:    files,
		logger:   logger,
	}
}

// Run executes the diagnostic and returns what was recorded.
func (s *Service) Run(ctx context.Context) *report.Report {
	rec := report.NewRecorder("admin", s.logger)

	s.logger.Info("=== ADMIN DIAGNOSTIC START ===")
	defer s.logger.Info("=== ADMIN DIAGNOSTIC END ===")

	for _, env := range s.cfg.Environment() {
		rec.Info("env", fmt.Sprintf("%s: %s", env.Name, env.Value),
			zap.String("name", env.Name), zap.String("value", env.Value))
	}

	if s.cfg.AdminDisabled() {
		rec.Error("admin", "Admin panel is disabled (DISABLE_MEDUSA_ADMIN=true)")
		return rec.Finish()
	}
	rec.Info("admin", "Admin panel is enabled")

	s.checkUsers(ctx, rec)
	s.checkStore(ctx, rec)
	storage.RecordBucketCheck(ctx, rec, s.files)

	return rec.Finish()
}

func (s *Service) checkUsers(ctx context.Context, rec *report.Recorder) {
	users, err := s.services.Query.ListUsers(ctx)
	if err != nil {
		rec.Error("users", "Error querying users", zap.Error(err))
		return
	}

	rec.Info("users", fmt.Sprintf("Found %d users", len(users)), zap.Int("count", len(users)))
	for _, u := range users {
		rec.Info("user", fmt.Sprintf("%s (%s)", u.Email, u.Role), zap.String("id", u.ID))
	}

	if len(users) == 0 {
		rec.Warn("users", "No users found in the database")
		return
	}

	admins := medusa.AdminUsers(users)
	if len(admins) == 0 {
		rec.Error("admins", "No admin users found")
		return
	}
	rec.Info("admins", fmt.Sprintf("Found %d admin user(s)", len(admins)), zap.Int("count", len(admins)))
}

func (s *Service) checkStore(ctx context.Context, rec *report.Recorder) {
	store, err := medusa.FirstStore(ctx, s.services.Stores)
	if err != nil {
		rec.Error("store", "Error getting store", zap.Error(err))
		return
	}
	rec.Info("store", "Store ID: "+store.ID)
	rec.Info("store", "Store name: "+store.Name)
}
