package predeploy

import (
	"context"
	"fmt"
	"path/filepath"

	"backend-doctor/core/medusa"
	"backend-doctor/core/report"
	"backend-doctor/core/storage"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Build outputs expected relative to the backend working directory.
const (
	AdminBuildDir  = ".medusa/admin"
	PublicAdminDir = "public/admin"
)

// Name of the user seeded when the registry is empty.
const (
	SeedFirstName = "Admin"
	SeedLastName  = "User"
)

// Service runs the predeploy validation.
type Service struct {
	cfg      medusa.Config
	services medusa.Services
	fs       afero.Fs
	workDir  string
	files    storage.Target
	logger   *zap.Logger
}

// NewService creates a predeploy service. Build outputs are looked up on fs under workDir.
func NewService(cfg medusa.Config, services medusa.Services, fs afero.Fs, workDir string, files storage.Target, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		services: services,
		fs:       fs,
		workDir:  workDir,
		files:    files,
		logger:   logger,
	}
}

// Run walks the gates in order and stops at the first fatal one, returning its error.
// Non-fatal findings are only recorded.
func (s *Service) Run(ctx context.Context) (*report.Report, error) {
	rec := report.NewRecorder("predeploy", s.logger)

	s.logger.Info("=== PREDEPLOY SCRIPT START ===")

	if err := s.run(ctx, rec); err != nil {
		rec.Fail(err)
		return rec.Finish(), err
	}

	s.logger.Info("=== PREDEPLOY SCRIPT END ===")
	return rec.Finish(), nil
}

func (s *Service) run(ctx context.Context, rec *report.Recorder) error {
	if s.cfg.AdminDisabled() {
		rec.Error("admin", "Admin panel is disabled (DISABLE_MEDUSA_ADMIN=true)")
		return ErrAdminDisabled
	}

	if err := s.checkUsers(ctx, rec); err != nil {
		return &GateError{Gate: GateUsers, Err: err}
	}

	if err := s.checkStore(ctx, rec); err != nil {
		return &GateError{Gate: GateStore, Err: err}
	}

	s.checkPath(rec, "admin_build", AdminBuildDir,
		"Admin build found",
		"Admin build not found at .medusa/admin, the admin panel may not be built properly")
	s.checkPath(rec, "public_admin", PublicAdminDir,
		"Public admin files found",
		"Public admin files not found at public/admin, the admin panel may not be accessible")

	storage.RecordBucketCheck(ctx, rec, s.files)
	return nil
}

// checkUsers seeds the first user when allowed and verifies an admin exists.
// Only query and create failures are returned.
func (s *Service) checkUsers(ctx context.Context, rec *report.Recorder) error {
	users, err := s.services.Query.ListUsers(ctx)
	if err != nil {
		rec.Error("users", "Error checking users", zap.Error(err))
		return err
	}

	if len(users) > 0 {
		admins := medusa.AdminUsers(users)
		if len(admins) == 0 {
			rec.Error("admins", "No admin users found",
				zap.Int("users", len(users)),
				zap.String("hint", "set MEDUSA_CREATE_ADMIN_USER=true to create an admin user automatically"))
			return nil
		}
		rec.Info("admins", fmt.Sprintf("Found %d admin user(s)", len(admins)), zap.Int("count", len(admins)))
		return nil
	}

	rec.Warn("users", "No users found in the database")

	if !s.cfg.ShouldCreateAdmin() {
		rec.Warn("users", "No admin user exists and MEDUSA_CREATE_ADMIN_USER is false, "+
			"set MEDUSA_CREATE_ADMIN_USER=true to create an admin user automatically")
		return nil
	}

	email := s.cfg.SeedEmail()
	rec.Info("users", "Creating admin user as MEDUSA_CREATE_ADMIN_USER=true", zap.String("email", email))

	_, err = s.services.Users.CreateUsers(ctx, []medusa.CreateUserInput{{
		Email:     email,
		FirstName: SeedFirstName,
		LastName:  SeedLastName,
		Role:      medusa.RoleAdmin,
	}})
	if err != nil {
		rec.Error("users", "Error checking users", zap.Error(err))
		return err
	}

	rec.Info("users", "Admin user created successfully", zap.String("email", email))
	return nil
}

func (s *Service) checkStore(ctx context.Context, rec *report.Recorder) error {
	store, err := medusa.FirstStore(ctx, s.services.Stores)
	if err != nil {
		rec.Error("store", "Error getting store", zap.Error(err))
		return err
	}
	rec.Info("store", "Store ID: "+store.ID)
	rec.Info("store", "Store name: "+store.Name)
	return nil
}

// checkPath records whether rel exists under the working directory. Missing
// build outputs are warnings, the deploy may still build them later.
func (s *Service) checkPath(rec *report.Recorder, label, rel, found, missing string) {
	path := filepath.Join(s.workDir, filepath.FromSlash(rel))

	exists, err := afero.Exists(s.fs, path)
	if err != nil || !exists {
		rec.Warn(label, missing, zap.String("path", path))
		return
	}
	rec.Info(label, found, zap.String("path", path))
}
