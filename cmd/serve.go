package cmd

import (
	"time"

	"backend-doctor/core/database"
	"backend-doctor/core/loader"
	"backend-doctor/core/logger"
	"backend-doctor/core/middleware/auth"
	"backend-doctor/core/middleware/rayid"
	"backend-doctor/feature/admin"
	"backend-doctor/feature/predeploy"
	"backend-doctor/feature/schema"
	"backend-doctor/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveDir string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the diagnostics API",
	Long: `Starts an HTTP server exposing every diagnostic under /diagnostics.
Database backed diagnostics are only mounted when the database is reachable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		dir, err := workDir(serveDir)
		if err != nil {
			return err
		}

		files, err := fileStorage(cfg.Storage)
		if err != nil {
			return err
		}

		mgr := loader.NewManager()
		mgr.Register(status.NewFeature(
			status.NewChecker(status.BaseURL(cfg.Status.Host, cfg.Medusa.ServerPort()), cfg.Status.Timeout(), logg),
		))

		// The database is optional, the status probe works without it
		var db *gorm.DB
		if conn, services, err := connect(cfg, logg); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			defer database.Close(db)
			mgr.Register(admin.NewFeature(admin.NewService(cfg.Medusa, services, files, logg)))
			mgr.Register(predeploy.NewFeature(
				predeploy.NewService(cfg.Medusa, services, afero.NewOsFs(), dir, files, logg),
			))
		}
		mgr.Register(schema.NewFeature(schema.NewService(db, logg)))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every later log line carries it
		app.Use(rayid.New())
		app.Use(requestLogger(logg))
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		listenErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.ListenAddr()))
			listenErr <- app.Listen(cfg.Server.ListenAddr())
		}()

		select {
		case err := <-listenErr:
			return err
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	},
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", "", "backend directory holding the build outputs (default: current directory)")
	RootCmd.AddCommand(serveCmd)
}
