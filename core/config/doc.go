// Package config provides configuration management for backend-doctor.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Medusa: the backend's own flags, read under their upstream names (PORT,
//     DISABLE_MEDUSA_ADMIN, MEDUSA_BACKEND_URL, ADMIN_CORS, MEDUSA_CREATE_ADMIN_USER,
//     MEDUSA_ADMIN_EMAIL)
//   - Database: connection to the backend database (DATABASE_URL or DATABASE_* parts)
//   - Storage: S3/MinIO settings for the file storage check
//   - Status: host and timeout for the server status probe
//   - Server: diagnostics API port and key
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Medusa.Port)
package config
