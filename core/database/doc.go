// Package database opens the backend's database and inspects its schema.
//
// It wraps GORM so the diagnostics can talk to whichever engine the commerce backend
// runs on. Postgres is the default (it is what the backend ships with); MySQL and
// SQLite are supported for staging copies and local fixtures.
//
// # Connect
//
// Connect builds the DSN from Config (or uses DATABASE_URL verbatim), opens the pool
// and pings it within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table using the dialect's own catalog
// (information_schema, SHOW COLUMNS, PRAGMA table_info). The schema check compares
// that list with the user and store models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "user")
package database
