package medusa

// Config holds the backend's own environment flags. They keep their upstream,
// unprefixed names so the diagnostics read exactly what the backend reads.
type Config struct {
	// Port is PORT as set, empty when unset. Use ServerPort for the effective port.
	Port string `mapstructure:"port" env:"PORT" default:""`
	// DisableAdmin is "true" when the admin panel is switched off.
	DisableAdmin string `mapstructure:"disable_admin" env:"DISABLE_MEDUSA_ADMIN" default:""`
	// BackendURL is the public URL the admin panel calls.
	BackendURL string `mapstructure:"backend_url" env:"MEDUSA_BACKEND_URL" default:""`
	// AdminCORS lists the origins allowed to call admin routes.
	AdminCORS string `mapstructure:"admin_cors" env:"ADMIN_CORS" default:""`
	// CreateAdminUser is "true" when predeploy may seed the first user.
	CreateAdminUser string `mapstructure:"create_admin_user" env:"MEDUSA_CREATE_ADMIN_USER" default:""`
	// AdminEmail is the email of the seeded user.
	AdminEmail string `mapstructure:"admin_email" env:"MEDUSA_ADMIN_EMAIL" default:""`
}

// DefaultPort is the port the backend listens on when PORT is unset.
const DefaultPort = "9000"

// DefaultAdminEmail is used for the seeded user when MEDUSA_ADMIN_EMAIL is unset.
const DefaultAdminEmail = "admin@medusa-test.com"

// EnvVar is a named environment value as the backend sees it.
type EnvVar struct {
	Name  string
	Value string
}

// AdminDisabled reports whether DISABLE_MEDUSA_ADMIN is exactly "true".
func (c Config) AdminDisabled() bool {
	return c.DisableAdmin == "true"
}

// ShouldCreateAdmin reports whether MEDUSA_CREATE_ADMIN_USER is exactly "true".
func (c Config) ShouldCreateAdmin() bool {
	return c.CreateAdminUser == "true"
}

// ServerPort returns the port the backend listens on.
func (c Config) ServerPort() string {
	if c.Port == "" {
		return DefaultPort
	}
	return c.Port
}

// SeedEmail returns the email for the seeded admin user.
func (c Config) SeedEmail() string {
	if c.AdminEmail == "" {
		return DefaultAdminEmail
	}
	return c.AdminEmail
}

// Environment lists the flags in the order the admin diagnostic reports them.
func (c Config) Environment() []EnvVar {
	return []EnvVar{
		{Name: "DISABLE_MEDUSA_ADMIN", Value: c.DisableAdmin},
		{Name: "MEDUSA_BACKEND_URL", Value: c.BackendURL},
		{Name: "ADMIN_CORS", Value: c.AdminCORS},
		{Name: "MEDUSA_CREATE_ADMIN_USER", Value: c.CreateAdminUser},
		{Name: "MEDUSA_ADMIN_EMAIL", Value: c.AdminEmail},
		{Name: "PORT", Value: c.Port},
	}
}
