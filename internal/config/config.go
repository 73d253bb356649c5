package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultEnvFile is the dotenv file loaded at startup when present.
	DefaultEnvFile = ".env"
)
