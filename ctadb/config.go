package ctadb

// Env names the operating environment for a Client.
type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
	EnvTest        Env = "test"
)

// Config holds configuration options for the Client
type Config struct {
	// Database configuration
	DBPath  string // Path to the SQLite ridership database file
	Env     Env    // Operating environment
	verbose bool   // Verbose logging
}

func NewConfig(dbPath string, env Env, verbose bool) Config {
	config := Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}

	return config
}
