package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Database fields are only consulted when the
// mysql storage driver is selected.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    JWTSecret     string // secret used to sign JWTs
    AccessTTLMin  int    // access token time-to-live in minutes
    BcryptCost    int    // bcrypt cost for hashing the demo credentials
    StorageDriver string // memory | redis | mysql
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    ChatAPIKey    string // language-model API key; empty disables the assistant
    ChatModel     string // language-model identifier
    ChatBaseURL   string // language-model endpoint base URL
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),
        Port:          must("APP_PORT"),
        JWTSecret:     must("JWT_SECRET"),
        AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"),
        BcryptCost:    mustInt("BCRYPT_COST"),
        StorageDriver: getenv("STORAGE_DRIVER", "memory"),
        DBUser:        os.Getenv("DB_USER"),
        DBPass:        os.Getenv("DB_PASS"),
        DBHost:        os.Getenv("DB_HOST"),
        DBPort:        os.Getenv("DB_PORT"),
        DBName:        os.Getenv("DB_NAME"),
        ChatAPIKey:    os.Getenv("CHAT_API_KEY"),
        ChatModel:     getenv("CHAT_MODEL", "gemini-2.5-flash"),
        ChatBaseURL:   getenv("CHAT_BASE_URL", "https://generativelanguage.googleapis.com"),
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}
