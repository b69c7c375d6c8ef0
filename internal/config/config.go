package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	TemplatePath string
	FontPath     string
	OutputDir    string

	// resttable | sheets | none
	SubmitStore  string
	SubmitStrict bool

	TableAPIBaseURL   string
	TableAPIKey       string
	TableName         string
	TableRateLimitRPS int
	TableTimeoutMs    int

	SheetsClientID      string
	SheetsClientSecret  string
	SheetsRedirectURI   string
	SheetsRefreshToken  string
	SheetsSpreadsheetID string
	SheetsRange         string

	HTTPAddr string
	LogLevel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "certificates.db")),
		TemplatePath: getEnv("TEMPLATE_PATH", filepath.Join(cwd, "certificate_template.pdf")),
		FontPath:     getEnv("FONT_PATH", filepath.Join(cwd, "fonts", "cert-bold.ttf")),
		OutputDir:    getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		SubmitStore:  getEnv("SUBMIT_STORE", "resttable"),
		SubmitStrict: getEnvBool("SUBMIT_STRICT", false),

		TableAPIBaseURL:   getEnv("TABLE_API_BASE_URL", ""),
		TableAPIKey:       getEnv("TABLE_API_KEY", ""),
		TableName:         getEnv("TABLE_NAME", "Generations"),
		TableRateLimitRPS: getEnvInt("TABLE_RATE_LIMIT_RPS", 5),
		TableTimeoutMs:    getEnvInt("TABLE_TIMEOUT_MS", 30000),

		SheetsClientID:      getEnv("SHEETS_CLIENT_ID", ""),
		SheetsClientSecret:  getEnv("SHEETS_CLIENT_SECRET", ""),
		SheetsRedirectURI:   getEnv("SHEETS_REDIRECT_URI", "https://developers.google.com/oauthplayground"),
		SheetsRefreshToken:  getEnv("SHEETS_REFRESH_TOKEN", ""),
		SheetsSpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetsRange:         getEnv("SHEETS_RANGE", "Generations!A:F"),

		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
