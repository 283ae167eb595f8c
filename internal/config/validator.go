package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is bumped whenever a deployed .env needs new keys
const ExpectedEnvSchemaVersion = "2.0"

// RequiredEnvVars must be set outside development
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"PRICES_USER_AGENT",
}

// placeholderValues maps variables to the example values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD":       "change_this_secure_password",
	"API_KEY":           "generate_with_openssl_rand_hex_32",
	"PRICES_USER_AGENT": DefaultPricesUserAgent,
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	return validateEnv(os.Getenv)
}

// ValidateEnvWithWarnings runs ValidateEnv and also reports non-fatal
// problems such as example values left in place.
func ValidateEnvWithWarnings() ([]string, error) {
	return validateEnvWithWarnings(os.Getenv)
}

func validateEnv(getenv func(string) string) error {
	switch version := getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func validateEnvWithWarnings(getenv func(string) string) ([]string, error) {
	if err := validateEnv(getenv); err != nil {
		return nil, err
	}

	var warnings []string
	for _, key := range RequiredEnvVars {
		if example, ok := placeholderValues[key]; ok && getenv(key) == example {
			warnings = append(warnings, fmt.Sprintf("%s is still set to its example value", key))
		}
	}

	for _, proxy := range strings.Split(getenv("TRUSTED_PROXIES"), ",") {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil && net.ParseIP(proxy) == nil {
			warnings = append(warnings, fmt.Sprintf("TRUSTED_PROXIES entry %q is neither an IP nor a CIDR and will never match", proxy))
		}
	}

	return warnings, nil
}
