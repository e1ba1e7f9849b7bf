// package env contains simple getters for the environment variables shared
// by the CLI and the server.
package env

import (
	"fmt"
	"os"

	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

// What3WordsAPIKey reads the mandatory API key.
func What3WordsAPIKey() (string, error) {
	key := os.Getenv("W3W_API_KEY")
	if key == "" {
		return "", fmt.Errorf("missing W3W_API_KEY environment variable. Please check your environment.")
	}

	return key, nil
}

// What3WordsHost reads the API host override, falling back to the public
// API. Useful when running a what3words instance locally.
func What3WordsHost() string {
	if host := os.Getenv("W3W_API_HOST"); host != "" {
		return host
	}

	return what3words.DefaultHost
}

// DatabaseURL reads the Postgres connection string used by the server to
// record lookup history.
func DatabaseURL() (string, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("missing DATABASE_URL environment variable. Please check your environment.")
	}

	return url, nil
}

// Port reads the HTTP port for the server, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return "8080"
}
