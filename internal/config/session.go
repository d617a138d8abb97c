package config

import (
	"fmt"
	"os"
	"strings"
)

type Session struct {
	Token string
}

func loadToken() (string, error) {
	token, ok := os.LookupEnv("AOC_SESSION")
	if ok {
		return strings.TrimSpace(token), nil
	}

	tokenFile, ok := os.LookupEnv("AOC_SESSION_FILE")
	if !ok {
		return "", fmt.Errorf("no AOC_SESSION or AOC_SESSION_FILE env variable set")
	}

	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from session file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func NewSession() (*Session, error) {
	token, err := loadToken()
	if err != nil {
		return nil, fmt.Errorf("unable to load session token: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("session token is empty")
	}
	return &Session{Token: token}, nil
}
