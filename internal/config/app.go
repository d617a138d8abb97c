package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultYear    = 2025
	defaultBaseURL = "https://adventofcode.com"
)

func Year() (int, error) {
	yearStr, ok := os.LookupEnv("AOC_YEAR")
	if !ok {
		return defaultYear, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("unable to convert AOC_YEAR to int: %w", err)
	}
	return year, nil
}

func BaseURL() string {
	if baseURL, ok := os.LookupEnv("AOC_BASE_URL"); ok {
		return baseURL
	}
	return defaultBaseURL
}

// CacheDir is where fetched inputs are kept between runs.
func CacheDir() (string, error) {
	if dir, ok := os.LookupEnv("AOC_CACHE_DIR"); ok {
		return dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no AOC_CACHE_DIR env variable set; %w", err)
	}
	return filepath.Join(dir, "aoc"), nil
}
