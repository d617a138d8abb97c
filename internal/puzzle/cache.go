package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var ErrNotCached = errors.New("input not cached")

// Cache keeps puzzle inputs on disk as {dir}/{year}/{day}.input.
type Cache struct {
	dir string
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) path(year, day int) string {
	return filepath.Join(c.dir, strconv.Itoa(year), strconv.Itoa(day)+".input")
}

func (c *Cache) Load(year, day int) (string, error) {
	data, err := os.ReadFile(c.path(year, day))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotCached
	}
	if err != nil {
		return "", fmt.Errorf("unable to read cached input: %w", err)
	}
	return string(data), nil
}

func (c *Cache) Store(year, day int, input string) error {
	path := c.path(year, day)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to create cache dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(input), 0600); err != nil {
		return fmt.Errorf("unable to write cached input: %w", err)
	}
	return nil
}
