package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Path returns name relative to the directory of the Go source file
// calling Path. Absolute names are returned as is.
func Path(name string) string {
	return callerPath(2, name)
}

// ReadFile reads the file name relative to the directory of the Go
// source file calling ReadFile.
func ReadFile(name string) ([]byte, error) {
	return os.ReadFile(callerPath(2, name))
}

func callerPath(skip int, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	_, file, _, ok := runtime.Caller(skip)
	if !ok {
		return name
	}
	return filepath.Join(filepath.Dir(file), name)
}

var baseURL = "https://adventofcode.com"

func readSession(sessionFile string) (string, error) {
	b, err := os.ReadFile(sessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// fetchInput downloads the input of year/day and caches it at filename.
func fetchInput(sessionFile string, year, day int, filename string) ([]byte, error) {
	session, err := readSession(sessionFile)
	if err != nil {
		return nil, err
	}
	body, err := fetch(fmt.Sprintf("%s/%d/day/%d/input", baseURL, year, day), session)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url, session string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
