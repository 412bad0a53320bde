package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// source resolves the request script location. This is CLI-specific
// logic and is not part of the core library.
type source struct {
	httpClient *http.Client
}

func newSource() *source {
	return &source{
		httpClient: &http.Client{},
	}
}

// open returns a reader for the request script. Empty or "-" selects
// stdin; http(s) URLs are fetched; anything else is a local file path.
// The caller closes the returned reader.
func (s *source) open(pathOrURL string) (io.ReadCloser, error) {
	if pathOrURL == "" || pathOrURL == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	if !strings.HasPrefix(pathOrURL, "http://") && !strings.HasPrefix(pathOrURL, "https://") {
		return os.Open(pathOrURL)
	}

	resp, err := s.httpClient.Get(pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pathOrURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, pathOrURL)
	}
	return resp.Body, nil
}
