package ucd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrLoadFailure reports that the character database could not be retrieved.
// No partial index accompanies it.
var ErrLoadFailure = errors.New("unicode data could not be loaded")

// DefaultURL is where the fetch command downloads UnicodeData.txt from.
const DefaultURL = "https://www.unicode.org/Public/UCD/latest/ucd/UnicodeData.txt"

// SourceFunc loads an index from a source that isn't plain UnicodeData text.
type SourceFunc func(ctx context.Context, source string) (*Index, error)

var (
	sourcesMu sync.RWMutex
	sources   = make(map[string]SourceFunc)
)

// RegisterSource makes Open handle files with the given extension (".db")
// through fn.
func RegisterSource(ext string, fn SourceFunc) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	sources[strings.ToLower(ext)] = fn
}

func sourceFor(path string) SourceFunc {
	sourcesMu.RLock()
	defer sourcesMu.RUnlock()
	return sources[strings.ToLower(filepath.Ext(path))]
}

// DefaultClient is used when Fetch is given a nil client.
var DefaultClient = &http.Client{Timeout: 60 * time.Second}

// LoadFile parses a UnicodeData.txt file.
func LoadFile(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrLoadFailure, path, err)
	}
	defer file.Close()

	idx, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, path, err)
	}
	return idx, nil
}

// Fetch downloads and parses the database from url.
func Fetch(ctx context.Context, client *http.Client, url string) (*Index, error) {
	body, err := get(ctx, client, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	idx, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailure, url, err)
	}
	return idx, nil
}

// Download saves the raw database from url to dest, creating parent
// directories as needed. It returns the number of bytes written.
func Download(ctx context.Context, client *http.Client, url, dest string) (int64, error) {
	body, err := get(ctx, client, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("creating data directory: %w", err)
	}

	// Write to a temp file first so a failed download never replaces a good copy
	tmp := dest + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", tmp, err)
	}

	n, err := io.Copy(out, body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("%w: writing %s: %w", ErrLoadFailure, dest, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("renaming download: %w", err)
	}
	return n, nil
}

func get(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if client == nil {
		client = DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrLoadFailure, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrLoadFailure, url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: fetching %s: %s", ErrLoadFailure, url, resp.Status)
	}
	return resp.Body, nil
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadSource loads a single source: a URL, a registered file type, or a
// UnicodeData.txt file.
func LoadSource(ctx context.Context, source string) (*Index, error) {
	if IsURL(source) {
		return Fetch(ctx, nil, source)
	}
	if fn := sourceFor(source); fn != nil {
		idx, err := fn(ctx, source)
		if err != nil && !errors.Is(err, ErrLoadFailure) {
			err = fmt.Errorf("%w: %w", ErrLoadFailure, err)
		}
		return idx, err
	}
	return LoadFile(source)
}

// Open tries each source in order and returns the first index that loads,
// along with the source it came from. Local paths that don't exist are
// skipped without counting as failures.
func Open(ctx context.Context, candidates []string) (*Index, string, error) {
	var errs []error
	for _, source := range candidates {
		if source == "" {
			continue
		}
		if !IsURL(source) {
			if _, err := os.Stat(source); err != nil {
				continue
			}
		}

		idx, err := LoadSource(ctx, source)
		if err == nil {
			return idx, source, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, "", fmt.Errorf("%w: no data source found (tried %s)", ErrLoadFailure, strings.Join(candidates, ", "))
	}
	return nil, "", errors.Join(errs...)
}
