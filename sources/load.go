package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
)

var (
	ErrNotText  = errors.New("not a text source")
	ErrTooLarge = errors.New("source too large")
)

// maxSize bounds remote and local rule sources.
const maxSize = 8 << 20

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads rule source text. location is "-" for stdin, an http(s) URL,
// or a file path.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
	stdin Stdin,
) Load {
	return func(ctx context.Context, location string) (string, error) {
		var data []byte
		var err error
		switch {
		case location == "-":
			data, err = readAll(stdin)
		case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
			data, err = fetch(ctx, client, location)
		default:
			data, err = readFile(location)
		}
		if err != nil {
			return "", fmt.Errorf("load %s: %w", location, err)
		}

		if !isText(data) {
			return "", fmt.Errorf("load %s: %w: %s", location, ErrNotText, mimetype.Detect(data))
		}

		logger.InfoContext(ctx, "source loaded",
			"location", location,
			"bytes", len(data),
		)
		return string(data), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, wrap(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return readAll(resp.Body)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	return readAll(f)
}

// readAll reads r whole, failing with ErrTooLarge past maxSize.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, wrap(err)
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)
	}
	return data, nil
}

func isText(data []byte) bool {
	for mtype := mimetype.Detect(data); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is("text/plain") {
			return true
		}
	}
	return false
}
