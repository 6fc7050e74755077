package omclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/pkg/log"
)

const (
	// maxAttempts bounds transport-level retries: one initial attempt plus
	// three retries.
	maxAttempts = 4

	userAgent = "Goretsky-Band"
)

// ErrUnsuccessfulRequest is returned once the retry budget is exhausted on
// transport failures. It is distinct from parse and credential errors so
// callers can classify it.
var ErrUnsuccessfulRequest = errors.New("unsuccessful request")

// Response pairs the originating descriptor with the raw body. Transient;
// never persisted.
type Response struct {
	Descriptor Descriptor
	StatusCode int
	Body       []byte
}

// HTML returns the body as markup text.
func (r *Response) HTML() string {
	return string(r.Body)
}

// Doer executes one back-office call with the given session cookies.
type Doer interface {
	Do(ctx context.Context, cookies map[string]string, descriptor Descriptor) (*Response, error)
}

type Client struct {
	httpClient *http.Client
}

func NewClient(requestTimeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Do performs the call described by the descriptor. Only transport failures
// are retried; a well-formed HTTP response is returned as-is regardless of
// status, interpretation belongs to the caller.
func (c *Client) Do(ctx context.Context, cookies map[string]string, descriptor Descriptor) (*Response, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := c.buildRequest(ctx, cookies, descriptor)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.ForContext(ctx).WithFields(log.Fields{
				"kind":    descriptor.Kind,
				"attempt": attempt,
			}).WithError(err).Debug("transport failure, retrying")
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return &Response{
			Descriptor: descriptor,
			StatusCode: resp.StatusCode,
			Body:       body,
		}, nil
	}

	return nil, errors.Wrapf(ErrUnsuccessfulRequest, "%s after %d attempts: %v",
		descriptor.Kind, maxAttempts, lastErr)
}

func (c *Client) buildRequest(ctx context.Context, cookies map[string]string, descriptor Descriptor) (*http.Request, error) {
	var body io.Reader
	if descriptor.Method == http.MethodPost {
		body = strings.NewReader(descriptor.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, descriptor.Method, descriptor.URL, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s request", descriptor.Kind)
	}

	if query := descriptor.wireQuery(); len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("User-Agent", userAgent)
	if descriptor.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	return req, nil
}
