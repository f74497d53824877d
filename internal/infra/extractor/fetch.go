package extractor

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "ai-news-batch/1.0 (+https://github.com/FAFFA-GOLD/ai-news-batch)"

// pageFetcher is the HTTP plumbing shared by both extractor implementations:
// URL validation, rate limiting, per-request timeout, redirect validation,
// and size-limited body reads.
type pageFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     Config
}

func newPageFetcher(cfg Config) *pageFetcher {
	f := &pageFetcher{cfg: cfg}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	f.limiter = rate.NewLimiter(limit, 1)

	// Each redirect target is re-validated so a public page cannot bounce
	// the fetcher into the internal network.
	f.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), cfg.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return f
}

// fetch validates the URL, waits for a rate limiter slot, and returns the
// page body together with the final URL after redirects.
func (f *pageFetcher) fetch(ctx context.Context, urlStr string) ([]byte, *url.URL, error) {
	if err := validateURL(urlStr, f.cfg.DenyPrivateIPs); err != nil {
		return nil, nil, err
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return nil, nil, fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.cfg.Timeout)
		}
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return nil, nil, urlErr.Err
		}
		return nil, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// Read one byte over the limit to distinguish "exactly at the limit"
	// from "over the limit".
	limitedReader := io.LimitReader(resp.Body, f.cfg.MaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > f.cfg.MaxBodySize {
		return nil, nil, fmt.Errorf("%w: response exceeds %d bytes", ErrBodyTooLarge, f.cfg.MaxBodySize)
	}

	finalURL, _ := url.Parse(urlStr)
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	return body, finalURL, nil
}
