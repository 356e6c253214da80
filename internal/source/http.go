// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tfctl/textdiff/internal/log"
)

type httpSource struct {
	url    string
	client *retryablehttp.Client
}

func newHTTPSource(spec string, o options) *httpSource {
	client := o.httpClient
	if client == nil {
		client = retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = leveledLogger{}
	}
	return &httpSource{url: spec, client: client}
}

func (s *httpSource) Load(ctx context.Context) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", s.url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (s *httpSource) String() string { return s.url }

// leveledLogger routes retryablehttp's logging into the textdiff logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) { log.Errorf("%s %v", msg, kv) }
func (leveledLogger) Warn(msg string, kv ...interface{})  { log.Warnf("%s %v", msg, kv) }
func (leveledLogger) Info(msg string, kv ...interface{})  { log.Debugf("%s %v", msg, kv) }
func (leveledLogger) Debug(msg string, kv ...interface{}) { log.Tracef("%s %v", msg, kv) }
