// Package remote abstracts the backend that queued mutations are
// eventually delivered to. The core never talks to the network
// directly; it only sees this interface.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Sink applies queued operations remotely. Upsert must be idempotent
// by record id, supporting at-least-once delivery.
type Sink interface {
	Upsert(ctx context.Context, table string, payload json.RawMessage) error
	Delete(ctx context.Context, table string, recordID string) error
}

// HTTPSink delivers operations to a REST backend: POST upserts a row
// by id, DELETE removes it.
type HTTPSink struct {
	baseURL string
	token   string
	client  *http.Client
	log     *logrus.Logger
}

func NewHTTPSink(baseURL string, token string, log *logrus.Logger) *HTTPSink {
	if log == nil {
		log = logrus.New()
	}
	return &HTTPSink{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

func (sink *HTTPSink) Upsert(ctx context.Context, table string, payload json.RawMessage) error {
	endpoint := fmt.Sprintf("%s/v1/tables/%s/upsert", sink.baseURL, url.PathEscape(table))
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build upsert request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	return sink.do(request, table)
}

func (sink *HTTPSink) Delete(ctx context.Context, table string, recordID string) error {
	endpoint := fmt.Sprintf("%s/v1/tables/%s/%s", sink.baseURL, url.PathEscape(table), url.PathEscape(recordID))
	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	return sink.do(request, table)
}

func (sink *HTTPSink) do(request *http.Request, table string) error {
	if sink.token != "" {
		request.Header.Set("Authorization", "Bearer "+sink.token)
	}

	response, err := sink.client.Do(request)
	if err != nil {
		return fmt.Errorf("%s %s: %w", request.Method, table, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
	sink.log.WithFields(logrus.Fields{
		"table":  table,
		"status": response.StatusCode,
	}).Debug("remote sink rejected operation")
	return fmt.Errorf("%s %s: remote returned %d: %s", request.Method, table, response.StatusCode, string(body))
}
