package jsonbin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	retrierconfig "parceltrack/pkg/retrier"
	"parceltrack/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "jsonbin"
)

const (
	requestTimeout = 10 * time.Second

	initialInterval = 200 * time.Millisecond
	maxInterval     = 3 * time.Second
	maxElapsedTime  = 15 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	client  doer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client doer, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type createBinResponse struct {
	Metadata struct {
		ID string `json:"id"`
	} `json:"metadata"`
}

// CreateBin кладет снапшот в хранилище и возвращает его удаленный id.
func (g *Gateway) CreateBin(ctx context.Context, name string, payload []byte) (string, error) {
	var binID string

	err := g.executeWithMetrics(ctx, "CreateBin", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/b", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Master-Key", g.apiKey)
		req.Header.Set("X-Bin-Name", name)

		body, err := g.do(req)
		if err != nil {
			return err
		}

		var resp createBinResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return fmt.Errorf("decode create bin response: %w", err)
		}
		if resp.Metadata.ID == "" {
			return errors.New("create bin response without id")
		}

		binID = resp.Metadata.ID
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gateway jsonbin, create bin %q: %w", name, err)
	}

	return binID, nil
}

func (g *Gateway) DeleteBin(ctx context.Context, binID string) error {
	err := g.executeWithMetrics(ctx, "DeleteBin", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/b/"+binID, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Master-Key", g.apiKey)

		_, err = g.do(req)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway jsonbin, delete bin %s: %w", binID, err)
	}

	return nil
}

// ValidateKey дешевая проверка ключа перед операциями, которые нельзя
// блокировать на недоступном хранилище.
func (g *Gateway) ValidateKey(ctx context.Context) error {
	err := g.executeWithMetrics(ctx, "ValidateKey", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/c", nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Master-Key", g.apiKey)

		_, err = g.do(req)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway jsonbin, validate key: %w", err)
	}

	return nil
}

func (g *Gateway) do(req *http.Request) ([]byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return body, nil
}

// ретраи только по недоступности, невалидный ключ и ошибки клиента финальны
func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
