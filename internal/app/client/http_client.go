package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"taskkeeper/internal/app/client/config"
	"taskkeeper/internal/domain/object"
)

const userAgent = "taskkeeper-client/1.0"

// HTTPClient - клиент коллекции /objects удалённого хранилища
type HTTPClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	apiKey  string
}

var _ object.Repository = (*HTTPClient)(nil)

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout(),
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &HTTPClient{
		client:  client,
		log:     log.With("component", "http_client"),
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// HealthCheck проверяет доступность хранилища
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, h.baseURL, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return &object.RemoteError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return nil
}

// Create создает объект; id назначает хранилище
func (h *HTTPClient) Create(ctx context.Context, name string, data any) (object.Object, error) {
	var obj object.Object
	err := h.call(ctx, http.MethodPost, h.baseURL, object.Body{Name: name, Data: data}, &obj)
	return obj, err
}

func (h *HTTPClient) Get(ctx context.Context, id string) (object.Object, error) {
	var obj object.Object
	err := h.call(ctx, http.MethodGet, h.objectURL(id), nil, &obj)
	return obj, err
}

// GetMany читает несколько объектов одним запросом ?id=a&id=b.
// Несуществующие id хранилище просто пропускает.
func (h *HTTPClient) GetMany(ctx context.Context, ids []string) ([]object.Object, error) {
	if len(ids) == 0 {
		return []object.Object{}, nil
	}

	query := url.Values{}
	for _, id := range ids {
		query.Add("id", id)
	}

	var objs []object.Object
	if err := h.call(ctx, http.MethodGet, h.baseURL+"?"+query.Encode(), nil, &objs); err != nil {
		return nil, err
	}
	if objs == nil {
		objs = []object.Object{}
	}
	return objs, nil
}

// Replace полностью перезаписывает объект
func (h *HTTPClient) Replace(ctx context.Context, id, name string, data any) (object.Object, error) {
	var obj object.Object
	err := h.call(ctx, http.MethodPut, h.objectURL(id), object.Body{Name: name, Data: data}, &obj)
	return obj, err
}

// Patch обновляет только переданные поля
func (h *HTTPClient) Patch(ctx context.Context, id string, data any) (object.Object, error) {
	var obj object.Object
	err := h.call(ctx, http.MethodPatch, h.objectURL(id), object.Body{Data: data}, &obj)
	return obj, err
}

func (h *HTTPClient) Delete(ctx context.Context, id string) error {
	return h.call(ctx, http.MethodDelete, h.objectURL(id), nil, nil)
}

func (h *HTTPClient) objectURL(id string) string {
	return h.baseURL + "/" + url.PathEscape(id)
}

func (h *HTTPClient) call(ctx context.Context, method, target string, body, result any) error {
	resp, err := h.doRequest(ctx, method, target, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *HTTPClient) doRequest(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if h.apiKey != "" {
		req.Header.Set("x-api-key", h.apiKey)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("request failed",
			"request_id", requestID,
			"method", method,
			"url", target,
			"error", err,
		)
		return nil, &object.RemoteError{Message: transportMessage(err), Err: err}
	}

	h.log.Debug("request completed",
		"request_id", requestID,
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return resp, nil
}

func (h *HTTPClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &object.RemoteError{Status: resp.StatusCode, Message: "read response body", Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return object.ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &object.RemoteError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return &object.RemoteError{Status: resp.StatusCode, Message: "malformed response body", Err: err}
		}
	}

	return nil
}

// errorMessage достаёт текст ошибки из тела {"error": "..."}
func errorMessage(status int, body []byte) string {
	var errResp struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Detail != "" {
			return errResp.Detail
		}
	}
	return http.StatusText(status)
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return err.Error()
	}
}
