package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mbarbosa/mesasync/models"
)

var (
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrRemoteTimeout = errors.New("remote store timeout")
)

// routeChunkSize is the maximum number of route IDs one fetch request may
// filter on; larger grant lists are split into multiple requests and the
// results merged.
const routeChunkSize = 10

type HTTPClientConfig struct {
	BaseURL   string
	CompanyID string
	Timeout   time.Duration
}

type httpRemoteStore struct {
	client    *resty.Client
	companyID string

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteStore builds the resty-backed [RemoteStore] for one company
// tenant.
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli, companyID: cfg.CompanyID}
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpRemoteStore) FetchDocuments(ctx context.Context, collection string, query DocumentQuery) ([]models.Document, int64, error) {
	if query.RouteIDs == nil {
		return h.fetchPage(ctx, collection, query.UpdatedAfter, nil)
	}

	// One request per route chunk; unscoped documents come back with
	// every chunk, so merge by id keeping the freshest copy.
	merged := make(map[int64]models.Document)
	var order []int64
	var bytesTotal int64

	for _, chunk := range chunkRoutes(query.RouteIDs, routeChunkSize) {
		docs, n, err := h.fetchPage(ctx, collection, query.UpdatedAfter, chunk)
		if err != nil {
			return nil, bytesTotal, err
		}
		bytesTotal += n

		for _, doc := range docs {
			id := doc.ID()
			prev, seen := merged[id]
			if !seen {
				merged[id] = doc
				order = append(order, id)
				continue
			}
			if doc.LastModified() > prev.LastModified() {
				merged[id] = doc
			}
		}
	}

	out := make([]models.Document, 0, len(order))
	for _, id := range order {
		out = append(out, merged[id])
	}
	return out, bytesTotal, nil
}

func (h *httpRemoteStore) fetchPage(ctx context.Context, collection string, updatedAfter int64, routeIDs []int64) ([]models.Document, int64, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("updatedAfter", strconv.FormatInt(updatedAfter, 10))
	if routeIDs != nil {
		req.SetQueryParam("routeIds", joinRoutes(routeIDs))
	}

	resp, err := req.Get(h.collectionPath(collection))
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, 0, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, 0, fmt.Errorf("decode %s response: %w", collection, err)
	}

	return docs, int64(len(resp.Body())), nil
}

func (h *httpRemoteStore) PushDocuments(ctx context.Context, collection string, docs []models.Document) (int64, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return 0, fmt.Errorf("encode %s push payload: %w", collection, err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(h.collectionPath(collection))
	if err != nil {
		return 0, fmt.Errorf("push %s request: %w", collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return int64(len(payload)), nil
}

func (h *httpRemoteStore) collectionPath(collection string) string {
	return fmt.Sprintf("/api/companies/%s/collections/%s/documents", h.companyID, collection)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusGatewayTimeout || resp.StatusCode() == http.StatusRequestTimeout {
		return ErrRemoteTimeout
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func chunkRoutes(ids []int64, size int) [][]int64 {
	if len(ids) == 0 {
		return [][]int64{{}}
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

func joinRoutes(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
