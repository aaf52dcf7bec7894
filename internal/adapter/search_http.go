package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const primaryKey = "id"

type httpSearchEngine struct {
	client *utils.HTTPClient
	index  string

	logger *logger.Logger
}

// NewHTTPSearchEngine constructs the HTTP implementation of [SearchEngine].
// The address may omit the scheme, in which case http is assumed.
func NewHTTPSearchEngine(cfg config.Search, logger *logger.Logger) (SearchEngine, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if strings.TrimSpace(cfg.Index) == "" {
		return nil, fmt.Errorf("%w: empty index", ErrInvalidAddress)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearer(cfg.APIKey)

	return &httpSearchEngine{client: client, index: cfg.Index, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSearchEngine) Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(h.indexPath("search"))
	if err != nil {
		log.Err(err).Str("func", "httpSearchEngine.Search").Msg("search request failed")
		return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpSearchEngine.Search").Int("status", resp.StatusCode()).Msg("search engine returned an error")
		return models.SearchResponse{}, err
	}

	var result models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResponse{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return result, nil
}

func (h *httpSearchEngine) IndexProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("primaryKey", primaryKey).
		SetBody(products).
		Post(h.indexPath("documents"))
	if err != nil {
		h.logger.Err(err).Str("func", "httpSearchEngine.IndexProducts").Msg("index request failed")
		return fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpSearchEngine) DeleteProducts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ids).
		Post(h.indexPath("documents/delete-batch"))
	if err != nil {
		h.logger.Err(err).Str("func", "httpSearchEngine.DeleteProducts").Msg("delete request failed")
		return fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpSearchEngine) indexPath(action string) string {
	return "/indexes/" + url.PathEscape(h.index) + "/" + action
}
