package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-client/models"
)

// HTTPClientConfig configures the resty-backed VaultAPI implementation.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpVaultAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPVaultAPI builds a VaultAPI speaking the vault service's REST
// protocol over resty.
func NewHTTPVaultAPI(cfg HTTPClientConfig) VaultAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpVaultAPI{client: cli}
}

func (h *httpVaultAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultAPI) AccountID() string {
	token := h.Token()
	if token == "" {
		return ""
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (h *httpVaultAPI) FetchFullSync(ctx context.Context) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync")
	if err != nil {
		return models.SyncResponse{}, mapTransportError("full sync request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode full sync response: %w", err)
	}
	return sr, nil
}

func (h *httpVaultAPI) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPost, "/api/ciphers", item, "create item")
}

func (h *httpVaultAPI) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPut, "/api/ciphers/"+item.ID, item, "update item")
}

func (h *httpVaultAPI) SoftDeleteItem(ctx context.Context, item models.Item) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPut, "/api/ciphers/"+item.ID+"/delete", item, "soft delete item")
}

func (h *httpVaultAPI) HardDeleteItem(ctx context.Context, itemID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/ciphers/" + itemID)
	if err != nil {
		return mapTransportError("hard delete item request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultAPI) RestoreItem(ctx context.Context, itemID string) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPut, "/api/ciphers/"+itemID+"/restore", nil, "restore item")
}

func (h *httpVaultAPI) ShareItem(ctx context.Context, item models.Item) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPut, "/api/ciphers/"+item.ID+"/share", item, "share item")
}

func (h *httpVaultAPI) UpdateItemCollections(ctx context.Context, itemID string, collectionIDs []string) (models.Item, error) {
	body := map[string][]string{"collection_ids": collectionIDs}
	return h.itemRequest(ctx, http.MethodPut, "/api/ciphers/"+itemID+"/collections", body, "update item collections")
}

func (h *httpVaultAPI) CreateAttachment(ctx context.Context, itemID string, req models.AttachmentRequest) (models.AttachmentUpload, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/ciphers/" + itemID + "/attachment")
	if err != nil {
		return models.AttachmentUpload{}, mapTransportError("create attachment request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AttachmentUpload{}, err
	}

	var upload models.AttachmentUpload
	if err = json.Unmarshal(resp.Body(), &upload); err != nil {
		return models.AttachmentUpload{}, fmt.Errorf("decode create attachment response: %w", err)
	}
	return upload, nil
}

func (h *httpVaultAPI) UploadAttachment(ctx context.Context, itemID, attachmentID, srcPath, organizationID string) error {
	req := h.authedRequest(ctx).SetFile("data", srcPath)
	if organizationID != "" {
		req.SetQueryParam("organizationId", organizationID)
	}

	resp, err := req.Post("/api/ciphers/" + itemID + "/attachment/" + attachmentID)
	if err != nil {
		return mapTransportError("upload attachment request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultAPI) DeleteAttachment(ctx context.Context, itemID, attachmentID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/ciphers/" + itemID + "/attachment/" + attachmentID)
	if err != nil {
		return mapTransportError("delete attachment request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultAPI) GetAttachmentMetadata(ctx context.Context, itemID, attachmentID string) (models.Attachment, error) {
	resp, err := h.authedRequest(ctx).Get("/api/ciphers/" + itemID + "/attachment/" + attachmentID)
	if err != nil {
		return models.Attachment{}, mapTransportError("get attachment metadata request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Attachment{}, err
	}

	var att models.Attachment
	if err = json.Unmarshal(resp.Body(), &att); err != nil {
		return models.Attachment{}, fmt.Errorf("decode attachment metadata response: %w", err)
	}
	return att, nil
}

func (h *httpVaultAPI) DownloadFile(ctx context.Context, fileURL, dstPath string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetOutput(dstPath).
		Get(fileURL)
	if err != nil {
		return mapTransportError("download file request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultAPI) itemRequest(ctx context.Context, method, path string, body any, op string) (models.Item, error) {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.Item{}, mapTransportError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	return item, nil
}

func (h *httpVaultAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapTransportError distinguishes a dead network path from every other
// request failure. resty wraps connection problems in *url.Error.
func mapTransportError(op string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", op, ErrNoNetwork)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &InvalidError{Message: serverMessage(body)}
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// serverMessage extracts the "message" field from a JSON error body, falling
// back to the raw body text.
func serverMessage(body string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return body
}
