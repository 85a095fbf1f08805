package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the bearer token, or [ErrNoToken]
// when none is stored.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// Register implements [ServerAdapter]. It POSTs to /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs to /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if authResp.AuthToken == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: empty auth token in response", path)
	}

	h.SetToken(authResp.AuthToken)
	h.logger.Debug().Str("user_id", authResp.ID).Msg("authenticated")

	return authResp, nil
}

// CurrentSession implements [ServerAdapter]. It GETs /auth/current-session.
func (h *httpServerAdapter) CurrentSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Session{}, err
	}

	resp, err := req.SetResult(&session).Get("/auth/current-session")
	if err != nil {
		return models.Session{}, fmt.Errorf("current session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// CreateNote implements [ServerAdapter]. It POSTs to /notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, noteReq models.CreateNoteRequest) (models.Note, error) {
	var note models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.SetBody(noteReq).SetResult(&note).Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// ListNotes implements [ServerAdapter]. It GETs /notes?page=&limit=.
func (h *httpServerAdapter) ListNotes(ctx context.Context, page models.Pagination) (models.NotesPage, error) {
	var notesPage models.NotesPage

	req, err := h.authorized(ctx)
	if err != nil {
		return models.NotesPage{}, err
	}

	resp, err := req.
		SetQueryParam("page", strconv.Itoa(page.Page)).
		SetQueryParam("limit", strconv.Itoa(page.Limit)).
		SetResult(&notesPage).
		Get("/notes")
	if err != nil {
		return models.NotesPage{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotesPage{}, err
	}

	return notesPage, nil
}

// GetNote implements [ServerAdapter]. It GETs /notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}

	resp, err := req.
		SetPathParam("id", noteID).
		SetResult(&note).
		Get("/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter]. It PATCHes /notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, fields map[string]any) error {
	var result models.UpdatedResponse

	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", noteID).
		SetBody(fields).
		SetResult(&result).
		Patch("/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !result.Updated {
		return errors.New("update note: server did not confirm the update")
	}

	return nil
}

// DeleteNote implements [ServerAdapter]. It DELETEs /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	var result models.DeletedResponse

	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", noteID).
		SetResult(&result).
		Delete("/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !result.Deleted {
		return errors.New("delete note: server did not confirm the deletion")
	}

	return nil
}

// Version implements [ServerAdapter]. It GETs /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
