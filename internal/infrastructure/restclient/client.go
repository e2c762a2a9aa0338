package restclient

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
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/internal/application/storemanage"
	"github.com/jhoicas/storemanage/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos de la vista.
var (
	_ storemanage.Loader      = (*Client)(nil)
	_ storemanage.StoreStocks = (*Client)(nil)
)

// Resource recurso REST de primer nivel bajo /api.
type Resource string

const (
	ResourceStore Resource = "stores"
	ResourceStock Resource = "stocks"
)

const (
	maxBodyBytes = 1 << 20
	// maxErrorBody límite del cuerpo no JSON que se muestra en un error.
	maxErrorBody = 200
)

// Client adaptador HTTP de la API de tiendas y stocks.
// Usa net/http de la librería estándar; el token Bearer se obtiene con Login o SetToken.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger

	mu    sync.RWMutex
	token string
}

// New construye el cliente. baseURL sin barra final, p. ej. "http://localhost:8080".
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("restclient"),
	}
}

// SetToken fija el token Bearer usado en las llamadas autenticadas.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login autentica contra /api/auth/login y guarda el token.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", false, in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// LoadByIDUnauthorized GET /api/{resource}/{id} sin cabecera Authorization.
func (c *Client) LoadByIDUnauthorized(ctx context.Context, resource Resource, id string, out any) error {
	if id == "" {
		return fmt.Errorf("%s: id requerido", resource)
	}
	return c.do(ctx, http.MethodGet, resourcePath(resource, id), false, nil, out)
}

// LoadAll GET /api/{resource}/all, autenticado.
func (c *Client) LoadAll(ctx context.Context, resource Resource, out any) error {
	return c.do(ctx, http.MethodGet, resourcePath(resource, "all"), true, nil, out)
}

// LoadStoreUnauthorized carga una tienda sin credenciales.
func (c *Client) LoadStoreUnauthorized(ctx context.Context, storeID string) (*dto.StoreResponse, error) {
	var out dto.StoreResponse
	if err := c.LoadByIDUnauthorized(ctx, ResourceStore, storeID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadAllStocks carga el catálogo completo de stocks.
func (c *Client) LoadAllStocks(ctx context.Context) ([]dto.StockResponse, error) {
	out := make([]dto.StockResponse, 0)
	if err := c.LoadAll(ctx, ResourceStock, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStocks GET /api/stores/{id}/stocks.
func (c *Client) GetStocks(ctx context.Context, storeID string) ([]dto.StockResponse, error) {
	out := make([]dto.StockResponse, 0)
	if err := c.do(ctx, http.MethodGet, storeStocksPath(storeID, ""), true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddStock POST /api/stores/{id}/stocks/{stockId}.
func (c *Client) AddStock(ctx context.Context, storeID, stockID string) error {
	return c.do(ctx, http.MethodPost, storeStocksPath(storeID, stockID), true, nil, nil)
}

// RemoveStock DELETE /api/stores/{id}/stocks/{stockId}.
func (c *Client) RemoveStock(ctx context.Context, storeID, stockID string) error {
	return c.do(ctx, http.MethodDelete, storeStocksPath(storeID, stockID), true, nil, nil)
}

func resourcePath(resource Resource, id string) string {
	return "/api/" + string(resource) + "/" + url.PathEscape(id)
}

func storeStocksPath(storeID, stockID string) string {
	p := resourcePath(ResourceStore, storeID) + "/stocks"
	if stockID != "" {
		p += "/" + url.PathEscape(stockID)
	}
	return p
}

// do envía la petición, traduce respuestas no 2xx a *APIError y decodifica out si no es nil.
func (c *Client) do(ctx context.Context, method, path string, authenticated bool, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%s %s: %w", method, path, unwrapURLError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("leer respuesta %s %s: %w", method, path, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada API")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && (body.Message != "" || body.Code != "") {
		apiErr.Code = body.Code
		apiErr.Msg = body.Message
		return apiErr
	}
	apiErr.Body = truncate(strings.TrimSpace(string(raw)), maxErrorBody)
	return apiErr
}

// truncate corta s a lo sumo en limit bytes sin partir un carácter UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// unwrapURLError quita el envoltorio *url.Error ("Get \"http://...\": ...") para que el
// mensaje notificado sea la causa real (timeout, connection refused...).
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
