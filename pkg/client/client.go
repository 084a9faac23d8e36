// Package client es la fachada de comandos remotos del backend de Hermanar.
// Cada operación del backend se expone como un método tipado; los errores de
// transporte y los rechazos del backend se devuelven como *APIError.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError es un fallo devuelto por el backend (o por el transporte).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// SetToken fija el token Bearer para las llamadas siguientes.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// invoke ejecuta una llamada y decodifica el envelope estándar en out (out
// puede ser nil cuando no interesa el cuerpo).
func (c *Client) invoke(method, path string, body any, query map[string]string, out any) error {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("fallo de transporte",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &APIError{Message: err.Error()}
	}

	if !resp.IsSuccess() {
		var apiErr errorEnvelope
		msg := resp.Status()
		code := ""
		if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
			code = apiErr.ErrorCode
		}
		c.logger.Warn("comando rechazado",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", msg),
		)
		return &APIError{Status: resp.StatusCode(), Code: code, Message: msg}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &APIError{Status: resp.StatusCode(), Message: "respuesta no válida: " + err.Error()}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Status: resp.StatusCode(), Message: "respuesta no válida: " + err.Error()}
	}
	return nil
}
