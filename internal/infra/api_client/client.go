package api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
)

// pluginComment - фиксированное значение plugin_comment, которое ждёт виджет Bookero
const pluginComment = `{"data":{"parameters":{}}}`

type Client struct {
	cfg        config.BookeroConfig
	httpClient *http.Client
}

// getMonthResponse - из ответа getMonth нужен только first_free_term.
// Поле бывает строкой, null, false или отсутствует, поэтому читаем сырой JSON.
type getMonthResponse struct {
	FirstFreeTerm json.RawMessage `json:"first_free_term"`
}

// NewClient - клиент API плагина Bookero.
func NewClient(cfg config.BookeroConfig) *Client {
	// Timeout == 0 означает таймаут транспорта по умолчанию
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ServiceURL - полный URL запроса getMonth для услуги serviceID
func (c *Client) ServiceURL(serviceID int) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("bookero_id", c.cfg.BookeroID)
	q.Set("lang", c.cfg.Lang)
	q.Set("periodicity_id", strconv.Itoa(c.cfg.PeriodicityID))
	q.Set("custom_duration_id", "0")
	q.Set("worker", "0")
	q.Set("plugin_comment", pluginComment)
	q.Set("phone", "")
	q.Set("people", strconv.Itoa(c.cfg.People))
	q.Set("email", "")
	q.Set("plus_months", strconv.Itoa(c.cfg.PlusMonths))
	q.Set("service", strconv.Itoa(serviceID))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FirstFreeTerm - запрашивает ближайшую свободную дату услуги.
// Пустая строка без ошибки - свободных терминов нет.
func (c *Client) FirstFreeTerm(ctx context.Context, serviceID int) (string, error) {
	target, err := c.ServiceURL(serviceID)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request failed: %s", resp.Status)
	}

	// тело null - ответа нет, а не "нет свободных дат"
	var data *getMonthResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if data == nil {
		return "", errors.New("empty response body")
	}
	return parseTerm(data.FirstFreeTerm)
}

func parseTerm(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false":
		return "", nil
	}
	var term string
	if err := json.Unmarshal(raw, &term); err != nil {
		return "", fmt.Errorf("unexpected first_free_term %s: %w", raw, err)
	}
	return term, nil
}
