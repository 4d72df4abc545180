package httptransport

import (
	"context"
	"log"
	"net/http"
	"time"

	"log/slog"

	"github.com/NastyaGoryachaya/slot-notifier/internal/consts"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthText = "Server is running!"

// LastTermReader - последняя известная дата по ключу сервиса
type LastTermReader interface {
	Last(ctx context.Context, key string) (string, bool, error)
}

// ServiceStatus - DTO состояния одного отслеживаемого сервиса.
type ServiceStatus struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	ServiceID int     `json:"service_id"`
	LastTerm  *string `json:"last_term"`
}

// StatusHandler - HTTP‑handler здоровья, метрик и состояния опроса.
type StatusHandler struct {
	logger  *slog.Logger
	state   LastTermReader
	timeout time.Duration
}

func NewStatusHandler(logger *slog.Logger, state LastTermReader, timeout time.Duration) *StatusHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if state == nil {
		log.Fatal("nil state reader")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &StatusHandler{
		logger:  logger,
		state:   state,
		timeout: timeout,
	}
}

func (h *StatusHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/", h.Health)
	r.GET("/status", h.GetStatus)
	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (h *StatusHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, healthText)
}

func (h *StatusHandler) GetStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	out := make([]ServiceStatus, 0, len(consts.Services))
	for _, s := range consts.Services {
		st := ServiceStatus{Key: s.Key, Name: s.DisplayName, ServiceID: s.ServiceID}
		term, ok, err := h.state.Last(ctx, s.Key)
		if err != nil {
			code := FromServiceError(err)
			h.logger.Error("GetStatus failed",
				slog.String("op", "GetStatus"),
				slog.String("service", s.Key),
				slog.String("code", string(code)),
				slog.String("error", err.Error()),
			)
			return c.JSON(statusFor(code), echo.Map{
				"error": errorBody(code),
			})
		}
		if ok {
			st.LastTerm = &term
		}
		out = append(out, st)
	}
	return c.JSON(http.StatusOK, out)
}
