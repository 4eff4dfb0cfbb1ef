package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/annel0/aoc2024/internal/auth"
	"github.com/annel0/aoc2024/internal/eventbus"
	"github.com/annel0/aoc2024/internal/logging"
	"github.com/annel0/aoc2024/internal/metrics"
	"github.com/annel0/aoc2024/internal/middleware"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/runner"
)

// MaxInputBytes ограничение размера тела запроса решения
const MaxInputBytes = 8 << 20

// RestServer представляет REST API сервер
type RestServer struct {
	router     *gin.Engine
	runner     *runner.Runner
	tokens     *auth.TokenManager
	bus        eventbus.EventBus
	process    *metrics.ProcessMetrics
	port       string
	httpServer *http.Server
	logger     *logging.Logger
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port     string             // адрес для запуска сервера, например ":8088"
	Runner   *runner.Runner     // решатель дней
	Tokens   *auth.TokenManager // при nil решение без авторизации
	Bus      eventbus.EventBus  // для статистики шины, необязательно
	Process  *metrics.ProcessMetrics
	Registry *prometheus.Registry // регистр метрик, при nil создаётся новый
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DayInfo описание зарегистрированного дня
type DayInfo struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if config.Process == nil {
		config.Process = metrics.NewProcessMetrics()
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware("rest_api"))

	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("rest_api", config.Registry, config.Registry)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		runner:  config.Runner,
		tokens:  config.Tokens,
		bus:     config.Bus,
		process: config.Process,
		port:    config.Port,
		logger:  logging.GetAPILogger(),
	}

	// Настраиваем маршруты
	server.setupRoutes()

	// Shutdown допустим до и во время Start
	server.httpServer = &http.Server{
		Addr:              server.port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	// Middleware для CORS
	rs.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := rs.router.Group("/api")
	{
		api.GET("/days", rs.handleListDays)
		api.GET("/stats", rs.handleStats)
	}

	// Решение защищено JWT, если задан менеджер токенов
	solve := api.Group("/days/:day")
	if rs.tokens != nil {
		solve.Use(rs.jwtMiddleware())
	}
	solve.POST("/solve", rs.handleSolve)

	// Health check
	rs.router.GET("/health", rs.handleHealth)
}

// Handler возвращает http.Handler сервера (для тестов и встраивания)
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// handleListDays возвращает зарегистрированные дни
func (rs *RestServer) handleListDays(c *gin.Context) {
	all := puzzle.All()
	days := make([]DayInfo, 0, len(all))
	for _, s := range all {
		days = append(days, DayInfo{Day: s.Day, Title: s.Title})
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Список дней получен",
		Data:    days,
	})
}

// handleSolve решает день: тело запроса содержит текст головоломки,
// ?part=1|2 выбирает часть, ?param[name]=N переопределяет параметры дня.
func (rs *RestServer) handleSolve(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day <= 0 {
		rs.fail(c, http.StatusBadRequest, fmt.Sprintf("Неверный номер дня: %s", c.Param("day")), nil)
		return
	}

	var parts []int
	if raw := c.Query("part"); raw != "" {
		part, err := strconv.Atoi(raw)
		if err != nil {
			rs.fail(c, http.StatusBadRequest, fmt.Sprintf("Неверный номер части: %s", raw), nil)
			return
		}
		parts = []int{part}
	}

	params, err := puzzle.ParamsFromStrings(c.QueryMap("param"))
	if err != nil {
		rs.fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxInputBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rs.fail(c, http.StatusRequestEntityTooLarge, "Слишком большой вход", nil)
			return
		}
		rs.fail(c, http.StatusBadRequest, "Не удалось прочитать тело запроса", nil)
		return
	}

	report, err := rs.runner.Run(c.Request.Context(), runner.Request{
		Day:    day,
		Parts:  parts,
		Text:   string(body),
		Params: params,
	})
	if err != nil {
		var data interface{}
		if report != nil {
			data = report
		}
		rs.fail(c, statusFor(err), err.Error(), data)
		return
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: fmt.Sprintf("День %d решён", report.Day),
		Data:    report,
	})
}

// statusFor переводит ошибку решения в HTTP статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrUnknownDay):
		return http.StatusNotFound
	case errors.Is(err, puzzle.ErrUnknownPart), errors.Is(err, runner.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, puzzle.ErrMalformedInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (rs *RestServer) fail(c *gin.Context, status int, message string, data interface{}) {
	if status >= http.StatusInternalServerError {
		rs.logger.Error("❌ %s %s: %s", c.Request.Method, c.Request.URL.Path, message)
	}
	c.JSON(status, GenericResponse{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// handleStats возвращает показатели процесса и шины событий
func (rs *RestServer) handleStats(c *gin.Context) {
	stats := map[string]interface{}{
		"process":     rs.process.Snapshot(),
		"days":        len(puzzle.All()),
		"server_time": time.Now().Unix(),
	}
	if rs.bus != nil {
		stats["eventbus"] = rs.bus.Metrics()
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика получена",
		Data:    stats,
	})
}

// handleHealth проверка состояния сервера
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// Start запускает REST сервер и блокируется до его остановки
func (rs *RestServer) Start() error {
	rs.logger.Info("✅ REST API сервер запущен на http://localhost%s", rs.port)
	rs.logger.Info("📋 Доступные эндпоинты:")
	rs.logger.Info("   GET  /health                 - Проверка состояния")
	rs.logger.Info("   GET  /metrics                - Prometheus метрики")
	rs.logger.Info("   GET  /api/days               - Список дней")
	rs.logger.Info("   GET  /api/stats              - Статистика процесса")
	rs.logger.Info("   POST /api/days/:day/solve    - Решение дня")

	if err := rs.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает сервер, дожидаясь завершения активных запросов
func (rs *RestServer) Shutdown(ctx context.Context) error {
	return rs.httpServer.Shutdown(ctx)
}
