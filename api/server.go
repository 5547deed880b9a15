package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/status-im/minerstat-proxy/metrics"
	"github.com/status-im/minerstat-proxy/minerstat_coins"
)

// ICoinsRepository is the read side of the minerstat coins endpoint
type ICoinsRepository interface {
	ByName(ctx context.Context, names []string) ([]minerstat_coins.Coin, error)
	ByAlgorithm(ctx context.Context, algorithms []string) ([]minerstat_coins.Coin, error)
	Get(ctx context.Context, name string) (minerstat_coins.Coin, bool, error)
	Healthy() bool
}

type Server struct {
	port      string
	coinsRepo ICoinsRepository
	logger    *logrus.Logger
	server    *http.Server
}

func New(port string, coinsRepo ICoinsRepository, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Server{
		port:      port,
		coinsRepo: coinsRepo,
		logger:    logger,
	}
}

// Handler builds the router with all endpoints
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/v1/coins", s.instrument("coins", s.handleCoins)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{ticker}", s.instrument("coin", s.handleCoin)).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	s.logger.Infof("Server starting at http://localhost:%s", s.port)
	s.logger.Info("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("Server error")
		}
	}()

	return nil
}

// instrument records the handler latency and response code
func (s *Server) instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		metrics.RecordAPIRequest(name, recorder.status, start)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
