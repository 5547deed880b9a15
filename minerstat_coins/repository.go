package minerstat_coins

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/status-im/minerstat-proxy/config"
	"github.com/status-im/minerstat-proxy/metrics"
	mc "github.com/status-im/minerstat-proxy/minerstat_common"
)

// Repository queries the minerstat coins endpoint
type Repository struct {
	getter          IHTTPGetter
	secure          bool
	domain          string
	metricsWriter   IMetricsWriter
	logger          *logrus.Logger
	successfulFetch atomic.Bool
}

// NewRepository creates a repository for the endpoint described by cfg.
// metricsWriter may be nil.
func NewRepository(getter IHTTPGetter, cfg *config.MinerstatConfig, metricsWriter IMetricsWriter, logger *logrus.Logger) *Repository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Repository{
		getter:        getter,
		secure:        cfg.Secure,
		domain:        cfg.Domain,
		metricsWriter: metricsWriter,
		logger:        logger,
	}
}

// Healthy returns true if at least one fetch was successful
func (r *Repository) Healthy() bool {
	return r.successfulFetch.Load()
}

// ByName returns the coins with the given tickers in response order.
// An empty result is an empty, non-nil slice.
func (r *Repository) ByName(ctx context.Context, names []string) ([]Coin, error) {
	return r.fetch(ctx, metrics.EndpointByName, mc.ParamList, names)
}

// ByAlgorithm returns the coins mined with any of the given algorithms
func (r *Repository) ByAlgorithm(ctx context.Context, algorithms []string) ([]Coin, error) {
	return r.fetch(ctx, metrics.EndpointByAlgorithm, mc.ParamAlgo, algorithms)
}

// Get returns the first coin matching name; ok is false when nothing matches
func (r *Repository) Get(ctx context.Context, name string) (coin Coin, ok bool, err error) {
	coins, err := r.ByName(ctx, []string{name})
	if err != nil {
		return Coin{}, false, err
	}
	if len(coins) == 0 {
		return Coin{}, false, nil
	}
	return coins[0], true, nil
}

func (r *Repository) fetch(ctx context.Context, endpoint, paramName string, values []string) ([]Coin, error) {
	url := mc.BuildURL(r.secure, r.domain, paramName, values)
	log := r.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"url":      url,
	})

	body, err := r.getter.Get(ctx, url)
	if err != nil {
		if mc.KindOf(err) == mc.KindUnknown {
			err = mc.NewError(mc.KindTransport, endpoint, err)
		}
		r.recordError(endpoint, err)
		log.WithError(err).Error("Minerstat: failed to fetch coins")
		return nil, err
	}

	coins, err := parseCoins(body)
	if err != nil {
		err = mc.NewError(mc.KindParse, endpoint, err)
		r.recordError(endpoint, err)
		log.WithError(err).Error("Minerstat: failed to parse coins response")
		return nil, err
	}

	r.successfulFetch.Store(true)
	if r.metricsWriter != nil {
		r.metricsWriter.RecordCoinsReturned(endpoint, len(coins))
	}
	log.WithField("coins", len(coins)).Debug("Minerstat: fetched coins")

	return coins, nil
}

func (r *Repository) recordError(endpoint string, err error) {
	if r.metricsWriter != nil {
		r.metricsWriter.RecordRepositoryError(endpoint, mc.KindOf(err).String())
	}
}
