package minerstat_coins

import (
	"context"
	"time"
)

// Sentinel marks a numeric field the upstream has no data for
const Sentinel = -1

// Coin types reported by minerstat
const (
	TypeCoin = "coin"
	TypePool = "pool" // multi pool such as NiceHash or Zpool
)

// Coin holds the mining statistics of a single coin or multi pool
type Coin struct {
	// ID is the unique identifier of the coin
	ID string `json:"id"`
	// Coin is the ticker
	Coin string `json:"coin"`
	Name string `json:"name"`
	// Type is either TypeCoin or TypePool
	Type      string `json:"type"`
	Algorithm string `json:"algorithm"`
	// NetworkHashrate is in H/s
	NetworkHashrate int64   `json:"network_hashrate"`
	Difficulty      float64 `json:"difficulty"`
	// Reward is the reward for 1 H/s for 1 hour at the current difficulty
	Reward float64 `json:"reward"`
	// RewardUnit is the currency of Reward; multi pools may report BTC, XMR etc.
	RewardUnit  string  `json:"reward_unit"`
	RewardBlock float64 `json:"reward_block"`
	// Price is in USD
	Price float64 `json:"price"`
	// Volume is the last 24h volume in USD
	Volume float64 `json:"volume"`
	// Updated is the UNIX timestamp (seconds) of the last minerstat update
	Updated int64 `json:"updated"`
}

func (c Coin) HasNetworkHashrate() bool { return c.NetworkHashrate != Sentinel }
func (c Coin) HasDifficulty() bool      { return c.Difficulty != Sentinel }
func (c Coin) HasReward() bool          { return c.Reward != Sentinel }
func (c Coin) HasRewardBlock() bool     { return c.RewardBlock != Sentinel }
func (c Coin) HasPrice() bool           { return c.Price != Sentinel }
func (c Coin) HasVolume() bool          { return c.Volume != Sentinel }

// IsPool reports whether the record describes a multi pool
func (c Coin) IsPool() bool {
	return c.Type == TypePool
}

// UpdatedAt returns Updated as a time, or the zero time when unknown
func (c Coin) UpdatedAt() time.Time {
	if c.Updated == Sentinel {
		return time.Time{}
	}
	return time.Unix(c.Updated, 0).UTC()
}

// IHTTPGetter executes a GET request and returns the response body as text
//
//go:generate mockgen -destination=mocks/http_getter.go -package=mock_minerstat_coins . IHTTPGetter
type IHTTPGetter interface {
	Get(ctx context.Context, url string) (string, error)
}

// IMetricsWriter records repository level metrics
type IMetricsWriter interface {
	RecordCoinsReturned(endpoint string, count int)
	RecordRepositoryError(endpoint, kind string)
}
