package minerstat_coins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bitcoinJSON = `{
	"id": "btc-sha256",
	"coin": "BTC",
	"name": "Bitcoin",
	"type": "coin",
	"algorithm": "sha256",
	"network_hashrate": 500000000000,
	"difficulty": 50000000000,
	"reward": 0.00000012,
	"reward_unit": "BTC",
	"reward_block": 6.25,
	"price": 60000.5,
	"volume": 30000000000,
	"updated": 1700000000
}`

func TestParseCoins_AllFields(t *testing.T) {
	coins, err := parseCoins("[" + bitcoinJSON + "]\n")

	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, Coin{
		ID:              "btc-sha256",
		Coin:            "BTC",
		Name:            "Bitcoin",
		Type:            "coin",
		Algorithm:       "sha256",
		NetworkHashrate: 500000000000,
		Difficulty:      50000000000,
		Reward:          0.00000012,
		RewardUnit:      "BTC",
		RewardBlock:     6.25,
		Price:           60000.5,
		Volume:          30000000000,
		Updated:         1700000000,
	}, coins[0])
}

func TestParseCoins_PreservesOrder(t *testing.T) {
	body := `[{"id":"c"},{"id":"a"},{"id":"b"}]`

	coins, err := parseCoins(body)

	require.NoError(t, err)
	require.Len(t, coins, 3)
	assert.Equal(t, "c", coins[0].ID)
	assert.Equal(t, "a", coins[1].ID)
	assert.Equal(t, "b", coins[2].ID)
}

func TestParseCoins_EmptyArray(t *testing.T) {
	coins, err := parseCoins("[]\n")

	require.NoError(t, err)
	assert.NotNil(t, coins)
	assert.Empty(t, coins)
}

func TestParseCoins_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "explicit sentinels pass through",
			body: `[{"id":"x","network_hashrate":-1,"difficulty":-1,"reward":-1,"reward_block":-1,"price":-1,"volume":-1,"updated":-1}]`,
		},
		{
			name: "missing numeric fields map to sentinel",
			body: `[{"id":"x"}]`,
		},
		{
			name: "null numeric fields map to sentinel",
			body: `[{"id":"x","network_hashrate":null,"difficulty":null,"reward":null,"reward_block":null,"price":null,"volume":null,"updated":null}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coins, err := parseCoins(tt.body)

			require.NoError(t, err)
			require.Len(t, coins, 1)
			coin := coins[0]
			assert.Equal(t, int64(-1), coin.NetworkHashrate)
			assert.Equal(t, float64(-1), coin.Difficulty)
			assert.Equal(t, float64(-1), coin.Reward)
			assert.Equal(t, float64(-1), coin.RewardBlock)
			assert.Equal(t, float64(-1), coin.Price)
			assert.Equal(t, float64(-1), coin.Volume)
			assert.Equal(t, int64(-1), coin.Updated)
			assert.False(t, coin.HasPrice())
		})
	}
}

func TestParseCoins_ZeroIsNotSentinel(t *testing.T) {
	coins, err := parseCoins(`[{"id":"x","price":0,"volume":0}]`)

	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, float64(0), coins[0].Price)
	assert.True(t, coins[0].HasPrice())
	assert.Equal(t, float64(-1), coins[0].Reward)
}

func TestParseCoins_NetworkHashrate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "integer", value: "123456789012", want: 123456789012},
		{name: "exponent", value: "1.5e12", want: 1500000000000},
		{name: "fraction is truncated", value: "42.9", want: 42},
		{name: "beyond int64", value: "1e20", wantErr: true},
		{name: "not a number", value: `"fast"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coins, err := parseCoins(`[{"network_hashrate":` + tt.value + `}]`)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, coins[0].NetworkHashrate)
		})
	}
}

func TestParseCoins_UnknownKeysIgnored(t *testing.T) {
	coins, err := parseCoins(`[{"id":"x","coin":"X","extra":{"nested":[1,2]}}]`)

	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "X", coins[0].Coin)
}

func TestParseCoins_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "<html>502 Bad Gateway</html>"},
		{name: "object instead of array", body: `{"error":"invalid coin"}`},
		{name: "null", body: "null\n"},
		{name: "array of numbers", body: `[1,2]`},
		{name: "null element", body: `[null]`},
		{name: "string where number expected", body: `[{"price":"cheap"}]`},
		{name: "number where string expected", body: `[{"coin":42}]`},
		{name: "truncated", body: `[{"id":"btc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coins, err := parseCoins(tt.body)
			assert.Error(t, err)
			assert.Nil(t, coins)
		})
	}
}

func TestCoinFields_CoverEveryKey(t *testing.T) {
	keys := make(map[string]bool)
	for _, field := range coinFields {
		assert.False(t, keys[field.key], "duplicate key %s", field.key)
		keys[field.key] = true
	}

	for _, key := range []string{
		"id", "coin", "name", "type", "algorithm", "network_hashrate", "difficulty",
		"reward", "reward_unit", "reward_block", "price", "volume", "updated",
	} {
		assert.True(t, keys[key], "missing key %s", key)
	}
	assert.Len(t, coinFields, 13)
}
