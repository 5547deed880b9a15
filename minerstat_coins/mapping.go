package minerstat_coins

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// coinField maps one upstream JSON key onto a Coin field. decode is only
// called for present, non-null values; missing applies the default.
type coinField struct {
	key     string
	decode  func(raw json.RawMessage, c *Coin) error
	missing func(c *Coin)
}

// coinFields is the complete key → field table for the coins endpoint
var coinFields = []coinField{
	stringField("id", func(c *Coin) *string { return &c.ID }),
	stringField("coin", func(c *Coin) *string { return &c.Coin }),
	stringField("name", func(c *Coin) *string { return &c.Name }),
	stringField("type", func(c *Coin) *string { return &c.Type }),
	stringField("algorithm", func(c *Coin) *string { return &c.Algorithm }),
	int64Field("network_hashrate", func(c *Coin) *int64 { return &c.NetworkHashrate }),
	floatField("difficulty", func(c *Coin) *float64 { return &c.Difficulty }),
	floatField("reward", func(c *Coin) *float64 { return &c.Reward }),
	stringField("reward_unit", func(c *Coin) *string { return &c.RewardUnit }),
	floatField("reward_block", func(c *Coin) *float64 { return &c.RewardBlock }),
	floatField("price", func(c *Coin) *float64 { return &c.Price }),
	floatField("volume", func(c *Coin) *float64 { return &c.Volume }),
	int64Field("updated", func(c *Coin) *int64 { return &c.Updated }),
}

var jsonNull = []byte("null")

// parseCoins decodes a JSON array of coin objects, keeping response order
func parseCoins(body string) ([]Coin, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(body), &elements); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}
	if elements == nil {
		return nil, fmt.Errorf("response is not a JSON array: null")
	}

	coins := make([]Coin, 0, len(elements))
	for i, element := range elements {
		coin, err := decodeCoin(element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		coins = append(coins, coin)
	}

	return coins, nil
}

func decodeCoin(element json.RawMessage) (Coin, error) {
	var coin Coin

	if bytes.Equal(bytes.TrimSpace(element), jsonNull) {
		return coin, fmt.Errorf("coin is null")
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(element, &object); err != nil {
		return coin, fmt.Errorf("coin is not a JSON object: %w", err)
	}

	for _, field := range coinFields {
		raw, ok := object[field.key]
		if !ok || bytes.Equal(raw, jsonNull) {
			field.missing(&coin)
			continue
		}
		if err := field.decode(raw, &coin); err != nil {
			return coin, fmt.Errorf("field %q: %w", field.key, err)
		}
	}

	return coin, nil
}

func stringField(key string, target func(c *Coin) *string) coinField {
	return coinField{
		key: key,
		decode: func(raw json.RawMessage, c *Coin) error {
			return json.Unmarshal(raw, target(c))
		},
		missing: func(c *Coin) {
			*target(c) = ""
		},
	}
}

func floatField(key string, target func(c *Coin) *float64) coinField {
	return coinField{
		key: key,
		decode: func(raw json.RawMessage, c *Coin) error {
			number, err := decodeNumber(raw)
			if err != nil {
				return err
			}
			value, err := number.Float64()
			if err != nil {
				return err
			}
			*target(c) = value
			return nil
		},
		missing: func(c *Coin) {
			*target(c) = Sentinel
		},
	}
}

// int64Field accepts integral numbers; fractional values are truncated
// toward zero and values beyond the int64 range are rejected.
func int64Field(key string, target func(c *Coin) *int64) coinField {
	return coinField{
		key: key,
		decode: func(raw json.RawMessage, c *Coin) error {
			number, err := decodeNumber(raw)
			if err != nil {
				return err
			}
			if value, err := number.Int64(); err == nil {
				*target(c) = value
				return nil
			}
			value, err := number.Float64()
			if err != nil {
				return err
			}
			if value < math.MinInt64 || value >= math.MaxInt64 {
				return fmt.Errorf("%s is out of int64 range", number)
			}
			*target(c) = int64(value)
			return nil
		},
		missing: func(c *Coin) {
			*target(c) = Sentinel
		},
	}
}

func decodeNumber(raw json.RawMessage) (json.Number, error) {
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", err
	}
	return number, nil
}
