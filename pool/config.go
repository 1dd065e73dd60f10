package pool

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	ammmath "github.com/krazyTry/concentrated-amm-go/math"
)

// Config mirrors the pool configuration returned by get_config.
type Config struct {
	TokenX    string `json:"token_x"`
	TokenY    string `json:"token_y"`
	BinStep   uint32 `json:"bin_step"`
	ActiveBin int32  `json:"active_bin"`
	Fee       uint32 `json:"fee"`
}

var configFields = []string{"token_x", "token_y", "bin_step", "active_bin", "fee"}

// ParseConfig decodes the JSON form of a get_config result.
func ParseConfig(raw []byte) (*Config, error) {
	return ParseConfigAt(raw, "")
}

// ParseConfigAt decodes a get_config result nested under a gjson path,
// e.g. "result" for a saved simulation response.
func ParseConfigAt(raw []byte, path string) (*Config, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("pool config is not valid json")
	}
	root := gjson.ParseBytes(raw)
	if path != "" {
		root = root.Get(path)
		if !root.Exists() {
			return nil, fmt.Errorf("pool config path %q not found", path)
		}
	}
	if !root.IsObject() {
		return nil, errors.New("pool config is not an object")
	}
	for _, field := range configFields {
		if !root.Get(field).Exists() {
			return nil, fmt.Errorf("pool config field %q missing", field)
		}
	}

	binStep, err := uint32Field(root, "bin_step")
	if err != nil {
		return nil, err
	}
	fee, err := uint32Field(root, "fee")
	if err != nil {
		return nil, err
	}
	activeBin, err := int32Field(root, "active_bin")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		TokenX:    root.Get("token_x").String(),
		TokenY:    root.Get("token_y").String(),
		BinStep:   binStep,
		ActiveBin: activeBin,
		Fee:       fee,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// uint32Field and int32Field parse the raw token so fractions and exponents are rejected
// instead of truncated.
func uint32Field(root gjson.Result, field string) (uint32, error) {
	v := root.Get(field)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("pool config field %q is not a number: %s", field, v.Raw)
	}
	n, err := strconv.ParseUint(v.Raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("pool config field %q out of range: %s", field, v.Raw)
	}
	return uint32(n), nil
}

func int32Field(root gjson.Result, field string) (int32, error) {
	v := root.Get(field)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("pool config field %q is not a number: %s", field, v.Raw)
	}
	n, err := strconv.ParseInt(v.Raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("pool config field %q out of range: %s", field, v.Raw)
	}
	return int32(n), nil
}

// Validate checks that the bin step keeps both pow bases inside (0, 2).
func (c *Config) Validate() error {
	if c.BinStep == 0 || c.BinStep >= ammmath.BasisPointMax {
		return fmt.Errorf("bin step %d must be within 1..%d", c.BinStep, ammmath.BasisPointMax-1)
	}
	return nil
}
