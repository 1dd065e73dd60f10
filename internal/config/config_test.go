package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "usdc_xlm.json", `{"result": {"active_bin": -1300, "bin_step": 10, "fee": 10, "token_x": "x", "token_y": "y"}}`)
	path := writeFile(t, dir, "binprice.yaml", `
output:
  format: json
pools:
  - name: manual
    binStep: 25
    activeBin: 40
  - name: usdc-xlm
    width: 3
    configJson: usdc_xlm.json
    configPath: result
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "binprice", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	require.Len(t, cfg.Pools, 2)
	assert.Equal(t, int32(DefaultWidth), cfg.Pools[0].Width)
	assert.Equal(t, filepath.Join(dir, "usdc_xlm.json"), cfg.Pools[1].ConfigJSON)

	manual, err := cfg.Pools[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint32(25), manual.BinStep)
	assert.Equal(t, int32(40), manual.ActiveBin)

	saved, err := cfg.Pools[1].Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), saved.BinStep)
	assert.Equal(t, int32(-1300), saved.ActiveBin)
	assert.Equal(t, "x", saved.TokenX)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"no pools":       "app:\n  name: test\n",
		"bad format":     "output:\n  format: xml\npools:\n  - binStep: 10\n",
		"bad bin step":   "pools:\n  - binStep: 10000\n",
		"negative width": "pools:\n  - binStep: 10\n    width: -1\n",
		"wide window":    "pools:\n  - binStep: 10\n    width: 1001\n",
		"not yaml":       "pools: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, "cfg.yaml", content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveMissingJSON(t *testing.T) {
	p := PoolConfig{Name: "gone", ConfigJSON: filepath.Join(t.TempDir(), "gone.json")}
	_, err := p.Resolve()
	assert.Error(t, err)
}
