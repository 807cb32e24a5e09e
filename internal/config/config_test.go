package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Item", cfg.AuctionName)
	assert.Equal(t, 1.0, cfg.BidMinIncrement)
	assert.False(t, cfg.AuctionAutoStart)
	assert.Equal(t, uint16(8085), cfg.HttpServerPort)
	assert.Equal(t, 10*time.Second, cfg.SnapshotInterval)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.PostgresEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUCTION_NAME", "Vintage Lamp")
	t.Setenv("BID_MIN_INCREMENT", "0") // not validated
	t.Setenv("AUCTION_AUTO_START", "true")
	t.Setenv("REDIS_AUCTIONS_HOST", "redis")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("SNAPSHOT_INTERVAL", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Vintage Lamp", cfg.AuctionName)
	assert.Equal(t, 0.0, cfg.BidMinIncrement)
	assert.True(t, cfg.AuctionAutoStart)
	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.PostgresEnabled())
	assert.Equal(t, 2*time.Second, cfg.SnapshotInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"HTTP_SERVER_PORT":  "80",
		"BID_MIN_INCREMENT": "cheap",
		"SNAPSHOT_INTERVAL": "10ms",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
