package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AuctionName      string  `env:"AUCTION_NAME"       envDefault:"Item" validate:"required"`
	BidMinIncrement  float64 `env:"BID_MIN_INCREMENT"  envDefault:"1"`
	AuctionAutoStart bool    `env:"AUCTION_AUTO_START" envDefault:"false"`

	// empty host disables redis fan-out and snapshots
	RedisAuctionsHost string        `env:"REDIS_AUCTIONS_HOST"`
	RedisAuctionsPort uint16        `env:"REDIS_AUCTIONS_PORT" envDefault:"6379" validate:"min=1000,max=65535"`
	SnapshotInterval  time.Duration `env:"SNAPSHOT_INTERVAL"   envDefault:"10s"  validate:"min=1s"`

	// empty host disables the bid journal
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"     envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER"     envDefault:"auction_user"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"auction_password"`
	PostgresDb       string `env:"POSTGRES_DB"       envDefault:"auction_db"`

	HttpServerPort uint16 `env:"HTTP_SERVER_PORT" envDefault:"8085" validate:"min=1000,max=65535"`
}

func (c *Config) RedisEnabled() bool    { return c.RedisAuctionsHost != "" }
func (c *Config) PostgresEnabled() bool { return c.PostgresHost != "" }

func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	err := godotenv.Load(".env")
	if err != nil {
		zap.L().Debug(".env file not found", zap.Error(err))
	}

	cfg := &Config{}
	if err = env.Parse(cfg); err != nil {
		zap.L().Error("config_load_failed", zap.Error(err))
		return nil, err
	}

	validate := validator.New()
	err = validate.Struct(cfg)
	if err != nil {
		zap.L().Error("config_validation_failed", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}
