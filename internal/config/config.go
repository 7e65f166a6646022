package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Campaign     Campaign     `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Campaign configura o armazenamento de campanhas e a latência simulada da API
type Campaign struct {
	SeedFile    string        `mapstructure:"campaign_seed_file"`
	RandomSeed  uint64        `mapstructure:"campaign_random_seed"`
	ListDelay   time.Duration `mapstructure:"campaign_list_delay"`
	GetDelay    time.Duration `mapstructure:"campaign_get_delay"`
	StatsDelay  time.Duration `mapstructure:"campaign_stats_delay"`
	SyncDelay   time.Duration `mapstructure:"campaign_sync_delay"`
	StatusDelay time.Duration `mapstructure:"campaign_status_delay"`
}

type CampaignSync struct {
	CronSchedule string `mapstructure:"campaign_sync_cron"`
	Enabled      bool   `mapstructure:"campaign_sync_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("LOG_LEVEL", "debug")

	v.SetDefault("CAMPAIGN_SEED_FILE", "")  // vazio usa as campanhas embutidas
	v.SetDefault("CAMPAIGN_RANDOM_SEED", 0) // 0 = fonte não determinística

	// Latências do mock do Yandex Direct
	v.SetDefault("CAMPAIGN_LIST_DELAY", "800ms")
	v.SetDefault("CAMPAIGN_GET_DELAY", "500ms")
	v.SetDefault("CAMPAIGN_STATS_DELAY", "1200ms")
	v.SetDefault("CAMPAIGN_SYNC_DELAY", "2s")
	v.SetDefault("CAMPAIGN_STATUS_DELAY", "600ms")

	v.SetDefault("CAMPAIGN_SYNC_CRON", "*/30 * * * *") // a cada 30 minutos
	v.SetDefault("CAMPAIGN_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}

	return config, nil
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not get working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
