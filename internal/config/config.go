package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	OfficeManager OfficeManager `mapstructure:",squash"`
	ShiftManager  ShiftManager  `mapstructure:",squash"`
	PublicAPI     PublicAPI     `mapstructure:",squash"`
	Sync          Sync          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// OfficeManager configures the authenticated office-manager endpoints.
type OfficeManager struct {
	BaseURL        string        `mapstructure:"office_manager_base_url"`
	RequestTimeout time.Duration `mapstructure:"office_manager_request_timeout"`
}

// ShiftManager configures the authenticated shift-manager endpoints, where
// the canceled orders pages live.
type ShiftManager struct {
	BaseURL string `mapstructure:"shift_manager_base_url"`
	// MaxPages bounds the canceled orders pagination scan so a broken
	// upstream that never returns an empty page cannot spin forever.
	MaxPages int `mapstructure:"shift_manager_max_pages"`
}

type PublicAPI struct {
	BaseURL string `mapstructure:"public_api_base_url"`
	Lang    string `mapstructure:"public_api_lang"`
}

// Sync holds one cadence per job kind plus shared hardening knobs.
type Sync struct {
	KitchenInterval          time.Duration `mapstructure:"sync_kitchen_interval"`
	DeliveryInterval         time.Duration `mapstructure:"sync_delivery_interval"`
	DetailedDeliveryInterval time.Duration `mapstructure:"sync_detailed_delivery_interval"`
	OrdersInterval           time.Duration `mapstructure:"sync_orders_interval"`
	RevenueInterval          time.Duration `mapstructure:"sync_revenue_interval"`
	CanceledOrdersCron       string        `mapstructure:"sync_canceled_orders_cron"`
	PizzeriaStopSalesCron    string        `mapstructure:"sync_pizzeria_stop_sales_cron"`
	StreetStopSalesCron      string        `mapstructure:"sync_street_stop_sales_cron"`
	SectorStopSalesCron      string        `mapstructure:"sync_sector_stop_sales_cron"`
	IngredientStopSalesCron  string        `mapstructure:"sync_ingredient_stop_sales_cron"`
	BeingLateCron            string        `mapstructure:"sync_being_late_cron"`
	TickTimeout              time.Duration `mapstructure:"sync_tick_timeout"`
	MaxConcurrentAccounts    int           `mapstructure:"sync_max_concurrent_accounts"`
	Enabled                  bool          `mapstructure:"sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dodo_reports")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("OFFICE_MANAGER_BASE_URL", "https://officemanager.dodopizza.ru")
	viper.SetDefault("OFFICE_MANAGER_REQUEST_TIMEOUT", "45s")

	viper.SetDefault("SHIFT_MANAGER_BASE_URL", "https://shiftmanager.dodopizza.ru")
	viper.SetDefault("SHIFT_MANAGER_MAX_PAGES", 100)

	viper.SetDefault("PUBLIC_API_BASE_URL", "https://publicapi.dodois.io")
	viper.SetDefault("PUBLIC_API_LANG", "ru")

	// Cadences mirror the report freshness windows the chat bot expects.
	viper.SetDefault("SYNC_KITCHEN_INTERVAL", "1m")
	viper.SetDefault("SYNC_DELIVERY_INTERVAL", "1m")
	viper.SetDefault("SYNC_DETAILED_DELIVERY_INTERVAL", "1m")
	viper.SetDefault("SYNC_ORDERS_INTERVAL", "5m")
	viper.SetDefault("SYNC_REVENUE_INTERVAL", "1m")
	viper.SetDefault("SYNC_CANCELED_ORDERS_CRON", "*/5 * * * *")
	viper.SetDefault("SYNC_PIZZERIA_STOP_SALES_CRON", "*/5 * * * *")
	viper.SetDefault("SYNC_STREET_STOP_SALES_CRON", "*/10 * * * *")
	viper.SetDefault("SYNC_SECTOR_STOP_SALES_CRON", "*/10 * * * *")
	viper.SetDefault("SYNC_INGREDIENT_STOP_SALES_CRON", "*/30 * * * *")
	viper.SetDefault("SYNC_BEING_LATE_CRON", "*/30 * * * *")
	viper.SetDefault("SYNC_TICK_TIMEOUT", "4m")
	viper.SetDefault("SYNC_MAX_CONCURRENT_ACCOUNTS", 3)
	viper.SetDefault("SYNC_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables only (.env not readable by viper): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
