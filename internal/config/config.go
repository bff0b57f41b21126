package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	RedisAddr   string
	SessionTTL  time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	AdminUsername string
	AdminPassword string

	DefaultHorizonDays  int
	DefaultStartWeekday int
	LoginRatePerSecond  float64
	LoginBurst          int
}

var defaults = map[string]any{
	"APP_ENV":               "development",
	"HTTP_ADDR":             ":8080",
	"DATABASE_URL":          "",
	"REDIS_ADDR":            "",
	"SESSION_TTL":           "24h",
	"JWT_SECRET":            "dev-secret-change-me",
	"JWT_TTL":               "15m",
	"ADMIN_USERNAME":        "admin",
	"ADMIN_PASSWORD":        "",
	"DEFAULT_HORIZON_DAYS":  7,
	"DEFAULT_START_WEEKDAY": 1,
	"LOGIN_RATE":            1.0,
	"LOGIN_BURST":           3,
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from v, falling back to the defaults for
// values that do not parse.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		AppEnv:              v.GetString("APP_ENV"),
		HTTPAddr:            v.GetString("HTTP_ADDR"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		SessionTTL:          duration(v, "SESSION_TTL"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTTTL:              duration(v, "JWT_TTL"),
		AdminUsername:       v.GetString("ADMIN_USERNAME"),
		AdminPassword:       v.GetString("ADMIN_PASSWORD"),
		DefaultHorizonDays:  v.GetInt("DEFAULT_HORIZON_DAYS"),
		DefaultStartWeekday: v.GetInt("DEFAULT_START_WEEKDAY"),
		LoginRatePerSecond:  v.GetFloat64("LOGIN_RATE"),
		LoginBurst:          v.GetInt("LOGIN_BURST"),
	}

	if cfg.DefaultHorizonDays < 1 {
		cfg.DefaultHorizonDays = defaults["DEFAULT_HORIZON_DAYS"].(int)
	}
	if cfg.DefaultStartWeekday < 1 || cfg.DefaultStartWeekday > 7 {
		cfg.DefaultStartWeekday = defaults["DEFAULT_START_WEEKDAY"].(int)
	}
	if cfg.LoginRatePerSecond <= 0 {
		cfg.LoginRatePerSecond = defaults["LOGIN_RATE"].(float64)
	}
	if cfg.LoginBurst < 1 {
		cfg.LoginBurst = defaults["LOGIN_BURST"].(int)
	}
	return cfg
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

func duration(v *viper.Viper, key string) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaults[key].(string))
	}
	return d
}
