package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DriverFirebase = "firebase"
	DriverMemory   = "memory"
)

const (
	defaultAddress      = ":10000"
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = time.Minute
	defaultDatabaseURL  = "https://dmbook-db210-default-rtdb.firebaseio.com"
	defaultRoot         = "App"
	defaultConcurrency  = 8
	defaultRedisTTL     = 30 * time.Second
)

// Duration reads YAML values such as "5s" or "1m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type ServerConfig struct {
	Address      string   `yaml:"address"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StoreConfig struct {
	Driver   string `yaml:"driver"`
	SeedFile string `yaml:"seed_file"`
	Root     string `yaml:"root"`
}

type FirebaseConfig struct {
	DatabaseURL     string `yaml:"database_url"`
	CredentialsFile string `yaml:"credentials_file"`
	ProjectID       string `yaml:"project_id"`
	ClientEmail     string `yaml:"client_email"`
	PrivateKey      string `yaml:"private_key"`
}

// HasServiceAccount reports whether inline service account fields are set.
func (f FirebaseConfig) HasServiceAccount() bool {
	return f.ProjectID != "" && f.ClientEmail != "" && f.PrivateKey != ""
}

type LookupConfig struct {
	// Categories is the estate shard order used for estate lookups.
	Categories []string `yaml:"categories"`
	// FeedbackCategories is the order used when joining customer feedback.
	FeedbackCategories   []string `yaml:"feedback_categories"`
	ParallelProbes       bool     `yaml:"parallel_probes"`
	Concurrency          int      `yaml:"concurrency"`
	SkipFailedEnrichment bool     `yaml:"skip_failed_enrichment"`
}

type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	CORS          CORSConfig          `yaml:"cors"`
	Store         StoreConfig         `yaml:"store"`
	Firebase      FirebaseConfig      `yaml:"firebase"`
	Lookup        LookupConfig        `yaml:"lookup"`
	Redis         RedisConfig         `yaml:"redis"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Log           LogConfig           `yaml:"log"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:      defaultAddress,
			ReadTimeout:  Duration(defaultReadTimeout),
			WriteTimeout: Duration(defaultWriteTimeout),
			IdleTimeout:  Duration(defaultIdleTimeout),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"https://callcentersy.netlify.app", "http://localhost:3000"},
		},
		Store: StoreConfig{Driver: DriverFirebase, Root: defaultRoot},
		Firebase: FirebaseConfig{
			DatabaseURL: defaultDatabaseURL,
		},
		Lookup: LookupConfig{
			Categories:         []string{"Coffee", "Hottel", "Restaurant"},
			FeedbackCategories: []string{"Hottel", "Restaurant", "Coffee"},
			Concurrency:        defaultConcurrency,
		},
		Redis: RedisConfig{TTL: Duration(defaultRedisTTL)},
		Log:   LogConfig{Env: "production", Level: "info"},
	}
}

// LoadConfig reads the YAML file at path when it exists, then applies
// environment overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Address = ":" + v
	}
	if v := readListEnv("CORS_ALLOWED_ORIGINS"); v != nil {
		cfg.CORS.AllowedOrigins = v
	}

	readStringEnv("STORE_DRIVER", &cfg.Store.Driver)
	readStringEnv("STORE_SEED_FILE", &cfg.Store.SeedFile)
	readStringEnv("STORE_ROOT", &cfg.Store.Root)

	readStringEnv("FIREBASE_DATABASE_URL", &cfg.Firebase.DatabaseURL)
	readStringEnv("GOOGLE_APPLICATION_CREDENTIALS", &cfg.Firebase.CredentialsFile)
	readStringEnv("FIREBASE_PROJECT_ID", &cfg.Firebase.ProjectID)
	readStringEnv("FIREBASE_CLIENT_EMAIL", &cfg.Firebase.ClientEmail)
	readStringEnv("FIREBASE_PRIVATE_KEY", &cfg.Firebase.PrivateKey)
	// Keys pasted into .env files usually carry escaped newlines.
	cfg.Firebase.PrivateKey = strings.ReplaceAll(cfg.Firebase.PrivateKey, `\n`, "\n")

	if v := readListEnv("LOOKUP_CATEGORIES"); v != nil {
		cfg.Lookup.Categories = v
	}
	if v := readListEnv("LOOKUP_FEEDBACK_CATEGORIES"); v != nil {
		cfg.Lookup.FeedbackCategories = v
	}
	if v, err := readBoolEnv("LOOKUP_PARALLEL_PROBES"); err != nil {
		return fmt.Errorf("parse LOOKUP_PARALLEL_PROBES: %w", err)
	} else if v != nil {
		cfg.Lookup.ParallelProbes = *v
	}
	if v, err := readIntEnv("LOOKUP_CONCURRENCY"); err != nil {
		return fmt.Errorf("parse LOOKUP_CONCURRENCY: %w", err)
	} else if v != nil {
		cfg.Lookup.Concurrency = *v
	}
	if v, err := readBoolEnv("LOOKUP_SKIP_FAILED"); err != nil {
		return fmt.Errorf("parse LOOKUP_SKIP_FAILED: %w", err)
	} else if v != nil {
		cfg.Lookup.SkipFailedEnrichment = *v
	}

	readStringEnv("REDIS_ADDR", &cfg.Redis.Addr)
	readStringEnv("REDIS_PASSWORD", &cfg.Redis.Password)
	if v, err := readIntEnv("REDIS_DB"); err != nil {
		return fmt.Errorf("parse REDIS_DB: %w", err)
	} else if v != nil {
		cfg.Redis.DB = *v
	}
	if v, err := readDurationEnv("REDIS_TTL"); err != nil {
		return fmt.Errorf("parse REDIS_TTL: %w", err)
	} else if v != nil {
		cfg.Redis.TTL = Duration(*v)
	}

	if v, err := readBoolEnv("NOTIFICATIONS_ENABLED"); err != nil {
		return fmt.Errorf("parse NOTIFICATIONS_ENABLED: %w", err)
	} else if v != nil {
		cfg.Notifications.Enabled = *v
	}

	readStringEnv("APP_ENV", &cfg.Log.Env)
	readStringEnv("LOG_LEVEL", &cfg.Log.Level)
	return nil
}

// Validate reports the first setting the service cannot start with.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFirebase:
		if c.Firebase.DatabaseURL == "" {
			return fmt.Errorf("firebase.database_url is required")
		}
		if c.Firebase.CredentialsFile == "" && !c.Firebase.HasServiceAccount() {
			return fmt.Errorf("firebase credentials missing: set GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_PROJECT_ID, FIREBASE_CLIENT_EMAIL and FIREBASE_PRIVATE_KEY")
		}
	case DriverMemory:
		if c.Notifications.Enabled {
			return fmt.Errorf("notifications need the firebase store driver")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	if len(c.Lookup.Categories) == 0 {
		return fmt.Errorf("lookup.categories must not be empty")
	}
	if len(c.Lookup.FeedbackCategories) == 0 {
		return fmt.Errorf("lookup.feedback_categories must not be empty")
	}
	if c.Lookup.Concurrency <= 0 {
		return fmt.Errorf("lookup.concurrency must be positive")
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive")
	}
	return nil
}

func readStringEnv(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func readListEnv(name string) []string {
	val := os.Getenv(name)
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func readIntEnv(name string) (*int, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readBoolEnv(name string) (*bool, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readDurationEnv(name string) (*time.Duration, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := time.ParseDuration(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
