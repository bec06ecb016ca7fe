package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	StorageJSONFile = "jsonfile"
	StorageMemory   = "memory"
)

type (
	Config struct {
		Debug         bool   `mapstructure:"debug"`
		TestMode      bool   `mapstructure:"testMode"`
		AppName       string `mapstructure:"appName"`
		Build         string `mapstructure:"build"`
		Env           string `mapstructure:"env"`
		WorkDir       string `mapstructure:"workDir"`
		DefaultUserID string `mapstructure:"defaultUserId"`
		RollbarToken  string `mapstructure:"rollbarToken"`

		Server   ServerConfig   `mapstructure:"server"`
		Storage  StorageConfig  `mapstructure:"storage"`
		Purchase PurchaseConfig `mapstructure:"purchase"`
	}

	ServerConfig struct {
		Address         string        `mapstructure:"address"`
		Host            string        `mapstructure:"host"`
		DebugHost       string        `mapstructure:"debugHost"`
		ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
		DisableReqLogs  bool          `mapstructure:"disableReqLogs"`
	}

	StorageConfig struct {
		Engine  string `mapstructure:"engine"` // jsonfile | memory
		DataDir string `mapstructure:"dataDir"`
	}

	PurchaseConfig struct {
		Currency string `mapstructure:"currency"`
	}
)

// DataPath resolves the storage data directory against WorkDir.
func (c *Config) DataPath() string {
	if filepath.IsAbs(c.Storage.DataDir) {
		return c.Storage.DataDir
	}
	return filepath.Join(c.WorkDir, c.Storage.DataDir)
}

// NewConfig loads the configuration from defaults, config/.env.<env> and the environment, in that order.
func NewConfig() *Config {
	conf, err := loadConfig(viper.New())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return conf
}

func loadConfig(v *viper.Viper) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Finwise")
	v.SetDefault("build", "develop")
	v.SetDefault("workDir", wd)
	v.SetDefault("defaultUserId", "user1")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("storage.engine", StorageJSONFile)
	v.SetDefault("storage.dataDir", filepath.Join("assets", "data"))
	v.SetDefault("purchase.currency", "INR")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	switch conf.Storage.Engine {
	case StorageJSONFile, StorageMemory:
	default:
		return nil, errors.Errorf("unknown storage engine %q", conf.Storage.Engine)
	}
	return &conf, nil
}
