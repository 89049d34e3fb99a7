package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		// DefaultRole is the actor role assumed when a request does not carry
		// one. Admin gating is a static capability, not an auth scheme.
		DefaultRole string

		Server       ServerConfig
		Upload       UploadConfig
		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Port            int
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// UploadConfig holds the artificial latencies of the mock submission service.
	UploadConfig struct {
		CreateDelay time.Duration
		FileDelay   time.Duration
		PhotoDelay  time.Duration
		VideoDelay  time.Duration
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "HMPS Sains Data")
	conf.SetDefault("build", "dev")
	conf.SetDefault("defaultRole", RoleAdmin)
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", 8000)
	conf.SetDefault("serverDebugHost", "localhost:8010")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("uploadCreateDelay", 500*time.Millisecond)
	conf.SetDefault("uploadFileDelay", 1500*time.Millisecond)
	conf.SetDefault("uploadPhotoDelay", 1500*time.Millisecond)
	conf.SetDefault("uploadVideoDelay", 2*time.Second)
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:       conf.GetBool("debug"),
		TestMode:    env == "TEST",
		Env:         env,
		AppName:     conf.GetString("appName"),
		Build:       conf.GetString("build"),
		DefaultRole: conf.GetString("defaultRole"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Port:            conf.GetInt("serverPort"),
			DebugHost:       conf.GetString("serverDebugHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Upload: UploadConfig{
			CreateDelay: conf.GetDuration("uploadCreateDelay"),
			FileDelay:   conf.GetDuration("uploadFileDelay"),
			PhotoDelay:  conf.GetDuration("uploadPhotoDelay"),
			VideoDelay:  conf.GetDuration("uploadVideoDelay"),
		},
		RollbarToken: conf.GetString("rollbarToken"),
	}
}
