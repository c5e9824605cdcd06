package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine string // inmem | postgres
		URL    string
	}

	DigestConfig struct {
		Enabled  bool
		CronSpec string
	}

	Config struct {
		Env              string
		Build            string
		AppName          string
		Debug            bool
		TestMode         bool
		DefaultFromEmail mail.Address
		FrontendBaseURL  string
		RollbarToken     string
		SendgridApiKey   string
		DefaultPayMethod string

		Server   ServerConfig
		Database DatabaseConfig
		Digest   DigestConfig
	}
)

// NewConfig reads the configuration from the environment.
// Variables are prefixed with the current ENV (DEV by default), e.g. DEV_DATABASE_ENGINE.
// A `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	v := viper.New()

	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "Tutordesk")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("payment.defaultMethod", "bank")
	v.SetDefault("server.host", ":8000")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("database.engine", "inmem")
	v.SetDefault("database.url", "")
	v.SetDefault("digest.enabled", true)
	v.SetDefault("digest.cronSpec", "0 9 * * MON")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	appName := v.GetString("appName")
	return &Config{
		Env:              env,
		Build:            v.GetString("build"),
		AppName:          appName,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		DefaultFromEmail: mail.Address{Name: appName, Address: v.GetString("defaultFromEmail")},
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		RollbarToken:     v.GetString("rollbarToken"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		DefaultPayMethod: v.GetString("payment.defaultMethod"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine: strings.ToLower(v.GetString("database.engine")),
			URL:    v.GetString("database.url"),
		},
		Digest: DigestConfig{
			Enabled:  v.GetBool("digest.enabled"),
			CronSpec: v.GetString("digest.cronSpec"),
		},
	}
}

// NewTestConfig returns a Config suitable for tests: no debug output, test mode on.
func NewTestConfig() *Config {
	return &Config{
		Env:              "TEST",
		Build:            "test",
		AppName:          "Tutordesk",
		TestMode:         true,
		DefaultFromEmail: mail.Address{Name: "Tutordesk", Address: "noreply@localhost"},
		FrontendBaseURL:  "http://localhost:3000",
		DefaultPayMethod: "bank",
		Server:           ServerConfig{ShutdownTimeout: time.Second},
		Database:         DatabaseConfig{Engine: "inmem"},
		Digest:           DigestConfig{CronSpec: "0 9 * * MON"},
	}
}
