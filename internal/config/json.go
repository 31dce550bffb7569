package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		SessionSecret         string   `json:"session_secret"`
		SessionIssuer         string   `json:"session_issuer"`
		SessionTTL            Duration `json:"session_ttl"`
		CookieName            string   `json:"cookie_name"`
		CookieSameSite        string   `json:"cookie_samesite"`
		InsecureCookie        bool     `json:"insecure_cookie"`
		MaxLoginAttempts      int      `json:"max_login_attempts"`
		LockoutWindow         Duration `json:"lockout_window"`
		DisableRegistration   bool     `json:"disable_registration"`
		RegisterRatePerMinute float64  `json:"register_rate_per_minute"`
		RegisterBurst         int      `json:"register_burst"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Images struct {
			Backend string `json:"backend"`
			Dir     string `json:"dir"`
			MinIO   struct {
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Bucket    string `json:"bucket"`
				UseSSL    bool   `json:"use_ssl"`
			} `json:"minio,omitempty"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		TrustProxy      bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			SessionSecret:         jsonCfg.Auth.SessionSecret,
			SessionIssuer:         jsonCfg.Auth.SessionIssuer,
			SessionTTL:            time.Duration(jsonCfg.Auth.SessionTTL),
			CookieName:            jsonCfg.Auth.CookieName,
			CookieSameSite:        jsonCfg.Auth.CookieSameSite,
			InsecureCookie:        jsonCfg.Auth.InsecureCookie,
			MaxLoginAttempts:      jsonCfg.Auth.MaxLoginAttempts,
			LockoutWindow:         time.Duration(jsonCfg.Auth.LockoutWindow),
			DisableRegistration:   jsonCfg.Auth.DisableRegistration,
			RegisterRatePerMinute: jsonCfg.Auth.RegisterRatePerMinute,
			RegisterBurst:         jsonCfg.Auth.RegisterBurst,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Images: Images{
				Backend: jsonCfg.Storage.Images.Backend,
				Dir:     jsonCfg.Storage.Images.Dir,
				MinIO: MinIO{
					Endpoint:  jsonCfg.Storage.Images.MinIO.Endpoint,
					AccessKey: jsonCfg.Storage.Images.MinIO.AccessKey,
					SecretKey: jsonCfg.Storage.Images.MinIO.SecretKey,
					Bucket:    jsonCfg.Storage.Images.MinIO.Bucket,
					UseSSL:    jsonCfg.Storage.Images.MinIO.UseSSL,
				},
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			TrustProxy:      jsonCfg.Server.TrustProxy,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
