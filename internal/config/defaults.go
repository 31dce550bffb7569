package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Auth: Auth{
			SessionIssuer:         "brand-showcase",
			SessionTTL:            8 * time.Hour,
			CookieName:            "sid",
			CookieSameSite:        SameSiteStrict,
			MaxLoginAttempts:      5,
			LockoutWindow:         15 * time.Minute,
			RegisterRatePerMinute: 5,
			RegisterBurst:         5,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
			Images: Images{
				Backend: ImagesBackendFiles,
				Dir:     "./uploads",
			},
		},
		Server: Server{
			HTTPAddress:     ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval: time.Hour,
		},
	}
}
