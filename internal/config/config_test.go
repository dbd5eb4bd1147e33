package config

import (
	"os"
	"strings"
	"testing"

	"termine-api/internal/schedule"
)

func TestLoadDefaults(t *testing.T) {
	// empty variables count as unset, except for the sweep schedule
	for k := range defaults {
		t.Setenv(k, "")
	}
	os.Unsetenv(sweepCronKey)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "50051" || cfg.WebPort != "8080" {
		t.Errorf("ports: %s %s", cfg.Port, cfg.WebPort)
	}
	if cfg.StoreDriver != "file" || cfg.DataFile != "termine_data.json" {
		t.Errorf("store: %s %s", cfg.StoreDriver, cfg.DataFile)
	}
	if cfg.Policy() != schedule.DefaultPolicy() {
		t.Errorf("policy: %+v", cfg.Policy())
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Errorf("location: %s", cfg.Location())
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit: %v %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.StatusSweepCron != "@every 15m" {
		t.Errorf("sweep: %q", cfg.StatusSweepCron)
	}
	if len(cfg.Proxies()) != 0 {
		t.Errorf("proxies: %v", cfg.Proxies())
	}
}

func TestSweepCanBeDisabled(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"empty", "", ""},
		{"blank", "  ", ""},
		{"off", "off", ""},
		{"OFF", "OFF", ""},
		{"custom", "@hourly", "@hourly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(sweepCronKey, tt.env)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.StatusSweepCron != tt.want {
				t.Fatalf("sweep: got %q, want %q", cfg.StatusSweepCron, tt.want)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("EDIT_VALIDATION", "enforce")
	t.Setenv("OVERLAP_READ_FAILURE", "permissive")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("driver: %s", cfg.StoreDriver)
	}
	want := schedule.Policy{Edit: schedule.EditEnforce, ReadFailure: schedule.ReadPermissive}
	if cfg.Policy() != want {
		t.Errorf("policy: %+v", cfg.Policy())
	}
	if cfg.RateLimitBurst != 3 {
		t.Errorf("burst: %d", cfg.RateLimitBurst)
	}
	if o := cfg.Origins(); len(o) != 2 || o[1] != "http://b.test" {
		t.Errorf("origins: %v", o)
	}
	if p := cfg.Proxies(); len(p) != 2 || p[0] != "10.0.0.0/8" {
		t.Errorf("proxies: %v", p)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			StoreDriver:        "file",
			TimeZone:           "Europe/Berlin",
			EditValidation:     "skip",
			OverlapReadFailure: "propagate",
			RateLimitRPS:       5,
			RateLimitBurst:     10,
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"driver", func(c *Config) { c.StoreDriver = "mongo" }, "STORE_DRIVER"},
		{"edit", func(c *Config) { c.EditValidation = "always" }, "EDIT_VALIDATION"},
		{"read failure", func(c *Config) { c.OverlapReadFailure = "ignore" }, "OVERLAP_READ_FAILURE"},
		{"timezone", func(c *Config) { c.TimeZone = "Mars/Olympus" }, "TIMEZONE"},
		{"postgres url", func(c *Config) { c.StoreDriver = "postgres" }, "DATABASE_URL"},
		{"rate", func(c *Config) { c.RateLimitBurst = 0 }, "RATE_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
