package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()

	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.IdempTTLSecs != 300 || c.MaxCounterRounds != 3 {
		t.Fatalf("ttl=%d rounds=%d", c.IdempTTLSecs, c.MaxCounterRounds)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("MAX_COUNTER_ROUNDS", "5")
	t.Setenv("LOG_FORMAT", "console")

	c := Load()
	if c.AppPort != "9999" || c.MaxCounterRounds != 5 || c.LogFormat != "console" {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestValidate_Failures(t *testing.T) {
	base := func() *Config { return Load() }

	c := base()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "MYSQL_PORT") {
		t.Fatalf("bad port: err = %v", err)
	}

	c = base()
	c.MaxCounterRounds = 0
	if err := c.Validate(); err == nil {
		t.Fatalf("zero counter rounds should fail")
	}

	c = base()
	c.LogFormat = "xml"
	if err := c.Validate(); err == nil {
		t.Fatalf("bad log format should fail")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := Load()
	c.MySQLUser, c.MySQLPass = "u", "p"
	c.MySQLHost, c.MySQLPort, c.MySQLDB = "db.internal", "3307", "lenddesk"

	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "u:p@tcp(db.internal:3307)/lenddesk?") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %q", dsn)
	}
}
