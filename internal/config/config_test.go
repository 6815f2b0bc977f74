package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
wallet:
  currency: "eur"
  bonus_discount_percent: 25
  activity_log_delay: "2s"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.SQLite.Path != "data/test.db" {
		t.Errorf("SQLite.Path = %q, want %q", cfg.Database.SQLite.Path, "data/test.db")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.Port != 5433 {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Database.Postgres.Port, 5433)
	}
	if cfg.Database.Postgres.User != "admin" {
		t.Errorf("Postgres.User = %q, want %q", cfg.Database.Postgres.User, "admin")
	}
	if cfg.Database.Postgres.Password != "secret" {
		t.Errorf("Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret")
	}
	if cfg.Database.Postgres.DBName != "testdb" {
		t.Errorf("Postgres.DBName = %q, want %q", cfg.Database.Postgres.DBName, "testdb")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}

	// Pool
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}
	if cfg.Database.Pool.MaxOpenConns != 50 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 50)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "30m")
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	// Wallet (currency is upper-cased during validation)
	if cfg.Wallet.Currency != "EUR" {
		t.Errorf("Wallet.Currency = %q, want %q", cfg.Wallet.Currency, "EUR")
	}
	if cfg.Wallet.BonusDiscountPercent != 25 {
		t.Errorf("Wallet.BonusDiscountPercent = %v, want %v", cfg.Wallet.BonusDiscountPercent, 25.0)
	}
	if cfg.Wallet.ActivityLogDelay != "2s" {
		t.Errorf("Wallet.ActivityLogDelay = %q, want %q", cfg.Wallet.ActivityLogDelay, "2s")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__DATABASE__DRIVER", "sqlite")
	t.Setenv("APP__LOG__LEVEL", "error")

	// PoolConfig fields contain underscores; verify single _ is preserved.
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")
	t.Setenv("APP__DATABASE__POOL__MAX_OPEN_CONNS", "200")
	t.Setenv("APP__DATABASE__POOL__CONN_MAX_LIFETIME", "2h")

	t.Setenv("APP__WALLET__BONUS_DISCOUNT_PERCENT", "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d (env override)", cfg.Server.Port, 9090)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q (env override)", cfg.Database.Driver, "sqlite")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q (env override)", cfg.Log.Level, "error")
	}

	// PoolConfig env overrides.
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d (env override)", cfg.Database.Pool.MaxIdleConns, 20)
	}
	if cfg.Database.Pool.MaxOpenConns != 200 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d (env override)", cfg.Database.Pool.MaxOpenConns, 200)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "2h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q (env override)", cfg.Database.Pool.ConnMaxLifetime, "2h")
	}

	if cfg.Wallet.BonusDiscountPercent != 50 {
		t.Errorf("Wallet.BonusDiscountPercent = %v, want %v (env override)", cfg.Wallet.BonusDiscountPercent, 50.0)
	}

	// Non-overridden values should remain from YAML.
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q (unchanged)", cfg.Server.Host, "127.0.0.1")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidServerMode(t *testing.T) {
	path := writeTestConfig(t, validBaseYAML(""))
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() base yaml should be valid: %v", err)
	}

	path = writeTestConfig(t, strings.Replace(validBaseYAML(""), `mode: "debug"`, `mode: "invalid"`, 1))
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid server mode, got nil")
	}
	if !strings.Contains(err.Error(), "server.mode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "server.mode")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	base := validBaseYAML("")

	path := writeTestConfig(t, strings.Replace(base, "port: 3000", "port: 0", 1))
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for port 0, got nil")
	}

	path = writeTestConfig(t, strings.Replace(base, "port: 3000", "port: 70000", 1))
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for port 70000, got nil")
	}
}

func TestLoad_InvalidServerHost(t *testing.T) {
	base := validBaseYAML("")

	for _, host := range []string{`host: ""`, `host: "   "`} {
		path := writeTestConfig(t, strings.Replace(base, `host: "127.0.0.1"`, host, 1))
		_, err := Load(path)
		if err == nil {
			t.Fatalf("Load() expected error for %s, got nil", host)
		}
		if !strings.Contains(err.Error(), "server.host") {
			t.Fatalf("Load() error = %v, want contains %q", err, "server.host")
		}
	}
}

func TestLoad_InvalidDatabaseDriver(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `driver: "sqlite"`, `driver: "mysql"`, 1))
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for unsupported driver 'mysql', got nil")
	}
}

func TestLoad_SQLiteMissingPath(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `path: "data/test.db"`, `path: ""`, 1))

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for empty sqlite path, got nil")
	}
	if !strings.Contains(err.Error(), "database.sqlite.path") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.sqlite.path")
	}
}

func TestLoad_PostgresMissingFields(t *testing.T) {
	base := func(pgBlock string) string {
		return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  postgres:
` + pgBlock + `
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
`
	}

	tests := []struct {
		name    string
		pgBlock string
	}{
		{"empty host", "    host: \"\"\n    port: 5432\n    user: \"admin\"\n    dbname: \"testdb\"\n    sslmode: \"require\""},
		{"empty user", "    host: \"localhost\"\n    port: 5432\n    user: \"\"\n    dbname: \"testdb\"\n    sslmode: \"require\""},
		{"empty dbname", "    host: \"localhost\"\n    port: 5432\n    user: \"admin\"\n    dbname: \"\"\n    sslmode: \"require\""},
		{"port zero", "    host: \"localhost\"\n    port: 0\n    user: \"admin\"\n    dbname: \"testdb\"\n    sslmode: \"require\""},
		{"invalid sslmode", "    host: \"localhost\"\n    port: 5432\n    user: \"admin\"\n    dbname: \"testdb\"\n    sslmode: \"invalid\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, base(tt.pgBlock))
			if _, err := Load(path); err == nil {
				t.Fatal("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_PostgresSSLMode_ReleaseRestriction(t *testing.T) {
	base := func(mode string) string {
		return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "` + mode + `"
database:
  driver: "postgres"
  postgres:
    host: "localhost"
    port: 5432
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "disable"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
`
	}

	path := writeTestConfig(t, base("release"))
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for insecure postgres sslmode in release mode, got nil")
	}
	if !strings.Contains(err.Error(), "database.postgres.sslmode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.postgres.sslmode")
	}

	path = writeTestConfig(t, base("debug"))
	if _, err = Load(path); err != nil {
		t.Fatalf("Load() expected debug mode to allow postgres sslmode disable, got error: %v", err)
	}
}

func TestLoad_NonPositiveDurations(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantContain string
	}{
		{
			name:        "server timeout must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  timeout: \"0s\"", 1),
			wantContain: "server.timeout",
		},
		{
			name:        "cors max age must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  cors:\n    max_age: \"-1s\"", 1),
			wantContain: "server.cors.max_age",
		},
		{
			name:        "pool lifetime must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `conn_max_lifetime: "1m"`, `conn_max_lifetime: "0s"`, 1),
			wantContain: "database.pool.conn_max_lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error for non-positive duration, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
			}
		})
	}
}

func TestLoad_OptionalDurationWhitespace_NormalizedAsUnset(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  timeout: \"   \"\n  cors:\n    max_age: \"   \"", 1)
	yaml = strings.Replace(yaml, `conn_max_lifetime: "1m"`, `conn_max_lifetime: "   "`, 1)
	path := writeTestConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Timeout != "" {
		t.Errorf("Server.Timeout = %q, want empty string", cfg.Server.Timeout)
	}
	if cfg.Server.CORS.MaxAge != "" {
		t.Errorf("Server.CORS.MaxAge = %q, want empty string", cfg.Server.CORS.MaxAge)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "" {
		t.Errorf("Database.Pool.ConnMaxLifetime = %q, want empty string", cfg.Database.Pool.ConnMaxLifetime)
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	// Verify loading the actual project config.yaml works.
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.Database.Pool.MaxIdleConns != 10 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 10)
	}
	if cfg.Database.Pool.MaxOpenConns != 100 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 100)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "1h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "1h")
	}
}

func TestLoad_DefaultConfig_AuthFieldsAccessible(t *testing.T) {
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}

	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}
	if len(cfg.Auth.PublicPaths) == 0 {
		t.Fatal("Auth.PublicPaths is empty, want non-empty")
	}
	if cfg.Auth.PublicPaths[0] != "/api/v1/auth/login" {
		t.Errorf("Auth.PublicPaths[0] = %q, want %q", cfg.Auth.PublicPaths[0], "/api/v1/auth/login")
	}
}

func TestLoad_DefaultConfig_WalletFieldsAccessible(t *testing.T) {
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}

	if cfg.Wallet.Currency != "USD" {
		t.Errorf("Wallet.Currency = %q, want %q", cfg.Wallet.Currency, "USD")
	}
	if cfg.Wallet.BonusDiscountPercent != 10 {
		t.Errorf("Wallet.BonusDiscountPercent = %v, want %v", cfg.Wallet.BonusDiscountPercent, 10.0)
	}
	if got := cfg.Wallet.ActivityLogDelayDuration(); got != 5*time.Second {
		t.Errorf("ActivityLogDelayDuration() = %v, want %v", got, 5*time.Second)
	}
}

func TestCountSecretClasses(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   int
	}{
		{name: "empty string", secret: "", want: 0},
		{name: "lowercase only", secret: "abcdef", want: 1},
		{name: "uppercase only", secret: "ABCDEF", want: 1},
		{name: "digits only", secret: "123456", want: 1},
		{name: "symbols only", secret: "!@#$%^", want: 1},
		{name: "lower and upper", secret: "abcDEF", want: 2},
		{name: "lower upper digit", secret: "abcDEF123", want: 3},
		{name: "all four classes", secret: "abcDEF123!", want: 4},
		{name: "mixed with spaces", secret: "aA1 ", want: 4}, // space counts as symbol
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountSecretClasses(tt.secret)
			if got != tt.want {
				t.Errorf("CountSecretClasses(%q) = %d, want %d", tt.secret, got, tt.want)
			}
		})
	}
}

// validBaseYAML returns a minimal valid YAML config string (sqlite, debug mode).
func validBaseYAML(extras string) string {
	return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
` + extras
}

// validReleaseBaseYAML returns a minimal valid YAML config string (sqlite, release mode).
func validReleaseBaseYAML(extras string) string {
	return strings.Replace(validBaseYAML(extras), `mode: "debug"`, `mode: "release"`, 1)
}

func TestLoad_AuthConfig(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		wantContain string
	}{
		{
			name:    "auth disabled skips validation",
			yaml:    validBaseYAML("auth:\n  enabled: false\n  jwt_secret: \"\"\n  token_expiry: \"bad\"\n"),
			wantErr: false,
		},
		{
			name:        "auth enabled with empty jwt_secret",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "auth enabled with short jwt_secret",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"tooshort\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "auth enabled with jwt_secret exactly 32 chars passes",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr: false,
		},
		{
			name:        "auth enabled with empty token_expiry",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "auth enabled with invalid token_expiry",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"not-a-duration\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "auth enabled with zero token_expiry",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"0s\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "auth enabled with negative token_expiry",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"-1h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "auth enabled with empty public_paths",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths: []\n"),
			wantErr:     true,
			wantContain: "auth.public_paths",
		},
		{
			name:        "auth enabled with invalid public_paths format",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.public_paths",
		},
		{
			name:        "auth enabled requires login in public_paths",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "/api/v1/auth/login",
		},
		{
			name:        "auth enabled requires register in public_paths",
			yaml:        validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n"),
			wantErr:     true,
			wantContain: "/api/v1/auth/register",
		},
		{
			name:    "public_paths entries are trimmed",
			yaml:    validBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \" /api/v1/auth/login \"\n    - \"/api/v1/auth/register\"\n"),
			wantErr: false,
		},
		{
			name:        "release mode rejects jwt_secret with low complexity",
			yaml:        validReleaseBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "release mode accepts jwt_secret with high complexity",
			yaml:    validReleaseBaseYAML("auth:\n  enabled: true\n  jwt_secret: \"Abcd1234!Abcd1234!Abcd1234!Abcd1234!\"\n  token_expiry: \"24h\"\n  public_paths:\n    - \"/api/v1/auth/login\"\n    - \"/api/v1/auth/register\"\n"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantContain) {
					t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
				}
			} else {
				if err != nil {
					t.Fatalf("Load() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoad_WalletConfig(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		wantContain string
	}{
		{
			name:    "unset currency defaults to USD",
			yaml:    validBaseYAML(""),
			wantErr: false,
		},
		{
			name:        "currency must be a 3-letter code",
			yaml:        validBaseYAML("wallet:\n  currency: \"DOLLARS\"\n"),
			wantErr:     true,
			wantContain: "wallet.currency",
		},
		{
			name:        "discount percent above 100",
			yaml:        validBaseYAML("wallet:\n  currency: \"USD\"\n  bonus_discount_percent: 150\n"),
			wantErr:     true,
			wantContain: "wallet.bonus_discount_percent",
		},
		{
			name:        "negative discount percent",
			yaml:        validBaseYAML("wallet:\n  currency: \"USD\"\n  bonus_discount_percent: -5\n"),
			wantErr:     true,
			wantContain: "wallet.bonus_discount_percent",
		},
		{
			name:        "invalid activity log delay",
			yaml:        validBaseYAML("wallet:\n  currency: \"USD\"\n  activity_log_delay: \"soon\"\n"),
			wantErr:     true,
			wantContain: "wallet.activity_log_delay",
		},
		{
			name:        "negative activity log delay",
			yaml:        validBaseYAML("wallet:\n  currency: \"USD\"\n  activity_log_delay: \"-5s\"\n"),
			wantErr:     true,
			wantContain: "wallet.activity_log_delay",
		},
		{
			name:    "zero delay disables the hold-back",
			yaml:    validBaseYAML("wallet:\n  currency: \"USD\"\n  activity_log_delay: \"0s\"\n"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantContain) {
					t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if cfg.Wallet.Currency == "" {
				t.Error("expected currency to be set after validation")
			}
		})
	}
}

func TestWalletConfig_ActivityLogDelayDuration(t *testing.T) {
	tests := []struct {
		name  string
		delay string
		want  time.Duration
	}{
		{"unset defaults to 5s", "", 5 * time.Second},
		{"explicit value", "2s", 2 * time.Second},
		{"zero disables", "0s", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WalletConfig{ActivityLogDelay: tt.delay}
			if got := w.ActivityLogDelayDuration(); got != tt.want {
				t.Errorf("ActivityLogDelayDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
