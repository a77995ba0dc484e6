package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dalemusser/wellnesshub/internal/app/catalog"
	"github.com/dalemusser/wellnesshub/internal/app/system/timeouts"
	"github.com/dalemusser/wellnesshub/internal/app/system/viewdata"
	"github.com/dalemusser/wellnesshub/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       "wellness_hub",
		MongoMaxPoolSize:    100,
		MongoMinPoolSize:    10,
		SearchDefaultLimit:  catalog.DefaultLimit,
		SearchMaxLimit:      catalog.MaxLimit,
		LookupLogging:       true,
		DashboardWindowDays: 30,
		APIRateLimit:        120,
		SiteName:            "Wellness Hub",
	}
}

func TestValidateAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{name: "empty database", mutate: func(c *AppConfig) { c.MongoDatabase = "" }, wantErr: true},
		{name: "min pool above max", mutate: func(c *AppConfig) { c.MongoMinPoolSize = 200 }, wantErr: true},
		{name: "zero default limit", mutate: func(c *AppConfig) { c.SearchDefaultLimit = 0 }, wantErr: true},
		{name: "max below default", mutate: func(c *AppConfig) { c.SearchMaxLimit = 2 }, wantErr: true},
		{name: "max equal default", mutate: func(c *AppConfig) { c.SearchMaxLimit = c.SearchDefaultLimit }},
		{name: "window zero", mutate: func(c *AppConfig) { c.DashboardWindowDays = 0 }, wantErr: true},
		{name: "window too long", mutate: func(c *AppConfig) { c.DashboardWindowDays = 366 }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *AppConfig) { c.APIRateLimit = -1 }, wantErr: true},
		{name: "rate limit off", mutate: func(c *AppConfig) { c.APIRateLimit = 0 }},
		{name: "negative timeout", mutate: func(c *AppConfig) { c.TimeoutShort = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := validateAppConfig(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateConfig_RejectsEmptyURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = ""
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected an error for an empty URI")
	}
}

func TestLoadCatalog_BuiltIn(t *testing.T) {
	cfg := validAppConfig()
	cfg.SearchDefaultLimit = 3
	cfg.SearchMaxLimit = 8

	cat, err := loadCatalog(cfg, testLogger())
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if cat.Len() != 42 {
		t.Errorf("Len: got %d, want 42", cat.Len())
	}
	if cat.DefaultLimit() != 3 || cat.MaxLimit() != 8 {
		t.Errorf("limits: got %d/%d, want 3/8", cat.DefaultLimit(), cat.MaxLimit())
	}
}

func TestLoadCatalog_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("- title: Broken\n  type: podcast\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := validAppConfig()
	cfg.CatalogPath = path

	if _, err := loadCatalog(cfg, testLogger()); err == nil {
		t.Error("expected an error for an invalid catalog file")
	}
}

func TestStartup_AppliesSettings(t *testing.T) {
	t.Cleanup(func() {
		timeouts.Reset()
		viewdata.SetSiteName("")
		servingCatalog = nil
	})

	cfg := validAppConfig()
	cfg.SiteName = "Campus Wellness"
	cfg.TimeoutShort = 3 * time.Second

	if err := Startup(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	if servingCatalog == nil {
		t.Fatal("expected the serving catalog to be set")
	}
	if got := timeouts.Short(); got != 3*time.Second {
		t.Errorf("Short timeout: got %v, want 3s", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium timeout: got %v, want default", got)
	}
}

func TestEnsureSchema(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	if err := EnsureSchema(ctx, nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	// Second run must be a no-op.
	if err := EnsureSchema(ctx, nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema (second run) failed: %v", err)
	}
}

func TestShutdown_NoClient(t *testing.T) {
	if err := Shutdown(context.Background(), nil, validAppConfig(), DBDeps{}, testLogger()); err != nil {
		t.Errorf("Shutdown with no client: %v", err)
	}
}
