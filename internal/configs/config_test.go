package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/purrcrypt/purr/internal/dialect"
)

func TestLoad_MissingDefaultsToCat(t *testing.T) {
	config := Load(t.TempDir())
	if config.Dialect() != dialect.Cat {
		t.Errorf("Expected cat dialect, got: %v", config.Dialect())
	}
}

func TestLoad_CorruptDefaultsToCat(t *testing.T) {
	homeDir := t.TempDir()
	path := filepath.Join(homeDir, "config.toml")
	if err := os.WriteFile(path, []byte("this is [not valid toml"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt config: %v", err)
	}

	// A corrupt config must not fail the command.
	config := Load(homeDir)
	if config.Dialect() != dialect.Cat {
		t.Errorf("Expected cat dialect, got: %v", config.Dialect())
	}
}

func TestLoad_UnknownDialectDefaultsToCat(t *testing.T) {
	homeDir := t.TempDir()
	if err := Save(homeDir, &Config{PreferredDialect: "hamster"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if Load(homeDir).Dialect() != dialect.Cat {
		t.Error("Unparseable dialect should fall back to cat")
	}
}

func TestSetDialect_RoundTrip(t *testing.T) {
	homeDir := t.TempDir()

	if err := SetDialect(homeDir, dialect.Dog); err != nil {
		t.Fatalf("SetDialect failed: %v", err)
	}
	if Load(homeDir).Dialect() != dialect.Dog {
		t.Error("Expected dog dialect after SetDialect")
	}

	if err := SetDialect(homeDir, dialect.Cat); err != nil {
		t.Fatalf("SetDialect failed: %v", err)
	}
	if Load(homeDir).Dialect() != dialect.Cat {
		t.Error("Expected cat dialect after SetDialect")
	}
}

func TestEnsure_AssignsUUIDOnce(t *testing.T) {
	homeDir := t.TempDir()

	first, err := Ensure(homeDir)
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if first.User.UUID == "" {
		t.Fatal("Expected a UUID to be assigned")
	}

	second, err := Ensure(homeDir)
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if second.User.UUID != first.User.UUID {
		t.Error("UUID should be stable across runs")
	}
}

func TestSetDialect_PreservesUUID(t *testing.T) {
	homeDir := t.TempDir()

	config, err := Ensure(homeDir)
	if err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	if err := SetDialect(homeDir, dialect.Dog); err != nil {
		t.Fatalf("SetDialect failed: %v", err)
	}

	reloaded := Load(homeDir)
	if reloaded.User.UUID != config.User.UUID {
		t.Error("Changing the dialect should not discard the user UUID")
	}
}
