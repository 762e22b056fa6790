package cmd

import (
	"testing"
)

func TestCredentials(t *testing.T) {
	t.Setenv(envUser, "env-user@example.com")
	t.Setenv(envPass, "env-pass")

	t.Run("flags take precedence", func(t *testing.T) {
		user, pass, err := credentials("flag-user@example.com", "flag-pass")
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if user != "flag-user@example.com" || pass != "flag-pass" {
			t.Errorf("credentials() = %q/%q", user, pass)
		}
	})

	t.Run("environment fills the gaps", func(t *testing.T) {
		user, pass, err := credentials("", "")
		if err != nil {
			t.Fatalf("credentials() error = %v", err)
		}
		if user != "env-user@example.com" || pass != "env-pass" {
			t.Errorf("credentials() = %q/%q", user, pass)
		}
	})

	t.Run("missing credentials are an error", func(t *testing.T) {
		t.Setenv(envUser, "")
		t.Setenv(envPass, "")
		if _, _, err := credentials("", ""); err == nil {
			t.Error("credentials() expected an error")
		}
	})
}

func TestBuildConfig_InvalidStartDate(t *testing.T) {
	old := *startDateFlag
	defer func() { *startDateFlag = old }()
	*startDateFlag = "tomorrow-ish"

	if _, err := buildConfig(nil, "4711"); err == nil {
		t.Error("buildConfig() expected an error for an unparseable start date")
	}
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(nil, "4711")
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.StartBudget != 50_000_000 {
		t.Errorf("StartBudget = %d, want 50000000", cfg.StartBudget)
	}
	if cfg.DailyBonus != 100_000 {
		t.Errorf("DailyBonus = %d, want 100000", cfg.DailyBonus)
	}
	if cfg.StartDate.String() != "2025-12-22" {
		t.Errorf("StartDate = %s, want 2025-12-22", cfg.StartDate)
	}
	if cfg.Rewards == nil {
		t.Error("Rewards resolver is not wired")
	}
}
