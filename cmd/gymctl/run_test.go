package main

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRun_help(t *testing.T) {
	code := Run(context.Background(), []string{"--help"})
	if code != 0 {
		t.Errorf("Run --help: got exit code %d", code)
	}
}

func TestRun_version(t *testing.T) {
	code := Run(context.Background(), []string{"--version"})
	if code != 0 {
		t.Errorf("Run --version: got exit code %d", code)
	}
}

func TestRun_unknownFlag(t *testing.T) {
	code := Run(context.Background(), []string{"--unknown-flag"})
	if code != 1 {
		t.Errorf("Run --unknown-flag: got exit code %d, want 1", code)
	}
}

func TestRun_missingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	code := Run(context.Background(), []string{"stats", "--config", missing})
	if code != 1 {
		t.Errorf("Run stats with missing config: got exit code %d, want 1", code)
	}
}
