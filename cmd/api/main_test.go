package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func TestRunToken(t *testing.T) {
	cfg = &config.Config{JWTSecret: "dev-secret"}
	defer func() { cfg = nil }()
	tokenUserID, tokenEmail, tokenRole, tokenTTL = "user-c", "pro@example.com", "Contractor", time.Hour

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	if err := runToken(cmd, nil); err != nil {
		t.Fatalf("runToken failed: %v", err)
	}

	p, err := auth.NewTokenService("dev-secret").Parse(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("minted token does not parse: %v", err)
	}
	if p.UserID != "user-c" || !p.IsContractor() {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestRunToken_UnknownRole(t *testing.T) {
	cfg = &config.Config{JWTSecret: "dev-secret"}
	defer func() { cfg = nil }()
	tokenUserID, tokenRole = "user-1", "owner"

	if err := runToken(&cobra.Command{}, nil); err == nil {
		t.Fatalf("expected unknown role error")
	}
}

func TestRunServe_RefusesMissingJWTSecret(t *testing.T) {
	cfg = &config.Config{Port: "0"}
	defer func() { cfg = nil }()

	if err := runServe(&cobra.Command{}, nil); !errors.Is(err, config.ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestRunToken_RefusesMissingJWTSecret(t *testing.T) {
	cfg = &config.Config{}
	defer func() { cfg = nil }()
	tokenUserID, tokenRole = "user-1", "client"

	if err := runToken(&cobra.Command{}, nil); !errors.Is(err, config.ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
