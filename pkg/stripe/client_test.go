package stripe

import (
	"context"
	"testing"

	"github.com/kishanta/rightstore-backend/pkg/config"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), config.StripeConfig{Env: "test"}, nil)
	if err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestNewClientRejectsMismatchedKey(t *testing.T) {
	_, err := NewClient(context.Background(), config.StripeConfig{APIKey: "sk_live_abc", Env: "test"}, nil)
	if err == nil {
		t.Fatal("expected error for live key in test env")
	}
	_, err = NewClient(context.Background(), config.StripeConfig{APIKey: "sk_test_abc", Env: "live"}, nil)
	if err == nil {
		t.Fatal("expected error for test key in live env")
	}
}

func TestNewClientAcceptsTestKey(t *testing.T) {
	client, err := NewClient(context.Background(), config.StripeConfig{APIKey: "sk_test_abc", Env: ""}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("expected test env, got %q", client.Environment())
	}
	if client.API() == nil {
		t.Fatal("expected underlying api client")
	}
}

func TestNewClientRejectsUnknownEnv(t *testing.T) {
	_, err := NewClient(context.Background(), config.StripeConfig{APIKey: "sk_test_abc", Env: "sandbox"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown environment")
	}
}
