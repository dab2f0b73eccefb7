package state

import (
	"context"
	"testing"
	"time"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("expected environment in context")
	}
	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("suspicious uptime: %v", env.Uptime())
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}
