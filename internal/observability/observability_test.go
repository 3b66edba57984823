package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/adjusted-goals/internal/config"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "adjusted-goals",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitTracing(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
}

func TestInitProfiling_Disabled(t *testing.T) {
	stop, err := InitProfiling(config.Config{PyroscopeEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init profiling: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop profiling: %v", err)
	}
}
