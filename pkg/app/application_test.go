package app

import (
	"io"
	"net/http"
	"testing"
	"time"

	"salonbook/pkg/client"
	"salonbook/pkg/config"
	"salonbook/pkg/logger"
)

func TestGracefulShutdownRunsHooks(t *testing.T) {
	cfg := &config.Config{
		ShutdownTimeout: time.Second,
		Client:          client.NewClient(),
		Log:             logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}

	a := NewApplication(cfg)
	a.server = &http.Server{}

	var order []string
	a.OnShutdown(func() { order = append(order, "events") })
	a.OnShutdown(func() { order = append(order, "cache") })

	a.gracefulShutdown()

	if len(order) != 2 || order[0] != "events" || order[1] != "cache" {
		t.Errorf("hooks ran as %v, want registration order", order)
	}
}
