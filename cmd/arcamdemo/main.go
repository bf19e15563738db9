// Command arcamdemo shows the camera background driven by a synthetic
// color-bar session.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/arcam"
	"github.com/gogpu/arcam/arapp"
	"github.com/gogpu/arcam/camera"
	"github.com/gogpu/arcam/camera/synthetic"
)

func main() {
	var (
		tracking = flag.String("tracking", "world", "tracking configuration: world, orientation or face")
		hud      = flag.Bool("hud", true, "draw the diagnostics panel")
		warmup   = flag.Duration("warmup", 500*time.Millisecond, "delay before the synthetic camera texture is ready")
		timeout  = flag.Duration("bind-timeout", 0, "give up waiting for the camera texture after this long (0 waits forever)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	arcam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tc, err := camera.ParseTracking(*tracking)
	if err != nil {
		log.Fatalf("arcamdemo: %v", err)
	}
	cfg := arapp.DefaultConfig().
		WithTracking(tc).
		WithHUD(*hud).
		WithBindTimeout(*timeout)
	cfg, err = arapp.FromEnv(cfg)
	if err != nil {
		log.Fatalf("arcamdemo: %v", err)
	}

	arapp.Main(synthetic.New(synthetic.WithWarmup(*warmup)), cfg)
}
