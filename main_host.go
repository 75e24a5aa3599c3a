package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"graphx/app"
	"graphx/asset"
	"graphx/hal"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		opts     hal.Options
		appCfg   app.Config
		snapshot string
		scale    int
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&appCfg.Transport, "transport", app.TransportDirect, "Panel transport: direct|channel.")
	flag.IntVar(&opts.ChannelLatency, "latency", 4, "Status polls per simulated channel transfer.")
	flag.BoolVar(&appCfg.Console, "console", false, "Show the log console in the HUD.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the panel to this PNG file when a headless run ends.")
	flag.IntVar(&scale, "scale", 1, "Snapshot upscale factor.")
	flag.Parse()

	var h hal.HAL
	newApp := func(hh hal.HAL) func() error {
		h = hh
		return app.New(hh, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, opts, newApp, cfg)
		if snapshot != "" && h != nil {
			if serr := writeSnapshot(h, snapshot, scale); serr != nil {
				fmt.Fprintln(os.Stderr, serr)
			}
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(opts, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeSnapshot(h hal.HAL, path string, scale int) error {
	fb := h.Display().Framebuffer()
	if fb == nil {
		return errors.New("snapshot: no framebuffer")
	}
	return asset.WritePNG(path, asset.ScaleImage(hal.Snapshot(fb), scale))
}
