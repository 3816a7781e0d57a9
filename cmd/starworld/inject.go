package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MayaTheShy/Starworld/inject"
	"github.com/MayaTheShy/Starworld/logger"
)

func injectCmd() *cobra.Command {
	var (
		host      string
		port      int
		noAnimate bool
		noCleanup bool
	)

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Send a demo entity scene to a running client over UDP",
		Long: `Creates five colored placeholder entities on the target client, animates
three of them for a while and erases everything again. Fire-and-forget UDP:
datagrams may be lost, duplicated or reordered, nothing is retried.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.Init("inject", cfg)
			defer logger.Sync()

			if !cmd.Flags().Changed("host") {
				host = cfg.GetString("starworld.inject.host")
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.GetInt("starworld.inject.port")
			}

			inj, err := inject.NewInjector(host, port)
			if err != nil {
				return err
			}
			defer inj.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := inj.DemoScene(); err != nil {
				return err
			}

			if !noAnimate {
				frames := cfg.GetInt("starworld.inject.animate.frames")
				interval := cfg.GetDuration("starworld.inject.animate.interval")
				// an interrupt skips straight to cleanup
				if err := inj.Animate(ctx, frames, interval); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
			}

			if noCleanup {
				logger.Infof("scene left active, %d entities", len(inj.Scene()))
				return nil
			}
			return inj.Cleanup()
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "target host")
	cmd.Flags().IntVar(&port, "port", 40103, "target port")
	cmd.Flags().BoolVar(&noAnimate, "no-animate", false, "skip the animation phase")
	cmd.Flags().BoolVar(&noCleanup, "no-cleanup", false, "keep entities after the demo")

	return cmd
}
