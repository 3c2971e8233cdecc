// Command mstserver runs the MST analysis TCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/arborist-net/mstnet/internal/config"
	"github.com/arborist-net/mstnet/internal/logging"
	promcollectors "github.com/arborist-net/mstnet/internal/metrics"
	"github.com/arborist-net/mstnet/server"
)

var (
	configPath  string
	modeFlag    string
	threadsFlag int
	portFlag    int
	queueFlag   int
	profileFlag bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "mstserver",
	Short: "Serves minimum-spanning-tree analysis over a line-oriented TCP protocol",
	RunE:  runServer,
}

func init() {
	defaults := config.Default()
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.Flags().StringVar(&modeFlag, "mode", string(defaults.Mode), "dispatch mode: lf (Leader/Followers) or pl (Active-Object)")
	rootCmd.Flags().IntVar(&threadsFlag, "threads", defaults.Threads, "number of worker threads in the dispatch pool")
	rootCmd.Flags().IntVar(&portFlag, "port", defaults.Port, "TCP port to listen on")
	rootCmd.Flags().IntVar(&queueFlag, "queue-capacity", defaults.QueueCapacity, "bounded Active-Object queue depth")
	rootCmd.Flags().BoolVar(&profileFlag, "profile", false, "enable CPU profiling for the process lifetime")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "address for the debug /metrics HTTP listener")
}

func runServer(cmd *cobra.Command, args []string) error {
	if profileFlag {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = config.Mode(modeFlag)
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = threadsFlag
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = portFlag
	}
	if cmd.Flags().Changed("queue-capacity") {
		cfg.QueueCapacity = queueFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Default("mstserver")
	collectors := promcollectors.New()

	go func() {
		if err := promcollectors.Serve(metricsAddr); err != nil {
			logger.Warn("metrics listener stopped", "err", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg, logger, collectors)
	return srv.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
