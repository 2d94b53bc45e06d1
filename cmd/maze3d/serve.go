package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/platform/tui"
	"github.com/vovakirdan/maze3d/internal/registry"
	"github.com/vovakirdan/maze3d/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own maze run. Runs are stored per server
under the SSH user name, so everyone shares the same best-runs table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key from the config (auto-generated if missing)

Examples:
  maze3d serve                           # Listen on the configured host:port
  maze3d serve --ssh :2222               # Listen on port 2222
  maze3d serve --host-key ./my_host_key  # Use specific host key
  maze3d serve --db ./maze3d.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}

	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closer.Close()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	addr := flagSSHAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = cfg.Server.HostKey
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = addr
	srvCfg.HostKeyPath = hostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Store = store
	srvCfg.Difficulty = string(cfg.Difficulty)
	srvCfg.TickRate = cfg.Render.TickRate
	srvCfg.HoldTicks = cfg.Input.HoldTicks
	srvCfg.Seed = flagSeed
	srvCfg.FixedSeed = flagSeedSet
	srvCfg.NewGame = func(l *log.Logger) registry.Game {
		return maze3d.New(gameOptions(cfg, l)...)
	}

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		logger.Error("could not create server", "err", err)
		return
	}

	fmt.Printf("Starting maze3d SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
