package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vfsemu/vfsemu/internal/infrastructure/config"
	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/infrastructure/server"
	"github.com/vfsemu/vfsemu/internal/shell"
	"github.com/vfsemu/vfsemu/internal/vfs"
	"github.com/vfsemu/vfsemu/internal/vfsdoc"
)

func main() {
	vfsPath := flag.String("vfs", "", "Path to the VFS document (xml/json/yaml, optionally .gz)")
	script := flag.String("script", "", "Startup script to execute before the prompt")
	configFile := flag.String("config", "", "TOML configuration file")
	serve := flag.Bool("serve", false, "Serve the HTTP API instead of the interactive shell")
	debug := flag.Bool("debug", false, "Enable debug output")
	strict := flag.Bool("strict", false, "Reject unknown elements in the VFS document")
	port := flag.String("port", "", "HTTP port for --serve")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *configFile != "" {
		if err := cfg.ApplyFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags win over both environment and file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vfs":
			cfg.VFS.Path = *vfsPath
		case "script":
			cfg.VFS.Script = *script
		case "strict":
			cfg.VFS.Strict = *strict
		case "port":
			cfg.Server.Port = *port
		case "debug":
			cfg.Logging.Development = *debug
			cfg.Logging.Level = "debug"
		}
	})

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger, _ = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			OutputPaths: []string{"stderr"},
		})
		if logger == nil {
			logger = logging.NewDefault()
		}
	}
	defer logger.Sync()

	tree, err := loadTree(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *serve {
		runServer(cfg, tree, logger)
		return
	}
	runShell(cfg, tree, logger)
}

// loadTree loads the configured document, or builds an empty namespace
// when none is given.
func loadTree(cfg *config.Config, logger *logging.Logger) (*vfs.Tree, error) {
	if cfg.VFS.Path == "" {
		logger.Warn("no VFS document configured, starting with an empty namespace")
		return vfs.NewTree(vfs.NewRoot()), nil
	}
	start := time.Now()
	tree, err := vfsdoc.LoadFile(cfg.VFS.Path, vfsdoc.Options{Strict: cfg.VFS.Strict})
	if err != nil {
		return nil, err
	}
	stats := vfs.Describe(tree.Root())
	logger.Info("VFS loaded",
		zap.String("path", cfg.VFS.Path),
		zap.Int("dirs", stats.Dirs),
		zap.Int("files", stats.Files),
		zap.Duration("elapsed", time.Since(start)),
	)
	return tree, nil
}

func runShell(cfg *config.Config, tree *vfs.Tree, logger *logging.Logger) {
	info := shell.Info{
		VFSPath: cfg.VFS.Path,
		Script:  cfg.VFS.Script,
		Strict:  cfg.VFS.Strict,
		Debug:   cfg.Logging.Development,
	}
	sh := shell.New(vfs.NewContext(tree), os.Stdout, info, logger)

	if cfg.VFS.Script != "" {
		if err := sh.RunScript(cfg.VFS.Script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !sh.Running() {
			return
		}
	}

	fmt.Println("VFS Emulator")
	fmt.Println("Type 'exit' to quit, 'help' for available commands")
	if err := sh.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, tree *vfs.Tree, logger *logging.Logger) {
	srv := server.New(cfg, tree, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	}
}
