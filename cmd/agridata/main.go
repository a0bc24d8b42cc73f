// agridata answers natural-language questions about Indian
// agricultural and climate datasets, either as an HTTP service or as
// one-shot CLI queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agridata/internal/chat"
	"agridata/internal/config"
	"agridata/internal/dataset"
	"agridata/internal/llm"
	"agridata/internal/server"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agridata",
	Short: "Question answering over Indian agricultural and climate data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		} else if lvl, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
			zapCfg.Level = lvl
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := dataset.Open(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := dataset.Seed(store)
		if err != nil {
			return err
		}
		logger.Info("store ready", zap.String("path", cfg.Store.Path), zap.Int("datasets", n))

		gw, err := buildGateway()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: server.New(store, gw, logger),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", cfg.Server.Addr))
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case sig := <-stop:
			logger.Info("shutting down", zap.String("signal", sig.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in datasets into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := dataset.Open(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := dataset.Seed(store)
		if err != nil {
			return err
		}
		fmt.Printf("store has %d datasets\n", n)
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := dataset.Open(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := dataset.Seed(store); err != nil {
			return err
		}

		gw, err := buildGateway()
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")

		sess := chat.NewSession(store, gw, logger)
		msg, err := sess.Send(cmd.Context(), question)
		if err != nil {
			return err
		}

		fmt.Println(msg.Content)
		for _, c := range msg.Citations {
			fmt.Printf("  [%s] %s\n", c.Dataset, c.Source)
		}
		return nil
	},
}

func buildGateway() (*llm.Gateway, error) {
	client, err := llm.NewClient(cfg.LLM, logger)
	if err != nil {
		return nil, err
	}
	return llm.NewGateway(client, cfg.LLM.Models, cfg.AttemptTimeoutDuration(), logger), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "agridata.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, seedCmd, askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
