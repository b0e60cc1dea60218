package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ananya/practiq/internal/api"
	"github.com/ananya/practiq/internal/config"
	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/engine"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/llm"
	"github.com/ananya/practiq/internal/store"
	"github.com/ananya/practiq/internal/summary"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the practice API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return err
		}
		cfg.DBPath = p
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	index := curriculum.NewIndex(st.Curriculum())
	gate := entitlement.NewGate(st.Tiers())

	var summaries engine.Summarizer
	if cfg.LLMEnabled {
		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.LLMLog())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
		summaries = summary.NewService(provider, st.Sessions().SetSessionSummary, summary.DefaultConfig())
		fmt.Fprintf(os.Stderr, "AI summaries enabled via %s (%s)\n", cfg.LLM.Provider, provider.ModelID())
	} else {
		fmt.Fprintln(os.Stderr, "no LLM provider configured; AI summaries disabled")
	}

	engines := api.NewRegistry(func(studentID string) *engine.Engine {
		opts := []engine.Option{}
		if summaries != nil {
			opts = append(opts, engine.WithSummarizer(summaries))
		}
		return engine.New(studentID, st.Sessions(), st.Questions(), index, gate, opts...)
	})

	handler := api.NewHandler(engines, st.Curriculum(), st.Questions(), gate, cfg.JWTSecret, cfg.TokenTTL)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(handler, cfg.JWTSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "listening on %s (db: %s)\n", cfg.Addr, cfg.DBPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
