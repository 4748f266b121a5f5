package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-extract/internal/concept"
	"github.com/sells-group/edgar-extract/internal/statement"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for extraction requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng, err := newEngine()
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/extract", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Ticker string `json:"ticker"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Ticker == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ticker is required"})
				return
			}

			runID := uuid.New().String()
			go func() {
				res, err := eng.Run(ctx, body.Ticker)
				if err != nil {
					zap.L().Error("extraction failed",
						zap.String("run_id", runID),
						zap.String("ticker", body.Ticker),
						zap.Error(err),
					)
					return
				}
				zap.L().Info("extraction complete",
					zap.String("run_id", runID),
					zap.String("ticker", body.Ticker),
					zap.Int("annual_categories", len(res.Annual)),
					zap.Int("tables", len(res.Tables)),
				)
			}()

			writeJSON(w, http.StatusAccepted, map[string]string{
				"status": "accepted",
				"run_id": runID,
				"ticker": body.Ticker,
			})
		})

		r.Get("/statements/{ticker}", func(w http.ResponseWriter, req *http.Request) {
			ticker := chi.URLParam(req, "ticker")
			res, err := eng.Run(req.Context(), ticker)
			if err != nil {
				zap.L().Error("extraction failed", zap.String("ticker", ticker), zap.Error(err))
				writeJSON(w, http.StatusBadGateway, map[string]string{"error": "extraction failed"})
				return
			}

			writeJSON(w, http.StatusOK, struct {
				Result   any                                  `json:"result"`
				Sections map[concept.Category][]statement.Section `json:"annual_sections,omitempty"`
			}{
				Result:   res,
				Sections: sectionsOf(res.Annual),
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// sectionsOf groups the balance sheet and cash flow statements into their
// display sections.
func sectionsOf(stmts map[concept.Category]statement.Statement) map[concept.Category][]statement.Section {
	out := make(map[concept.Category][]statement.Section)
	for _, cat := range []concept.Category{concept.BalanceSheet, concept.CashFlow} {
		if st, ok := stmts[cat]; ok {
			if secs := statement.Sectioned(st); len(secs) > 0 {
				out[cat] = secs
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
