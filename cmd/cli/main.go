package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/infrastructure/auth"
	"github.com/gstmate/gstmate/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gstmate-cli",
		Short: "GSTMate CLI tool",
		Long:  `A command line interface for interacting with the GSTMate API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GSTMate API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated requests")

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func computeCmd() *cobra.Command {
	var amount, rate string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute GST for an amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(map[string]string{
				"amount":   amount,
				"gst_rate": rate,
			})
			if err != nil {
				return err
			}

			req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/calculations/", bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Idempotency-Key", uuid.NewString())

			return doRequest(req)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount to compute GST on")
	cmd.Flags().StringVar(&rate, "rate", "", "GST rate percentage")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("rate")

	return cmd
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your recent calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/calculations/history", nil)
			if err != nil {
				return err
			}

			return doRequest(req)
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize your recent calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/calculations/summary", nil)
			if err != nil {
				return err
			}
			req.Header.Set("Idempotency-Key", uuid.NewString())

			return doRequest(req)
		},
	}
}

func tokenCmd() *cobra.Command {
	var secret, userID, email string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			tm := auth.NewTokenManager(secret, duration)
			tok, err := tm.Generate(&domain.Identity{UserID: userID, Email: email})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (must match the server's)")
	cmd.Flags().StringVar(&userID, "user", "", "User ID to embed in the token")
	cmd.Flags().StringVar(&email, "email", "", "Email to embed in the token")
	cmd.Flags().DurationVar(&duration, "duration", 24*time.Hour, "Token validity duration")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("user")

	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, migrationsPath string
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (or roll back one with --down)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return fmt.Errorf("database URL required (flag --database-url or DATABASE_URL)")
			}

			log := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()

			if down {
				return postgres.RunMigrationsDown(log, databaseURL, migrationsPath)
			}
			return postgres.RunMigrations(log, databaseURL, migrationsPath)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection URL")
	cmd.Flags().StringVar(&migrationsPath, "path", "migrations", "Path to migration files")
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the last migration instead of applying")

	return cmd
}

func doRequest(req *http.Request) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\n", resp.StatusCode)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
