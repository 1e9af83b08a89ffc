package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"paintmarket/internal/adapter/http/routes"
	"paintmarket/internal/adapter/persistence/repository"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/infrastructure/config"
	"paintmarket/internal/infrastructure/database"
	"paintmarket/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Paint Marketplace API
// @version         1.0
// @description     Painting project estimates, contractor discounts, cart and checkout backed by DynamoDB.

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	cfg *config.Config

	tokenUserID string
	tokenEmail  string
	tokenRole   string
	tokenTTL    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "paintmarket",
	Short: "Paint marketplace API",
	Long: `paintmarket serves the painting marketplace HTTP API: project timeline
estimates, contractor discounts, the cart and checkout with card payments.

Run without a subcommand to start the server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if _, err := logger.New(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var createTablesCmd = &cobra.Command{
	Use:   "create-tables",
	Short: "Create the DynamoDB tables and indexes if they do not exist",
	RunE:  runCreateTables,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token signed with JWT_SECRET",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "User id (token subject)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "User email")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(auth.RoleClient), "Role: client, contractor or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(createTablesCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return routes.Run(ctx, cfg)
}

func runCreateTables(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	if err := database.EnsureTables(ctx, ddb, repository.Tables()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "tables ready")
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	role := auth.Role(strings.ToLower(strings.TrimSpace(tokenRole)))
	switch role {
	case auth.RoleClient, auth.RoleContractor, auth.RoleAdmin:
	default:
		return fmt.Errorf("unknown role %q", tokenRole)
	}
	tok, err := auth.NewTokenService(cfg.JWTSecret).Issue(auth.Principal{
		UserID: strings.TrimSpace(tokenUserID),
		Email:  strings.TrimSpace(tokenEmail),
		Role:   role,
	}, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
