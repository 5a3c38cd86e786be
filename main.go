package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/tickdo/app"
	"github.com/kastheco/tickdo/config"
	sentrypkg "github.com/kastheco/tickdo/internal/sentry"
	"github.com/kastheco/tickdo/internal/taskdb"
	"github.com/kastheco/tickdo/internal/tick"
	"github.com/kastheco/tickdo/keys"
	"github.com/kastheco/tickdo/log"
)

var (
	version  = "0.1.0"
	viewFlag string

	rootCmd = &cobra.Command{
		Use:   "tickdo",
		Short: "tickdo - a keyboard-driven console for your to-do list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: telemetry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize()
			defer log.Close()

			if err := applyKeymap(); err != nil {
				return err
			}

			// View flag overrides config
			if viewFlag != "" {
				cfg.DefaultView = viewFlag
			}

			token, err := ensureToken(ctx, cfg)
			if err != nil {
				return err
			}

			baseURL := cfg.BaseURL
			if baseURL == "" {
				baseURL = tick.DefaultBaseURL
			}
			client := tick.NewClient(baseURL, token.AccessToken)

			snapshots := openSnapshots()
			if snapshots != nil {
				defer snapshots.Close()
			}

			return app.Run(ctx, app.Options{
				Service:   client,
				Config:    cfg,
				Snapshots: snapshots,
			})
		},
	}

	resetAuthCmd = &cobra.Command{
		Use:   "reset-auth",
		Short: "Forget the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			path := tick.TokenPath()
			if err := os.Remove(path); err != nil {
				if os.IsNotExist(err) {
					fmt.Println("No stored token")
					return nil
				}
				return fmt.Errorf("failed to remove token: %w", err)
			}
			fmt.Println("Token removed; you will be asked to sign in next time")
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tickdo",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tickdo version %s\n", version)
		},
	}
)

// applyKeymap loads key rebindings from keys.toml and installs them.
func applyKeymap() error {
	km, err := config.LoadKeymap()
	if err != nil {
		return fmt.Errorf("failed to load keymap: %w", err)
	}
	if err := keys.ApplyOverrides(km.Bindings); err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}
	return nil
}

// ensureToken returns a usable access token, running the browser OAuth
// flow when none is cached.
func ensureToken(ctx context.Context, cfg *config.Config) (*tick.OAuthToken, error) {
	path := tick.TokenPath()
	if tok, err := tick.LoadToken(path); err == nil && !tok.IsExpired() {
		return tok, nil
	}

	oauthCfg := tick.DefaultOAuthConfig()
	if cfg.ClientID != "" {
		oauthCfg.ClientID = cfg.ClientID
	}
	if cfg.ClientSecret != "" {
		oauthCfg.ClientSecret = cfg.ClientSecret
	}

	tok, err := tick.OAuthFlow(ctx, oauthCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}
	if err := tick.SaveToken(path, tok); err != nil {
		log.WarningLog.Printf("could not cache token: %v", err)
	}
	return tok, nil
}

// openSnapshots opens the local task cache. Failure is not fatal: the app
// just starts with empty lists until the first refresh.
func openSnapshots() *taskdb.Store {
	dir, err := config.GetConfigDir()
	if err != nil {
		log.WarningLog.Printf("no config dir for snapshots: %v", err)
		return nil
	}
	store, err := taskdb.Open(filepath.Join(dir, "tasks.db"))
	if err != nil {
		log.WarningLog.Printf("could not open snapshot store: %v", err)
		return nil
	}
	return store
}

func init() {
	rootCmd.Flags().StringVarP(&viewFlag, "view", "w", "", "View to open with (today, week, inbox)")
	rootCmd.AddCommand(resetAuthCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
