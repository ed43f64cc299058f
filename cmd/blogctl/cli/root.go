package cli

import (
	"fmt"
	"os"

	"blog-essentials/config"
	"blog-essentials/internal/client"
	"blog-essentials/internal/service"
	"blog-essentials/internal/store"
	"blog-essentials/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var apiBaseURL string

var rootCmd = &cobra.Command{
	Use:           "blogctl",
	Short:         "Drive the blog client state layer against a /fakeApi server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		if apiBaseURL != "" {
			config.AppConfig.APIBaseURL = apiBaseURL
		}
		util.InitLogger(config.AppConfig.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "API base URL (overrides API_BASE_URL)")
}

func Execute() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("blogctl crashed", zap.Any("error", r))
			os.Exit(2)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = util.Logger.Sync()
}

// app bundles one store with the services that feed it.
type app struct {
	store         *store.Store
	posts         *service.PostService
	users         *service.UserService
	notifications *service.NotificationService
}

func newApp() *app {
	cfg := config.AppConfig
	c := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRetry(cfg.MaxAttempts, cfg.RetryBackoff))
	st := store.New(util.Logger)
	return &app{
		store:         st,
		posts:         service.NewPostService(st, c),
		users:         service.NewUserService(st, c),
		notifications: service.NewNotificationService(st, c),
	}
}

func (a *app) Close() {
	a.store.Close()
}
