package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/api"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/auth"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/cli"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/config"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/toast"
	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	tokenStore, err := auth.NewFileTokenStore(tokenFilePath())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open token store: %v", err)
	}

	session := auth.NewSession(tokenStore, logger)
	client := api.NewClient(config.AppConfig.APIBaseURL, session, config.RequestTimeout(), logger)

	app := &cli.App{
		Session:       session,
		Nav:           auth.NewNavigator(),
		API:           client,
		Toasts:        toast.NewChannel(),
		Logger:        logger,
		Out:           os.Stdout,
		ToastDuration: time.Duration(config.AppConfig.ToastDurationMs) * time.Millisecond,
	}
	unsubscribe := app.RenderToasts()
	defer unsubscribe()

	root := cli.NewRootCommand(app)
	if err := root.Execute(); err != nil {
		logger.Sugar().Debugf("main: command failed: %v", err)
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// tokenFilePath anchors a relative TOKEN_FILE under the user's home
// directory, the closest thing a CLI has to browser storage.
func tokenFilePath() string {
	path := config.AppConfig.TokenFile
	if filepath.IsAbs(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}
