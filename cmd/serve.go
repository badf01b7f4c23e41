package cmd

import (
	"github.com/spf13/cobra"

	"github.com/israelhub/chatbot-furia/internal/config"
	"github.com/israelhub/chatbot-furia/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scrape proxy backend",
	Long:  "Serves the /api proxy that fronts Liquipedia and draft5.gg, including the headless-browser route for JavaScript pages.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}
	if addr == "" {
		addr = ":3001"
	}

	return server.New(server.NewChromeRenderer()).ListenAndServe(addr)
}
