package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"btcforge/config"
	"btcforge/exception"
	"btcforge/jsonrpc"
	"btcforge/logx"
	"btcforge/monitoring"
	"btcforge/service"
	"btcforge/store"
)

var configPath string

// serveCmd runs the JSON-RPC wallet service with metrics.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON-RPC wallet service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if networkName != "" && cmd.Flags().Changed("network") {
			cfg.Network = networkName
		}

		params, err := netParams()
		if err != nil {
			return err
		}

		monitoring.InitMetrics()

		history, err := store.OpenHistoryStore(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer history.MustClose()

		exp, err := explorerClient()
		if err != nil {
			return err
		}

		svc := service.NewWalletService(params, exp, exp, exp, history)

		exception.SafeGoWithPanic("metrics-server", func() {
			mux := http.NewServeMux()
			monitoring.RegisterMetrics(mux)
			if err := http.ListenAndServe(cfg.MetricsListen, mux); err != nil {
				logx.Error("METRICS", "metrics server stopped: ", err)
			}
		})

		rpcServer := jsonrpc.NewServer(cfg.RPCListen, svc)
		logx.Info("SERVE", "starting wallet service on network ", params.Name)
		return rpcServer.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to yaml config file")
}
