package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/limaJavier/scheduling/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the scheduling api",
	Long:  `Runs the scheduling api until the process is interrupted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			configuration.Addr = serveAddr
		}

		api, err := server.New(configuration)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on; overrides the configuration")
	rootCmd.AddCommand(serveCmd)
}
