package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/gcl/server"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Offer analysis over HTTP",
	Long: `Serve starts an HTTP server with endpoints /scan, /parse and /report.
It stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		conf.Server.Addr = serveAddr
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := server.New(conf)
	pterm.Info.Println(fmt.Sprintf("listening on %s, stop with <ctrl>C", srv.Addr()))
	return srv.ListenAndServe(ctx)
}
