// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/sitesrj/sitesrj/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor web de consulta",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		addr := cfg.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		fmt.Println("📡 Sites RJ server starting...")
		fmt.Printf("📍 Open http://%s in your browser\n", addr)

		return web.NewServer(svc).Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Endereço de escuta (padrão: $SITES_ADDR ou localhost:8080)")
}
