// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sitesrj/sitesrj/config"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

type rootOptions struct {
	File        string
	SitesSheet  string
	AccessSheet string
}

var (
	rootFlags rootOptions
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sites",
	Short: "endereços e técnicos dos sites RJ",
	Long: `
sites consulta a planilha de torres do estado do Rio de Janeiro: busca por
sigla, lista os técnicos autorizados e encontra os sites mais próximos de um
endereço.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		if rootFlags.File != "" {
			cfg.File = rootFlags.File
		}

		if rootFlags.SitesSheet != "" {
			cfg.SitesSheet = rootFlags.SitesSheet
		}

		if rootFlags.AccessSheet != "" {
			cfg.AccessSheet = rootFlags.AccessSheet
		}

		return nil
	},
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootFlags.File,
		"file",
		"",
		"Planilha com os sites (padrão: $SITES_FILE ou enderecos.xlsx)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootFlags.SitesSheet,
		"sites-sheet",
		"",
		"Aba com os sites (padrão: $SITES_SHEET ou dados)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootFlags.AccessSheet,
		"access-sheet",
		"",
		"Aba com os acessos dos técnicos (padrão: $ACCESS_SHEET ou acessos)",
	)
}
