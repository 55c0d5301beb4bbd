// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/sitesrj/sitesrj/sites"
	"github.com/sitesrj/sitesrj/utils/textutils"
	"github.com/spf13/cobra"
)

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}

var batchCmd = &cobra.Command{
	Use:   "batch <enderecos.txt> <saida.xlsx>",
	Short: "Calcula os sites mais próximos de uma lista de endereços",
	Long: `Lê um endereço por linha e grava em uma planilha os sites mais próximos de
cada um, com distância em linha reta e, quando disponível, por estrada.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addresses, err := readLines(args[0])
		if err != nil {
			return err
		}

		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(addresses),
				progressbar.OptionSetDescription("Searching"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		results := make([]sites.BatchResult, 0, len(addresses))
		failed := 0

		for _, address := range addresses {
			r, err := svc.SearchByAddress(cmd.Context(), address)
			if err != nil {
				failed++

				log.Printf("Search failed - %s", err)
			}

			results = append(results, sites.BatchResult{Address: address, Result: r, Err: err})

			if bar == nil {
				log.Printf("Searched %s", address)
			} else if err := bar.Add(1); err != nil {
				log.Printf("updating progress bar: %v", err)
			}
		}

		if err := sites.WriteReport(args[1], results); err != nil {
			return err
		}

		fmt.Printf("✅ Wrote %s addresses (%s failed) to %s\n",
			textutils.FormatInt(int64(len(addresses))),
			textutils.FormatInt(int64(failed)),
			args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
