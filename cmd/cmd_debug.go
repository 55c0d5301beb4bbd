// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sitesrj/sitesrj/city"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

var debugCidadesCmd = &cobra.Command{
	Use:   "cidades",
	Short: "Interage com o módulo de detecção de municípios",
	Long: `Lê um texto por linha e imprime em stdout o texto seguido do município
detectado. Um segundo campo separado por tab é usado como alternativa.

$ echo "ITABORAÍ - TORRE CENTRO" | sites debug cidades
ITABORAÍ - TORRE CENTRO		Itaboraí
	`,
	Run: func(_ *cobra.Command, _ []string) {
		input := os.Stdin
		if isatty.IsTerminal(input.Fd()) {
			fmt.Fprintln(os.Stderr, "Digite os textos a analisar, um por linha…")
		}
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			line := scanner.Text()
			text, fallback, _ := strings.Cut(line, "\t")
			if name, ok := city.Extract(text, fallback); ok {
				fmt.Printf("%s\t\t%s\n", line, name)
			} else {
				fmt.Printf("%s\t\t-\n", line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugCidadesCmd)
}
