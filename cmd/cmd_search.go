// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/sites"
	"github.com/spf13/cobra"
)

func orDash(s string) string {
	if s == "" {
		return "—"
	}

	return s
}

func printSiteViews(w io.Writer, views []sites.SiteView) {
	for _, v := range views {
		fmt.Fprintf(w, "%s — %s\n", v.Code, v.Name)
		fmt.Fprintf(w, "  🏙️  Cidade:    %s\n", orDash(v.City))
		fmt.Fprintf(w, "  🏢 Detentora: %s\n", orDash(v.Owner))
		fmt.Fprintf(w, "  👤 Técnicos:  %s\n", orDash(strings.Join(v.Technicians, ", ")))
		fmt.Fprintf(w, "  📌 Endereço:  %s\n", orDash(v.Address))

		if v.MapsURL != "" {
			fmt.Fprintf(w, "  🗺️  %s\n", v.MapsURL)
		}
	}
}

func printNearest(w io.Writer, result *sites.NearestResult) {
	fmt.Fprintf(w, "📍 %s (%s, %s)\n", result.Location.DisplayName, result.Location.Point, result.Location.Provider)

	a, b, c := strings.Repeat("─", 10), strings.Repeat("─", 30), strings.Repeat("─", 22)
	d, e := strings.Repeat("─", 10), strings.Repeat("─", 8)
	fmt.Fprintf(w, "╭─%-10s─┬─%-30s─┬─%-22s─┬─%10s─┬─%10s─┬─%8s─╮\n", a, b, c, d, d, e)
	fmt.Fprintf(w, "│ %-10s │ %-30s │ %-22s │ %10s │ %10s │ %8s │\n",
		"Sigla", "Nome", "Cidade", "Distância", "Estrada", "Tempo")
	fmt.Fprintf(w, "├─%-10s─┼─%-30s─┼─%-22s─┼─%10s─┼─%10s─┼─%8s─┤\n", a, b, c, d, d, e)

	for _, s := range result.Sites {
		road, eta := "—", "—"
		if s.Travel != nil {
			road = fmt.Sprintf("%.2f km", s.Travel.DistanceKm)
			eta = fmt.Sprintf("%.0f min", s.Travel.Duration.Minutes())
		}

		fmt.Fprintf(w, "│ %-10s │ %-30s │ %-22s │ %10s │ %10s │ %8s │\n",
			truncate(s.Code, 10), truncate(s.Name, 30), truncate(orDash(s.City), 22),
			fmt.Sprintf("%.2f km", s.DistanceKm), road, eta)
	}

	fmt.Fprintf(w, "╰─%-10s─┴─%-30s─┴─%-22s─┴─%10s─┴─%10s─┴─%8s─╯\n", a, b, c, d, d, e)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}

var codeCmd = &cobra.Command{
	Use:   "code <sigla>",
	Short: "Busca sites pela sigla",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		svc, err := newCodeService()
		if err != nil {
			return err
		}

		views := svc.SearchByCode(args[0])
		if len(views) == 0 {
			return fmt.Errorf("no site with code %s", args[0])
		}

		printSiteViews(os.Stdout, views)

		return nil
	},
}

var nearestCmd = &cobra.Command{
	Use:   "nearest <endereço…>",
	Short: "Lista os sites mais próximos de um endereço",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		result, err := svc.SearchByAddress(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if resolver.IsNotFound(err) {
				return fmt.Errorf("address not found: %w", err)
			}

			return err
		}

		printNearest(os.Stdout, result)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(nearestCmd)
}
