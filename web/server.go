// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

// Package web serves the site search over HTTP, as an HTML page and as a
// small JSON API.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitesrj/sitesrj/resolver"
	"github.com/sitesrj/sitesrj/sites"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"km":       formatKm,
	"duration": formatDuration,
	"join":     strings.Join,
}

// formatKm renders a distance the Brazilian way, "1,51 km".
func formatKm(km float64) string {
	return strings.Replace(fmt.Sprintf("%.2f km", km), ".", ",", 1)
}

func formatDuration(d time.Duration) string {
	minutes := int(math.Round(d.Minutes()))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

type Server struct {
	svc *sites.Service
}

func NewServer(svc *sites.Service) *Server {
	return &Server{svc: svc}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.indexView)
	r.GET("/api/sites/:code", s.getSites)
	r.GET("/api/nearest", s.getNearest)
	r.POST("/api/reload", s.reload)
	r.POST("/reload", s.reloadForm)

	return r
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

type indexPage struct {
	Code    string
	Address string
	Sites   []sites.SiteView
	Nearest *sites.NearestResult
	Error   string
	Total   int
}

func (s *Server) indexView(ctx *gin.Context) {
	page := indexPage{
		Code:    strings.TrimSpace(ctx.Query("sigla")),
		Address: strings.TrimSpace(ctx.Query("endereco")),
		Total:   len(s.svc.Repository().Sites()),
	}

	switch {
	case page.Code != "":
		page.Sites = s.svc.SearchByCode(page.Code)
		if len(page.Sites) == 0 {
			page.Error = fmt.Sprintf("Nenhum site encontrado com a sigla %s.", page.Code)
		}
	case page.Address != "":
		nearest, err := s.svc.SearchByAddress(ctx.Request.Context(), page.Address)
		if err != nil {
			page.Error = addressErrorMessage(err)
		}

		page.Nearest = nearest
	}

	ctx.HTML(http.StatusOK, "index.html", page)
}

// reloadForm backs the page's refresh button.
func (s *Server) reloadForm(ctx *gin.Context) {
	if err := s.svc.Reload(); err != nil {
		log.Printf("Reload failed: %v", err)
		ctx.HTML(http.StatusInternalServerError, "index.html", indexPage{
			Error: "Falha ao recarregar os dados, mantidos os anteriores.",
			Total: len(s.svc.Repository().Sites()),
		})

		return
	}

	log.Printf("✅ Reloaded %d sites", len(s.svc.Repository().Sites()))
	ctx.Redirect(http.StatusSeeOther, "/")
}

func addressErrorMessage(err error) string {
	switch {
	case resolver.IsNotFound(err):
		return "Endereço não encontrado."
	case errors.Is(err, sites.ErrNoGeocoder):
		return "Busca por endereço indisponível: nenhum geocodificador configurado."
	default:
		log.Printf("⚠️  Address search failed: %v", err)

		return "Falha ao consultar o endereço, tente novamente."
	}
}

func (s *Server) getSites(ctx *gin.Context) {
	code := ctx.Param("code")

	views := s.svc.SearchByCode(code)
	if len(views) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no site with code " + code})

		return
	}

	ctx.JSON(http.StatusOK, views)
}

func (s *Server) getNearest(ctx *gin.Context) {
	address := ctx.Query("address")

	result, err := s.svc.SearchByAddress(ctx.Request.Context(), address)

	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, result)
	case errors.Is(err, sites.ErrEmptyAddress):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "address query parameter is required"})
	case errors.Is(err, sites.ErrNoGeocoder):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case resolver.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("⚠️  Address search failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":  "address provider failed",
			"reason": resolver.ReasonOf(err).String(),
		})
	}
}

func (s *Server) reload(ctx *gin.Context) {
	if err := s.svc.Reload(); err != nil {
		log.Printf("Reload failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	n := len(s.svc.Repository().Sites())
	log.Printf("✅ Reloaded %d sites", n)
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "sites": n})
}
