// Package server is the scrape proxy backend. It fronts the Liquipedia
// API and draft5.gg so the chat clients never talk to those sites
// directly, and exposes a headless-browser route for JavaScript-built
// pages.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	liquipediaAPI    = "https://liquipedia.net/counterstrike/api.php"
	botUserAgent     = "FuriaFanBot/1.0"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Renderer loads a page in a real browser and returns the final HTML.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// Server handles the /api proxy routes.
type Server struct {
	http       *resty.Client
	renderer   Renderer
	liquipedia string
}

func New(renderer Renderer) *Server {
	return &Server{
		http:       resty.New().SetTimeout(15 * time.Second),
		renderer:   renderer,
		liquipedia: liquipediaAPI,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/liquipedia", s.handleLiquipedia)
	mux.HandleFunc("/api/draft5", s.handleDraft5)
	mux.HandleFunc("/api/draft5/puppeteer", s.handleDraft5Rendered)
	return mux
}

// ListenAndServe blocks serving the proxy on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("server: proxy listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type htmlResponse struct {
	HTML    string `json:"html"`
	Success bool   `json:"success"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Servidor proxy funcionando corretamente",
	})
}

// handleLiquipedia proxies the MediaWiki parse API and unwraps the
// rendered page HTML.
func (s *Server) handleLiquipedia(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: `Parâmetro "page" é obrigatório`})
		return
	}

	var out struct {
		Parse struct {
			Text map[string]string `json:"text"`
		} `json:"parse"`
	}
	resp, err := s.http.R().
		SetContext(r.Context()).
		SetHeader("User-Agent", botUserAgent).
		SetQueryParams(map[string]string{
			"action": "parse",
			"format": "json",
			"page":   page,
			"prop":   "text",
		}).
		SetResult(&out).
		Get(s.liquipedia)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	if resp.IsError() {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "liquipedia returned " + resp.Status()})
		return
	}

	html := out.Parse.Text["*"]
	if html == "" {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "resposta do Liquipedia sem conteúdo"})
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html, Success: true})
}

// handleDraft5 fetches a draft5.gg page without executing its JavaScript.
func (s *Server) handleDraft5(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: `Parâmetro "url" é obrigatório`})
		return
	}

	resp, err := s.http.R().
		SetContext(r.Context()).
		SetHeader("User-Agent", browserUserAgent).
		Get(url)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	if resp.IsError() {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "draft5 returned " + resp.Status()})
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: resp.String(), Success: true})
}

// handleDraft5Rendered runs the page through the headless browser so
// client-side markup is present in the response.
func (s *Server) handleDraft5Rendered(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: `Parâmetro "url" é obrigatório`})
		return
	}
	if s.renderer == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "renderer indisponível"})
		return
	}

	html, err := s.renderer.Render(r.Context(), url)
	if err != nil {
		log.Printf("server: rendering %s: %v", url, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Erro ao processar a página: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html, Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
