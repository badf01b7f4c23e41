// Package data resolves the five content categories the bot can answer
// from: roster, recent results, last match, history and upcoming matches.
//
// Every category except history follows the same shape: serve the cache
// while it is fresh, refresh from the scraper when it is not, and on a
// failed refresh fall back to whatever the cache still holds, however old,
// before giving up with a placeholder. Provider methods never return
// errors; a failure is always a readable string.
package data

import (
	"context"
	"log"

	"github.com/israelhub/chatbot-furia/internal/cache"
	"github.com/israelhub/chatbot-furia/internal/scrape"
)

// Category identifies one logical data topic.
type Category string

const (
	CategoryPlayers     Category = "players"
	CategoryResults     Category = "results"
	CategoryLastMatch   Category = "lastMatch"
	CategoryHistory     Category = "history"
	CategoryNextMatches Category = "nextMatches"
)

var readableNames = map[Category]string{
	CategoryPlayers:     "jogadores",
	CategoryResults:     "resultados recentes",
	CategoryLastMatch:   "último jogo",
	CategoryHistory:     "história da FURIA",
	CategoryNextMatches: "próximas partidas",
}

// ReadableName returns the human name used in placeholder messages.
func ReadableName(c Category) string {
	if n, ok := readableNames[c]; ok {
		return n
	}
	return string(c)
}

const (
	liquipediaTeamPage    = "FURIA"
	liquipediaMatchesPage = "FURIA/Matches"
	rosterSelector        = ".table-responsive.roster-card-wrapper table.roster-card"
	nextMatchesURL        = "https://draft5.gg/equipe/330-FURIA/proximas-partidas"

	noLastMatchMessage = "Não foi possível encontrar informações sobre o último jogo da FURIA."
)

// Fetcher is the scrape collaborator consumed by the provider.
type Fetcher interface {
	FetchLiquipedia(ctx context.Context, page string) (string, error)
	FetchDraft5(ctx context.Context, url string, rendered bool) (string, error)
}

// Provider resolves category data backed by a cache Store and a Fetcher.
type Provider struct {
	cache   cache.Store
	fetcher Fetcher
}

func NewProvider(store cache.Store, fetcher Fetcher) *Provider {
	return &Provider{cache: store, fetcher: fetcher}
}

// fetchWithCache is the shared resolution algorithm for dynamic
// categories. fetch must return presentation-ready text.
func (p *Provider) fetchWithCache(ctx context.Context, cat Category, fetch func(context.Context) (string, error)) string {
	key := string(cat)

	if !p.cache.IsValid(ctx, key) {
		value, err := fetch(ctx)
		if err == nil {
			// No per-entry TTL: freshness is the store's default window,
			// and the entry stays readable as a stale fallback after it.
			p.cache.Set(ctx, key, value, 0)
			return value
		}
		log.Printf("data: refreshing %s: %v", cat, err)

		if stale, ok := p.cache.Get(ctx, key); ok {
			log.Printf("data: serving stale cache for %s", cat)
			return stale
		}
		return "Dados de " + ReadableName(cat) + " não encontrados."
	}

	if value, ok := p.cache.Get(ctx, key); ok {
		return value
	}
	// Valid without a value should not happen; report it readable
	log.Printf("data: cache reported valid but empty for %s", cat)
	return "Dados de " + ReadableName(cat) + " indisponíveis."
}

// ActivePlayers returns the current roster as a humanized list.
func (p *Provider) ActivePlayers(ctx context.Context) string {
	return p.fetchWithCache(ctx, CategoryPlayers, func(ctx context.Context) (string, error) {
		html, err := p.fetcher.FetchLiquipedia(ctx, liquipediaTeamPage)
		if err != nil {
			return "", err
		}
		table, err := scrape.ParseFirstTable(html, rosterSelector)
		if err != nil {
			return "", err
		}
		return FormatPlayerInfo(table), nil
	})
}

// RecentResults returns the latest match results as a humanized list.
func (p *Provider) RecentResults(ctx context.Context) string {
	return p.fetchWithCache(ctx, CategoryResults, func(ctx context.Context) (string, error) {
		table, err := p.fetchResultsTable(ctx)
		if err != nil {
			return "", err
		}
		return FormatMatchResults(table), nil
	})
}

// LastMatch reduces the results fetch to its first row. Zero rows yields a
// specific "no game found" message, distinct from the generic placeholder,
// and that message is cached like any other successful resolution.
func (p *Provider) LastMatch(ctx context.Context) string {
	return p.fetchWithCache(ctx, CategoryLastMatch, func(ctx context.Context) (string, error) {
		table, err := p.fetchResultsTable(ctx)
		if err != nil {
			return "", err
		}
		if len(table.Rows) == 0 {
			return noLastMatchMessage, nil
		}
		return FormatMatchResults(scrape.Table{Headers: table.Headers, Rows: table.Rows[:1]}), nil
	})
}

// History returns the fixed team-history text. Static content: the cache
// is bypassed on purpose.
func (p *Provider) History(ctx context.Context) string {
	return historyText
}

// NextMatches returns the upcoming schedule scraped from draft5.
func (p *Provider) NextMatches(ctx context.Context) string {
	return p.fetchWithCache(ctx, CategoryNextMatches, func(ctx context.Context) (string, error) {
		html, err := p.fetcher.FetchDraft5(ctx, nextMatchesURL, true)
		if err != nil {
			return "", err
		}
		container, err := scrape.NextMatchesContainer(html)
		if err != nil {
			return "", err
		}
		matches, err := scrape.ExtractMatches(container)
		if err != nil {
			return "", err
		}
		return FormatNextMatches(matches), nil
	})
}

func (p *Provider) fetchResultsTable(ctx context.Context) (scrape.Table, error) {
	html, err := p.fetcher.FetchLiquipedia(ctx, liquipediaMatchesPage)
	if err != nil {
		return scrape.Table{}, err
	}
	return scrape.ParseFirstTable(html, "table")
}
