package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is the structured form of a scraped HTML table.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ParseFirstTable extracts the first table matching selector. Headers come
// from th cells of the first row, falling back to its td cells; remaining
// rows keep only cells with content.
func ParseFirstTable(html, selector string) (Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Table{}, fmt.Errorf("parsing html: %w", err)
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return Table{}, fmt.Errorf("no table matches %q", selector)
	}

	var t Table
	firstRow := table.Find("tr").First()
	firstRow.Find("th").Each(func(_ int, s *goquery.Selection) {
		if h := strings.TrimSpace(s.Text()); h != "" {
			t.Headers = append(t.Headers, h)
		}
	})
	if len(t.Headers) == 0 {
		firstRow.Find("td").Each(func(_ int, s *goquery.Selection) {
			if h := strings.TrimSpace(s.Text()); h != "" {
				t.Headers = append(t.Headers, h)
			}
		})
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 && len(t.Headers) > 0 {
			return
		}
		var cells []string
		hasContent := false
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := collapseSpace(cell.Text())
			if text != "" {
				hasContent = true
			}
			cells = append(cells, text)
		})
		if hasContent {
			t.Rows = append(t.Rows, cells)
		}
	})

	return t, nil
}

var contentContainerRE = regexp.MustCompile(`<div\s+class="id__ContentContainer[^"]*"[^>]*>([\s\S]*?)</div>`)

// NextMatchesContainer isolates the draft5 match-list container from a full
// rendered page. Falls back to a regex pass when the class hash changed
// enough that the attribute selector misses.
func NextMatchesContainer(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	container := doc.Find(`div[class*="id__ContentContainer"]`).First()
	if container.Length() > 0 {
		inner, err := container.Html()
		if err == nil && strings.TrimSpace(inner) != "" {
			return inner, nil
		}
	}

	if m := contentContainerRE.FindString(html); m != "" {
		return m, nil
	}

	return "", fmt.Errorf("next-matches container not found")
}

// MatchTeam is one side of a scheduled match.
type MatchTeam struct {
	Name  string
	Logo  string
	Score string
}

// Match is one scheduled match extracted from a draft5 match card.
type Match struct {
	Date       string
	Time       string
	Team1      MatchTeam
	Team2      MatchTeam
	Format     string
	Tournament string
	URL        string
}

var matchDateRE = regexp.MustCompile(`📅\s+(.*)`)

// ExtractMatches pulls scheduled matches out of the match-list container.
func ExtractMatches(html string) ([]Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	date := ""
	dateText := strings.TrimSpace(doc.Find(`[class*="MatchList__MatchListDate"]`).First().Text())
	if m := matchDateRE.FindStringSubmatch(dateText); m != nil {
		date = m[1]
	}

	var matches []Match
	doc.Find(`[class*="MatchCardSimple__MatchContainer"]`).Each(func(_ int, card *goquery.Selection) {
		match := Match{
			Date:       date,
			Time:       strings.TrimSpace(card.Find(`[class*="MatchCardSimple__MatchTime"]`).Text()),
			Format:     strings.TrimSpace(card.Find(`[class*="MatchCardSimple__Badge"]`).Text()),
			Tournament: strings.TrimSpace(card.Find(`[class*="MatchCardSimple__Tournament"]`).Text()),
		}
		match.URL, _ = card.Attr("href")

		teams := card.Find(`[class*="MatchCardSimple__MatchTeam"]`)
		if teams.Length() > 0 {
			match.Team1 = extractTeam(teams.Eq(0))
		}
		if teams.Length() > 1 {
			match.Team2 = extractTeam(teams.Eq(1))
		}

		matches = append(matches, match)
	})

	return matches, nil
}

func extractTeam(s *goquery.Selection) MatchTeam {
	team := MatchTeam{
		Name:  strings.TrimSpace(s.Find(`[class*="MatchCardSimple__TeamNameAndLogo"] span`).Text()),
		Score: strings.TrimSpace(s.Find(`[class*="MatchCardSimple__Score"]`).Text()),
	}
	team.Logo, _ = s.Find("img").Attr("src")
	return team
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
