package data

import (
	"strconv"
	"strings"

	"github.com/israelhub/chatbot-furia/internal/scrape"
)

var monthsPT = map[string]string{
	"Jan": "janeiro", "Feb": "fevereiro", "Mar": "março", "Apr": "abril",
	"May": "maio", "Jun": "junho", "Jul": "julho", "Aug": "agosto",
	"Sep": "setembro", "Oct": "outubro", "Nov": "novembro", "Dec": "dezembro",
}

var realNames = map[string]string{
	"yuurih":   "Yuri Boian",
	"KSCERATO": "Kaike Cerato",
	"FalleN":   "Gabriel Toledo",
	"molodoy":  "Danil Golubenko",
	"YEKINDAR": "Mareks Gaļinskis",
	"sidde":    "Sidnei Macedo",
}

// FormatMatchResults humanizes a Liquipedia results table: at most five
// rows, each as "• <data em português>: FURIA <placar> <adversário>".
func FormatMatchResults(table scrape.Table) string {
	rows := table.Rows
	if len(rows) > 5 {
		rows = rows[:5]
	}

	var b strings.Builder
	for _, row := range rows {
		date := formatDatePT(cell(row, 0))
		score := cell(row, 7)
		if score == "" {
			score = "0 : 0"
		}
		opponent := cell(row, 8)
		if opponent == "" {
			opponent = "Adversário"
		}
		b.WriteString("• " + date + ": FURIA " + score + " " + opponent + "\n")
	}
	return strings.TrimSpace(b.String())
}

// formatDatePT turns "Apr 09, 2025 - 15:50 EEST" into "9 de abril de 2025".
// Unparseable input degrades to its date part.
func formatDatePT(raw string) string {
	datePart := strings.SplitN(raw, " - ", 2)[0] // "Apr 09, 2025"

	comps := strings.SplitN(datePart, ", ", 2)
	monthDay := strings.Fields(comps[0])
	if len(monthDay) < 2 {
		return datePart
	}

	month, ok := monthsPT[monthDay[0]]
	if !ok {
		month = strings.ToLower(monthDay[0])
	}

	day, err := strconv.Atoi(monthDay[1])
	if err != nil {
		return datePart
	}

	year := "2025"
	if len(comps) > 1 && comps[1] != "" {
		year = comps[1]
	}

	return strconv.Itoa(day) + " de " + month + " de " + year
}

// FormatPlayerInfo humanizes a roster table: at most six players, each as
// "• nick (nome real)" when the real name is known.
func FormatPlayerInfo(table scrape.Table) string {
	rows := table.Rows
	if len(rows) > 6 {
		rows = rows[:6]
	}

	var b strings.Builder
	for _, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		if real, ok := realNames[name]; ok {
			b.WriteString("• " + name + " (" + real + ")\n")
		} else {
			b.WriteString("• " + name + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// FormatNextMatches renders the upcoming schedule grouped under its date.
func FormatNextMatches(matches []scrape.Match) string {
	if len(matches) == 0 {
		return "Não há partidas agendadas no momento."
	}

	var b strings.Builder
	b.WriteString("📆 Próximas Partidas\n\n")
	b.WriteString(matches[0].Date + "\n")
	for _, m := range matches {
		b.WriteString("• " + m.Time + " - " + m.Team1.Name + " vs " + m.Team2.Name +
			" (" + strings.TrimSpace(m.Format) + ") - " + m.Tournament + "\n")
	}
	return strings.TrimSpace(b.String())
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
