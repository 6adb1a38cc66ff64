// Package news pulls maritime advisory feeds and turns them into
// unconfirmed disruption candidates. Candidates are display/broadcast
// content only; they are never silently merged into the analysis
// snapshot, which keeps the ingestion boundary explicit.
package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tidewatch/model"
)

// Advisory is a disruption candidate extracted from a feed item.
type Advisory struct {
	Title    string         `json:"title"`
	Summary  string         `json:"summary"`
	Link     string         `json:"link"`
	Severity model.Severity `json:"severity"`
}

// Feed advisory bodies arrive as HTML. Severity keywords ordered most
// severe first; the first hit wins.
var severityKeywords = []struct {
	severity model.Severity
	words    []string
}{
	{model.SeverityCritical, []string{"closure", "blockade", "attack", "collision", "sinking"}},
	{model.SeverityHigh, []string{"strike", "suspension", "grounding", "embargo", "conflict"}},
	{model.SeverityMedium, []string{"congestion", "delay", "backlog", "storm", "drought"}},
}

// BuildAdvisories converts feed items into advisory candidates. Items
// whose body cannot be parsed keep their raw description text.
func BuildAdvisories(items []FeedItem) []Advisory {
	out := make([]Advisory, 0, len(items))
	for _, item := range items {
		summary := extractText(item.Description)
		out = append(out, Advisory{
			Title:    strings.TrimSpace(item.Title),
			Summary:  summary,
			Link:     item.Link,
			Severity: inferSeverity(item.Title + " " + summary),
		})
	}
	return out
}

// extractText reduces an HTML advisory body to plain text.
func extractText(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return strings.TrimSpace(body)
	}
	text := doc.Text()
	// Collapse the whitespace runs left behind by stripped markup.
	return strings.Join(strings.Fields(text), " ")
}

func inferSeverity(text string) model.Severity {
	lower := strings.ToLower(text)
	for _, sk := range severityKeywords {
		for _, w := range sk.words {
			if strings.Contains(lower, w) {
				return sk.severity
			}
		}
	}
	return model.SeverityLow
}
