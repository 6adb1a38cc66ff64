package news

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FeedItem is one entry of a maritime advisory RSS feed. Descriptions
// usually carry HTML markup; see parser.go.
type FeedItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

type feedDocument struct {
	Channel struct {
		Items []FeedItem `xml:"item"`
	} `xml:"channel"`
}

var feedClient = &http.Client{Timeout: 10 * time.Second}

// FetchFeed pulls and decodes an advisory RSS feed. Items without a
// title are dropped; they cannot become advisories.
func FetchFeed(url string) ([]FeedItem, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Tidewatch/1.0")

	resp, err := feedClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var doc feedDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("feed %s: %w", url, err)
	}

	items := make([]FeedItem, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		if item.Title == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
