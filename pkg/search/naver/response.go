package naver

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Response is the raw payload returned by the search API.
type Response struct {
	LastBuildDate string           `json:"lastBuildDate,omitempty" yaml:"lastBuildDate,omitempty"`
	Total         int              `json:"total" yaml:"total"`
	Start         int              `json:"start" yaml:"start"`
	Display       int              `json:"display" yaml:"display"`
	Items         []map[string]any `json:"items" yaml:"items"`
}

// Item is a simplified search result. Fields specific to a search type
// (pubDate, bloggername, author, price...) are kept in Metadata.
type Item struct {
	Title       string
	Link        string
	Description string
	Metadata    map[string]any
}

func (i Item) fields() map[string]any {
	fields := make(map[string]any, len(i.Metadata)+3)
	for k, v := range i.Metadata {
		fields[k] = v
	}

	fields["title"] = i.Title
	fields["link"] = i.Link
	fields["description"] = i.Description

	return fields
}

// MarshalJSON flattens the metadata next to the title, link and description.
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.fields())
}

// MarshalYAML implements yaml.Marshaler.
func (i Item) MarshalYAML() (any, error) {
	return i.fields(), nil
}

// CleanItems converts raw API items to simplified records, removing the
// highlighting markup from titles and descriptions.
func CleanItems(raw []map[string]any) []Item {
	items := make([]Item, 0, len(raw))

	for _, r := range raw {
		var item Item

		for key, value := range r {
			switch key {
			case "title":
				item.Title = StripTags(stringValue(value))
			case "link":
				item.Link = stringValue(value)
			case "description":
				item.Description = StripTags(stringValue(value))
			default:
				if item.Metadata == nil {
					item.Metadata = make(map[string]any)
				}
				item.Metadata[key] = value
			}
		}

		items = append(items, item)
	}

	return items
}

// StripTags removes HTML markup and decodes entities.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(escapeBareLessThan(s)))
	if err != nil {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(doc.Text())
}

var tagPattern = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)

// escapeBareLessThan escapes the '<' characters which do not open a complete
// tag, so that text such as "x<y" is not swallowed by the HTML parser.
func escapeBareLessThan(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var sb strings.Builder

	last := 0
	for _, loc := range tagPattern.FindAllStringIndex(s, -1) {
		sb.WriteString(strings.ReplaceAll(s[last:loc[0]], "<", "&lt;"))
		sb.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}

	sb.WriteString(strings.ReplaceAll(s[last:], "<", "&lt;"))

	return sb.String()
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func truncate(items []Item, max int) []Item {
	if max <= 0 || len(items) <= max {
		return items
	}

	return items[:max]
}
