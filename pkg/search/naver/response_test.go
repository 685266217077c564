package naver

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestStripTags(t *testing.T) {
	testCases := map[string]string{
		"Test <b>Title</b>":                   "Test Title",
		"<b>서울</b> 날씨":                        "서울 날씨",
		"&quot;quoted&quot; &lt;tag&gt;":      `"quoted" <tag>`,
		"plain text":                          "plain text",
		"  padded  ":                          "padded",
		"":                                    "",
		"a &amp; b <i>with</i> <b>markup</b>": "a & b with markup",
	}

	for raw, expected := range testCases {
		if e, g := expected, StripTags(raw); e != g {
			t.Errorf("StripTags(%q): expected %q, got %q", raw, e, g)
		}
	}
}

func TestStripTagsKeepsBareLessThan(t *testing.T) {
	testCases := []struct {
		Raw      string
		Expected string
	}{
		{Raw: "x<y이상 가격", Expected: "x<y이상 가격"},
		{Raw: "1 < 2 <b>bold</b>", Expected: "1 < 2 bold"},
		{Raw: "a<b>c</b> d<e", Expected: "ac d<e"},
		{Raw: "<b>x</b><3", Expected: "x<3"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, StripTags(tc.Raw); e != g {
			t.Errorf("StripTags(%q): expected %q, got %q", tc.Raw, e, g)
		}
	}
}

func TestCleanItems(t *testing.T) {
	raw := []map[string]any{
		{
			"title":       "Test <b>Title</b>",
			"link":        "https://example.com",
			"description": "Test <b>description</b>",
			"pubDate":     "Thu, 01 Jan 2024 00:00:00 +0900",
			"bloggername": "TestBlogger",
		},
		{
			"title":       "Another <b>Title</b>",
			"link":        "https://example2.com",
			"description": "Another <b>description</b>",
		},
	}

	cleaned := CleanItems(raw)

	if e, g := 2, len(cleaned); e != g {
		t.Fatalf("len(cleaned): expected %d, got %d", e, g)
	}

	if e, g := "Test Title", cleaned[0].Title; e != g {
		t.Errorf("cleaned[0].Title: expected %q, got %q", e, g)
	}

	if e, g := "Test description", cleaned[0].Description; e != g {
		t.Errorf("cleaned[0].Description: expected %q, got %q", e, g)
	}

	if e, g := "TestBlogger", cleaned[0].Metadata["bloggername"]; e != g {
		t.Errorf("cleaned[0].Metadata[bloggername]: expected %q, got %q", e, g)
	}

	if cleaned[1].Metadata != nil {
		t.Errorf("cleaned[1].Metadata: expected nil, got %v", cleaned[1].Metadata)
	}
}

func TestItemMarshalJSON(t *testing.T) {
	item := Item{
		Title:       "Title",
		Link:        "https://example.com",
		Description: "Description",
		Metadata: map[string]any{
			"pubDate": "Thu, 01 Jan 2024 00:00:00 +0900",
		},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := map[string]string{
		"title":       "Title",
		"link":        "https://example.com",
		"description": "Description",
		"pubDate":     "Thu, 01 Jan 2024 00:00:00 +0900",
	}

	for key, value := range expected {
		if e, g := value, fields[key]; e != g {
			t.Errorf("fields[%s]: expected %q, got %q", key, e, g)
		}
	}
}
