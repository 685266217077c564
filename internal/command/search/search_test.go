package search

import (
	"encoding/json"
	"strings"
	"testing"

	se "github.com/bornholm/naversearch/pkg/search"
	"github.com/bornholm/naversearch/pkg/search/naver"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

var testResults = []se.Result{
	{
		Title:       "Test Title",
		URL:         "https://example.com",
		Description: "Test Description",
		Source:      "news",
		Metadata:    map[string]any{"pubDate": "Thu, 01 Jan 2024 00:00:00 +0900"},
	},
}

func TestParseSearchTypes(t *testing.T) {
	searchTypes, err := ParseSearchTypes([]string{"news", "webkr,blog", "web"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := []naver.SearchType{naver.News, naver.Web, naver.Blog}

	if e, g := len(expected), len(searchTypes); e != g {
		t.Fatalf("len(searchTypes): expected %d, got %d", e, g)
	}

	for i, searchType := range expected {
		if e, g := searchType, searchTypes[i]; e != g {
			t.Errorf("searchTypes[%d]: expected %q, got %q", i, e, g)
		}
	}

	if _, err := ParseSearchTypes([]string{"news", "video"}); !errors.Is(err, naver.ErrUnknownSearchType) {
		t.Errorf("expected ErrUnknownSearchType, got %+v", err)
	}

	if _, err := ParseSearchTypes(nil); err == nil {
		t.Error("expected an error without search type")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(testResults, FormatJSON)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var results []se.Result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := testResults[0].URL, results[0].URL; e != g {
		t.Errorf("results[0].URL: expected %q, got %q", e, g)
	}

	empty, err := Render(nil, FormatJSON)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "[]\n", string(empty); e != g {
		t.Errorf("Render(nil): expected %q, got %q", e, g)
	}
}

func TestRenderYAML(t *testing.T) {
	data, err := Render(testResults, FormatYAML)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var results []se.Result
	if err := yaml.Unmarshal(data, &results); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := testResults[0].Title, results[0].Title; e != g {
		t.Errorf("results[0].Title: expected %q, got %q", e, g)
	}

	if e, g := "news", results[0].Source; e != g {
		t.Errorf("results[0].Source: expected %q, got %q", e, g)
	}
}

func TestRenderMarkdown(t *testing.T) {
	data, err := Render(testResults, FormatMarkdown)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, expected := range []string{"## 1. Test Title", "**URL**: https://example.com", "Test Description"} {
		if !strings.Contains(string(data), expected) {
			t.Errorf("markdown should contain %q:\n%s", expected, data)
		}
	}

	if _, err := Render(testResults, "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestOutputFilename(t *testing.T) {
	testCases := []struct {
		Query    string
		Format   string
		Expected string
	}{
		{Query: "Korean Elections 2024", Format: FormatJSON, Expected: "korean-elections-2024.json"},
		{Query: "Korean Elections", Format: FormatMarkdown, Expected: "korean-elections.md"},
		{Query: "!!!", Format: FormatYAML, Expected: "search.yaml"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, OutputFilename(tc.Query, tc.Format); e != g {
			t.Errorf("OutputFilename(%q, %q): expected %q, got %q", tc.Query, tc.Format, e, g)
		}
	}
}
