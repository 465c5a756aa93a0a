package innertube

import (
	"encoding/json"
	"testing"
)

const sampleTree = `{
	"contents": {
		"sectionListRenderer": {
			"contents": [
				{
					"musicShelfRenderer": {
						"title": {"runs": [{"text": "Songs"}]},
						"contents": [
							{"item": {"videoId": "abc123def45"}},
							{"item": {"videoId": "xyz987ghi65"}}
						]
					}
				}
			]
		}
	},
	"header": {
		"subtitle": {"runs": [{"text": "Artist"}, {"text": " • "}, {"text": "3:07"}]},
		"thumbnail": {
			"thumbnails": [
				{"url": "https://img/small.jpg", "width": 60, "height": 60},
				{"url": "https://img/large.jpg", "width": 544, "height": 544},
				{"url": "https://img/medium.jpg", "width": 120, "height": 120}
			]
		},
		"plain": {"simpleText": "Plain title"}
	}
}`

func decode(t *testing.T) map[string]interface{} {
	t.Helper()
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(sampleTree), &tree); err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestNav(t *testing.T) {
	tree := decode(t)

	got := NavString(tree, "contents", "sectionListRenderer", "contents", 0,
		"musicShelfRenderer", "contents", 1, "item", "videoId")
	if got != "xyz987ghi65" {
		t.Errorf("NavString = %q, want xyz987ghi65", got)
	}

	if Nav(tree, "contents", "missing") != nil {
		t.Error("expected nil for missing key")
	}
	if Nav(tree, "contents", "sectionListRenderer", "contents", 7) != nil {
		t.Error("expected nil for out-of-range index")
	}
	if Nav(tree, "contents", 0) != nil {
		t.Error("expected nil for index into a map")
	}
}

func TestRunsText(t *testing.T) {
	tree := decode(t)

	if got := RunsText(tree, "header", "subtitle"); got != "Artist • 3:07" {
		t.Errorf("RunsText = %q", got)
	}
	// Falls back to simpleText when there are no runs.
	if got := RunsText(tree, "header", "plain"); got != "Plain title" {
		t.Errorf("RunsText simpleText fallback = %q", got)
	}
	if got := RunText(tree, 2, "header", "subtitle"); got != "3:07" {
		t.Errorf("RunText = %q", got)
	}
}

func TestBestThumbnail(t *testing.T) {
	tree := decode(t)

	if got := BestThumbnail(tree, "header", "thumbnail"); got != "https://img/large.jpg" {
		t.Errorf("BestThumbnail = %q", got)
	}
	if got := BestThumbnail(tree, "header", "missing"); got != "" {
		t.Errorf("BestThumbnail on missing node = %q, want empty", got)
	}
}
