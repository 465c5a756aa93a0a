package innertube

import "strings"

// Nav walks a decoded JSON tree by alternating map keys (string) and slice
// indexes (int). It returns nil as soon as a step does not match, so callers
// can probe optional branches without guarding every level.
func Nav(v interface{}, path ...interface{}) interface{} {
	cur := v
	for _, step := range path {
		switch s := step.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return nil
			}
			cur = m[s]
		case int:
			l, ok := cur.([]interface{})
			if !ok || s < 0 || s >= len(l) {
				return nil
			}
			cur = l[s]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// NavString returns the string at path, or "".
func NavString(v interface{}, path ...interface{}) string {
	s, _ := Nav(v, path...).(string)
	return s
}

// NavList returns the slice at path, or nil.
func NavList(v interface{}, path ...interface{}) []interface{} {
	l, _ := Nav(v, path...).([]interface{})
	return l
}

// NavMap returns the map at path, or nil.
func NavMap(v interface{}, path ...interface{}) map[string]interface{} {
	m, _ := Nav(v, path...).(map[string]interface{})
	return m
}

// RunsText joins the text runs of a formatted-string node. Most display
// fields in innertube responses look like {"runs":[{"text":...},...]}.
func RunsText(v interface{}, path ...interface{}) string {
	runs := NavList(v, append(path, "runs")...)
	if len(runs) == 0 {
		return NavString(v, append(path, "simpleText")...)
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(NavString(r, "text"))
	}
	return b.String()
}

// RunText returns the text of a single run by index, commonly used to pick
// the artist out of a subtitle like "Artist • Album • 3:07".
func RunText(v interface{}, index int, path ...interface{}) string {
	return NavString(v, append(path, "runs", index, "text")...)
}

// BestThumbnail picks the URL of the largest image in a thumbnails list.
func BestThumbnail(v interface{}, path ...interface{}) string {
	thumbs := NavList(v, append(path, "thumbnails")...)
	bestURL := ""
	bestArea := -1
	for _, t := range thumbs {
		w, _ := Nav(t, "width").(float64)
		h, _ := Nav(t, "height").(float64)
		area := int(w * h)
		if area > bestArea {
			if u := NavString(t, "url"); u != "" {
				bestURL = u
				bestArea = area
			}
		}
	}
	return bestURL
}
