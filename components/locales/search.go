package locales

import (
	"sort"
	"strings"

	"github.com/goliatone/go-intl/pkg/catalog"
)

// Option is a single selectable locale: the BCP 47 tag as the submitted
// value and the English display name as the label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search filters tags by query. The query matches both the tag and its
// display name case-insensitively, so "braz" finds pt-BR and "pt" does too.
// Prefix matches on either rank before plain substring matches; within a
// rank results order by label.
func Search(tags []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(tags) <= limit {
				return append([]string{}, tags...)
			}
			return append([]string{}, tags[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedLocale, 0, 32)
	for _, tag := range tags {
		label := catalog.DisplayName(tag)
		lowerTag := strings.ToLower(tag)
		lowerLabel := strings.ToLower(label)
		if !strings.Contains(lowerTag, q) && !strings.Contains(lowerLabel, q) {
			continue
		}
		matches = append(matches, matchedLocale{
			tag:      tag,
			label:    label,
			isPrefix: strings.HasPrefix(lowerTag, q) || strings.HasPrefix(lowerLabel, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		if matches[i].label != matches[j].label {
			return matches[i].label < matches[j].label
		}
		return matches[i].tag < matches[j].tag
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.tag)
	}
	return out
}

func SearchOptions(tags []string, query string, limit int, opts Options) []Option {
	results := Search(tags, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, tag := range results {
		out = append(out, Option{Value: tag, Label: catalog.DisplayName(tag)})
	}
	return out
}

type matchedLocale struct {
	tag      string
	label    string
	isPrefix bool
}
