package locales

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/locale_tags.txt
var dataFS embed.FS

const defaultListPath = "data/locale_tags.txt"

var (
	defaultOnce sync.Once
	defaultTags []string
	defaultErr  error
)

func DefaultTags() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		tags, err := LoadTags(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTags = tags
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultTags...), nil
}

func LoadTags(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("locales: missing reader")
	}

	scanner := bufio.NewScanner(r)
	tags := make([]string, 0, 128)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		tags = append(tags, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(tags)
	return tags, nil
}
