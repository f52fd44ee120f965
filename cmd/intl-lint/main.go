package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-intl/pkg/arb"
	"github.com/goliatone/go-intl/pkg/catalog"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	prefix := flag.String("prefix", "app", "file-name prefix locale derivation strips")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint ARB translation documents for placeholder and alignment problems.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"examples/fixtures/app_en.arb",
			"examples/fixtures/app_es.arb",
		}
	}

	var (
		violations []violation
		docs       []*catalog.Document
	)
	for _, path := range paths {
		doc, linted, err := lintFile(path, *prefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
		if doc != nil {
			docs = append(docs, doc)
		}
	}

	set, err := catalog.NewSet(docs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint: %v\n", err)
		os.Exit(1)
	}
	violations = append(violations, lintSet(set)...)

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

// lintFile decodes one document. Findings that keep the document out of the
// set (a failed Validate) come back as violations with a nil document so the
// cross-document checks still run over the rest.
func lintFile(path, prefix string) (*catalog.Document, []violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := arb.DecodeNamed(path, prefix, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, []violation{{
			file:     path,
			location: "document",
			message:  err.Error(),
		}}, nil
	}

	return doc, nil, nil
}

// lintSet runs the cross-document checks: keys missing from individual
// documents, then placeholder and description findings. Set-wide findings
// are attributed to the canonical document since that is where the shared
// metadata lives.
func lintSet(set *catalog.Set) []violation {
	var result []violation

	for _, locale := range set.Locales() {
		missing, err := set.MissingKeys(locale)
		if err != nil {
			continue
		}
		for _, key := range missing {
			result = append(result, violation{
				file:     fileFor(set, locale),
				location: key,
				message:  "key missing from this document",
			})
		}
	}

	for _, p := range set.Lint() {
		result = append(result, violation{
			file:     fileFor(set, p.Locale),
			location: p.Key,
			message:  p.String(),
		})
	}

	return result
}

func fileFor(set *catalog.Set, locale string) string {
	if locale != "" {
		if doc, ok := set.Document(locale); ok && doc.Location != "" {
			return doc.Location
		}
		return locale
	}
	docs := set.Documents()
	if len(docs) > 0 && docs[0].Location != "" {
		return docs[0].Location
	}
	return "catalog"
}
