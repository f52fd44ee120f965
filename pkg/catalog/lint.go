package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ProblemKind classifies a lint finding.
type ProblemKind string

const (
	// ProblemUnmatchedToken flags a {token} in a value with no declared
	// placeholder of that name. Such tokens pass through code generation
	// as literal text.
	ProblemUnmatchedToken ProblemKind = "unmatched-token"
	// ProblemUnusedPlaceholder flags a declared placeholder no locale's
	// value references.
	ProblemUnusedPlaceholder ProblemKind = "unused-placeholder"
	// ProblemDescriptionDrift flags a key whose description differs
	// between documents, usually after hand edits to the files on disk.
	ProblemDescriptionDrift ProblemKind = "description-drift"
)

// Problem is one lint finding. Locale is empty for findings that concern the
// whole set rather than one document.
type Problem struct {
	Kind   ProblemKind `json:"kind"`
	Key    string      `json:"key"`
	Locale string      `json:"locale,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

func (p Problem) String() string {
	switch p.Kind {
	case ProblemUnmatchedToken:
		return fmt.Sprintf("%s: token {%s} in %q has no placeholder", p.Locale, p.Detail, p.Key)
	case ProblemUnusedPlaceholder:
		return fmt.Sprintf("placeholder %q in %q is never referenced", p.Detail, p.Key)
	case ProblemDescriptionDrift:
		return fmt.Sprintf("descriptions diverge for %q: %s", p.Key, p.Detail)
	}
	return fmt.Sprintf("%s: %s %s", p.Kind, p.Key, p.Detail)
}

// Lint inspects the set for places where values, placeholder declarations,
// and descriptions disagree. Findings come out in canonical key order; within
// a key, unmatched tokens per locale in iteration order, then unused
// placeholders by name, then a single drift finding. Lint never mutates the
// set: every finding stays fixable by the usual edit operations.
func (s *Set) Lint() []Problem {
	var problems []Problem
	for _, key := range s.Keys() {
		_, declared := s.canonicalMeta(key)

		referenced := make(map[string]struct{})
		for _, doc := range s.docs {
			e, ok := doc.Entry(key)
			if !ok {
				continue
			}
			for _, tok := range Tokens(e.Value) {
				referenced[tok] = struct{}{}
				if _, ok := declared[tok]; !ok {
					problems = append(problems, Problem{
						Kind:   ProblemUnmatchedToken,
						Key:    key,
						Locale: doc.Locale,
						Detail: tok,
					})
				}
			}
		}

		unused := make([]string, 0, len(declared))
		for name := range declared {
			if _, ok := referenced[name]; !ok {
				unused = append(unused, name)
			}
		}
		sort.Strings(unused)
		for _, name := range unused {
			problems = append(problems, Problem{
				Kind:   ProblemUnusedPlaceholder,
				Key:    key,
				Detail: name,
			})
		}

		if drift := descriptionVariants(s.docs, key); len(drift) > 1 {
			quoted := make([]string, len(drift))
			for i, d := range drift {
				quoted[i] = fmt.Sprintf("%q", d)
			}
			problems = append(problems, Problem{
				Kind:   ProblemDescriptionDrift,
				Key:    key,
				Detail: strings.Join(quoted, " vs "),
			})
		}
	}
	return problems
}

// descriptionVariants collects the distinct descriptions documents carry for
// key, in first-seen order.
func descriptionVariants(docs []*Document, key string) []string {
	var variants []string
	seen := make(map[string]struct{})
	for _, doc := range docs {
		e, ok := doc.Entry(key)
		if !ok {
			continue
		}
		if _, dup := seen[e.Description]; dup {
			continue
		}
		seen[e.Description] = struct{}{}
		variants = append(variants, e.Description)
	}
	return variants
}
