package catalog

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLocale is the sentinel locale for documents whose name does not
// follow the <prefix>_<lang>[_<REGION>] convention and whose payload declares
// no locale either.
const DefaultLocale = "default"

var (
	langPattern   = regexp.MustCompile(`^[a-z]{2,3}$`)
	regionPattern = regexp.MustCompile(`^([A-Z]{2}|[0-9]{3})$`)
)

// LocaleFromName derives a locale tag from a document file name following
// the <prefix>_<lang>[_<REGION>] convention: "intl_en.arb" -> "en",
// "intl_pt_BR.arb" -> "pt_BR". Any extension is ignored. With an empty
// prefix the whole stem is parsed as a tag ("en_US" -> "en_US"). It returns
// "" when the name does not match; callers decide the fallback.
func LocaleFromName(name, prefix string) string {
	rest := strings.TrimSuffix(name, path.Ext(name))
	if prefix != "" {
		if !strings.HasPrefix(rest, prefix+"_") {
			return ""
		}
		rest = strings.TrimPrefix(rest, prefix+"_")
	}

	parts := strings.Split(rest, "_")
	switch len(parts) {
	case 1:
		if langPattern.MatchString(parts[0]) {
			return parts[0]
		}
	case 2:
		if langPattern.MatchString(parts[0]) && regionPattern.MatchString(parts[1]) {
			return parts[0] + "_" + parts[1]
		}
	}
	return ""
}

// SplitTag breaks a locale tag into language and region components. Both "_"
// and "-" separators are accepted; casing is normalized (language lowered,
// region uppered). The region is empty for language-only tags and for
// subtags that are not regions, such as scripts.
func SplitTag(tag string) (lang, region string) {
	tag = strings.ReplaceAll(tag, "-", "_")
	parts := strings.SplitN(tag, "_", 2)
	lang = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		candidate := strings.ToUpper(strings.TrimSpace(parts[1]))
		if regionPattern.MatchString(candidate) {
			region = candidate
		}
	}
	return lang, region
}

// NormalizeTag rewrites a tag into the canonical <lang>[_<REGION>] form used
// throughout the catalog ("en-us" -> "en_US").
func NormalizeTag(tag string) string {
	lang, region := SplitTag(tag)
	if lang == "" {
		return ""
	}
	if region == "" {
		return lang
	}
	return lang + "_" + region
}

// ValidTag reports whether tag parses as a BCP 47 language tag. The sentinel
// DefaultLocale is always valid.
func ValidTag(tag string) bool {
	if tag == DefaultLocale {
		return true
	}
	_, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	return err == nil
}

// DisplayName returns the English display name for a locale tag ("pt_BR" ->
// "Brazilian Portuguese"), falling back to the tag itself when it cannot be
// parsed.
func DisplayName(tag string) string {
	if tag == DefaultLocale {
		return "Default"
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return tag
	}
	if name := display.English.Tags().Name(parsed); name != "" {
		return name
	}
	return tag
}
