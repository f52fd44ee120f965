package catalog

import "testing"

func TestLocaleFromName(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		want   string
	}{
		{"app_en.arb", "app", "en"},
		{"app_pt_BR.arb", "app", "pt_BR"},
		{"app_es_419.arb", "app", "es_419"},
		{"intl_fil.arb", "intl", "fil"},
		{"app.arb", "app", ""},
		{"app_English.arb", "app", ""},
		{"app_EN.arb", "app", ""},
		{"app_en_br.arb", "app", ""},
		{"other_en.arb", "app", ""},
		{"app_en", "app", "en"},
	}
	for _, tc := range cases {
		if got := LocaleFromName(tc.name, tc.prefix); got != tc.want {
			t.Fatalf("LocaleFromName(%q, %q) = %q, want %q", tc.name, tc.prefix, got, tc.want)
		}
	}
}

func TestSplitTagNormalizesCase(t *testing.T) {
	cases := []struct {
		tag    string
		lang   string
		region string
	}{
		{"pt_BR", "pt", "BR"},
		{"pt-br", "pt", "BR"},
		{"EN", "en", ""},
		{"es_419", "es", "419"},
		{"zh_Hans", "zh", ""},
	}
	for _, tc := range cases {
		lang, region := SplitTag(tc.tag)
		if lang != tc.lang || region != tc.region {
			t.Fatalf("SplitTag(%q) = (%q, %q), want (%q, %q)", tc.tag, lang, region, tc.lang, tc.region)
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := map[string]string{
		"pt-br":         "pt_BR",
		"EN":            "en",
		"es_419":        "es_419",
		DefaultLocale:   DefaultLocale,
		"notalocale!!!": "notalocale!!!",
	}
	for in, want := range cases {
		if got := NormalizeTag(in); got != want {
			t.Fatalf("NormalizeTag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidTag(t *testing.T) {
	for _, tag := range []string{"en", "pt_BR", "es-419", DefaultLocale} {
		if !ValidTag(tag) {
			t.Fatalf("expected %q to be a valid tag", tag)
		}
	}
	for _, tag := range []string{"", "!!", "english language"} {
		if ValidTag(tag) {
			t.Fatalf("expected %q to be rejected", tag)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("pt_BR"); got != "Brazilian Portuguese" {
		t.Fatalf("display name mismatch: got %q", got)
	}
	if got := DisplayName(DefaultLocale); got != "Default" {
		t.Fatalf("sentinel locale display mismatch: got %q", got)
	}
	if got := DisplayName("zz_ZZ!"); got != "zz_ZZ!" {
		t.Fatalf("unparseable tag should display as itself, got %q", got)
	}
}
