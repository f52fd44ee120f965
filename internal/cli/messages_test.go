package cli

import "testing"

func useLang(t *testing.T, lang string) {
	t.Helper()
	previous := cliLang
	cliLang = lang
	t.Cleanup(func() { cliLang = previous })
}

func TestTr(t *testing.T) {
	tests := []struct {
		name string
		lang string
		id   string
		data map[string]any
		want string
	}{
		{
			name: "english default",
			id:   "lint-clean",
			want: "No problems found",
		},
		{
			name: "template data",
			id:   "key-added",
			data: map[string]any{"Key": "greeting", "Locale": "en"},
			want: "Added greeting, authored in en",
		},
		{
			name: "spanish",
			lang: "es",
			id:   "lint-clean",
			want: "No se encontraron problemas",
		},
		{
			name: "unknown language falls back to english",
			lang: "tlh",
			id:   "lint-clean",
			want: "No problems found",
		},
		{
			name: "unknown id falls back to the id",
			id:   "no-such-message",
			want: "no-such-message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useLang(t, tt.lang)
			if got := tr(tt.id, tt.data); got != tt.want {
				t.Errorf("tr(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestTrnPluralForms(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		count int
		want  string
	}{
		{"one english", "", 1, "1 problem found"},
		{"many english", "", 3, "3 problems found"},
		{"one spanish", "es", 1, "Se encontró 1 problema"},
		{"many spanish", "es", 3, "Se encontraron 3 problemas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useLang(t, tt.lang)
			if got := trn("lint-problems", tt.count, nil); got != tt.want {
				t.Errorf("trn(lint-problems, %d) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}
