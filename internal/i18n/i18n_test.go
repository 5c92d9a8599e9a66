package i18n

import "testing"

func TestT_English(t *testing.T) {
	SetLanguage("en")

	if got := T("tab_range"); got != "Range" {
		t.Errorf("T(tab_range) = %q, want %q", got, "Range")
	}
	if got := T("preset_last_7_days"); got != "Last 7 days" {
		t.Errorf("T(preset_last_7_days) = %q, want %q", got, "Last 7 days")
	}
}

func TestT_German(t *testing.T) {
	SetLanguage("de")
	defer SetLanguage("en")

	if got := T("tab_range"); got != "Zeitraum" {
		t.Errorf("T(tab_range) = %q, want %q", got, "Zeitraum")
	}
}

func TestT_MissingKey(t *testing.T) {
	SetLanguage("en")
	if got := T("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("T(nonexistent_key) = %q, want %q", got, "nonexistent_key")
	}
}

func TestTf(t *testing.T) {
	SetLanguage("en")
	got := Tf("current_size", 120, 40)
	want := "Current: 120x40"
	if got != want {
		t.Errorf("Tf(current_size, 120, 40) = %q, want %q", got, want)
	}
}

func TestTf_LocalizedNumbers(t *testing.T) {
	SetLanguage("de")
	defer SetLanguage("en")

	got := Tf("notify_loaded", 1234, 2)
	want := "1.234 Buchungen aus 2 Dateien geladen"
	if got != want {
		t.Errorf("Tf(notify_loaded) = %q, want %q", got, want)
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage("en")

	tests := []struct {
		in   string
		want Language
	}{
		{"en", LangEN},
		{"de", LangDE},
		{"de-AT", LangDE},
		{"en-GB", LangEN},
		{"fr", LangEN},
		{"not a tag", LangEN},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			SetLanguage(tt.in)
			if got := Current(); got != tt.want {
				t.Errorf("SetLanguage(%q): Current() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTables_Complete(t *testing.T) {
	for k := range en {
		if _, ok := de[k]; !ok {
			t.Errorf("de is missing key %q", k)
		}
	}
	for k := range de {
		if _, ok := en[k]; !ok {
			t.Errorf("en is missing key %q", k)
		}
	}
}
