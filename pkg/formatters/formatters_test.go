package formatters

import "testing"

func TestCapitalizeFirstLetter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		uppercase bool
		want      string
	}{
		{"single word", "hello", false, "Hello"},
		{"leading spaces", "  hello", false, "  Hello"},
		{"empty string", "", false, ""},
		{"only spaces", "   ", false, "   "},
		{"only mixed whitespace", " \t\n ", false, " \t\n "},
		{"uppercase flag", "hello", true, "HELLO"},
		{"uppercase flag keeps leading spaces", "  hello", true, "  HELLO"},
		{"already capitalized", "Hello", false, "Hello"},
		{"single lowercase character", "a", false, "A"},
		{"single uppercase character", "A", false, "A"},
		{"only first word", "hello world", false, "Hello world"},
		{"trailing whitespace kept", " hello world   ", false, " Hello world   "},
		{"tabs and newlines", "\t\nhello", false, "\t\nHello"},
		{"rest unchanged", "hELLO", false, "HELLO"},
		{"leading digit", "1st place", false, "1st place"},
		{"non-ascii first letter", "élan", false, "Élan"},
		{"byte order mark is whitespace", "\uFEFFhello", false, "\uFEFFHello"},
		{"special casing", "ßtraße", false, "SStraße"},
		{"uppercase flag on empty", "", true, ""},
		{"invalid leading byte", "\xffabc", false, "\xffabc"},
		{"invalid byte after whitespace", "  \xff rest", false, "  \xff rest"},
		{"next line is not whitespace", "\u0085hello", false, "\u0085hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapitalizeFirstLetter(tt.input, tt.uppercase); got != tt.want {
				t.Errorf("CapitalizeFirstLetter(%q, %v) = %q, want %q", tt.input, tt.uppercase, got, tt.want)
			}
		})
	}
}

func TestTrimAndUppercase(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		uppercase bool
		want      string
	}{
		{"trims whitespace", "  hello  ", false, "hello"},
		{"trims and uppercases", "  hello  ", true, "HELLO"},
		{"empty string", "", false, ""},
		{"empty string uppercased", "", true, ""},
		{"only spaces", "   ", false, ""},
		{"only spaces uppercased", "   ", true, ""},
		{"preserves internal spaces", "  hello world  ", false, "hello world"},
		{"preserves internal spaces uppercased", "  hello world  ", true, "HELLO WORLD"},
		{"tabs and newlines", "\thello\n", false, "hello"},
		{"no case change without flag", " MiXeD ", false, "MiXeD"},
		{"next line is kept", "\u0085hello\u0085", false, "\u0085hello\u0085"},
		{"byte order mark trimmed", "\uFEFFhello\uFEFF", false, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndUppercase(tt.input, tt.uppercase); got != tt.want {
				t.Errorf("TrimAndUppercase(%q, %v) = %q, want %q", tt.input, tt.uppercase, got, tt.want)
			}
		})
	}
}

func TestStringFormatter_Interchangeable(t *testing.T) {
	formatters := map[string]StringFormatter{
		"capitalize": CapitalizeFirstLetter,
		"trim":       TrimAndUppercase,
	}

	for name, format := range formatters {
		t.Run(name, func(t *testing.T) {
			if got := format(" go ", true); got != " GO " && got != "GO" {
				t.Errorf("%s formatter returned %q", name, got)
			}
		})
	}
}

func BenchmarkCapitalizeFirstLetter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		CapitalizeFirstLetter("   hello world", false)
	}
}

func BenchmarkTrimAndUppercase(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		TrimAndUppercase("   hello world   ", true)
	}
}
