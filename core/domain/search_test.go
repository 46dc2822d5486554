package domain

import "testing"

func TestNormalize_AppliesDefaults(t *testing.T) {
	q := SearchQuery{Query: "  coffee shops  "}

	n := q.Normalize()

	if n.Query != "coffee shops" {
		t.Errorf("Query = %q, want %q", n.Query, "coffee shops")
	}
	if n.Num != DefaultNum {
		t.Errorf("Num = %d, want %d", n.Num, DefaultNum)
	}
	if n.GL != "us" {
		t.Errorf("GL = %q, want %q", n.GL, "us")
	}
	if n.HL != "en" {
		t.Errorf("HL = %q, want %q", n.HL, "en")
	}
	if n.Type != ResultTypeWeb {
		t.Errorf("Type = %q, want %q", n.Type, ResultTypeWeb)
	}
}

func TestNormalize_ClampsNum(t *testing.T) {
	testCases := []struct {
		name string
		num  int
		want int
	}{
		{"negative", -3, DefaultNum},
		{"zero", 0, DefaultNum},
		{"in range", 5, 5},
		{"above max", 50, MaxNum},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := SearchQuery{Query: "q", Num: tc.num}.Normalize()
			if n.Num != tc.want {
				t.Errorf("Num = %d, want %d", n.Num, tc.want)
			}
		})
	}
}

func TestNormalize_UnknownTypeFallsBackToWeb(t *testing.T) {
	n := SearchQuery{Query: "q", Type: ResultType("images")}.Normalize()

	if n.Type != ResultTypeWeb {
		t.Errorf("Type = %q, want %q", n.Type, ResultTypeWeb)
	}
}

func TestNormalize_PreservesNews(t *testing.T) {
	n := SearchQuery{Query: "q", Type: ResultTypeNews}.Normalize()

	if n.Type != ResultTypeNews {
		t.Errorf("Type = %q, want %q", n.Type, ResultTypeNews)
	}
}

func TestExtractDomain(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{"strips www", "https://www.example.com/path", "example.com"},
		{"no www", "https://example.org/a/b?c=d", "example.org"},
		{"subdomain kept", "https://news.example.com/story", "news.example.com"},
		{"port stripped", "http://example.com:8080/", "example.com"},
		{"unparsable", "ht!tp://%%%", ""},
		{"no host", "/relative/path", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractDomain(tc.url)
			if got != tc.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}
