package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in    string
		limit int
		want  string
	}{
		"zero limit hides the value":    {in: "Skills: Go, SQL", limit: 0, want: ""},
		"negative limit":                {in: "Skills: Go, SQL", limit: -3, want: ""},
		"fits":                          {in: "Education", limit: 9, want: "Education"},
		"cut with ellipsis":             {in: "Work Experience", limit: 4, want: "Work..."},
		"whitespace trimmed first":      {in: "\n\tSummary \n", limit: 7, want: "Summary"},
		"counts runes not bytes":        {in: "Résumé de Zoë", limit: 6, want: "Résumé..."},
		"empty input":                   {in: "", limit: 10, want: ""},
		"reply json stays recognisable": {in: `{"category":"HR","confidence":0.9}`, limit: 12, want: `{"category":...`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}
