package search

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/lineup-service/internal/domain/players"
)

func buildIndex(t *testing.T, attrs ...players.Attributes) *Index {
	t.Helper()
	items := make([]players.Player, 0, len(attrs))
	for _, a := range attrs {
		p, err := players.New(a)
		if err != nil {
			t.Fatalf("failed to build player %q: %v", a.Name, err)
		}
		items = append(items, p)
	}
	return NewIndex(items)
}

func ids(res Result) []string {
	out := make([]string, len(res.Items))
	for i, p := range res.Items {
		out[i] = p.ID
	}
	return out
}

func sampleIndex(t *testing.T) *Index {
	return buildIndex(t,
		players.Attributes{ID: "saka", Name: "Bukayo Saka", Positions: []string{"RW", "LW"}, Club: players.StringPtr("Arsenal"), Nationality: players.StringPtr("England"), League: players.StringPtr("Premier League")},
		players.Attributes{ID: "muller", Name: "Thomas Müller", Positions: []string{"CAM", "ST"}, Club: players.StringPtr("Bayern München"), Nationality: players.StringPtr("Germany"), League: players.StringPtr("Bundesliga")},
		players.Attributes{ID: "saliba", Name: "William Saliba", Positions: []string{"CB"}, Club: players.StringPtr("Arsenal"), Nationality: players.StringPtr("France"), League: players.StringPtr("Premier League")},
		players.Attributes{ID: "free", Name: "Free Agent", Positions: []string{"CM"}},
		players.Attributes{ID: "rudiger", Name: "Antonio Rüdiger", Positions: []string{"LCB"}, Club: players.StringPtr("Real Madrid"), Nationality: players.StringPtr("Germany"), League: players.StringPtr("LaLiga")},
	)
}

func TestSearchEmptyQueryKeepsCorpusOrder(t *testing.T) {
	ix := sampleIndex(t)

	res := ix.Search(Query{})
	want := []string{"saka", "muller", "saliba", "free", "rudiger"}
	if !reflect.DeepEqual(ids(res), want) {
		t.Fatalf("expected %v, got %v", want, ids(res))
	}
	if res.Total != 5 || res.Page != 0 || res.Size != DefaultPageSize || res.TotalPages != 1 {
		t.Fatalf("unexpected result envelope %+v", res)
	}
}

func TestSearchFacetsAreAnded(t *testing.T) {
	ix := sampleIndex(t)

	cases := []struct {
		name  string
		query Query
		want  []string
	}{
		{"club substring", Query{Club: "ars"}, []string{"saka", "saliba"}},
		{"club accent insensitive", Query{Club: "MUNCHEN"}, []string{"muller"}},
		{"nationality", Query{Nationality: "germ"}, []string{"muller", "rudiger"}},
		{"league", Query{League: "premier"}, []string{"saka", "saliba"}},
		{"position any code", Query{Position: "lw"}, []string{"saka"}},
		{"position substring of code", Query{Position: "cb"}, []string{"saliba", "rudiger"}},
		{"combined", Query{Club: "arsenal", Position: "cb"}, []string{"saliba"}},
		{"combined no hit", Query{Nationality: "germany", League: "premier"}, []string{}},
		{"blank facets pass", Query{Club: "  ", Nationality: "", League: "\t", Position: " "}, []string{"saka", "muller", "saliba", "free", "rudiger"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ids(ix.Search(tc.query)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSearchAbsentFieldNeverPassesFacet(t *testing.T) {
	ix := buildIndex(t, players.Attributes{ID: "x", Name: "No Club"})

	// A lone combining mark is not blank but normalizes to the empty string.
	for _, q := range []Query{{Club: "a"}, {Club: "\u0301"}, {League: "\u0301"}, {Nationality: "\u0301"}} {
		if res := ix.Search(q); res.Total != 0 {
			t.Fatalf("expected absent field to fail facet %+v, got %v", q, ids(res))
		}
	}
}

func TestSearchRanksByRelevance(t *testing.T) {
	ix := buildIndex(t,
		players.Attributes{ID: "bob", Name: "Bob Messias"},
		players.Attributes{ID: "leo", Name: "Leo Messi"},
		players.Attributes{ID: "lionel", Name: "Lionel Messi"},
	)

	res := ix.Search(Query{Text: "messi"})
	want := []string{"leo", "lionel", "bob"}
	if !reflect.DeepEqual(ids(res), want) {
		t.Fatalf("expected %v, got %v", want, ids(res))
	}
}

func TestSearchStableForEqualScores(t *testing.T) {
	ix := buildIndex(t,
		players.Attributes{ID: "leo", Name: "Leo Messi"},
		players.Attributes{ID: "lionel", Name: "Lionel Messi"},
		players.Attributes{ID: "bob", Name: "Bob Messias"},
	)
	for i := 0; i < 10; i++ {
		res := ix.Search(Query{Text: "messi"})
		if !reflect.DeepEqual(ids(res), []string{"leo", "lionel", "bob"}) {
			t.Fatalf("expected insertion order among ties, got %v", ids(res))
		}
	}
}

func TestSearchDiacriticInsensitiveQuery(t *testing.T) {
	ix := sampleIndex(t)

	for _, q := range []string{"muller", "Müller", "MÜLLER", "thomas mul"} {
		res := ix.Search(Query{Text: q})
		if len(res.Items) == 0 || res.Items[0].ID != "muller" {
			t.Fatalf("query %q: expected muller first, got %v", q, ids(res))
		}
	}
}

func TestSearchQueryAndFacetsCombine(t *testing.T) {
	ix := sampleIndex(t)

	res := ix.Search(Query{Text: "sa", Club: "arsenal"})
	want := []string{"saka", "saliba"}
	if !reflect.DeepEqual(ids(res), want) {
		t.Fatalf("expected %v, got %v", want, ids(res))
	}

	res = ix.Search(Query{Text: "germany"})
	if !reflect.DeepEqual(ids(res), []string{"muller", "rudiger"}) {
		t.Fatalf("expected nationality match in corpus order, got %v", ids(res))
	}
}

func TestSearchClampsPaging(t *testing.T) {
	ix := sampleIndex(t)

	cases := []struct {
		in       Query
		wantPage int
		wantSize int
	}{
		{Query{Page: -4, Size: 2}, 0, 2},
		{Query{Size: 0}, 0, DefaultPageSize},
		{Query{Size: -1}, 0, DefaultPageSize},
		{Query{Size: MaxPageSize + 1}, 0, DefaultPageSize},
		{Query{Size: MaxPageSize}, 0, MaxPageSize},
	}
	for _, tc := range cases {
		res := ix.Search(tc.in)
		if res.Page != tc.wantPage || res.Size != tc.wantSize {
			t.Fatalf("query %+v: expected page %d size %d, got page %d size %d", tc.in, tc.wantPage, tc.wantSize, res.Page, res.Size)
		}
	}
}

func TestSearchPagesThroughMatches(t *testing.T) {
	ix := sampleIndex(t)

	first := ix.Search(Query{Page: 0, Size: 2})
	second := ix.Search(Query{Page: 1, Size: 2})
	third := ix.Search(Query{Page: 2, Size: 2})
	beyond := ix.Search(Query{Page: 3, Size: 2})

	joined := append(append(ids(first), ids(second)...), ids(third)...)
	if !reflect.DeepEqual(joined, []string{"saka", "muller", "saliba", "free", "rudiger"}) {
		t.Fatalf("unexpected pages %v", joined)
	}
	if first.TotalPages != 3 || first.Total != 5 {
		t.Fatalf("expected 3 pages of 5 total, got %+v", first)
	}
	if beyond.Items == nil || len(beyond.Items) != 0 || beyond.Total != 5 {
		t.Fatalf("expected empty page with total preserved, got %+v", beyond)
	}
}

func TestSearchNilIndex(t *testing.T) {
	var ix *Index
	res := ix.Search(Query{Text: "x"})
	if res.Total != 0 || res.Items == nil {
		t.Fatalf("expected empty result from nil index, got %+v", res)
	}
}
