package recipe

import "testing"

func TestMatches(t *testing.T) {
	r := Recipe{
		Title:       "Bolo de Cenoura",
		Ingredients: []string{"3 cenouras", "2 xícaras de açúcar"},
		Steps:       []string{"Bata no liquidificador", "Leve ao forno"},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: true},
		{query: "bolo", want: true},
		{query: "CENOURA", want: true},
		{query: "açúcar", want: true},
		{query: "forno", want: true},
		{query: "chocolate", want: false},
		{query: "bolo de chocolate", want: false},
	}
	for _, tt := range tests {
		if got := Matches(r, tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	recipes := []Recipe{
		{ID: "1", Title: "Pão de queijo", Ingredients: []string{"polvilho"}},
		{ID: "2", Title: "Bolo", Ingredients: []string{"farinha"}},
		{ID: "3", Title: "Biscoito", Ingredients: []string{"polvilho doce"}},
	}

	got := Filter(recipes, "Polvilho")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Filter() = %+v", got)
	}
	if got := Filter(recipes, ""); len(got) != 3 {
		t.Errorf("Filter(\"\") returned %d recipes, want 3", len(got))
	}
}
