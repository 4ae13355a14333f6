package players

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"DisplayName", "displayName"},
		{"Positions", "positions"},
		{"Club", "club"},
		{"Nationality", "nationality"},
		{"League", "league"},
		{"PhotoURL", "photoUrl"},
		{"Number", "number"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestDisplayNameFor(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		want     string
	}{
		{"single token", "Pedri", "Pedri"},
		{"multi token uses surname", "Cristiano Ronaldo dos Santos Aveiro", "Aveiro"},
		{"exactly twelve kept", "Ann Abcdefghijkl", "Abcdefghijkl"},
		{"fourteen truncated", "John Abcdefghijklmn", "Abcdefghijk."},
		{"extra whitespace", "  Kylian   Mbappé  ", "Mbappé"},
		{"blank", "   ", ""},
		{"runes counted not bytes", "Jo Ødegaardssønnø", "Ødegaardssø."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayNameFor(tc.fullName); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewGeneratesIDAndDisplayName(t *testing.T) {
	p, err := New(Attributes{Name: "Lionel Messi", Positions: []string{"RW"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.DisplayName != "Messi" {
		t.Fatalf("expected derived display name Messi, got %s", p.DisplayName)
	}

	other, _ := New(Attributes{Name: "Lionel Messi"})
	if other.ID == p.ID {
		t.Fatalf("expected distinct generated ids")
	}
}

func TestNewKeepsExplicitValues(t *testing.T) {
	p, err := New(Attributes{ID: "p-1", Name: "Vinicius Junior", DisplayName: "Vini Jr."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "p-1" || p.DisplayName != "Vini Jr." {
		t.Fatalf("expected explicit id and display name, got %+v", p)
	}
	if p.Positions == nil || len(p.Positions) != 0 {
		t.Fatalf("expected empty non-nil positions, got %#v", p.Positions)
	}
}

func TestNewCopiesPositions(t *testing.T) {
	positions := []string{"CM", "CDM"}
	p, _ := New(Attributes{Name: "Rodri", Positions: positions})
	positions[0] = "GK"
	if p.Positions[0] != "CM" {
		t.Fatalf("expected player positions isolated from caller slice, got %v", p.Positions)
	}
}

func TestNewRejectsMissingName(t *testing.T) {
	if _, err := New(Attributes{ID: "x", Name: "  "}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestValue(t *testing.T) {
	if Value(nil) != "" {
		t.Fatalf("expected empty string for nil field")
	}
	if Value(StringPtr("Arsenal")) != "Arsenal" {
		t.Fatalf("expected dereferenced value")
	}
}
