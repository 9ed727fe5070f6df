package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"en-US", language.English},
		{"en", language.English},
		{"", language.BrazilianPortuguese},
		{"ja", language.BrazilianPortuguese},
	}
	for _, tc := range cases {
		if got := Match(tc.in); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTranslatorFallsBack(t *testing.T) {
	tr := New("en")
	if got := tr("validation.placa.placa"); got != "Invalid plate" {
		t.Fatalf("en plate message = %q", got)
	}
	// modelo labels only exist in pt-BR
	if got := tr("moto.modelo.MOTTU_POP"); got != "Mottu Pop" {
		t.Fatalf("fallback label = %q", got)
	}
	if got := tr("no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key = %q", got)
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	for key := range en {
		if _, ok := ptBR[key]; !ok {
			t.Errorf("key %q missing from pt-BR catalog", key)
		}
	}
}
