package domain

import (
	"strings"
	"testing"
)

func TestDeriveIdentityKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		want  IdentityKey
	}{
		{"ana@x.com", "ana@x,com"},
		{"Ana@X.Com", "ana@x,com"},
		{"a.b@x.com", "a,b@x.com"},
		// First dot anywhere in the string wins; later dots are untouched.
		{"a.b@c.d.com", "a,b@c.d.com"},
		{"a@b.c.d.com", "a@b,c.d.com"},
		{"nodotsatall@x", "nodotsatall@x"},
	}
	for _, tc := range cases {
		if got := DeriveIdentityKey(tc.email); got != tc.want {
			t.Errorf("DeriveIdentityKey(%q)=%q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestDeriveIdentityKey_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"Ana.Silva@Example.COM", "BOB@X.ORG", "mixed.Case@d.io"} {
		if got, want := DeriveIdentityKey(email), DeriveIdentityKey(strings.ToLower(email)); got != want {
			t.Errorf("DeriveIdentityKey(%q)=%q, want %q", email, got, want)
		}
	}
}

func TestValidEmailShape(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.com", "a.b@c.d.com", "x_y@sub.domain.org"}
	for _, e := range valid {
		if !ValidEmailShape(e) {
			t.Errorf("ValidEmailShape(%q)=false, want true", e)
		}
	}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "a@@b.com", "@b.com"}
	for _, e := range invalid {
		if ValidEmailShape(e) {
			t.Errorf("ValidEmailShape(%q)=true, want false", e)
		}
	}
}
