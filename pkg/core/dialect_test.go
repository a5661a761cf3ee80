package core

import "testing"

func TestParseDialect(t *testing.T) {
	cases := []struct {
		in   string
		want Dialect
	}{
		{"kuka", DialectKUKA},
		{"FANUC", DialectFANUC},
		{" abb ", DialectABB},
		{"Yaskawa", DialectYaskawa},
	}
	for _, c := range cases {
		got, err := ParseDialect(c.in)
		if err != nil {
			t.Errorf("ParseDialect(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDialect(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestParseDialect_Unknown(t *testing.T) {
	if _, err := ParseDialect("staubli"); err == nil {
		t.Error("expected error for unknown dialect")
	}
}

func TestDialect_FileExtension(t *testing.T) {
	if DialectKUKA.FileExtension() != ".src" {
		t.Errorf("expected .src, got %s", DialectKUKA.FileExtension())
	}
	if DialectFANUC.FileExtension() != ".ls" {
		t.Errorf("expected .ls, got %s", DialectFANUC.FileExtension())
	}
}
