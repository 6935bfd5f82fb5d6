package model

import "testing"

func TestParseProfessionalFilter(t *testing.T) {
	tests := []struct {
		raw  string
		all  bool
		id   string
	}{
		{"", true, ""},
		{"any", true, ""},
		{"ANY", true, ""},
		{" any ", true, ""},
		{"64f0c2e1a2b3c4d5e6f70810", false, "64f0c2e1a2b3c4d5e6f70810"},
	}

	for _, tt := range tests {
		filter := ParseProfessionalFilter(tt.raw)
		if filter.All() != tt.all {
			t.Errorf("ParseProfessionalFilter(%q).All() = %v, want %v", tt.raw, filter.All(), tt.all)
		}
		if filter.ID() != tt.id {
			t.Errorf("ParseProfessionalFilter(%q).ID() = %q, want %q", tt.raw, filter.ID(), tt.id)
		}
	}
}

func TestProfessionalFilterConstructors(t *testing.T) {
	if !AllProfessionals().All() {
		t.Error("AllProfessionals must match every professional")
	}
	only := OnlyProfessional("abc")
	if only.All() {
		t.Error("OnlyProfessional must not match every professional")
	}
	if only.ID() != "abc" {
		t.Errorf("OnlyProfessional ID = %q, want %q", only.ID(), "abc")
	}
}
