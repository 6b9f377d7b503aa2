package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "mkbpf"},
		{"home dir", HomeDir(), ".mkbpf"},
		{"env prefix", EnvPrefix(), "MKBPF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "MKBPF_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "MKBPF_HOME")
	}
}
