package bootstrap

import "testing"

func TestPreParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantCfg     string
		wantVerbose bool
	}{
		{
			name: "no flags",
			args: []string{"hop", "/src", "proj"},
		},
		{
			name:    "config long form",
			args:    []string{"hop", "--config", "/tmp/config.toml", "/src", "proj"},
			wantCfg: "/tmp/config.toml",
		},
		{
			name:    "config equals form",
			args:    []string{"hop", "--config=/tmp/config.toml", "/src", "proj"},
			wantCfg: "/tmp/config.toml",
		},
		{
			name:    "config short form attached",
			args:    []string{"hop", "-C/tmp/config.toml", "/src", "proj"},
			wantCfg: "/tmp/config.toml",
		},
		{
			name:        "verbose",
			args:        []string{"hop", "-v", "/src", "proj"},
			wantVerbose: true,
		},
		{
			name: "stops at first positional",
			args: []string{"hop", "/src", "--verbose", "proj"},
		},
		{
			name: "stops at end-of-options marker",
			args: []string{"hop", "--", "--verbose"},
		},
		{
			name:        "both flags",
			args:        []string{"hop", "-v", "--config", "/c.toml", "/src", "proj"},
			wantCfg:     "/c.toml",
			wantVerbose: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, verbose := PreParseGlobalFlags(tt.args)
			if cfg != tt.wantCfg {
				t.Errorf("cfgFile = %q, want %q", cfg, tt.wantCfg)
			}
			if verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", verbose, tt.wantVerbose)
			}
		})
	}
}
