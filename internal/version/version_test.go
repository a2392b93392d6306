package version

import "testing"

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"defaults", "dev", "unknown", "unknown", "dev"},
		{"with commit", "1.2.0", "abc1234", "unknown", "1.2.0 (abc1234)"},
		{"full", "1.2.0", "abc1234", "2026-08-28", "1.2.0 (abc1234) built 2026-08-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
