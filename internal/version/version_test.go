package version

import (
	"strings"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"older major", "1.0.0", "2.0.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix a", "v1.0.0", "1.0.1", -1, false},
		{"v prefix b", "1.0.0", "v1.0.1", -1, false},
		{"v prefix both", "v1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid a", "notaversion", "1.0.0", 0, true},
		{"invalid b", "1.0.0", "notaversion", 0, true},
		{"dev version", "dev", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		minimum  string
		expected bool
	}{
		{"below minimum", "1.0.0", "1.1.0", false},
		{"at minimum", "1.1.0", "1.1.0", true},
		{"above minimum", "1.2.0", "1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Satisfies(tt.current, tt.minimum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.current, tt.minimum, result, tt.expected)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		build   string
		minimum string
		wantErr string
	}{
		{"no minimum", "0.1.0", "", ""},
		{"dev build skips gate", "dev", "9.9.9", ""},
		{"release satisfies", "v1.4.0", "1.2.0", ""},
		{"release too old", "1.0.0", "1.2.0", "requires version 1.2.0"},
		{"malformed minimum", "1.0.0", "soon", "invalid min_version"},
		{"malformed minimum on dev build", "dev", "soon", "invalid min_version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.build, tt.minimum)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsRelease(t *testing.T) {
	if IsRelease("dev") {
		t.Error("IsRelease(dev) = true, want false")
	}
	if !IsRelease("v0.3.1") {
		t.Error("IsRelease(v0.3.1) = false, want true")
	}
}
