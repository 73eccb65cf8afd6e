package dllfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchitecture(t *testing.T) {
	assert.Equal(t, "32", X32.Tag())
	assert.Equal(t, "64", X64.Tag())
	assert.Equal(t, "x32", X32.String())
	assert.Equal(t, "x64", X64.String())
	assert.Equal(t, "Architecture(7)", Architecture(7).String())
	assert.Empty(t, Architecture(7).Tag())
}

func TestParseArchitecture(t *testing.T) {
	tests := []struct {
		in     string
		want   Architecture
		wantOK bool
	}{
		{"32", X32, true},
		{"x32", X32, true},
		{"64", X64, true},
		{"x64", X64, true},
		{"86", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseArchitecture(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSystemDirs_For(t *testing.T) {
	dirs := DefaultSystemDirs()

	assert.Equal(t, DefaultX32Dir, dirs.For(X32))
	assert.Equal(t, DefaultX64Dir, dirs.For(X64))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "installed", OutcomeInstalled.String())
	assert.Equal(t, "already present", OutcomeSkippedAlreadyPresent.String())
	assert.Equal(t, "no library in archive", OutcomeNoMatchingMember.String())
	assert.Equal(t, "unknown", OutcomeUnknown.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}

func TestOutcome_ZeroValueIsUnknown(t *testing.T) {
	var outcome Outcome

	assert.Equal(t, OutcomeUnknown, outcome)
}
