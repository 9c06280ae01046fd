package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	got := Template()
	if !strings.HasPrefix(got, "shuffleset v1.2.3\n") {
		t.Errorf("Template() = %q, want version on the first line", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q, should contain the commit", String())
	}
}
