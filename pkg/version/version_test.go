package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	prevVersion, prevCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = prevVersion, prevCommit })

	Version, GitCommit = "1.2.3", "abc123"

	info := Info()
	if !strings.HasPrefix(info, "my_own_module version 1.2.3 ") {
		t.Errorf("Info() = %q", info)
	}
	if !strings.Contains(info, "commit: abc123") {
		t.Errorf("Info() missing commit: %q", info)
	}
	if Short() != "1.2.3" {
		t.Errorf("Short() = %q, want 1.2.3", Short())
	}
}
