package config

import "testing"

func join(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += "|"
		}
		out += s
	}
	return out
}

func TestSplitArgv_FlagThenCommandWithDashes(t *testing.T) {
	tcvtArgs, childArgv := SplitArgv([]string{"-c", "3", "--", "ls", "-la"})
	if join(tcvtArgs) != "-c|3" {
		t.Errorf("tcvtArgs = %q, want -c|3", join(tcvtArgs))
	}
	if join(childArgv) != "ls|-la" {
		t.Errorf("childArgv = %q, want ls|-la (not consumed as a tcvt flag)", join(childArgv))
	}
}

func TestSplitArgv_NoDashDash(t *testing.T) {
	tcvtArgs, childArgv := SplitArgv([]string{"-c", "4", "vim", "file.go"})
	if join(tcvtArgs) != "-c|4" {
		t.Errorf("tcvtArgs = %q, want -c|4", join(tcvtArgs))
	}
	if join(childArgv) != "vim|file.go" {
		t.Errorf("childArgv = %q, want vim|file.go", join(childArgv))
	}
}

func TestSplitArgv_NoFlagsAtAll(t *testing.T) {
	tcvtArgs, childArgv := SplitArgv([]string{"bash"})
	if len(tcvtArgs) != 0 {
		t.Errorf("tcvtArgs = %v, want empty", tcvtArgs)
	}
	if join(childArgv) != "bash" {
		t.Errorf("childArgv = %q, want bash", join(childArgv))
	}
}

func TestSplitArgv_EmptyArgsRunsDefaultShell(t *testing.T) {
	tcvtArgs, childArgv := SplitArgv(nil)
	if len(tcvtArgs) != 0 || len(childArgv) != 0 {
		t.Errorf("SplitArgv(nil) = (%v, %v), want (nil, nil)", tcvtArgs, childArgv)
	}
}
