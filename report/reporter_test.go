package report

import "testing"

func TestLogLevelFromString(t *testing.T) {
	cases := map[string]int{
		"silent":  LogLevelSilent,
		"error":   LogLevelError,
		"warn":    LogLevelWarn,
		"verbose": LogLevelVerbose,
		"bogus":   LogLevelVerbose,
	}

	for name, want := range cases {
		if got := LogLevelFromString(name); got != want {
			t.Errorf("LogLevelFromString(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestAnyErrorsRecordedAtSilentLevel(t *testing.T) {
	// The silent level suppresses display but never error tracking.
	InitReporter(LogLevelSilent)

	if AnyErrors() {
		t.Fatal("fresh reporter already has errors")
	}

	ReportError("unreadable input")

	if !AnyErrors() {
		t.Fatal("reported error was not recorded")
	}
}
