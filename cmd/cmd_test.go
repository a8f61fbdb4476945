package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with a fresh config file and args and
// returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "config.toml"), args...)
}

func executeWithConfig(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfg, "--timezone", "UTC"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of c and its subcommands back to its default,
// so values from an earlier run do not leak into the next one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "60", "minutes", "hours"}, "1 hours\n"},
		{[]string{"convert", "1", "week", "days"}, "7 days\n"},
		{[]string{"convert", "365.25", "days", "years"}, "1 years\n"},
	}
	for _, tt := range tests {
		got, err := execute(t, tt.args...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestConvertCommandRejectsUnit(t *testing.T) {
	if _, err := execute(t, "convert", "1", "days", "months"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestDiffCommandJSON(t *testing.T) {
	out, err := execute(t, "diff",
		"--from", "2018-01-01 10:30:00", "--from-tz", "Asia/Kolkata",
		"--to", "2018-01-08 05:00:00", "--to-tz", "UTC",
		"--unit", "hours", "--format", "json")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}

	var r struct {
		Difference string  `json:"difference"`
		Weeks      int     `json:"weeks"`
		DaysInUnit float64 `json:"days_in_unit"`
		Duration   struct {
			TotalDays int `json:"total_days"`
			Weekdays  int `json:"weekdays"`
		} `json:"duration"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if r.Duration.TotalDays != 7 || r.Weeks != 1 || r.Duration.Weekdays != 5 {
		t.Errorf("counts = %+v, weeks %d", r.Duration, r.Weeks)
	}
	if r.DaysInUnit != 168 {
		t.Errorf("days_in_unit = %v, want 168", r.DaysInUnit)
	}
	if r.Difference != "7 days, 0 hours, 0 minutes, 0 seconds" {
		t.Errorf("difference = %q", r.Difference)
	}
}

func TestDiffCommandRejectsBadDate(t *testing.T) {
	_, err := execute(t, "diff", "--from", "01/01/2018", "--to", "2018-01-02")
	if err == nil || !strings.Contains(err.Error(), "--from") {
		t.Errorf("err = %v, want invalid --from", err)
	}
}

func TestDiffCommandRejectsBadTimezone(t *testing.T) {
	_, err := execute(t, "diff", "--from", "2018-01-01", "--to", "2018-01-02", "--to-tz", "Mars/Base")
	if err == nil || !strings.Contains(err.Error(), "Mars/Base") {
		t.Errorf("err = %v, want invalid timezone naming Mars/Base", err)
	}
}

func TestZonesCommand(t *testing.T) {
	out, err := execute(t, "zones", "--filter", "kolkata")
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	if !strings.Contains(out, "Asia/Kolkata") {
		t.Errorf("zones output %q lacks Asia/Kolkata", out)
	}
}

func TestInteractiveFromPipedInput(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("2018-13-40\n2018-01-01\nn\n2018-02-01\nn\nhours\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("interactive run: %v", err)
	}
	for _, want := range []string{
		"'2018-13-40' is not a valid Date, please try again",
		"31 days, 0 hours, 0 minutes, 0 seconds",
		"744 hours",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	if _, err := execute(t, "zones", "--filter", "kolkata"); err != nil {
		t.Fatalf("zones: %v", err)
	}
	out, err := execute(t, "zones")
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	if !strings.Contains(out, "Europe/Berlin") {
		t.Errorf("second run still filtered: %q", out)
	}

	if _, err := execute(t, "diff", "--from", "2018-01-01", "--to", "2018-01-02", "--from-tz", "Asia/Kolkata", "--unit", "hours"); err != nil {
		t.Fatalf("diff: %v", err)
	}
	out, err = execute(t, "diff", "--from", "2018-01-01", "--to", "2018-01-02", "--format", "json")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	var r struct {
		Unit       string `json:"unit"`
		Difference string `json:"difference"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if r.Unit != "days" || r.Difference != "1 days, 0 hours, 0 minutes, 0 seconds" {
		t.Errorf("second diff = %+v, want unit days and one whole day in UTC", r)
	}

	if _, err := execute(t, "diff", "--to", "2018-01-02"); err == nil {
		t.Error("expected --from to be required again")
	}
}

func TestCorruptConfigExitsWithCode2(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("default_unit = [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := executeWithConfig(t, cfg, "convert", "1", "days", "hours")
	var ee *exitError
	if !errors.As(err, &ee) || ee.code != 2 {
		t.Fatalf("err = %v, want exit code 2", err)
	}
	if !strings.Contains(err.Error(), cfg) {
		t.Errorf("err = %v, want it to name %s", err, cfg)
	}
}

func TestUnwritableConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", "")
	out, err := executeWithConfig(t, "", "convert", "1", "days", "hours")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "24 hours") {
		t.Errorf("output = %q, want 24 hours", out)
	}
}
