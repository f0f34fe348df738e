package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

func execute(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()

	opts := &rootOptions{}
	cmd := newRootCmd(opts)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	if opts.cleanup != nil {
		_ = opts.cleanup()
	}
	return out.String(), errOut.String(), err
}

// emptyDir moves the test into a directory with no collections.yaml above it.
func emptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd(&rootOptions{})
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"roster", "piglatin", "stats", "workbook", "demo", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "config"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestRosterCmd_Flags(t *testing.T) {
	cmd := rosterCmd(&rootOptions{})
	for _, flag := range []string{"file", "department", "select", "format", "halt-on-error"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on roster command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- roster ---

func TestRoster_PrettyFromArgs(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "roster",
		"Add Amir to Sales.",
		"Add Timo to Engineering",
		"Add TimosBrother to Engineering",
		"Add Lisa to Marketing",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Applied:  4", "Engineering (2)", "  - Timo\n  - TimosBrother", "Marketing (1)", "Sales. (1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRoster_RejectedCommandFailsRun(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "roster", "Add Sally to Engineering", "Add Sally Engineering")
	if err == nil || !strings.Contains(err.Error(), "1 rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if !strings.Contains(out, "✗ line 2 [incomplete]") || !strings.Contains(out, "Engineering (1)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRoster_HaltOnError(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "roster", "--halt-on-error",
		"Remove Sally from Engineering",
		"Add Timo to Engineering",
	)
	if !domain.IsKind(err, domain.KindInvalidCommand) {
		t.Fatalf("expected invalid_command error, got %v", err)
	}
	if strings.Contains(out, "Timo") {
		t.Fatalf("expected batch to stop before Timo, got:\n%s", out)
	}
}

func TestRoster_FileAndDepartment(t *testing.T) {
	dir := emptyDir(t)
	p := writeFile(t, dir, "commands.txt", "# team\nAdd Zoe to Engineering\nAdd Adam to Engineering\nAdd Lisa to Marketing\n")

	out, _, err := execute(t, "roster", "-f", p, "-d", "Engineering")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Engineering (2)\n  - Adam\n  - Zoe\n" {
		t.Fatalf("unexpected output:\n%q", out)
	}
}

func TestRoster_WorkbookFileWithArgs(t *testing.T) {
	dir := emptyDir(t)
	p := writeFile(t, dir, "wb.yaml", "name: team\ncommands:\n  - Add Zoe to Engineering\n")

	out, _, err := execute(t, "roster", "-f", p, "--format", "json", "Add Lisa to Marketing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rep domain.ApplyReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if rep.Applied != 2 || len(rep.Roster) != 2 || rep.Roster[0].Department != "Engineering" {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestRoster_Select(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "roster", "--select", "$.Engineering",
		"Add TimosBrother to Engineering",
		"Add Timo to Engineering",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `["Timo","TimosBrother"]` {
		t.Fatalf("unexpected selection %q", out)
	}
}

func TestRoster_NoCommands(t *testing.T) {
	emptyDir(t)

	_, _, err := execute(t, "roster")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input error, got %v", err)
	}
}

func TestRoster_UnknownFormat(t *testing.T) {
	emptyDir(t)

	_, _, err := execute(t, "roster", "--format", "xml", "Add A to B")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestRoster_ConfigDefaultsApply(t *testing.T) {
	dir := emptyDir(t)
	cfg := writeFile(t, dir, "collections.yaml", "collections:\n  output:\n    format: yaml\n")

	out, _, err := execute(t, "--config", cfg, "roster", "Add Sally to Engineering")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rep domain.ApplyReport
	if err := yaml.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if rep.Applied != 1 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestRoster_WorkspaceIsAutodetected(t *testing.T) {
	dir := emptyDir(t)
	writeFile(t, dir, "collections.yaml", "collections:\n  output:\n    format: json\n")
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	out, _, err := execute(t, "roster", "Add Sally to Engineering")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("expected JSON output from workspace config, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, ".collections", "logs", "collections.log")); err != nil {
		t.Fatalf("expected log file in workspace root: %v", err)
	}
}

func TestRoster_MissingConfigFlag(t *testing.T) {
	dir := emptyDir(t)

	_, _, err := execute(t, "--config", filepath.Join(dir, "nope.yaml"), "roster", "Add A to B")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

// --- piglatin / stats ---

func TestPiglatin_Args(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "piglatin", "first", "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "irst-fay applehay \n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPiglatin_File(t *testing.T) {
	dir := emptyDir(t)
	p := writeFile(t, dir, "text.txt", "This is\nsuch a day")

	out, _, err := execute(t, "piglatin", "-f", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "his-tay ishay uch-say ahay ay-day" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPiglatin_NoText(t *testing.T) {
	emptyDir(t)

	if _, _, err := execute(t, "piglatin"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input error, got %v", err)
	}
}

func TestStats_Args(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "stats", "9", "8", "2", "3,4,5", "6", "7", "1", "0", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Count:      11", "Sum:        45", "Mean:       4", "Median:     4", "Mode:       0 (x2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestStats_JSON(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "stats", "--format", "json", "1", "2", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s domain.NumberSummary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if s.Sum != 6 || s.Median != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestStats_Errors(t *testing.T) {
	emptyDir(t)

	if _, _, err := execute(t, "stats", "1", "two"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input for non-integer, got %v", err)
	}
	if _, _, err := execute(t, "stats"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input for empty input, got %v", err)
	}
}

// --- workbook / demo ---

func TestDemo_RunsBuiltinWorkbook(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "demo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Workbook: Common collections", "== Roster", "Engineering (2)", "== Checks", "✓ count", "== Numbers", "Sum:        45", "== Pig latin", "his-tay ishay"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestWorkbook_File(t *testing.T) {
	dir := emptyDir(t)
	p := writeFile(t, dir, "wb.yaml", "name: mixed\ncommands:\n  - Add Sally to Engineering\n  - Hire Bob to Ops\nnumbers: [1, 2]\n")

	out, _, err := execute(t, "workbook", "-f", p)
	if err == nil || !strings.Contains(err.Error(), "1 rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if !strings.Contains(out, "Workbook: mixed") || !strings.Contains(out, "[invalid_keyword]") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestWorkbook_FailedCheck(t *testing.T) {
	dir := emptyDir(t)
	p := writeFile(t, dir, "wb.yaml", "name: checks\ncommands:\n  - Add Sally to Engineering\nexpect:\n  - path: \"$.Engineering\"\n    count: 2\n")

	out, _, err := execute(t, "workbook", "-f", p)
	if err == nil || !strings.Contains(err.Error(), "1 failed check") {
		t.Fatalf("expected failed check error, got %v", err)
	}
	if !strings.Contains(out, "== Checks") || !strings.Contains(out, "✗ count") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestWorkbook_RequiresFile(t *testing.T) {
	emptyDir(t)

	if _, _, err := execute(t, "workbook"); err == nil {
		t.Fatal("expected error without --file")
	}
}

func TestWorkbook_MissingFile(t *testing.T) {
	dir := emptyDir(t)

	out, _, err := execute(t, "workbook", "-f", filepath.Join(dir, "missing.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found error, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got:\n%s", out)
	}
}

// --- init / version ---

func TestInit_CreatesWorkspace(t *testing.T) {
	dir := emptyDir(t)
	target := filepath.Join(dir, "ws")

	out, _, err := execute(t, "init", "--path", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target in output, got %q", out)
	}
	for _, name := range []string{"collections.yaml", "workbook.yaml", "commands.txt", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	t.Chdir(target)
	if _, _, err := execute(t, "workbook", "-f", "workbook.yaml"); err != nil {
		t.Fatalf("sample workbook should run cleanly: %v", err)
	}
}

func TestVersion(t *testing.T) {
	emptyDir(t)

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "collections ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- helpers ---

func TestOutputFormat(t *testing.T) {
	ws := &workspaceCtx{cfg: domain.Config{Output: domain.OutputConfig{Format: "yaml"}}}
	if got := outputFormat(ws, "pretty", false); got != "yaml" {
		t.Errorf("expected workspace default, got %q", got)
	}
	if got := outputFormat(ws, "json", true); got != "json" {
		t.Errorf("expected explicit flag, got %q", got)
	}
}

func TestLoadWorkspace_NoWorkspaceUsesDefaults(t *testing.T) {
	emptyDir(t)

	ws, err := loadWorkspace("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.root != "" || ws.cfg.Output.Format != "pretty" {
		t.Fatalf("unexpected workspace %+v", ws)
	}
}

func TestLogRoot(t *testing.T) {
	dir := emptyDir(t)

	if got := logRoot(&rootOptions{}); got != "" {
		t.Errorf("expected no log root outside a workspace, got %q", got)
	}
	if got := logRoot(&rootOptions{debug: true}); got == "" {
		t.Error("expected working directory as log root with --debug")
	}

	cfgDir := filepath.Join(dir, "cfg")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := writeFile(t, cfgDir, "collections.yaml", "collections: {}\n")
	if got := logRoot(&rootOptions{configPath: cfg}); got != cfgDir {
		t.Errorf("expected %q, got %q", cfgDir, got)
	}
}
