package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersView = `view: orders {
  sql_table_name: shop.orders ;;

  dimension: order_id {
    type: string
    sql: ${TABLE}.order_id ;;
  }

  dimension: customer_id {
    type: string
    sql: ${TABLE}.customer_id ;;
  }

  dimension: status {
    type: string
    sql: ${TABLE}.status ;;
  }

  dimension: amount {
    type: number
    sql: ${TABLE}.amount ;;
  }

  dimension_group: created {
    type: time
    timeframes: [raw, date]
    sql: ${TABLE}.created_at ;;
  }
}
`

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	env    map[string]string
}

// newTestApp runs commands from a fresh working directory.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Chdir(t.TempDir())

	ta := &testApp{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		env:    map[string]string{},
	}
	ta.App = New(ta.stdout, ta.stderr)
	ta.getenv = func(key string) string { return ta.env[key] }

	return ta
}

func (ta *testApp) run(args ...string) int {
	ta.stdout.Reset()
	ta.stderr.Reset()

	return ta.Run(context.Background(), args)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, ExitUsage},
		{"unknown command", []string{"frobnicate"}, ExitUsage},
		{"help", []string{"help"}, ExitOK},
		{"generate without file", []string{"generate"}, ExitUsage},
		{"generate too many args", []string{"generate", "a", "b", "c"}, ExitUsage},
		{"unknown flag", []string{"generate", "--nope", "x.view.lkml"}, ExitUsage},
		{"flag help", []string{"generate", "--help"}, ExitOK},
		{"batch bad jobs", []string{"batch", "-j", "0"}, ExitUsage},
		{"batch bad exclude", []string{"batch", "--exclude", "["}, ExitUsage},
		{"ontology without file", []string{"ontology"}, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			assert.Equal(t, tt.want, app.run(tt.args...))
		})
	}
}

func TestGenerate(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "orders.view.lkml", ordersView)

	code := app.run("generate", view, "-o", "out")
	require.Equal(t, ExitOK, code, app.stderr.String())

	assert.Contains(t, app.stdout.String(), "orders.semantic.view.lkml")
	assert.Contains(t, app.stdout.String(), "Removed original file: orders.view.lkml")
	assert.FileExists(t, filepath.Join("out", "views", "orders", "orders.style.view.lkml"))
	assert.FileExists(t, filepath.Join("out", "explores", "orders.explore.lkml"))
	assert.FileExists(t, filepath.Join("out", "runs", "ledger.db"))
	assert.NoFileExists(t, view)

	semantic, err := os.ReadFile(filepath.Join("out", "views", "orders", "orders.semantic.view.lkml"))
	require.NoError(t, err)
	assert.Contains(t, string(semantic), "  dimension: order_id {\n    primary_key: yes\n  }")
	assert.Contains(t, string(semantic), "  dimension: customer_id {\n  }")
	assert.Contains(t, string(semantic), "  measure: amount_total {")
}

func TestGenerate_RenameAndKeepOriginal(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "orders.view.lkml", ordersView)

	code := app.run("generate", view, "fct_orders", "--keep-original", "-o", "out")
	require.Equal(t, ExitOK, code, app.stderr.String())

	assert.FileExists(t, view)
	assert.FileExists(t, filepath.Join("out", "views", "fct_orders", "fct_orders.source.view.lkml"))
}

func TestGenerate_DryRun(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "orders.view.lkml", ordersView)

	code := app.run("generate", view, "--dry-run", "--dump", "-o", "out")
	require.Equal(t, ExitOK, code, app.stderr.String())

	out := app.stdout.String()
	assert.Contains(t, out, "Dry run, nothing written:")
	assert.Contains(t, out, "Primary Keys: [order_id]")
	assert.Contains(t, out, "IDs: [customer_id]")
	assert.Contains(t, out, "Measures: [amount_total]")
	assert.Contains(t, out, "PrimaryKey: (string) (len=8) \"order_id\"")

	assert.FileExists(t, view)
	assert.NoDirExists(t, "out")
}

func TestGenerate_OutputDirFromEnv(t *testing.T) {
	app := newTestApp(t)
	app.env[EnvOutputDir] = "env_out"
	view := writeFile(t, "orders.view.lkml", ordersView)

	require.Equal(t, ExitOK, app.run("generate", view), app.stderr.String())
	assert.DirExists(t, filepath.Join("env_out", "views", "orders"))
}

func TestGenerate_FlagBeatsEnv(t *testing.T) {
	app := newTestApp(t)
	app.env[EnvOutputDir] = "env_out"
	view := writeFile(t, "orders.view.lkml", ordersView)

	require.Equal(t, ExitOK, app.run("generate", view, "-o", "flag_out"), app.stderr.String())
	assert.DirExists(t, "flag_out")
	assert.NoDirExists(t, "env_out")
}

func TestGenerate_InvalidVerboseEnv(t *testing.T) {
	app := newTestApp(t)
	app.env[EnvVerbose] = "loud"
	view := writeFile(t, "orders.view.lkml", ordersView)

	assert.Equal(t, ExitUsage, app.run("generate", view))
	assert.Contains(t, app.stderr.String(), EnvVerbose)
}

func TestGenerate_ConfigFromWorkingDir(t *testing.T) {
	app := newTestApp(t)
	writeFile(t, "config.yaml", "classification:\n  force_as_ids: [status]\n")
	view := writeFile(t, "orders.view.lkml", ordersView)

	require.Equal(t, ExitOK, app.run("generate", view, "--dry-run"), app.stderr.String())
	assert.Contains(t, app.stdout.String(), "IDs: [customer_id status]")
}

func TestGenerate_MissingConfig(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "orders.view.lkml", ordersView)

	assert.Equal(t, ExitFailure, app.run("generate", view, "--config", "missing.yaml"))
	assert.Contains(t, app.stderr.String(), "missing.yaml")
}

func TestGenerate_Strict(t *testing.T) {
	app := newTestApp(t)
	writeFile(t, "strict.yaml", "classification:\n  force_as_measures: [amont]\n")
	view := writeFile(t, "orders.view.lkml", ordersView)

	assert.Equal(t, ExitOK, app.run("generate", view, "--config", "strict.yaml", "--dry-run"))
	assert.Equal(t, ExitFailure, app.run("generate", view, "--config", "strict.yaml", "--strict", "--dry-run"))
	assert.Contains(t, app.stderr.String(), "amount")
}

func TestGenerate_ConfigWarningsLogged(t *testing.T) {
	app := newTestApp(t)
	writeFile(t, "config.yaml", `classification:
  force_as_ids: [stauts]
ontology:
  relationships:
    - to: customers
      via: ${orders.customer_id} = ${customers.id}
`)
	view := writeFile(t, "orders.view.lkml", ordersView)

	code := app.run("generate", view, "--dry-run")
	require.Equal(t, ExitOK, code, app.stderr.String())

	errOut := app.stderr.String()
	assert.Contains(t, errOut, "configuration warning")
	assert.Contains(t, errOut, "unused_relationship")
	assert.Contains(t, errOut, "override ignored")
	assert.Contains(t, errOut, "did you mean status?")
	assert.Contains(t, app.stdout.String(), "IDs: [customer_id]")
}

func TestGenerate_ParseError(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "broken.view.lkml", "view: broken {\n")

	assert.Equal(t, ExitFailure, app.run("generate", view))
	assert.Contains(t, app.stderr.String(), "broken.view.lkml:")
	assert.FileExists(t, view)
}

func TestBatch(t *testing.T) {
	app := newTestApp(t)
	writeFile(t, filepath.Join("views", "orders.view.lkml"), ordersView)
	writeFile(t, filepath.Join("views", "refunds.view.lkml"), "view: refunds {\n  dimension: refund_id { type: string }\n}\n")
	writeFile(t, filepath.Join("views", "orders_backup.view.lkml"), ordersView)
	writeFile(t, filepath.Join("views", "broken.view.lkml"), "view: broken {\n")

	code := app.run("batch", "-v", "views", "-o", "out", "--exclude", "*_backup*", "-j", "2")
	assert.Equal(t, ExitFailure, code)

	out := app.stdout.String()
	assert.Contains(t, out, "Found 3 view file(s)")
	assert.Contains(t, out, "ok      orders")
	assert.Contains(t, out, "ok      refunds")
	assert.Contains(t, out, "failed  broken")
	assert.Contains(t, out, "Successful: 2, failed: 1")

	assert.FileExists(t, filepath.Join("out", "views", "orders", "orders.semantic.view.lkml"))
	assert.FileExists(t, filepath.Join("out", "views", "refunds", "refunds.semantic.view.lkml"))
	assert.NoDirExists(t, filepath.Join("out", "views", "orders_backup"))
	assert.FileExists(t, filepath.Join("views", "orders_backup.view.lkml"))
	assert.FileExists(t, filepath.Join("views", "broken.view.lkml"))

	require.Equal(t, ExitOK, app.run("history", "-o", "out"))
	assert.Contains(t, app.stdout.String(), "orders")
	assert.Contains(t, app.stdout.String(), "refunds")
}

func TestBatch_DryRun(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, filepath.Join("views", "orders.view.lkml"), ordersView)

	require.Equal(t, ExitOK, app.run("batch", "-v", "views", "--dry-run"), app.stderr.String())
	assert.Contains(t, app.stdout.String(), "orders.view.lkml -> orders")
	assert.FileExists(t, view)
	assert.NoDirExists(t, "model_project")
}

func TestBatch_EmptyDir(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.Mkdir("views", 0o755))

	require.Equal(t, ExitOK, app.run("batch", "-v", "views"))
	assert.Contains(t, app.stdout.String(), "No *.view.lkml files found")
}

func TestBatch_MissingDir(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, ExitFailure, app.run("batch", "-v", "nowhere"))
	assert.Contains(t, app.stderr.String(), "views directory not found")
}

func TestInitConfig(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, ExitOK, app.run("init-config"))
	assert.FileExists(t, "config.yaml")

	assert.Equal(t, ExitFailure, app.run("init-config"))
	assert.Equal(t, ExitOK, app.run("init-config", "--force"))

	require.Equal(t, ExitOK, app.run("init-config", "-o", "custom.yaml"))
	assert.FileExists(t, "custom.yaml")
}

func TestOntology(t *testing.T) {
	app := newTestApp(t)
	view := writeFile(t, "orders.view.lkml", ordersView)

	require.Equal(t, ExitOK, app.run("ontology", view), app.stderr.String())

	out := app.stdout.String()
	assert.Contains(t, out, "ontology:")
	assert.Contains(t, out, "Orders:")
	assert.Contains(t, out, "extracted_from_lookml")
	assert.Contains(t, out, "- order_id")

	require.Equal(t, ExitOK, app.run("ontology", view, "-o", "ontology.yaml"))
	assert.FileExists(t, "ontology.yaml")
	assert.FileExists(t, view)
}

func TestHistory_NoLedger(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, ExitOK, app.run("history", "-o", "out"))
	assert.Contains(t, app.stdout.String(), "No runs recorded")
}

func TestFindViews(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.view.lkml"), "")
	writeFile(t, filepath.Join(dir, "a.view.lkml"), "")
	writeFile(t, filepath.Join(dir, "a_old.view.lkml"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "nested", "c.view.lkml"), "")

	files, err := findViews(dir, []string{"*_old*"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.view.lkml"),
		filepath.Join(dir, "b.view.lkml"),
	}, files)
}
