package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
	"github.com/abhisek/soroban/internal/store"
)

type env struct {
	db     string
	config string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("SOROBAN_DB", "")
	t.Setenv("SOROBAN_EXAM", "")
	return env{
		db:     filepath.Join(dir, "soroban.db"),
		config: filepath.Join(dir, "missing.toml"),
	}
}

// resetFlags puts every flag back to its default so runs do not leak
// into each other through the shared command tree.
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

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", e.db, "--config", e.config}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e env) seedCoins(t *testing.T, coins int) {
	t.Helper()
	st, err := store.Open(e.db, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()
	svc := session.NewService(st, specs.ExamZenshuren, nil, zap.NewNop())
	p := progress.New(specs.ExamZenshuren)
	p.Coins = coins
	require.NoError(t, svc.SaveProgress(context.Background(), p))
}

func TestVersion(t *testing.T) {
	out, err := newEnv(t).run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "soroban (devel)")
}

func TestSpecs(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "specs")
	require.NoError(t, err)
	assert.Contains(t, out, specs.ExamZenshuren.DisplayName())
	assert.Contains(t, out, "10kyu")

	out, err = e.run(t, "--exam", "nissho", "specs")
	require.NoError(t, err)
	assert.Contains(t, out, specs.ExamNissho.DisplayName())
	assert.NotContains(t, out, "10kyu")
}

func TestUnknownExam(t *testing.T) {
	_, err := newEnv(t).run(t, "--exam", "abacus-league", "specs")
	assert.ErrorContains(t, err, "abacus-league")
}

func TestGenerate_Check(t *testing.T) {
	e := newEnv(t)
	for _, subject := range []string{"mul", "div", "mitori"} {
		out, err := e.run(t, "generate", "--grade", "6", "--subject", subject, "--seed", "7", "--check")
		require.NoError(t, err, subject)
		assert.Contains(t, out, "passed validation", subject)
	}
}

func TestGenerate_SameSeedSameSheet(t *testing.T) {
	e := newEnv(t)
	a, err := e.run(t, "generate", "--grade", "8", "--subject", "mitori", "--seed", "42", "--answers")
	require.NoError(t, err)
	b, err := e.run(t, "generate", "--grade", "8", "--subject", "mitori", "--seed", "42", "--answers")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "= ")
}

func TestGenerate_BadInput(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "generate", "--grade", "6", "--subject", "sudoku")
	assert.ErrorContains(t, err, "unknown subject")

	_, err = e.run(t, "generate", "--grade", "12", "--subject", "mul")
	assert.ErrorContains(t, err, "no grade 12")

	_, err = e.run(t, "generate", "--grade", "9", "--subject", "denpyo")
	assert.ErrorContains(t, err, "does not include")
}

func TestReportFailures_Retryable(t *testing.T) {
	var buf bytes.Buffer
	err := reportFailures(&buf, map[int]*problemgen.ValidationError{
		4: {Validator: "inline-math", Message: "division leaves a remainder", Retryable: true},
		1: {Validator: "digit-bounds", Message: "operand has 3 digits, want 2"},
	}, 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "problem 2: "))
	assert.NotContains(t, lines[0], "(retryable)")
	assert.True(t, strings.HasPrefix(lines[1], "problem 5: "))
	assert.Contains(t, lines[1], "(retryable)")
	assert.EqualError(t, err, "2 of 10 problems failed validation (1 retryable)")

	buf.Reset()
	err = reportFailures(&buf, map[int]*problemgen.ValidationError{
		0: {Validator: "column-sum", Message: "running total went negative", Retryable: true},
	}, 10)
	assert.ErrorContains(t, err, "try another --seed")
}

func TestCheckout(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "checkout", "--price", "380", "--total", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "total 1000")
	assert.Contains(t, out, "exact")

	out, err = e.run(t, "checkout", "--price", "500", "--total", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Short by 200")
}

func TestShopAndProgress(t *testing.T) {
	e := newEnv(t)
	e.seedCoins(t, 100)
	first := progress.Catalog()[0]

	out, err := e.run(t, "shop", "buy", first.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Bought")

	_, err = e.run(t, "shop", "buy", first.ID)
	assert.ErrorIs(t, err, progress.ErrAlreadyOwned)

	_, err = e.run(t, "shop", "place", "2", first.ID)
	require.NoError(t, err)

	out, err = e.run(t, "shop", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "owned")
	assert.Contains(t, out, "["+first.Icon+"]")

	out, err = e.run(t, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "● 70 coins")
	assert.Contains(t, out, first.Name)
}

func TestExport(t *testing.T) {
	e := newEnv(t)
	e.seedCoins(t, 55)

	out, err := e.run(t, "export")
	require.NoError(t, err)
	assert.Equal(t, int64(55), gjson.Get(out, "progress.coins").Int())
	assert.Equal(t, "zenshuren", gjson.Get(out, "examBody").String())

	out, err = e.run(t, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "coins: 55")

	_, err = e.run(t, "export", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestReset(t *testing.T) {
	e := newEnv(t)
	e.seedCoins(t, 55)

	out, err := e.run(t, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 saved records")

	out, err = e.run(t, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "● 0 coins")
}
