package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/opusclip-demo/internal/analytics"
	"github.com/angelmondragon/opusclip-demo/pkg/config"
	"github.com/angelmondragon/opusclip-demo/pkg/db/models"
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/angelmondragon/opusclip-demo/pkg/kvstore"
	"github.com/angelmondragon/opusclip-demo/pkg/logger"
)

// cliTestEnv runs commands against one memory backend, opening a fresh
// environment per invocation the way separate opusctl processes would.
type cliTestEnv struct {
	cfg     *config.Config
	backend *kvstore.MemoryBackend
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.Storage.Backend = "memory"
	cfg.Analytics.MaxEvents = 100
	return &cliTestEnv{cfg: cfg, backend: kvstore.NewMemoryBackend()}
}

func (e *cliTestEnv) open(ctx context.Context) (*environment, error) {
	return buildEnvironment(ctx, e.cfg, logger.Nop(), e.backend)
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(newCommandContext(e.open))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *cliTestEnv) runJSON(t *testing.T, dest any, args ...string) {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), dest), out)
}

func TestProjectsLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	var projects []models.Project
	env.runJSON(t, &projects, "projects", "list")
	require.Len(t, projects, 6)

	var created models.Project
	env.runJSON(t, &created, "projects", "create", "--title", "  Launch teaser  ", "--duration", "42")
	assert.Equal(t, "Launch teaser", created.Title)
	assert.Equal(t, float64(42), created.Duration)

	env.runJSON(t, &projects, "projects", "list")
	require.Len(t, projects, 7)
	assert.Equal(t, created.ID, projects[0].ID)

	var clips []models.Clip
	env.runJSON(t, &clips, "projects", "clips", created.ID)
	assert.Len(t, clips, 5)

	out, err := env.run(t, "projects", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+created.ID)

	env.runJSON(t, &projects, "projects", "list")
	assert.Len(t, projects, 6)

	_, err = env.run(t, "projects", "delete", created.ID)
	assert.Error(t, err)
}

func TestResetRestoresFixtures(t *testing.T) {
	env := setupCLITestEnv(t)

	_, err := env.run(t, "projects", "delete", "project-1")
	require.NoError(t, err)

	out, err := env.run(t, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Storage reset")

	var projects []models.Project
	env.runJSON(t, &projects, "projects", "list")
	assert.Len(t, projects, 6)

	out, err = env.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 6 projects")
}

func TestPlansReportAnnualSavings(t *testing.T) {
	env := setupCLITestEnv(t)

	var plans []planRow
	env.runJSON(t, &plans, "plans")
	require.NotEmpty(t, plans)
	assert.Equal(t, "plan-1", plans[0].ID)
	assert.True(t, decimal.NewFromInt(58).Equal(plans[0].AnnualSavings), plans[0].AnnualSavings.String())

	out, err := env.run(t, "plans", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "$58.00")
	assert.Contains(t, out, "Overlap Team *")
}

func TestEventsListAndClear(t *testing.T) {
	env := setupCLITestEnv(t)
	ctx := context.Background()

	log, err := analytics.New(analytics.Params{Storage: kvstore.New(env.backend, nil, nil)})
	require.NoError(t, err)
	_, err = log.PageView(ctx, "home")
	require.NoError(t, err)
	_, err = log.CTAClick(ctx, "try-free")
	require.NoError(t, err)

	var events []analytics.Event
	env.runJSON(t, &events, "events", "list", "-n", "1")
	require.Len(t, events, 1)
	assert.Equal(t, enums.AnalyticsEventCTAClick, events[0].Type)

	out, err := env.run(t, "events", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	env.runJSON(t, &events, "events", "dump")
	assert.Empty(t, events)

	_, err = env.run(t, "events", "list", "--limit", "-1")
	assert.Error(t, err)
}

func TestStatusTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := env.run(t, "status", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend:    memory")
	assert.Contains(t, out, "Projects:   6")

	var report statusReport
	env.runJSON(t, &report, "status")
	assert.Equal(t, 6, report.Projects)
	assert.Nil(t, report.LastSavedAt)

	_, err = env.run(t, "reset")
	require.NoError(t, err)
	env.runJSON(t, &report, "status")
	assert.NotNil(t, report.LastSavedAt)
}

func TestUnknownOutputFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	_, err := env.run(t, "plans", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestMigrateValidateNeedsNoStorage(t *testing.T) {
	env := setupCLITestEnv(t)
	out, err := env.run(t, "migrate", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Embedded migrations are valid")
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{
		0:    "0:00",
		9.8:  "0:09",
		75:   "1:15",
		3601: "60:01",
		-3:   "0:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatDuration(in), "%v", in)
	}
}
