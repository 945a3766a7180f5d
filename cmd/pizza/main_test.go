package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Wshid/effective-java/pkg/api"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "ENV", "PIZZA_DEFAULT_SIZE", "PIZZA_MAX_TOPPINGS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNYCollapsesDuplicateToppings(t *testing.T) {
	out, logs, err := run(t,
		"ny", "--size", "large", "-t", "ham", "-t", "MUSHROOM", "-t", "ham",
	)
	require.NoError(t, err)

	assert.Equal(t, "ny", gjson.Get(out, "kind").String())
	assert.Equal(t, "large", gjson.Get(out, "size").String())
	assert.Equal(t, int64(2), gjson.Get(out, "toppings.#").Int())
	assert.Equal(t, "ham", gjson.Get(out, "toppings.0").String())
	assert.Equal(t, "mushroom", gjson.Get(out, "toppings.1").String())

	assert.Equal(t, "Pizza built", gjson.Get(logs, "msg").String())
	assert.Equal(t, "ham,mushroom", gjson.Get(logs, "toppings").String())
	assert.Equal(t, Name, gjson.Get(logs, "service").String())
}

func TestNYUsesDefaultSize(t *testing.T) {
	out, _, err := run(t, "ny")
	require.NoError(t, err)

	assert.Equal(t, string(api.Medium), gjson.Get(out, "size").String())
	assert.Equal(t, int64(0), gjson.Get(out, "toppings.#").Int())
}

func TestCalzoneSauceInside(t *testing.T) {
	out, _, err := run(t, "calzone", "--sauce-inside", "-t", "onion")
	require.NoError(t, err)

	assert.Equal(t, "calzone", gjson.Get(out, "kind").String())
	assert.True(t, gjson.Get(out, "sauce_inside").Bool())
	assert.Equal(t, "onion", gjson.Get(out, "toppings.0").String())
}

func TestRejectsUnknownTopping(t *testing.T) {
	out, _, err := run(t, "calzone", "-t", "pineapple")
	assert.ErrorIs(t, err, api.ErrInvalidTopping)
	assert.Empty(t, out)
}

func TestRejectsUnknownSize(t *testing.T) {
	_, _, err := run(t, "ny", "--size", "jumbo")
	assert.ErrorIs(t, err, api.ErrInvalidSize)
}

func TestRejectsTooManyToppings(t *testing.T) {
	_, _, err := run(t, "ny",
		"-t", "ham", "-t", "onion", "-t", "pepper", "-t", "sausage",
	)
	assert.ErrorIs(t, err, ErrTooManyToppings)
}

func TestEnvFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizza.env")
	require.NoError(t, os.WriteFile(path,
		[]byte("PIZZA_DEFAULT_SIZE=small\nPIZZA_MAX_TOPPINGS=5\n"), 0o600,
	))

	out, _, err := run(t, "--env-file", path, "ny",
		"-t", "ham", "-t", "onion", "-t", "pepper", "-t", "sausage",
	)
	require.NoError(t, err)
	assert.Equal(t, "small", gjson.Get(out, "size").String())
	assert.Equal(t, int64(4), gjson.Get(out, "toppings.#").Int())
}
