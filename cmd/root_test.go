package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(t, names, []string{"serve", "migrate", "siwe-login"})

	migrate, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	require.Equal(t, "down", migrate.Name())

	steps := migrate.Flags().Lookup("steps")
	require.NotNil(t, steps)
	require.Equal(t, "1", steps.DefValue)
	require.Equal(t, "n", steps.Shorthand)
}

func TestSiweLoginRequiresKey(t *testing.T) {
	t.Setenv("GNOSISPAY_PRIVATE_KEY", "")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"siwe-login"})

	err := root.Execute()
	require.EqualError(t, err, "GNOSISPAY_PRIVATE_KEY is not set")
	require.Empty(t, out.String())
}
