package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	flag := serve.Flags().Lookup("skip-migrate")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)

	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)
	assert.Equal(t, "migrate", migrate.Name())
}

func TestRootCmd_SubcommandsGetContext(t *testing.T) {
	root := newRootCmd()

	var got context.Context

	root.AddCommand(&cobra.Command{
		Use: "noop",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = cmd.Context()
			return nil
		},
	})
	root.SetArgs([]string{"noop"})

	require.NoError(t, root.Execute())
	assert.NotNil(t, got, "serve and migrate hand cmd.Context() straight to the database layer")
}
