package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionCommandsShareErrorHandling(t *testing.T) {
	for _, c := range []*cobra.Command{provisionCmd, provisionToolsCmd, provisionLicensesCmd} {
		require.NotNil(t, c.RunE, c.Use)
		assert.True(t, c.SilenceUsage, c.Use)
		assert.True(t, c.SilenceErrors, c.Use)
	}
}

func TestProvisionSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range provisionCmd.Commands() {
		names[c.Use] = true
	}
	assert.True(t, names["tools"])
	assert.True(t, names["licenses"])
}
