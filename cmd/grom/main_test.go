package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},         // missing l
		{"2", "4"}, // too many arguments
		{"3"},      // odd
		{"0"},      // below range
		{"18"},     // above range
		{"two"},    // not an integer
	} {
		var stdout, stderr bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		rootCmd.SetArgs(args)

		err := rootCmd.Execute()
		require.Error(t, err, "args=%v", args)
		require.Empty(t, stdout.String(), "args=%v wrote to stdout", args)
	}
}
