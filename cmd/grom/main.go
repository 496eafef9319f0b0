// grom generates the circom lookup tables for windowed multiples of the
// P-256 base point and prints them on stdout.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nope-zk/grom/circom"
	"github.com/nope-zk/grom/curve"
	"github.com/nope-zk/grom/logger"
	"github.com/nope-zk/grom/rom"
)

var fVerbose bool

var rootCmd = &cobra.Command{
	Use:   "grom l",
	Short: "generates the circom ROM of windowed P-256 base point multiples",
	Long: `grom precomputes, for every l-bit window of a 256-bit scalar, all 2^l
multiples of the P-256 base point, packs their coordinates into three lanes
and re-expresses each group of packed values as the monic polynomial over the
BN254 scalar field vanishing on them. The result is printed on stdout as a
circom dispatch function GROM<l>(i, r).`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "log per-window progress on stderr")
}

func run(cmd *cobra.Command, args []string) error {
	l, err := strconv.Atoi(args[0])
	if err != nil || l < 1 || l > 16 || l%2 != 0 {
		return fmt.Errorf("l must be an even number between 1 and 16")
	}
	if fVerbose {
		logger.SetLevel(zerolog.DebugLevel)
	}

	builder, err := rom.NewBuilder(curve.P256(), l)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := circom.Generate(out, builder); err != nil {
		return err
	}
	return out.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
