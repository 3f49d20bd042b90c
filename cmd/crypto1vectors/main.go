// Command crypto1vectors drives the crypto1 engine against the fixed
// vectors spec §8 lists, the way an operator or CI job would exercise a
// library with no wire protocol of its own (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foXaCe/go-crypto1/crypto1"
	"github.com/foXaCe/go-crypto1/prng"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crypto1vectors",
		Short: "Run CRYPTO1 engine checks against known-good vectors",
	}
	root.AddCommand(vectorsCmd(), prngCmd(), noncesCmd())
	return root
}

func vectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors",
		Short: "Check the filter, setup, and nested-parity vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, []check{
				filterZeroCheck,
				filterAllOnesCheck,
				setupVectorCheck,
				nestedParityCadenceCheck,
			})
		},
	}
}

func prngCmd() *cobra.Command {
	var seed uint32
	var steps int
	c := &cobra.Command{
		Use:   "prng",
		Short: "Advance the tag PRNG by --steps from --seed and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "0x%08X\n", prng.Successor(seed, steps))
			return nil
		},
	}
	c.Flags().Uint32Var(&seed, "seed", 0x01020304, "32-bit PRNG seed")
	c.Flags().IntVar(&steps, "steps", 1, "number of successor steps")
	return c
}

func noncesCmd() *cobra.Command {
	var filter uint32
	var width int
	var limit int
	c := &cobra.Command{
		Use:   "nonces",
		Short: "Enumerate candidate nonces consistent with a parity-leak pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			it := prng.NewValidNonceIterator(filter, width)
			n := 0
			for {
				seed, ok := it.Next()
				if !ok || n >= limit {
					break
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%04X\n", seed)
				n++
			}
			return nil
		},
	}
	c.Flags().Uint32Var(&filter, "filter", 0, "captured filter bit pattern")
	c.Flags().IntVar(&width, "width", 8, "filter width in bits")
	c.Flags().IntVar(&limit, "limit", 16, "maximum candidates to print")
	return c
}

type check struct {
	name string
	run  func() error
}

var (
	filterZeroCheck = check{"filter(0) == 0", func() error {
		return expectU8("filter(0)", 0, crypto1.Filter(0))
	}}
	filterAllOnesCheck = check{"filter(0xFFFFFFFF) == 0", func() error {
		return expectU8("filter(0xFFFFFFFF)", 0, crypto1.Filter(0xFFFFFFFF))
	}}
	setupVectorCheck = check{"setup(K=0xFFFFFFFFFFFF, UID, Nc) leaves a non-zero LFSR", func() error {
		key := [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
		uid := [4]byte{0xCD, 0x76, 0x91, 0xF6}
		nonce := [4]byte{0x4E, 0x63, 0x42, 0xEA}
		var s crypto1.State
		crypto1.Setup(&s, key, uid, &nonce)
		if s.Uint48() == 0 {
			return errors.New("setup left the LFSR at zero")
		}
		return nil
	}}
	nestedParityCadenceCheck = check{"setup_nested parity is odd_parity(plaintext nonce) XOR the post-byte filter output", func() error {
		key := [6]byte{}
		uid := [4]byte{0xCD, 0x76, 0x91, 0xF6}
		nonce := [4]byte{0x4E, 0x63, 0x42, 0xEA}

		var reference crypto1.State
		crypto1.LoadKey(&reference, key)
		var want [4]byte
		for i := 0; i < 4; i++ {
			in := nonce[i] ^ uid[i]
			for bit := uint(0); bit < 8; bit++ {
				reference.ClockBit((in>>bit)&1, false)
			}
			want[i] = crypto1.OddParity8(nonce[i]) ^ crypto1.Filter(reference.Odd)
		}

		n := nonce
		var got [4]byte
		var s crypto1.State
		crypto1.SetupNested(&s, key, uid, &n, &got, false)

		if got != want {
			return errors.Errorf("nested parity: want %x, got %x", want, got)
		}
		return nil
	}}
)

func expectU8(label string, want, got uint8) error {
	if want != got {
		return errors.Errorf("%s: want %d, got %d", label, want, got)
	}
	return nil
}

func runChecks(cmd *cobra.Command, checks []check) error {
	var failed int
	for _, c := range checks {
		if err := c.run(); err != nil {
			color.Red("FAIL  %s: %v", c.name, err)
			failed++
			continue
		}
		color.Green("PASS  %s", c.name)
	}
	if failed > 0 {
		return errors.Errorf("%d check(s) failed", failed)
	}
	return nil
}
