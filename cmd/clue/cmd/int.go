package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
	"github.com/ParrotsDL/CLUE/utils/fmtx"
)

var (
	intBase    uint
	intWidth   int
	intZero    bool
	intPlus    bool
	intUpper   bool
	intProfile string
)

var intCmd = &cobra.Command{
	Use:   "int <value>",
	Short: "Format an integer value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return clueerror.Wrap(err, "not an integer").
				WithCode(clueerror.CodeInvalidInput).
				WithDetail("value", args[0])
		}

		if intProfile != "" {
			cfg, err := loadProfiles()
			if err != nil {
				return err
			}
			p, err := cfg.Profile(intProfile)
			if err != nil {
				return err
			}
			out, err := p.FormatInt(value)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		switch intBase {
		case 8, 10, 16:
		default:
			return clueerror.Newf("unsupported base %d, expected 8, 10 or 16", intBase).
				WithCode(clueerror.CodeInvalidInput)
		}

		f := fmtx.DefaultInt().
			Base(intBase).
			Width(intWidth).
			Flags(styleFlags(intZero, intPlus, intUpper))
		fmt.Println(fmtx.Strf(value, fmtx.For[int64](f)))
		return nil
	},
}

func init() {
	intCmd.Flags().UintVar(&intBase, "base", 10, "numeric base (8, 10, 16)")
	intCmd.Flags().IntVar(&intWidth, "width", 0, "minimum field width")
	intCmd.Flags().BoolVar(&intZero, "zero", false, "pad the field with zeros")
	intCmd.Flags().BoolVar(&intPlus, "plus", false, "force an explicit plus sign")
	intCmd.Flags().BoolVar(&intUpper, "upper", false, "upper-case digit letters")
	intCmd.Flags().StringVar(&intProfile, "profile", "", "format through a configured profile")

	rootCmd.AddCommand(intCmd)
}
