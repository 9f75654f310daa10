package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
	"github.com/ParrotsDL/CLUE/utils/fmtx"
)

var (
	floatNotation  string
	floatPrecision int
	floatWidth     int
	floatZero      bool
	floatPlus      bool
	floatUpper     bool
	floatProfile   string
)

var floatCmd = &cobra.Command{
	Use:   "float <value>",
	Short: "Format a floating-point value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return clueerror.Wrap(err, "not a number").
				WithCode(clueerror.CodeInvalidInput).
				WithDetail("value", args[0])
		}

		if floatProfile != "" {
			cfg, err := loadProfiles()
			if err != nil {
				return err
			}
			p, err := cfg.Profile(floatProfile)
			if err != nil {
				return err
			}
			out, err := p.FormatFloat(value)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		flags := styleFlags(floatZero, floatPlus, floatUpper)
		switch floatNotation {
		case "fixed", "sci":
			f := fmtx.FixedFmt()
			if floatNotation == "sci" {
				f = fmtx.SciFmt()
			}
			if floatPrecision >= 0 {
				f = f.Precision(floatPrecision)
			}
			fmt.Println(fmtx.Strf(value, f.Width(floatWidth).Flags(flags)))
		case "shortest":
			fmt.Println(fmtx.Strf(value, fmtx.ShortestFmt()))
		default:
			return clueerror.Newf("unknown notation %q, expected fixed, sci or shortest", floatNotation).
				WithCode(clueerror.CodeInvalidInput)
		}
		return nil
	},
}

func init() {
	floatCmd.Flags().StringVar(&floatNotation, "notation", "shortest", "output notation (fixed, sci, shortest)")
	floatCmd.Flags().IntVar(&floatPrecision, "precision", -1, "decimal precision for fixed and sci")
	floatCmd.Flags().IntVar(&floatWidth, "width", 0, "minimum field width")
	floatCmd.Flags().BoolVar(&floatZero, "zero", false, "pad the field with zeros")
	floatCmd.Flags().BoolVar(&floatPlus, "plus", false, "force an explicit plus sign")
	floatCmd.Flags().BoolVar(&floatUpper, "upper", false, "upper-case exponent and special values")
	floatCmd.Flags().StringVar(&floatProfile, "profile", "", "format through a configured profile")

	rootCmd.AddCommand(floatCmd)
}
