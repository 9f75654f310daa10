package cmd

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the formatter profiles of a configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProfiles()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)

		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Profile").SetAlign(tabulate.ML)
		tab.Header("Kind").SetAlign(tabulate.ML)
		tab.Header("Base").SetAlign(tabulate.MR)
		tab.Header("Width").SetAlign(tabulate.MR)
		tab.Header("Precision").SetAlign(tabulate.MR)
		tab.Header("Flags").SetAlign(tabulate.ML)

		for _, name := range names {
			p := cfg.Profiles[name]
			row := tab.Row()
			row.Column(name)
			row.Column(p.Kind)
			row.Column(zeroDash(int(p.Base)))
			row.Column(zeroDash(p.Width))
			if p.Precision != nil {
				row.Column(strconv.Itoa(*p.Precision))
			} else {
				row.Column("-")
			}
			if len(p.Flags) > 0 {
				row.Column(strings.Join(p.Flags, "|"))
			} else {
				row.Column("-")
			}
		}
		tab.Print(os.Stdout)
		return nil
	},
}

func zeroDash(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
