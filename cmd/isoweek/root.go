package main

import (
	"maps"

	"github.com/mazzegi/isoweek/config"
	"github.com/mazzegi/log"
	"github.com/spf13/cobra"
)

type app struct {
	env config.Env
	cfg config.Config

	offset    int
	workers   int
	weekday   int
	inclusive string
	step      int
}

func newRootCmd(env config.Env) *cobra.Command {
	a := &app{env: env}
	root := &cobra.Command{
		Use:   "isoweek",
		Short: "Convert between dates and ISO-8601 weeks",
		Long: `isoweek converts dates into ISO-8601 week ("2023-W01") and week-date ("2023-W01-1") strings and back.

Weeks start on Monday unless an offset in days is configured, e.g. an offset of -2 starts weeks on Saturday.
Settings are read from ISOWEEK_OFFSET, ISOWEEK_WEEKDAY, ISOWEEK_INCLUSIVE and ISOWEEK_WORKERS in the
environment, .env or .env.toml; flags override them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}
	root.PersistentFlags().IntVar(&a.offset, "offset", 0, "week start offset in days relative to Monday")
	root.PersistentFlags().IntVar(&a.workers, "workers", 0, "number of workers for bulk conversions")

	root.AddCommand(
		a.weekCmd(),
		a.weekDateCmd(),
		a.dateCmd(),
		a.rangeCmd(),
		a.infoCmd(),
		a.checkCmd(),
	)
	return root
}

// resolve merges the flags set on the command line into the environment and validates the result
func (a *app) resolve(cmd *cobra.Command, args []string) error {
	env := config.Env{}
	maps.Copy(env, a.env)
	overrides := []struct {
		flag string
		key  string
		val  any
	}{
		{"offset", config.KeyOffset, a.offset},
		{"workers", config.KeyWorkers, a.workers},
		{"weekday", config.KeyWeekday, a.weekday},
		{"inclusive", config.KeyInclusive, a.inclusive},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			env[o.key] = o.val
		}
	}
	cfg, err := config.Resolve(env)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log.Debugf("isoweek %s: %s", cmd.Name(), cfg)
	return nil
}
