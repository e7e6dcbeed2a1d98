package commands

import (
	"context"

	"github.com/spf13/cobra"

	"acctvault/internal/app"
	"acctvault/internal/config"
	"acctvault/internal/logging"
	"acctvault/internal/ui"
)

var (
	cfgPath  string
	dbPath   string
	password string
	verbose  bool
	debug    bool
	noColor  bool

	cfg    *config.Config
	appCtx *app.App
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	cfgPath, dbPath, password = "", "", ""
	verbose, debug, noColor = false, false, false

	root := &cobra.Command{
		Use:          "acctvault",
		Short:        "Encrypted store for accounts and their passwords",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				c.Database = dbPath
			}
			c.Verbose = c.Verbose || verbose
			c.Debug = c.Debug || debug
			if noColor || !c.Color {
				ui.DisableColor()
			}

			home, err := config.Dir()
			if err != nil {
				return err
			}
			log := logging.Logger{
				Verbose: c.Verbose,
				Debug:   c.Debug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			log.Debugf("config %s, database %s", c.Path(), c.Database)

			cfg = c
			appCtx = app.New(app.Config{
				Home:              home,
				MinPasswordLength: c.MinPasswordLength,
				Log:               log,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.acctvault/config.yml)")
	root.PersistentFlags().StringVarP(&dbPath, "database", "d", "", "account file (default from config)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "main password (default $"+passwordEnv+" or prompt)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress messages")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "print debug messages")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		createCmd(),
		addCmd(),
		listCmd(),
		treeCmd(),
		showCmd(),
		findCmd(),
		editCmd(),
		removeCmd(),
		passwordCmd(),
		fieldCmd(),
		saveAsCmd(),
		infoCmd(),
		configCmd(),
	)
	return root
}
