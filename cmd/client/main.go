package main

import (
	"errors"
	"os"

	"chartscope/app"
	"chartscope/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/anthdm/hollywood/actor"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		data    string
		title   string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "chartscope",
		Short: "Interactive time-series chart with an overview scope",
		Example: heredoc.Doc(`
			$ chartscope --data followers.json
			$ chartscope --data followers.json --title "Followers" --debug
			$ CHARTSCOPE_LOCALE=de chartscope --config ./chartscope.yaml
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(log.DebugLevel)
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if data == "" {
				data = cfg.Data
			}
			if data == "" {
				return errors.New("no dataset: pass --data or set data in the config")
			}

			engine, err := actor.NewEngine(actor.NewEngineConfig())
			if err != nil {
				return err
			}

			w, h := ebiten.Monitor().Size()
			ebiten.SetWindowSize(w, h)
			ebiten.SetWindowTitle(title)
			ebiten.SetWindowPosition(0, 0)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			log.Debug("starting", "data", data, "locale", cfg.Locale)
			return ebiten.RunGame(app.New(engine, data, title, cfg.Options()...))
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Path to the chart JSON file")
	cmd.Flags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.chartscope.yaml)")
	cmd.Flags().StringVar(&title, "title", "Chartscope", "Window and panel title")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
