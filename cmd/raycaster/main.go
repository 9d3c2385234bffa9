package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli/v2"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		failWith(err)
	}
}

func failWith(err error) {
	fmt.Print(chalk.Red)
	log.Print(err, chalk.Reset)
	os.Exit(1)
}

func makeapp() *cli.App {
	return &cli.App{
		Name:  "raycaster",
		Usage: "First-person raycasting over a 2D wall map",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.json", Usage: "JSON config file; missing file keeps the defaults"},
			&cli.StringFlag{Name: "data", Value: "data/maps", Usage: "Directory holding map files"},
			&cli.StringFlag{Name: "map", Usage: "Map name in the data directory, a JSON file, or maze/octagon"},
			&cli.StringFlag{Name: "mode", Usage: "Render mode: wall or portal"},
			&cli.StringFlag{Name: "gap-fill", Usage: "Distance for rays that miss: clamp_to_max or reuse_previous"},
			&cli.IntFlag{Name: "workers", Usage: "Goroutines casting rays each frame"},
			&cli.StringFlag{Name: "snapshot", Usage: "Render one frame to this PNG file and exit"},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:  "maps",
				Usage: "List the maps in the data directory",
				Action: func(c *cli.Context) error {
					maps, err := mapscanner.ScanMapDirectory(c.String("data"))
					if err != nil {
						return err
					}
					fmt.Println(mapscanner.BuiltinMaze, "(built in)")
					fmt.Println(mapscanner.BuiltinOctagon, "(built in)")
					for _, m := range maps {
						fmt.Println(m.Name, m.Path)
					}
					return nil
				},
			},
		},
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("mode") {
		cfg.RenderMode = c.String("mode")
	}
	if c.IsSet("gap-fill") {
		cfg.GapFill = c.String("gap-fill")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	m, err := mapscanner.Resolve(c.String("data"), c.String("map"), cfg.RenderMode == config.ModePortal)
	if err != nil {
		return err
	}
	log.Printf("Loaded map %q (%d walls)", m.Name(), len(m.Walls()))

	if path := c.String("snapshot"); path != "" {
		g, err := game.New(cfg, m, nil)
		if err != nil {
			return err
		}
		if err := g.Snapshot(path); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
		return nil
	}

	g, err := game.New(cfg, m, ebitenrender.NewInputManager())
	if err != nil {
		return err
	}

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("ray-casting: " + m.Name())
	engine.SetTPS(cfg.TPS)

	log.Println("Starting game...")
	return engine.RunGame(g)
}
