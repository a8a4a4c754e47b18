// mmctl opera el inventario desde la terminal sobre el mismo almacenamiento que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
	"github.com/jhoicas/mm-inventario/internal/application/inventory"
	infrapdf "github.com/jhoicas/mm-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	"github.com/jhoicas/mm-inventario/internal/interfaces/cli"
	"github.com/jhoicas/mm-inventario/pkg/config"
	"github.com/jhoicas/mm-inventario/pkg/logger"
)

var plain = flag.Bool("plain", false, "Imprime markdown sin formato de terminal.")

func main() {
	os.Exit(int(run()))
}

func run() subcommands.ExitStatus {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	env := &cli.Env{}
	cli.Register(commander, env)
	flag.Parse()

	// help y compañía no necesitan abrir el almacenamiento
	switch flag.Arg(0) {
	case "", "help", "flags", "commands":
		return commander.Execute(context.Background())
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return subcommands.ExitFailure
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	ctx := context.Background()
	persist, closer, err := persistence.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacenamiento")
		return subcommands.ExitFailure
	}
	defer closer.Close()

	store := snapshot.New(persist, snapshot.WithLogger(log))
	if err := store.Open(ctx, seed.Default); err != nil {
		log.Error().Err(err).Msg("cargar snapshot")
		return subcommands.ExitFailure
	}

	env.Movements = inventory.NewMovementUseCase(store, nil, nil)
	env.Counts = inventory.NewCountUseCase(store, infrapdf.NewCountSheetGenerator(cfg.App.Name), nil, nil)
	env.Dashboard = appanalytics.NewDashboardUseCase(store)
	if !*plain {
		render, err := cli.GlamourRenderer(100)
		if err != nil {
			log.Warn().Err(err).Msg("renderer de terminal no disponible, se imprime markdown")
		} else {
			env.Markdown = render
		}
	}

	return commander.Execute(ctx)
}
