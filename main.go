package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/coulomb-sim-go/pkg/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON scenario file")
	flag.Parse()

	var sim *simulation.Simulation
	if *configPath != "" {
		var err error
		sim, err = simulation.LoadScenario(*configPath, defaultWidth, defaultHeight)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		sim = simulation.New(defaultWidth, defaultHeight)
		sim.InitializeDefault()
	}

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("Coulomb Simulation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		log.Fatal(err)
	}
}
