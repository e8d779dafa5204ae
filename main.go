/*
Filare is an interactive wireframe viewer: it loads a mesh, projects it
through a walkable camera and draws the edges as lines.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/filare/engine"
	"github.com/spaghettifunk/filare/viewer"
)

func main() {
	configPath := flag.String("config", "viewer.toml", "path to the viewer configuration file")
	meshPath := flag.String("mesh", "", "mesh to display, overrides the configuration")
	flag.Parse()

	config, err := engine.LoadApplicationConfig(*configPath)
	if err != nil {
		panic(err)
	}
	if *meshPath != "" {
		config.Scene.MeshPath = *meshPath
	}

	vg, err := viewer.NewViewerGame(config)
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(vg.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = engine.Shutdown()
	}()

	// run engine
	if err := engine.Run(); err != nil {
		panic(err)
	}
}
