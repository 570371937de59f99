/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/terravox/engine"
	"github.com/spaghettifunk/terravox/testbed"
)

func main() {
	configPath := flag.String("config", "terravox.toml", "path to the application config file")
	watch := flag.Bool("watch", false, "hot-reload the config file while running")
	flag.Parse()

	tb, err := testbed.NewTestGame(*configPath)
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	if *watch {
		if err := engine.WatchConfig(*configPath); err != nil {
			panic(err)
		}
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop goroutine: the draw loop exits and shuts the engine down
	go func() {
		<-sigCh
		engine.Stop()
	}()

	// run engine
	if err := engine.Run(); err != nil {
		panic(err)
	}
}
