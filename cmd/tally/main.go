package main

import (
	"flag"
	"log"

	"github.com/lixenwraith/tally/app"
	"github.com/lixenwraith/tally/crash"
	"github.com/lixenwraith/tally/terminal"
)

var debugFlag = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)

func main() {
	// Panic recovery: ensure the terminal is restored even on a crash
	defer func() {
		if r := recover(); r != nil {
			crash.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	backend := terminal.New()
	guard := terminal.NewSession(backend)

	// Hooks go in before Enter so a failure during Enter itself is
	// reported on a sane terminal
	if err := crash.Install(guard.Restore); err != nil {
		crash.Fatal(err)
	}

	loop := &app.Loop{
		Backend: backend,
		App:     app.NewApp(),
	}

	if beeper, err := app.NewBeeper(); err == nil {
		loop.Sound = beeper
		defer beeper.Close()
	} else {
		log.Printf("audio init failed: %v (continuing without sound)", err)
	}

	if err := app.Run(guard, loop); err != nil {
		crash.Fatal(err)
	}
}
