package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/cutlineapp/cutline/internal/api"
	"github.com/cutlineapp/cutline/internal/build"
	"github.com/cutlineapp/cutline/internal/manager"
)

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	helpFlag := false
	pflag.BoolVarP(&helpFlag, "help", "h", false, "show this help text and exit")

	versionFlag := false
	pflag.BoolVarP(&versionFlag, "version", "v", false, "show version number and exit")

	pflag.Parse()

	if helpFlag {
		pflag.Usage()
		return
	}

	if versionFlag {
		fmt.Printf(build.VersionString() + "\n")
		return
	}

	mgr, err := manager.Initialize()
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("initialization error: %w", err))
		exitCode = 1
		return
	}
	defer mgr.Shutdown()

	server, err := api.Initialize(mgr)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("initialization error: %w", err))
		exitCode = 1
		return
	}
	defer server.Close()

	exit := make(chan int)

	go func() {
		err := server.Start()
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(os.Stderr, fmt.Errorf("http server error: %w", err))
			exit <- 1
		}
	}()

	go handleSignals(exit)

	exitCode = <-exit
}

func handleSignals(exit chan<- int) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	exit <- 0
}
