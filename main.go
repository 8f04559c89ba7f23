package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/leon22heart/dolphin/internal/bluetooth"
	"github.com/leon22heart/dolphin/internal/config"
	"github.com/leon22heart/dolphin/internal/hotkey"
	"github.com/leon22heart/dolphin/pkg/emulator"
	"github.com/leon22heart/dolphin/pkg/event"
	"github.com/leon22heart/dolphin/pkg/log"
	"github.com/leon22heart/dolphin/pkg/osd"
	"github.com/leon22heart/dolphin/pkg/remote"
)

func main() {
	configFile := flag.String("config", "dolphin.json", "The settings file to load and watch")
	addr := flag.String("addr", "localhost:8090", "The remote bridge listen address")
	wii := flag.Bool("wii", false, "enable Wii remote hotkeys")
	passthrough := flag.Bool("bt-passthrough", false, "enable Bluetooth passthrough sync button forwarding")
	debug := flag.Bool("debug", false, "enable debugging hotkeys and verbose logging")
	flag.Parse()

	logger := log.New()
	if *debug {
		logger = log.NewDebug()
	}

	store := config.NewStore()
	if err := config.Load(store, *configFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatal("loading settings: " + err.Error())
		}
		logger.Infof("no settings file at %s, using defaults", *configFile)
	}
	store.SetBool(config.Wii, *wii)
	store.SetBool(config.BluetoothPassthrough, *passthrough)
	store.SetBool(config.Debug, *debug)

	watcher, err := config.Watch(store, *configFile, logger)
	if err != nil {
		logger.Fatal("watching settings: " + err.Error())
	}

	keypad := hotkey.NewKeypad()
	machine := emulator.NewMachine()
	machine.SetState(emulator.Running)

	notifier := osd.NotifierFunc(func(m osd.Message) {
		logger.Infof("osd: %s", m)
	})

	scheduler := hotkey.NewScheduler(keypad, machine, store,
		hotkey.WithNotifier(notifier),
		hotkey.WithDevices(bluetooth.MapRegistry{}),
		hotkey.WithThrottleControl(machine),
		hotkey.WithLogger(logger),
	)

	scheduler.Attach(func(e event.Event) {
		if e.Slot > 0 {
			logger.Infof("dispatch: %s (slot %d)", e.Command, e.Slot)
		} else {
			logger.Infof("dispatch: %s", e.Command)
		}
	})

	bridge := remote.NewServer(keypad, logger)
	scheduler.Attach(bridge.HandleEvent)
	go func() {
		if err := bridge.Listen(*addr); err != nil {
			logger.Errorf("remote bridge: %v", err)
		}
	}()

	scheduler.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Infof("shutting down")
	scheduler.Stop()
	bridge.Close()
	watcher.Close()

	if err := config.Save(store, *configFile); err != nil {
		logger.Errorf("saving settings: %v", err)
	}
}
