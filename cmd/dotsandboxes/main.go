package main

import (
	"flag"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"dotsandboxes/pkg/debug"
	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/music"
	"dotsandboxes/pkg/record"
)

var (
	configFile = flag.String("f", "", "the config file")
	boardSize  = flag.Int("size", 0, "board size in dots, overrides the config")
	musicConf  = flag.String("music", "", "music ON/OFF, overrides the config")
)

func loadConfig() (c Config) {
	flag.Parse()

	if *configFile != "" {
		conf.MustLoad(*configFile, &c)
	} else {
		logx.Must(conf.FillDefault(&c))
	}

	if *boardSize != 0 {
		c.BoardSize = *boardSize
	}
	if *musicConf != "" {
		c.Music = Switch(*musicConf)
	}
	return
}

func main() {
	c := loadConfig()

	logx.MustSetup(logx.LogConf{ServiceName: "dotsandboxes", Mode: "console", Encoding: "plain"})
	logx.DisableStat()
	defer logx.Close()

	music.Open = c.Music.Bool()
	if c.Pprof.Enable {
		debug.Serve(c.Pprof.Addr)
	}

	engine, err := game.New(c.BoardSize)
	logx.Must(err)

	journal, err := record.OpenJournal(c.LogDir, func(err error) {
		logx.Errorf("journal flush: %v", err)
	})
	logx.Must(err)
	defer journal.Close()

	ui := NewBoardUI(engine, journal)

	a := app.New()
	a.Settings().SetTheme(&GameTheme{ui: ui})
	window := a.NewWindow("Dots and Boxes")
	ui.window = window

	window.SetMainMenu(buildMainMenu(ui))
	window.SetContent(ui.Root())
	span := ui.lay.Span()
	window.Resize(fyne.NewSize(span, span+statusBarHeight))

	logx.Infof("game %s started, board size %d", journal.Uid, c.BoardSize)
	window.ShowAndRun()
}
