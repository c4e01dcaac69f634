// timetrain-tty 终端版 88 MPH
//
// 与窗口版共用同一个游戏核心；stdout 由 tcell 接管，日志只写入 -log 指定的文件。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/tty"
	"github.com/gdamore/tcell/v2"
)

var (
	logPath    = flag.String("log", "", "日志文件（默认不记录）")
	tuningPath = flag.String("tuning", "", "外部调参文件（默认使用内置数值）")
	radioKey   = flag.String("radio-key", "", "保存 Doc Brown 电台的 API Key 后退出")
	mute       = flag.Bool("mute", false, "不播放主题曲")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	credsPath := config.RadioCredentialsPath()
	if *radioKey != "" {
		if err := config.SaveRadioCredentials(credsPath, &config.RadioCredentials{APIKey: *radioKey}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save radio credentials: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Radio credentials saved to %s\n", credsPath)
		return
	}

	store, err := game.OpenSettingsStore("timetrain")
	if err != nil {
		log.Printf("[TTY] Warning: %v (settings will not persist)", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g, err := tty.NewGame(screen, tty.Config{
		TuningPath:      *tuningPath,
		CredentialsPath: credsPath,
		Mute:            *mute,
		Settings:        game.NewSettingsManager(store),
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		log.Printf("[TTY] Run error: %v", err)
	}
}
