package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/timetrain/pkg/app"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	tuningPath := flag.String("tuning", "", "外部调参文件（默认使用内置 data/tuning.yaml）")
	radioKey := flag.String("radio-key", "", "保存 Doc Brown 电台的 API Key 后退出")
	radioModel := flag.String("radio-model", "", "与 -radio-key 一起保存的模型名称")
	flag.Parse()

	if *radioKey != "" {
		path := config.RadioCredentialsPath()
		creds := &config.RadioCredentials{APIKey: *radioKey, Model: *radioModel}
		if err := config.SaveRadioCredentials(path, creds); err != nil {
			log.Fatalf("保存电台凭据失败: %v", err)
		}
		fmt.Printf("Radio credentials saved to %s\n", path)
		os.Exit(0)
	}

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	runErr := ebiten.RunGame(a)
	a.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
