package main // import "github.com/tonobo/snake-top"

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var (
	move       = flag.Bool("move", false, "Read one move request from stdin and print the chosen move")
	configPath = flag.String("config", "", "Path to a YAML config file")
	debug      = flag.Bool("debug", false, "Debug logging and gin request logs")
)

func main() {
	flag.Parse()
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("logger", "err", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallback, _ := ParseMove(cfg.FallbackMove)
	selector := NewSelector(rand.New(rand.NewSource(seed)), fallback, logger)

	if *move {
		var j Request
		if err := json.NewDecoder(os.Stdin).Decode(&j); err != nil {
			logger.Fatal("decode request", "err", err)
		}
		j.Init()
		fmt.Fprintln(os.Stderr, RenderGrid(j.Board))
		fmt.Println(selector.SelectMove(j.Board))
		return
	}

	var history *History
	if cfg.HistoryPath != "" {
		history, err = OpenHistory(cfg.HistoryPath)
		if err != nil {
			logger.Fatal("history", "err", err)
		}
		defer history.Close()
	}

	server := NewServer(selector, history, cfg.Appearance, logger)
	server.Shout = cfg.Shout
	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "fallback", fallback)
	if err := server.Router(*debug).Run(addr); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
