package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/ndmines/internal/config"
	"github.com/vancomm/ndmines/internal/mines"
)

var (
	log = logrus.New()

	opts options
)

func init() {
	flag.StringVar(&opts.shape, "shape", "", "board shape, axis sizes separated by commas (2,4)")
	flag.StringVar(&opts.bombs, "bombs", "", "bomb coordinates separated by semicolons (0,0;1,0)")
	flag.BoolVar(&opts.xray, "xray", false, "show covered cells")
	flag.BoolVar(&opts.dump, "dump", false, "dump the game state after digging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -shape 2,4 [-bombs 0,0;1,0] [coord ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func setupLogging() error {
	level, err := config.LogLevel()
	if err != nil {
		return err
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})
	}

	path := config.LogFile()
	if path == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to set up log file %s: %w", path, err)
	}
	log.AddHook(hook)
	mines.Log.AddHook(hook)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		// env vars might be set directly
		log.Debug("no .env loaded: ", err)
	}

	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.WithFields(logrus.Fields{
		"shape": opts.shape,
		"bombs": opts.bombs,
		"moves": flag.NArg(),
	}).Debug("starting")

	if err := run(opts, flag.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}
