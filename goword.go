package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/Radisovik/goword/config"
	"github.com/Radisovik/goword/document"
	"github.com/Radisovik/goword/metrics"
)

var logPath = "goword.log"
var logfile *os.File
var logOpen sync.Once

func logf(format string, args ...interface{}) {
	logOpen.Do(func() {
		var err error
		logfile, err = os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			panic(err)
		}
	})
	format = strings.TrimSpace(format)

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, err := logfile.WriteString(fmt.Sprintf("%s %s \n", timestamp, fmt.Sprintf(format, args...)))
	if err != nil {
		panic(err)
	}
}

func main() {
	configPath := flag.String("config", "goword.yaml", "path to the YAML configuration")
	docPath := flag.String("open", "document.json", "document to edit; created on first save")
	layout := flag.Bool("layout", false, "print the document's glyph runs in Go font pixels as JSON and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if *layout {
		if err := dumpLayout(os.Stdout, cfg, *docPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "goword needs an interactive terminal; use -layout for batch output")
		os.Exit(2)
	}
	if w, h, err := term.GetSize(fd); err == nil {
		logf("Starting goword on a %dx%d terminal", w, h)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logf("Error creating screen: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logf("Error initializing screen: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp(screen, cfg, *docPath)
	if err := a.open(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.status = err.Error()
	}
	a.run()
	logf("Stopped goword")
}

// dumpLayout lays the document at path out with pixel metrics from the Go
// fonts and writes the resulting runs and cursor as JSON.
func dumpLayout(w io.Writer, cfg config.Config, path string) error {
	font, err := metrics.NewFont()
	if err != nil {
		return err
	}
	doc := document.New(metrics.NewCache(font), cfg.Options(document.Point{})...)
	if err := doc.LoadFile(path); err != nil {
		return err
	}
	frame := doc.Layout()
	out := struct {
		Runs   []document.Run `json:"runs"`
		Cursor document.Point `json:"cursor"`
	}{frame.Runs, frame.Cursor}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
