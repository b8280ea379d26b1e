// Probe loads a media file through the real player and prints its status
// and time feeds without a terminal UI.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/media"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
)

func main() {
	play := flag.Duration("play", 5*time.Second, "How long to play before exiting")
	seek := flag.Duration("seek", 0, "Seek here once ready")
	interval := flag.Duration("interval", scrub.DefaultTickInterval, "Periodic time interval")
	debug := flag.Bool("debug", false, "Log player internals to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: probe [flags] <file>")
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	info, err := media.Resolve(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("resolve media")
	}
	if fi, err := os.Stat(info.Path); err == nil {
		fmt.Printf("%s (%s)\n", info.DisplayTitle(), humanize.IBytes(uint64(fi.Size())))
	}
	fmt.Printf("id:  %s\nurl: %s\n", info.Source.ID, info.Source.URL)

	p := player.New(log)
	defer p.Close()

	ready := make(chan time.Duration, 1)
	failed := make(chan error, 1)
	ended := make(chan struct{}, 1)

	defer p.SubscribeStatus(func(u scrub.StatusUpdate) {
		fmt.Printf("status: %s total=%s\n", u.Status, scrub.FormatClock(u.TotalTime))
		switch u.Status {
		case scrub.StatusReady:
			ready <- u.TotalTime
		case scrub.StatusFailed:
			failed <- u.Err
		case scrub.StatusUnknown:
		}
	})()
	defer p.SubscribePeriodicTime(*interval, func(t time.Duration) {
		fmt.Printf("tick:   %s\n", scrub.FormatClock(t))
	})()
	defer p.SubscribeEnded(func() {
		ended <- struct{}{}
	})()

	p.Load(info.Path)

	select {
	case <-ready:
	case err := <-failed:
		log.WithError(err).Fatal("load failed")
	}

	if *seek > 0 {
		p.Seek(*seek)
	}
	p.Play()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	select {
	case <-time.After(*play):
	case <-ended:
		fmt.Println("ended")
	case <-sig:
	}
	p.Pause()
	fmt.Printf("stopped at %s\n", scrub.FormatClock(p.CurrentTime()))
}
