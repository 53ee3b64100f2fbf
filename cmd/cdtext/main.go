// Command cdtext pretty-prints the CD-Text entries found in a
// captured dump file, one line per entry.
//
// Dumps are expected to carry the 4-byte ioctl header produced by
// tools like cd-info and libburn's cdtext extractor; pass -raw for a
// bare pack stream.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rabidaudio/cdtext"
	"github.com/sirupsen/logrus"
)

var raw = flag.Bool("raw", false, "input is a bare pack stream without the 4-byte dump header")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cdtext [-raw] <dumpfile>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logrus.Fatal(err)
	}

	var entries []cdtext.Entry
	if *raw {
		entries, err = cdtext.Decode(data, len(data))
	} else {
		entries, err = cdtext.DecodeDump(data)
	}
	if errors.Is(err, cdtext.ErrMalformedPackSize) {
		logrus.Warn("data length is not a multiple of the pack size, trailing bytes ignored")
	} else if err != nil {
		logrus.Fatal(err)
	}

	for _, e := range entries {
		target := "album"
		if e.Track != 0 {
			target = fmt.Sprintf("track %02d", e.Track)
		}
		fmt.Printf("%s\t%s\t%q\n", target, e.Type, e.Text)

		if e.Incomplete || e.Truncated || e.ChecksumSuspect {
			logrus.WithFields(logrus.Fields{
				"incomplete": e.Incomplete,
				"truncated":  e.Truncated,
				"crc":        e.ChecksumSuspect,
			}).Warnf("suspect entry: %s %s", target, e.Type)
		}
	}
}
