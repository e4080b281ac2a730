package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/ttyfind"
	"github.com/GriffinCanCode/ttyfind/internal/logging"
)

func main() {
	procRoot := flag.String("proc", ttyfind.DefaultProcRoot, "Procfs mount point")
	drivers := flag.Bool("drivers", false, "Dump the parsed tty driver registry and exit")
	asJSON := flag.Bool("json", false, "Emit JSON output")
	logLevel := flag.String("log-level", "error", "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "Development mode (colored console logs)")
	flag.Usage = usage
	flag.Parse()

	logger, err := logging.New(logging.Config{
		Level:       *logLevel,
		Development: *dev,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttyfind: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	resolver := ttyfind.New(ttyfind.Config{
		ProcRoot: *procRoot,
		Logger:   logger.Logger,
	})

	if *drivers {
		dumpDrivers(resolver, *asJSON)
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	pid, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ttyfind: invalid pid %q\n", flag.Arg(0))
		os.Exit(2)
	}

	path, ok := resolver.Resolve(pid)
	if *asJSON {
		out, _ := sonic.MarshalString(map[string]interface{}{
			"pid":      pid,
			"tty":      path,
			"resolved": ok,
		})
		fmt.Println(out)
	} else if ok {
		fmt.Println(path)
	}
	if !ok {
		if !*asJSON {
			fmt.Fprintf(os.Stderr, "ttyfind: no controlling tty for pid %d\n", pid)
		}
		os.Exit(1)
	}
}

func dumpDrivers(resolver *ttyfind.Resolver, asJSON bool) {
	drivers := resolver.Drivers()
	if asJSON {
		out, _ := sonic.MarshalString(drivers)
		fmt.Println(out)
		return
	}
	for _, d := range drivers {
		fmt.Printf("%-20s %-15s %5d %d-%d\n",
			d.Name, d.Path, d.Major, d.Minors.Start, d.Minors.End)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ttyfind [flags] <pid>

Resolve the terminal device path controlling a process.

Flags:
`)
	flag.PrintDefaults()
}
