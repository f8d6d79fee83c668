// Command fxbench benchmarks per-frame versus cached construction of a
// post-processing pipeline.
package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "fxbench"
	app.Usage = "measure the cost of rebuilding a post-processing pipeline every frame"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load benchmark settings from a TOML `FILE`",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "run the benchmark in one construction mode",
			Description: `
Render the scene through the render, TAA and output passes for a fixed
number of frames and report the smoothed frame rate. The --mode flag
selects whether the composer and its render target are rebuilt on every
frame (per-frame) or built once and reused (cached).`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: "cached",
					Usage: "pipeline construction mode: cached or per-frame",
				},
			}, runFlags...),
			Action: runBenchmark,
		},
		{
			Name:   "compare",
			Usage:  "run the benchmark in every mode and print a comparison table",
			Flags:  runFlags,
			Action: compareModes,
		},
		{
			Name:   "probe",
			Usage:  "detect GPU adapters",
			Action: probeGPU,
		},
		{
			Name:   "shaders",
			Usage:  "compile the full-screen pass shaders to SPIR-V",
			Action: compileShaders,
		},
		{
			Name:   "config",
			Usage:  "print the effective configuration as TOML",
			Action: printConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
