package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tweec/internal/build"
	"tweec/internal/config"
	"tweec/internal/diagfmt"
	"tweec/internal/source"
	"tweec/internal/storyformat"
)

func compileExecution(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if frontend == nil {
		return fmt.Errorf("no story front-end registered in this build of tweec")
	}

	console := diagfmt.NewConsole(os.Stdout, cfg.Color.Enabled(isTerminal(os.Stdout)))

	var cache *storyformat.Cache
	if !cfg.Lint && !cfg.NoFormatCache {
		// A broken cache dir is not fatal; builds just parse the format fresh.
		cache, _ = storyformat.OpenCache("tweec")
	}

	req := &build.Request{
		Config:   cfg,
		Frontend: frontend,
		Console:  console,
		Cache:    cache,
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var res build.Result
	if shouldUseTUI(uiModeValue, cfg) {
		files, listErr := source.ListStoryFiles(cfg.Inputs)
		if listErr != nil {
			return listErr
		}
		res, err = runBuildWithUI(cmd.Context(), "tweec build", files, req)
	} else {
		res, err = build.Run(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	if !cfg.Lint && !cfg.Quiet {
		if _, printErr := fmt.Fprintf(os.Stdout, "built %s\n", res.OutputPath); printErr != nil {
			return printErr
		}
	}
	return nil
}

// resolveConfig merges CLI flags over an optional tweec.toml in the
// working directory.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	cfg.Inputs = args

	flags := cmd.Flags()
	var err error
	if cfg.Lint, err = flags.GetBool("lint"); err != nil {
		return nil, err
	}
	if cfg.Allowed, err = flags.GetStringArray("allow"); err != nil {
		return nil, err
	}
	if cfg.Denied, err = flags.GetStringArray("deny"); err != nil {
		return nil, err
	}
	if cfg.Compact, err = flags.GetBool("compact"); err != nil {
		return nil, err
	}
	if cfg.FormatFile, err = flags.GetString("format"); err != nil {
		return nil, err
	}
	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Open, err = flags.GetBool("open"); err != nil {
		return nil, err
	}
	if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
		return nil, err
	}
	if cfg.NoFormatCache, err = flags.GetBool("no-format-cache"); err != nil {
		return nil, err
	}

	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, err
	}
	cfg.Color = config.ParseColorMode(colorValue)
	if cfg.Quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return nil, err
	}

	if cfg.Lint && (cfg.Open || cfg.OutputFile != "") {
		return nil, fmt.Errorf("--lint cannot be combined with --open or --output")
	}

	file, err := config.LoadFile(config.FileName)
	if err != nil {
		return nil, err
	}
	file.Apply(cfg)
	return cfg, nil
}

func addCompileFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("allow", "a", nil, "warnings to ignore; overrides deny (\"all\" matches every warning)")
	cmd.Flags().StringArrayP("deny", "D", nil, "warnings to treat as errors (\"all\" matches every warning)")
	cmd.Flags().Bool("compact", false, "compact error and warning output")
	cmd.Flags().StringP("format", "f", "format.js", "location of the story format .js file")
	cmd.Flags().BoolP("lint", "L", false, "run the linter without producing any output")
	cmd.Flags().Bool("open", false, "open the html output in a web browser")
	cmd.Flags().StringP("output", "o", "", "output file (default: <Story Title>.html)")
	cmd.Flags().Int("jobs", 0, "number of files to load concurrently (0 = number of CPUs)")
	cmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	cmd.Flags().Bool("no-format-cache", false, "bypass the story format cache")
}

func init() {
	addCompileFlags(rootCmd)
}
