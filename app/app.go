// Package app provides CLI functionality for working with form projects.
package app

import (
	"context"
	"fmt"
	"github.com/carldea/cognitive-sub001/locator"
	"github.com/carldea/cognitive-sub001/logging"
	"github.com/lefinal/meh"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"os"
	"path"
	"runtime/debug"
	"time"
)

type commandOptions struct {
	Logger  *zap.Logger
	Locator *locator.Locator
}

type buildSettings struct {
	revision string
	time     time.Time
}

func parseBuildSettings() buildSettings {
	buildInfo, _ := debug.ReadBuildInfo()
	settings := buildSettings{}
	if buildInfo == nil {
		return settings
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			settings.revision = setting.Value
		case "vcs.time":
			settings.time, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}
	return settings
}

type cliOptions struct {
	verbose      bool
	contextDir   string
	formFilename string
}

// RunCLI the app as CLI. If the given logger is not nil, it will be used
// instead of creating a new one with provided flags.
func RunCLI(ctx context.Context, logger *zap.Logger, args []string) error {
	buildSettings := parseBuildSettings()

	var cliOpts cliOptions
	var commandOpts commandOptions
	commandOpts.Logger = zap.NewNop()

	cliApp := &cli.App{
		Name:  "cognitive",
		Usage: "MVVM binding and validation for declarative forms",
		ExtraInfo: func() map[string]string {
			return map[string]string{
				"version":      buildSettings.revision,
				"version from": buildSettings.time.Format(time.DateTime),
			}
		},
		Compiled: buildSettings.time,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enables debug log output.",
				EnvVars:     []string{"COGNITIVE_VERBOSE"},
				Required:    false,
				Destination: &cliOpts.verbose,
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "Use `DIR` as project directory. If not set, the working directory and its parents will be searched for a project instead.",
				Required:    false,
				Destination: &cliOpts.contextDir,
			},
			&cli.StringFlag{
				Name:        "form",
				Aliases:     []string{"f"},
				Usage:       "The `FILENAME` of the form file. If a non-absolute path is provided, the project directory will be used as base.",
				Value:       locator.DefaultFormFilename,
				Required:    false,
				Destination: &cliOpts.formFilename,
			},
		},

		Commands: []*cli.Command{
			{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "Runs the specified form interactively.",
				Before:  assureProject(&commandOpts),
				Action: func(c *cli.Context) error {
					return meh.NilOrWrap(commandRun(c.Context, commandOpts), "command run", nil)
				},
			},
			{
				Name:    "verify",
				Aliases: []string{"v"},
				Usage:   "Verifies the specified form definition.",
				Before:  assureProject(&commandOpts),
				Action: func(c *cli.Context) error {
					return meh.NilOrWrap(commandVerify(c.Context, commandOpts), "command verify", nil)
				},
			},
			{
				Name:  "init",
				Usage: "Initializes an empty form project in the current directory.",
				Action: func(c *cli.Context) error {
					return meh.NilOrWrap(commandInit(c.Context, commandOpts), "command init", nil)
				},
			},
			{
				Name:  "version",
				Usage: "Prints the current version.",
				Action: func(c *cli.Context) error {
					fmt.Println(buildSettings.revision)
					return nil
				},
			},
		},

		EnableBashCompletion: true,

		Before: func(c *cli.Context) error {
			var err error
			// Set up logging.
			if logger != nil {
				commandOpts.Logger = logger
			} else {
				logLevel := zap.InfoLevel
				if cliOpts.verbose {
					logLevel = zap.DebugLevel
				}
				logger, err := logging.NewLogger(logLevel)
				if err != nil {
					return meh.Wrap(err, "new logger", meh.Details{"log_level": logLevel})
				}
				logging.SetLogger(logger)
				commandOpts.Logger = logger
				logger.Debug("applied log level", zap.String("log_level", logLevel.String()))
			}
			// Set up locator.
			searchContextDirInParents := !c.Args().Present() || (c.Args().First() != "init" && c.Args().First() != "version")
			commandOpts.Locator, err = newLocator(commandOpts.Logger, cliOpts.contextDir, cliOpts.formFilename, searchContextDirInParents)
			if err != nil {
				return meh.Wrap(err, "new locator", nil)
			}
			return nil
		},

		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				// Unknown command.
				_, _ = fmt.Fprintf(c.App.Writer, "unsupported command: %s\n\n", c.Args().First())
				cli.ShowAppHelpAndExit(c, 1)
				return nil
			}
			cli.ShowAppHelpAndExit(c, 0)
			return nil
		},
		Suggest: true,
	}

	start := time.Now()
	defer func() {
		commandOpts.Logger.Debug("shutdown", zap.Duration("total_command_execution_time", time.Since(start)))
	}()
	go func() {
		<-ctx.Done()
		commandOpts.Logger.Debug("shutdown initiated")
	}()

	return cliApp.RunContext(ctx, args)
}

func assureProject(commandOpts *commandOptions) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		err := commandOpts.Locator.AssureProject()
		if err != nil {
			return meh.Wrap(err, "assure form project", nil)
		}
		return nil
	}
}

func newLocator(logger *zap.Logger, contextDir string, formFilename string, searchInParents bool) (*locator.Locator, error) {
	// If the context directory is not set, try to find it in the current
	// directory or any parent.
	if contextDir == "" {
		logger.Debug("no context dir provided")
		currentWorkingDirectory, err := os.Getwd()
		if err != nil {
			return nil, meh.NewInternalErrFromErr(err, "get current working directory", nil)
		}
		if searchInParents {
			logger.Debug("try to locate context dir in working directory or parents", zap.String("workdir", currentWorkingDirectory))
			contextDir, err = locator.FindContextDir(currentWorkingDirectory)
			if err != nil {
				return nil, meh.NewBadInputErrFromErr(err, "find context dir", meh.Details{"start_dir": currentWorkingDirectory})
			}
			logger.Debug("found context dir", zap.String("context_dir", contextDir))
		} else {
			logger.Debug("use current working directory as context dir", zap.String("workdir", currentWorkingDirectory))
			contextDir = currentWorkingDirectory
		}
	}
	if !path.IsAbs(formFilename) {
		formFilename = path.Join(contextDir, formFilename)
	}
	logger.Debug("set up locator", zap.String("context_dir", contextDir), zap.String("form_filename", formFilename))
	appLocator, err := locator.New(contextDir, formFilename)
	if err != nil {
		return nil, meh.Wrap(err, "new locator", meh.Details{
			"context_dir":   contextDir,
			"form_filename": formFilename,
		})
	}
	return appLocator, nil
}
