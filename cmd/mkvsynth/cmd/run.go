package cmd

import (
	"fmt"
	"os"

	"github.com/ddushkinn/mkvsynth/internal/runner"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	dumpAST    bool
	configPath string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an mkvsynth script",
	Long: `Execute an mkvsynth script from a file or inline expression.

Examples:
  # Run a script file
  mkvsynth run pipeline.mkvsynth

  # Evaluate inline code
  mkvsynth run -e 'print("hello");'

  # Dump the parsed AST instead of running it
  mkvsynth run --dump-ast pipeline.mkvsynth

  # Preload encode defaults from a config file
  mkvsynth run --config defaults.yaml pipeline.mkvsynth`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "parse and print the AST instead of running it")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file of global var defaults to preload")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string
	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	if dumpAST {
		prog, err := runner.Parse(input)
		if err != nil {
			return err
		}
		pretty.Println(prog)
		return nil
	}

	env := runner.NewEnvironment()
	if configPath != "" {
		if err := runner.LoadConfig(env, configPath); err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	return runner.Run(env, input)
}
