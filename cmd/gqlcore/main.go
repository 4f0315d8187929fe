/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

// Command gqlcore is a thin CLI over the gqlcore library: parse a document
// and print its diagnostics, or validate a schema against one or more
// executable documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krotik/gqlcore/ast"
	"github.com/krotik/gqlcore/config"
	"github.com/krotik/gqlcore/diagnostic"
	"github.com/krotik/gqlcore/source"
	"github.com/krotik/gqlcore/syntax"
	"github.com/krotik/gqlcore/validate"
)

var jsonOutput bool

func main() {
	rootCmd := &cobra.Command{
		Use:           "gqlcore",
		Short:         "Parse and validate GraphQL documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit diagnostics as JSON instead of the human-readable renderer")

	rootCmd.AddCommand(parseCmd(), validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.graphql>",
		Short: "Parse a document and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	var executables []string
	cmd := &cobra.Command{
		Use:   "validate <schema.graphql> [schema2.graphql ...]",
		Short: "Build and validate a schema, optionally against executable documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args, executables)
		},
	}
	cmd.Flags().StringSliceVar(&executables, "query", nil, "executable document file to validate against the schema (repeatable)")
	return cmd
}

func runParse(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	sm := source.NewSourceMap()
	file := sm.AddFile(path, string(text))
	tree := syntax.Parse(sm.Get(file), file)

	emit(tree.Errors, sm)

	if tree.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func runValidate(schemaPaths, execPaths []string) error {
	sm := source.NewSourceMap()
	schema := ast.NewSchema()
	failed := false

	for _, path := range schemaPaths {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		file := sm.AddFile(path, string(text))
		tree := syntax.Parse(sm.Get(file), file)
		emit(tree.Errors, sm)
		if tree.HasErrors() {
			failed = true
			continue
		}
		ast.MergeSchema(schema, ast.BuildSchema(tree.Document(), file))
	}

	validSchema, sdiags := validate.Schema(schema, config.DefaultValidationOptions())
	emit(sdiags, sm)

	for _, d := range sdiags {
		if d.Blocking() {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}

	for _, path := range execPaths {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		file := sm.AddFile(path, string(text))
		tree := syntax.Parse(sm.Get(file), file)
		emit(tree.Errors, sm)
		if tree.HasErrors() {
			failed = true
			continue
		}
		doc := ast.BuildExecutableDocument(tree.Document(), file)
		_, ediags := validate.ExecutableDocument(validSchema, doc, config.DefaultValidationOptions())
		emit(ediags, sm)
		for _, d := range ediags {
			if d.Blocking() {
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func emit(diags []diagnostic.Diagnostic, sm *source.SourceMap) {
	if len(diags) == 0 {
		return
	}
	if jsonOutput {
		out, err := diagnostic.MarshalJSON(diags, sm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal diagnostics: %v\n", err)
			return
		}
		os.Stdout.Write(out)
		fmt.Println()
		return
	}
	diagnostic.RenderTo(os.Stdout, diags, sm)
}
