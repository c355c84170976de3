package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"craftpack/pack"
)

var flagFailOnWarnings bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse every biome document in the pack and report problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, err := openPack()
		if err != nil {
			return err
		}

		diags, err := p.Lint()
		if err != nil {
			return err
		}

		var errs, warns int
		for _, diag := range diags {
			line := fmt.Sprintf("%s: %s: %s", diag.Severity, diag.Path, diag.Message)
			if diag.Suggestion != "" {
				line += fmt.Sprintf(" (did you mean %q?)", diag.Suggestion)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			switch diag.Severity {
			case pack.SeverityError:
				errs++
			case pack.SeverityWarning:
				warns++
			}
		}

		if errs > 0 || ((cfg.FailOnWarnings || flagFailOnWarnings) && warns > 0) {
			return fmt.Errorf("validate: %d error(s), %d warning(s)", errs, warns)
		}
		logger.Info("pack is clean", "root", cfg.Root, "warnings", warns)
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&flagFailOnWarnings, "fail-on-warnings", false, "exit nonzero when warnings are present")
}
