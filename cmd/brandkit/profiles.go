package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brandkit/pkg/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage stored brand profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profile ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		s, release, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer release()

		ids, err := s.List(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var profilesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Validate a profile file and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		p, err := loadProfile(ctx, cfg, args[0], "", logger)
		if err != nil {
			return err
		}
		if p.ID == "" {
			return fmt.Errorf("profile %s has no id", args[0])
		}

		s, release, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer release()
		if err := s.Put(ctx, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "profile %s imported\n", p.ID)
		return nil
	},
}

var profilesValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check profile files against the profile schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			issues, err := validateFile(path)
			if err != nil {
				return err
			}
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, issue)
			}
			if len(issues) > 0 {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d profiles have schema issues", failed, len(args))
		}
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesImportCmd)
	profilesCmd.AddCommand(profilesValidateCmd)
}

func validateFile(path string) ([]profile.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	format, err := profile.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	_, issues, err := profile.Decode(data, format)
	return issues, err
}
