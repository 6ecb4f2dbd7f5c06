package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brandkit/pkg/profile"
	"github.com/goliatone/go-brandkit/pkg/wizard"
)

var wizardFlags struct {
	file      string
	profileID string
	save      string
	output    string
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Customize a document interactively and render it",
	Long: `Walks through the brand and customization choices one prompt at a time,
seeded from --file or --profile when given, then renders the result.

Use --save to store the answers as a profile for later renders.`,
	RunE: runWizard,
}

func init() {
	f := wizardCmd.Flags()
	f.StringVarP(&wizardFlags.file, "file", "f", "", "Seed profile file")
	f.StringVarP(&wizardFlags.profileID, "profile", "p", "", "Seed stored profile id")
	f.StringVar(&wizardFlags.save, "save", "", "Store the answers under this profile id")
	f.StringVarP(&wizardFlags.output, "output", "o", "", "Output file (stdout if empty)")
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	rt, err := newRuntime(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	seed, err := loadProfile(ctx, cfg, wizardFlags.file, wizardFlags.profileID, logger)
	if err != nil {
		return err
	}
	if seed, err = seed.Resolve(rt.presets); err != nil {
		return err
	}

	w := wizard.New(wizard.WithRegistry(rt.engine.Registry()))
	req, err := w.Run(ctx, buildRequest(cfg, seed, requestOverrides{}))
	if errors.Is(err, wizard.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
		return nil
	}
	if err != nil {
		return err
	}

	if wizardFlags.save != "" {
		s, release, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer release()
		saved := profile.Profile{
			ID:            wizardFlags.save,
			TemplateID:    req.TemplateID,
			Mode:          req.Mode,
			Theme:         seed.Theme,
			Variant:       seed.Variant,
			Brand:         req.Brand,
			Customization: req.Custom,
		}
		if err := s.Put(ctx, saved); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "profile %s saved\n", wizardFlags.save)
	}

	result := rt.engine.RenderDocument(ctx, req)
	if wizardFlags.output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Markup)
		return err
	}
	if err := os.WriteFile(wizardFlags.output, []byte(result.Markup+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
