package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderFlags struct {
	file      string
	profileID string
	output    string
	asJSON    bool
	overrides requestOverrides
	watermark bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document from a brand profile",
	Long: `Renders one document. The brand comes from --file or from a stored profile
(--profile); flags such as --template and --mode override the profile.

Unknown templates, modes and customization values never fail the render:
defaults are substituted and reported as corrections.

Example:
  brandkit render --file techcorp.yaml --template sidebar_accent --mode production -o out.html`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.file, "file", "f", "", "Profile file (json or yaml)")
	f.StringVarP(&renderFlags.profileID, "profile", "p", "", "Stored profile id")
	f.StringVarP(&renderFlags.output, "output", "o", "", "Output file (stdout if empty)")
	f.BoolVar(&renderFlags.asJSON, "json", false, "Print the full result as JSON")
	f.StringVarP(&renderFlags.overrides.Template, "template", "t", "", "Template id")
	f.StringVarP(&renderFlags.overrides.Mode, "mode", "m", "", "Render mode: preview, production or email")
	f.StringVar(&renderFlags.overrides.Name, "name", "", "Brand name")
	f.StringVar(&renderFlags.overrides.Primary, "primary", "", "Primary colour")
	f.StringVar(&renderFlags.overrides.Date, "date", "", "Document date label")
	f.BoolVar(&renderFlags.watermark, "watermark", false, "Include the brand watermark")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	rt, err := newRuntime(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	p, err := loadProfile(ctx, cfg, renderFlags.file, renderFlags.profileID, logger)
	if err != nil {
		return err
	}
	if p, err = p.Resolve(rt.presets); err != nil {
		return err
	}

	overrides := renderFlags.overrides
	if cmd.Flags().Changed("watermark") {
		overrides.Watermark = &renderFlags.watermark
	}
	req := buildRequest(cfg, p, overrides)

	result := rt.engine.RenderDocument(ctx, req)
	logger.Debug("rendered document",
		zap.String("template", result.UsedTemplateID),
		zap.String("mode", string(result.Mode)),
		zap.Int("bytes", len(result.Markup)),
	)

	var out []byte
	if renderFlags.asJSON {
		out, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		out = append(out, '\n')
	} else {
		out = []byte(result.Markup + "\n")
		for _, c := range result.Corrections {
			fmt.Fprintf(cmd.ErrOrStderr(), "corrected %s: %q -> %q (%s)\n", c.Field, c.Value, c.Fallback, c.Reason)
		}
	}

	if renderFlags.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(renderFlags.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s written to %s\n", result.UsedTemplateID, renderFlags.output)
	return nil
}
