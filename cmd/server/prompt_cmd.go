package main

import (
	"fmt"
	"strings"

	"github.com/phrazzld/control-validator/internal/domain"
	"github.com/phrazzld/control-validator/internal/prompt"
	"github.com/spf13/cobra"
)

// newPromptCmd renders the prompt for a control without calling a provider.
func newPromptCmd() *cobra.Command {
	var templatePath string
	values := make(map[string]*string, len(domain.RequestFields))

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent for a control",
		Long: `Render the control validation prompt locally. Useful when editing a custom
prompt template. No API key is needed and no provider is called.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := domain.BindValidationRequest(func(name string) (string, bool) {
				if !cmd.Flags().Changed(flagName(name)) {
					return "", false
				}
				return *values[name], true
			})
			if err != nil {
				return err
			}

			builder, err := prompt.NewBuilderFromFile(templatePath)
			if err != nil {
				return err
			}

			text, err := builder.Build(req)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	for _, name := range domain.RequestFields {
		values[name] = new(string)
		cmd.Flags().StringVar(values[name], flagName(name), "", fmt.Sprintf("control %s", strings.ReplaceAll(name, "_", " ")))
	}
	cmd.Flags().StringVar(&templatePath, "template", "", "prompt template file (default embedded template)")

	return cmd
}

// flagName maps a wire name such as risk_description to its flag, risk-description.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}
