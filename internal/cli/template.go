package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patelnav/fcpsub/internal/fcpxml"
)

var templateCmd = &cobra.Command{
	Use:   "template [fcpxml_file]",
	Short: "Inspect a title template in an FCPXML export",
	Long: `Extract and display the title template from an FCPXML file previously
exported from Final Cut Pro.

This shows exactly what 'generate --template' would reuse: the effect
identity, every title parameter, and the text style attributes. Useful for
checking that an export carries the house style you expect before
generating against it.

Examples:
  fcpsub template house-style.fcpxml
  fcpsub template export.fcpxml --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().
		Bool("raw", false, "Also print the raw XML of the source title element")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	showRaw, _ := cmd.Flags().GetBool("raw")

	template, err := fcpxml.ExtractTemplate(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Effect: %s\n", template.EffectName)
	fmt.Printf("  UID: %s\n", template.EffectUID)

	fmt.Printf("Params: %d\n", len(template.Params))
	for _, param := range template.Params {
		fmt.Printf("  %s = %s\n", param.Name, param.Value)
	}

	if template.TextStyle != nil {
		fmt.Println("Text style:")
		for _, key := range template.TextStyle.Attrs.Keys() {
			fmt.Printf("  %s = %s\n", key, template.TextStyle.Attrs.Get(key))
		}
	} else {
		fmt.Println("Text style: none (generation falls back to the user style)")
	}

	if showRaw {
		fmt.Println("\nSource title element:")
		fmt.Println(template.RawTitleXML)
	}

	return nil
}
