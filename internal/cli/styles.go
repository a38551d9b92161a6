package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patelnav/fcpsub/internal/config"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available style presets",
	Long: `List the style presets available to 'generate --style'.

Presets are read from the user config directory (styles.yaml). When no
preset file exists the built-in presets are shown. Use 'styles init' to
write the built-in presets out as a starting point for customization.`,
	RunE: runStylesList,
}

var stylesShowCmd = &cobra.Command{
	Use:   "show [preset_name]",
	Short: "Show the settings of a style preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runStylesShow,
}

var stylesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in presets to the user config directory",
	RunE:  runStylesInit,
}

func init() {
	rootCmd.AddCommand(stylesCmd)
	stylesCmd.AddCommand(stylesShowCmd)
	stylesCmd.AddCommand(stylesInitCmd)
}

func runStylesList(cmd *cobra.Command, args []string) error {
	presets, err := config.LoadDefault()
	if err != nil {
		return err
	}

	for _, name := range presets.Names() {
		style, _ := presets.Get(name)
		fmt.Printf("%-12s %s %dpt %s\n", name, style.FontName, style.FontSize, style.FontColor)
	}

	return nil
}

func runStylesShow(cmd *cobra.Command, args []string) error {
	presets, err := config.LoadDefault()
	if err != nil {
		return err
	}

	style, ok := presets.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown style preset %q", args[0])
	}

	fmt.Printf("font:              %s\n", style.FontName)
	fmt.Printf("font size:         %d\n", style.FontSize)
	fmt.Printf("font color:        %s\n", style.FontColor)
	fmt.Printf("bold:              %v\n", style.Bold)
	fmt.Printf("italic:            %v\n", style.Italic)
	fmt.Printf("alignment:         %s\n", style.Alignment)
	fmt.Printf("stroke color:      %s\n", style.StrokeColor)
	fmt.Printf("stroke width:      %g\n", style.StrokeWidth)
	fmt.Printf("vertical position: %d\n", style.VerticalPosition)

	return nil
}

func runStylesInit(cmd *cobra.Command, args []string) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	if err := config.DefaultPresets().Save(path); err != nil {
		return err
	}

	fmt.Printf("Style presets written to: %s\n", path)
	return nil
}
