package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanacaraka/aksara/internal/aksara"
	"github.com/hanacaraka/aksara/internal/engine"
	"github.com/hanacaraka/aksara/internal/render"
	"github.com/hanacaraka/aksara/internal/report"
)

var translateCmd = &cobra.Command{
	Use:     "translate [text]",
	Aliases: []string{"t"},
	Short:   "Translate Javanese text once and print the result",
	Long: `Translate the given Javanese text and print the Latin
transliteration, the English translation, and the word analysis.

With --debug the engine's introspection data is printed as well:
tokens, parse tree, bytecode, and morphology.

Example:
  aksara translate "ꦲꦏꦸ ꦩꦔꦤ꧀ ꦱꦼꦒ"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().Bool("debug", false, "print introspection data")
	translateCmd.Flags().Bool("json", false, "print the raw result as JSON")
	translateCmd.Flags().String("report", "", "write an HTML report to the given path")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	asJSON, _ := cmd.Flags().GetBool("json")
	reportPath, _ := cmd.Flags().GetString("report")

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("please enter Javanese text to translate")
	}

	client := engine.NewClient(engineEndpoint())
	logger.Debug("translating", zap.String("endpoint", client.Endpoint()), zap.Bool("debug", debug))

	result, err := client.Translate(aksara.Request{Text: text, Debug: debug || reportPath != ""})
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	if store := openHistory(); store != nil {
		if err := store.Record(text, result.Latin, result.English); err != nil {
			logger.Warn("recording history", zap.Error(err))
		}
		store.Close()
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Latin:   %s\n", result.Latin)
	fmt.Printf("English: %s\n", result.English)

	if len(result.Errors) > 0 {
		fmt.Printf("\n%d warning(s):\n", len(result.Errors))
		for _, d := range result.Errors {
			fmt.Printf("  %s\n", d.Message)
		}
	}

	if len(result.Analysis.Words) > 0 {
		fmt.Println()
		fmt.Println(render.AnalysisTable(result.Analysis.Words))
	}

	if debug {
		fmt.Println()
		fmt.Println("Tokens:")
		fmt.Println(render.TokenTable(result.Tokens))
		fmt.Println()
		fmt.Println("AST:")
		fmt.Println(render.ASTPane(result.AST))
		fmt.Println()
		fmt.Println("Bytecode:")
		fmt.Println(render.BytecodeTable(result.Bytecode))
		fmt.Println()
		fmt.Println("Morphology:")
		fmt.Println(render.MorphologyBlocks(result.Analysis.Words))
		if result.DebugOutput != "" {
			fmt.Println()
			fmt.Println("Debug output:")
			fmt.Println(render.Sanitize(result.DebugOutput))
		}
	}

	if reportPath != "" {
		if err := report.NewGenerator().WriteFile(reportPath, text, result); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", reportPath)
	}

	return nil
}
