package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/importer"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/spf13/cobra"
)

var importTitle string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a card set from a text or JSON file",
	Long: `Import a card set.

JSON files (.json) are validated against the deck schema. Anything else
is parsed line by line as "term<TAB>definition", with " - " accepted as
a fallback separator; lines starting with # are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var set *deck.Set
		if strings.EqualFold(filepath.Ext(path), ".json") {
			set, err = importer.ParseJSON(data)
			if err != nil {
				return err
			}
		} else {
			cards, errs := importer.ParseText(string(data))
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, "skipped:", e)
			}
			if len(cards) == 0 {
				return fmt.Errorf("no cards found in %s", path)
			}
			title := importTitle
			if title == "" {
				title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			set = deck.NewSet(title, cards)
		}
		if importTitle != "" {
			set.Title = importTitle
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := deck.NewRepository(st).Save(set); err != nil {
			return err
		}
		fmt.Printf("Imported %q with %d cards (id %s)\n", set.Title, len(set.Cards), set.ID)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importTitle, "title", "", "Title for the imported set (default: file name or JSON title)")
}
