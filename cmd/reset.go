package cmd

import (
	"fmt"

	"github.com/abhisek/flashdeck/internal/learn"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/spf13/cobra"
)

var (
	resetLearn bool
	resetFlash bool
	resetAll   bool
)

var resetCmd = &cobra.Command{
	Use:   "reset <set-id>",
	Short: "Clear study progress for a set",
	Long:  "Clears persisted study state for a set. Defaults to the learn session; --flashcards targets the flashcards marks, --all clears both. The set itself is untouched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		doLearn := resetLearn || resetAll || (!resetLearn && !resetFlash)
		doFlash := resetFlash || resetAll

		if doLearn {
			learn.NewSessionStore(st, nil).Clear(setID)
		}
		if doFlash {
			if err := st.Remove(storage.FlashProgressKey(setID)); err != nil {
				return err
			}
		}

		fmt.Println("Progress cleared for", setID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetLearn, "learn", false, "Clear the learn session (default)")
	resetCmd.Flags().BoolVar(&resetFlash, "flashcards", false, "Clear flashcards progress")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Clear all study progress")
}
