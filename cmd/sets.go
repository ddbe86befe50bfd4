package cmd

import (
	"fmt"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the stored card sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, st, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sets := repo.List()
		if len(sets) == 0 {
			fmt.Println("No sets stored. Import one with: flashdeck import <file>")
			return nil
		}
		for _, set := range sets {
			fmt.Printf("%s  %-30s  %d cards\n", set.ID, set.Title, len(set.Cards))
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <set-id>",
	Short: "Delete a stored card set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, st, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := repo.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	setsCmd.AddCommand(deleteCmd)
}

func openRepo(cmd *cobra.Command) (*deck.Repository, *storage.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return deck.NewRepository(st), st, nil
}
