package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chordsign/contractgen/pkg/store"
	"github.com/chordsign/contractgen/pkg/store/sqlite"
	"github.com/chordsign/contractgen/pkg/templates"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local contract database",
}

var storeSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write template definitions into the database",
	Long: `Seed inserts every known template definition into the database.
Templates already present are replaced only when the definition carries a
higher version, so locally stored copies are never downgraded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := allTemplates()
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := store.Seed(cmd.Context(), s, defs, templates.ShouldReplace); err != nil {
			return err
		}
		logrus.WithField("templates", len(defs)).Info("seed complete")
		return nil
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates and contracts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		defs, err := s.ListTemplates(cmd.Context())
		if err != nil {
			return err
		}
		for _, def := range defs {
			fmt.Printf("template  %-22s v%d\n", def.ID, def.Version)
		}

		contracts, err := s.ListContracts(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range contracts {
			fmt.Printf("contract  %-22s %s  %s\n", c.ID, c.TemplateID, c.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	storeCmd.PersistentFlags().String("db", "contractgen.db", "path to the sqlite database")
	_ = viper.BindPFlag("db", storeCmd.PersistentFlags().Lookup("db"))
	storeCmd.AddCommand(storeSeedCmd)
	storeCmd.AddCommand(storeListCmd)
	rootCmd.AddCommand(storeCmd)
}

func openStore() (*sqlite.Store, error) {
	path := viper.GetString("db")
	s, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return s, nil
}
