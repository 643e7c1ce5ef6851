package main

import (
	"fmt"
	"os"

	"stayhub/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"ariga.io/atlas/sql/migrate"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "migrations", "Migration directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "hash",
		Short: "Rewrite atlas.sum after editing migration files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			local, err := migrate.NewLocalDir(dir)
			if err != nil {
				return err
			}
			sum, err := local.Checksum()
			if err != nil {
				return err
			}
			if err := migrate.WriteSumFile(local, sum); err != nil {
				return err
			}
			fmt.Printf("wrote %s/atlas.sum\n", dir)
			return nil
		},
	})

	var atlasBin string
	apply := &cobra.Command{
		Use:   "apply",
		Short: "Apply pending migrations using the atlas binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
			if err != nil {
				return err
			}
			defer workdir.Close()

			client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
			if err != nil {
				return err
			}
			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL: cfg.DB.BuildDSN(),
			})
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(res)
			}
			fmt.Printf("applied %d migrations, now at %s\n", len(res.Applied), res.Target)
			return nil
		},
	}
	apply.Flags().StringVar(&atlasBin, "atlas", "atlas", "Path to the atlas binary")
	cmd.AddCommand(apply)

	return cmd
}
