package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage DNS records",
		Long:    "List and delete DNS records within a zone",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func newRecordsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list ZONE",
		Short: "List DNS records in a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			zone, err := client.Zones().FindByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find zone: %w", err)
			}

			records, err := client.DNSRecords().List(cmd.Context(), zone.ID)
			if err != nil {
				return fmt.Errorf("failed to list DNS records: %w", err)
			}

			return renderStructured(records, func() error {
				return renderRecordsTable(records)
			})
		},
	}
}

func newRecordsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ZONE RECORD_ID",
		Short: "Delete a DNS record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return ErrDeleteRequiresForce
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			zone, err := client.Zones().FindByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find zone: %w", err)
			}

			err = client.DNSRecords().Delete(cmd.Context(), zone.ID, args[1])
			if err != nil {
				return fmt.Errorf("failed to delete DNS record: %w", err)
			}

			fmt.Printf("Deleted record %s from zone %s\n", args[1], zone.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func renderRecordsTable(records []cfapi.DNSRecord) error {
	if len(records) == 0 {
		_, _ = os.Stdout.WriteString("No DNS records found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Name", "Content", "TTL", "Proxied")

	for _, record := range records {
		_ = table.Append([]string{
			record.ID,
			record.Type,
			record.Name,
			record.Content,
			strconv.Itoa(record.TTL),
			strconv.FormatBool(record.Proxied),
		})
	}

	_ = table.Render()

	return nil
}
