package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "Manage zones",
		Long:    "List and inspect the zones the configured token can access",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			zones, err := client.Zones().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list zones: %w", err)
			}

			return renderStructured(zones, func() error {
				return renderZonesTable(zones)
			})
		},
	}
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a zone by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			zone, err := client.Zones().FindByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get zone: %w", err)
			}

			return renderStructured(zone, func() error {
				return renderZonesTable([]cfapi.Zone{*zone})
			})
		},
	}
}

func renderZonesTable(zones []cfapi.Zone) error {
	if len(zones) == 0 {
		_, _ = os.Stdout.WriteString("No zones found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Name Servers")

	for _, zone := range zones {
		_ = table.Append([]string{
			zone.ID,
			zone.Name,
			zone.Status,
			strings.Join(zone.NameServers, ", "),
		})
	}

	_ = table.Render()

	return nil
}
