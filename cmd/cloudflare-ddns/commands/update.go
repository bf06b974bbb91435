package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/esaiascronelius/cloudflare-ddns/internal/ddns"
)

// Static errors for err113 compliance.
var (
	ErrDomainsRequired     = errors.New("at least one --domain is required")
	ErrDeleteRequiresForce = errors.New("deletion requires --force")
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var (
		domains     []string
		proxied     bool
		recordTTL   int
		comment     string
		detectorURL string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Point DNS records at this host's public IP",
		Long: `Detects the current public IP and reconciles an address record for each
configured domain, creating missing records and rewriting stale ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(domains) == 0 {
				return ErrDomainsRequired
			}

			client, err := CreateClient(cmd.Context())
			if err != nil {
				return err
			}

			updater := ddns.New(client, ddns.NewHTTPDetector(detectorURL), nil, ddns.Config{
				Domains:   domains,
				Proxied:   proxied,
				RecordTTL: recordTTL,
				Comment:   comment,
			})

			results, err := updater.Sync(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to update records: %w", err)
			}

			return renderStructured(results, func() error {
				return renderResultsTable(results)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&domains, "domain", "d", nil, "domain to manage (repeatable)")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "proxy managed records through Cloudflare")
	cmd.Flags().IntVar(&recordTTL, "record-ttl", 0, "TTL for managed records (0 = automatic)")
	cmd.Flags().StringVar(&comment, "comment", "managed by cloudflare-ddns", "comment attached to managed records")
	cmd.Flags().StringVar(&detectorURL, "detector-url", "", "override the public IP detection endpoint")

	return cmd
}

func renderResultsTable(results []ddns.Result) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Domain", "Action", "Content")

	for _, result := range results {
		content := ""
		if result.Record != nil {
			content = result.Record.Content
		}

		_ = table.Append([]string{
			result.Domain,
			string(result.Action),
			content,
		})
	}

	_ = table.Render()

	return nil
}
