// Package commands implements the CLI command tree.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/esaiascronelius/cloudflare-ddns/internal/logger"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfclient"
)

// CreateClient builds a verified API client from the effective configuration.
// Token verification happens inside cfclient.New; a rejected token surfaces
// as cfapi.ErrCredentialInvalid and the command fails before doing any work.
func CreateClient(ctx context.Context) (cfapi.Client, error) {
	token, err := resolveToken()
	if err != nil {
		return nil, err
	}

	config := &cfapi.Config{
		APIEndpoint: viper.GetString("api"),
		APIToken:    token,
		Cache:       cacheConfig(),
		Logger:      logger.New(os.Stderr, viper.GetBool("verbose")),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := cfclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// resolveToken returns the configured API token, prompting interactively as
// a last resort when stdin is a terminal.
func resolveToken() (string, error) {
	token := viper.GetString("token")
	if token != "" {
		return token, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", cfapi.ErrAPITokenRequired
	}

	fmt.Fprint(os.Stderr, "API token: ")

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	token = strings.TrimSpace(string(raw))
	if token == "" {
		return "", cfapi.ErrAPITokenRequired
	}

	return token, nil
}

// cacheConfig builds the response cache configuration from viper settings.
func cacheConfig() *cfapi.CacheConfig {
	config := &cfapi.CacheConfig{
		Type: cfapi.CacheType(viper.GetString("cache.type")),
	}

	if config.Type == "" {
		config.Type = cfapi.CacheTypeMemory
	}

	if config.Type == cfapi.CacheTypeNATS {
		config.NATS = &cfapi.NATSKVConfig{
			URL:       viper.GetString("cache.nats.url"),
			Bucket:    viper.GetString("cache.nats.bucket"),
			CredsFile: viper.GetString("cache.nats.creds"),
		}
	}

	return config
}

// renderStructured prints v as JSON or YAML per the output flag, or calls
// tableFn for the default table format.
func renderStructured(v interface{}, tableFn func() error) error {
	switch viper.GetString("output") {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}

		fmt.Println(string(data))

		return nil

	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}

		fmt.Print(string(data))

		return nil

	default:
		return tableFn()
	}
}
