package config

import (
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edgekv/kvctl/aplog"
	"github.com/edgekv/kvctl/httpf"
	"github.com/edgekv/kvctl/kv"
)

const defaultConfigPath = "~/.kvctl.yaml"

// Resolver pulls config from a combination of command line flags, KVCTL_*
// environment variables, and the yaml config file, in that precedence order.
type Resolver struct {
	root       *Root
	rootLoaded bool

	accountId  string
	apiToken   string
	email      string
	apiKey     string
	baseUrl    string
	configFile string
	verbose    bool
}

func WithConfigParams(cmd *cobra.Command) *Resolver {
	r := Resolver{}

	cmd.Flags().StringVar(&r.accountId, "account-id", "", "Account the namespace belongs to")
	cmd.Flags().StringVar(&r.apiToken, "api-token", "", "API token to authenticate with")
	cmd.Flags().StringVar(&r.email, "email", "", "Account email, for key-based auth")
	cmd.Flags().StringVar(&r.apiKey, "api-key", "", "Account API key, for key-based auth")
	cmd.MarkFlagsMutuallyExclusive("api-token", "api-key")

	cmd.Flags().StringVar(&r.baseUrl, "base-url", "", "API base URL override")
	cmd.Flags().StringVar(&r.configFile, "config", "", ".kvctl.yaml config file to use")
	cmd.Flags().BoolVarP(&r.verbose, "verbose", "v", false, "Enable debug logging")

	return &r
}

func (r *Resolver) resolveRoot() (*Root, error) {
	if r.rootLoaded {
		return r.root, nil
	}

	explicitConfig := false
	configPath := defaultConfigPath

	if r.configFile != "" {
		explicitConfig = true
		configPath = r.configFile
	}

	configPath, err := homedir.Expand(configPath)
	if err != nil {
		if explicitConfig {
			return nil, errors.Wrapf(err, "invalid config file path '%s'", r.configFile)
		}
		// Was not explicitly configured, so ignore
		return nil, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		if explicitConfig {
			return nil, errors.Wrapf(err, "config file '%s' does not exist", r.configFile)
		}
		return nil, nil
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", configPath)
	}

	root, err := UnmarshallYamlRoot(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse yaml config file '%s'", configPath)
	}

	r.root = root
	r.rootLoaded = true
	return root, nil
}

func (r *Resolver) resolve(flagVal, envVar string, fromRoot func(*Root) string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}

	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	root, err := r.resolveRoot()
	if err != nil {
		return "", err
	}

	return fromRoot(root), nil
}

func (r *Resolver) ResolveTarget() (kv.Target, error) {
	accountId, err := r.resolve(r.accountId, "KVCTL_ACCOUNT_ID", (*Root).AccountID)
	if err != nil {
		return kv.Target{}, err
	}

	baseUrl, err := r.resolve(r.baseUrl, "KVCTL_BASE_URL", (*Root).BaseUrl)
	if err != nil {
		return kv.Target{}, err
	}

	return kv.Target{
		AccountID: accountId,
		BaseURL:   baseUrl,
	}, nil
}

func (r *Resolver) ResolveCredentials() (httpf.Credentials, error) {
	apiToken, err := r.resolve(r.apiToken, "KVCTL_API_TOKEN", (*Root).ApiToken)
	if err != nil {
		return httpf.Credentials{}, err
	}

	email, err := r.resolve(r.email, "KVCTL_EMAIL", (*Root).Email)
	if err != nil {
		return httpf.Credentials{}, err
	}

	apiKey, err := r.resolve(r.apiKey, "KVCTL_API_KEY", (*Root).ApiKey)
	if err != nil {
		return httpf.Credentials{}, err
	}

	return httpf.Credentials{
		APIToken: apiToken,
		Email:    email,
		APIKey:   apiKey,
	}, nil
}

func (r *Resolver) ResolveLogger() *slog.Logger {
	return aplog.NewRootLogger(os.Stderr, r.verbose)
}
