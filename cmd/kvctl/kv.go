package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edgekv/kvctl/aplog"
	"github.com/edgekv/kvctl/config"
	"github.com/edgekv/kvctl/httpf"
	"github.com/edgekv/kvctl/kv"
)

func cmdKv() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Manage key-value pairs",
	}

	cmd.AddCommand(cmdKvPut())

	return cmd
}

func cmdKvPut() *cobra.Command {
	var (
		resolver *config.Resolver

		namespaceId   string
		path          string
		expiration    string
		expirationTtl string
		metadata      string
	)

	cmd := &cobra.Command{
		Use:   "put <key> [value]",
		Short: "Write a single key/value pair to a namespace",
		Long: `Write a single key/value pair to a namespace. The value is either a literal
argument or the contents of the file given with --path. Metadata, when given,
must be valid JSON and is stored alongside the value.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			isFile := path != ""
			value := path
			if len(args) == 2 {
				if isFile {
					return errors.New("either a value argument or --path may be given, not both")
				}
				value = args[1]
			} else if !isFile {
				return errors.New("a value argument or --path is required")
			}

			var metadataArg *string
			if cmd.Flags().Changed("metadata") {
				metadataArg = &metadata
			}

			parsedMetadata, err := kv.ParseMetadata(metadataArg)
			if err != nil {
				return err
			}

			target, err := resolver.ResolveTarget()
			if err != nil {
				return err
			}

			creds, err := resolver.ResolveCredentials()
			if err != nil {
				return err
			}

			logger := aplog.NewBuilder(resolver.ResolveLogger()).
				WithComponent("kv").
				WithNamespace(namespaceId).
				Build()

			client := kv.NewClient(target, httpf.CreateFactory(creds)).WithLogger(logger)

			err = client.Put(cmd.Context(), kv.PutRequest{
				NamespaceID:   namespaceId,
				Key:           key,
				Value:         value,
				IsFile:        isFile,
				Expiration:    expiration,
				ExpirationTTL: expirationTtl,
				Metadata:      parsedMetadata,
			})
			if err != nil {
				if kv.KindOf(err) == kv.ErrKindRemoteRejection {
					// The service answered and rejected the write; show the
					// report rather than failing the invocation.
					fmt.Print(err.Error())
					return nil
				}
				return err
			}

			return nil
		},
	}

	resolver = config.WithConfigParams(cmd)

	cmd.Flags().StringVar(&namespaceId, "namespace-id", "", "ID of the namespace to write to")
	cmd.MarkFlagRequired("namespace-id")

	cmd.Flags().StringVar(&path, "path", "", "Read the value from this file instead of a value argument")
	cmd.Flags().StringVar(&expiration, "expiration", "", "Absolute expiration timestamp for the key, in seconds since epoch")
	cmd.Flags().StringVar(&expirationTtl, "expiration-ttl", "", "Relative expiration for the key, in seconds")
	cmd.Flags().StringVar(&metadata, "metadata", "", "Arbitrary JSON metadata to store with the key")

	return cmd
}
