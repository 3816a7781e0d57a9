package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaTheShy/Starworld/protocol"
)

func signatureCmd() *cobra.Command {
	var sourcePath string

	cmd := &cobra.Command{
		Use:   "signature",
		Short: "Compute the protocol compatibility signature",
		Long: `Packs the per-packet-type version table and digests it into the 16-byte
checksum two peers compare before speaking. The table comes from the config
file when one is supplied, otherwise from the built-in default; --source
resolves the packet-type count and every named version counter from a
reference packet headers file instead of trusting recorded literals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			spec, err := protocol.TableSpecFromConfig(cfg)
			if err != nil {
				return err
			}

			if sourcePath != "" {
				h, err := protocol.ReadHeaderFile(sourcePath)
				if err != nil {
					return err
				}
				if spec, err = h.ResolveTableSpec(spec); err != nil {
					return err
				}
			}

			sig, err := protocol.ComputeSignature(spec)
			if err != nil {
				return err
			}

			fmt.Printf("Packet types: %d (default version %d, %d overrides)\n",
				spec.PacketTypes, spec.DefaultVersion, len(spec.Overrides))
			fmt.Printf("Hex:        %s\n", sig.Hex())
			fmt.Printf("Base64:     %s\n", sig.Base64())
			fmt.Printf("Byte array: %s\n", sig.ByteArray())
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "reference packet headers file to resolve counts and versions from")

	return cmd
}
