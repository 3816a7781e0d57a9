package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MayaTheShy/Starworld/wire"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a captured entity datagram",
		Long: `Parses one hex-encoded datagram (whitespace ignored) and pretty-prints
the entity message it carries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleaned := strings.Map(func(r rune) rune {
				if r == ' ' || r == '\t' || r == '\n' {
					return -1
				}
				return r
			}, args[0])

			data, err := hex.DecodeString(cleaned)
			if err != nil {
				return err
			}

			msg, err := wire.Decode(data)
			if err != nil {
				return err
			}

			printMessage(msg)
			return nil
		},
	}
}

func printMessage(msg wire.Message) {
	fmt.Printf("%s\n", msg.Type())
	switch m := msg.(type) {
	case *wire.EntityAddMessage:
		fmt.Printf("  id:         %d\n", m.ID)
		fmt.Printf("  name:       %q\n", m.Name)
		fmt.Printf("  position:   %s\n", fmtVec3(m.Position))
		fmt.Printf("  rotation:   (%g, %g, %g, %g)\n", m.Rotation.X, m.Rotation.Y, m.Rotation.Z, m.Rotation.W)
		fmt.Printf("  dimensions: %s\n", fmtVec3(m.Dimensions))
		if m.ModelURL != "" {
			fmt.Printf("  model:      %s\n", m.ModelURL)
		}
		if m.TextureURL != "" {
			fmt.Printf("  texture:    %s\n", m.TextureURL)
		}
		fmt.Printf("  color:      %s\n", fmtVec3(m.Color))
	case *wire.EntityEditMessage:
		fmt.Printf("  id:    %d\n", m.ID)
		fmt.Printf("  flags: 0x%02x\n", m.Flags())
		if m.Position != nil {
			fmt.Printf("  position:   %s\n", fmtVec3(*m.Position))
		}
		if m.Rotation != nil {
			fmt.Printf("  rotation:   (%g, %g, %g, %g)\n", m.Rotation.X, m.Rotation.Y, m.Rotation.Z, m.Rotation.W)
		}
		if m.Dimensions != nil {
			fmt.Printf("  dimensions: %s\n", fmtVec3(*m.Dimensions))
		}
	case *wire.EntityEraseMessage:
		fmt.Printf("  id: %d\n", m.ID)
	}
}

func fmtVec3(v wire.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
