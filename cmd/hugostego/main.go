// Command hugostego is a CLI front end for the content-adaptive image
// steganography codec: embed, extract, and query capacity without
// standing up the HTTP API.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/virelai/hugostego/internal/carrier"
	"github.com/virelai/hugostego/internal/codec"
	"github.com/virelai/hugostego/internal/raster"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hugostego",
		Short: "Content-adaptive image steganography codec",
		Long:  "hugostego embeds and extracts authenticated payloads in cover images using a cost-weighted LSB schedule.",
	}

	cmd.AddCommand(newEmbedCommand())
	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newCapacityCommand())
	cmd.AddCommand(newCarrierCommand())
	return cmd
}

func newEmbedCommand() *cobra.Command {
	var coverPath, secretPath, outputPath, key string

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed a secret file into a cover image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return fmt.Errorf("--key is required")
			}

			coverFile, err := os.Open(coverPath)
			if err != nil {
				return fmt.Errorf("failed to open cover image: %w", err)
			}
			defer coverFile.Close()

			coverImg, _, err := image.Decode(coverFile)
			if err != nil {
				return fmt.Errorf("failed to decode cover image: %w", err)
			}

			secretData, err := os.ReadFile(secretPath)
			if err != nil {
				return fmt.Errorf("failed to read secret file: %w", err)
			}

			buf, err := raster.FromImage(coverImg)
			if err != nil {
				return fmt.Errorf("failed to prepare cover buffer: %w", err)
			}

			stego, stats, err := codec.Encode(secretData, buf, []byte(key))
			if err != nil {
				return fmt.Errorf("embed failed: %w", err)
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer out.Close()

			if err := png.Encode(out, stego.ToImage()); err != nil {
				return fmt.Errorf("failed to write stego PNG: %w", err)
			}

			okColor.Printf("embedded %d bytes into %s\n", len(secretData), outputPath)
			infoColor.Printf("modified %d slots, camouflage touched %d additional slots (base capacity %d bytes)\n",
				stats.ModifiedCount, stats.CamouflageCount, stats.BaseCapacity)
			return nil
		},
	}

	cmd.Flags().StringVar(&coverPath, "cover", "", "cover image path (required)")
	cmd.Flags().StringVar(&secretPath, "secret", "", "secret payload file path (required)")
	cmd.Flags().StringVar(&outputPath, "output", "stego.png", "output stego PNG path")
	cmd.Flags().StringVar(&key, "key", "", "stego key (required)")
	cmd.MarkFlagRequired("cover")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("key")
	return cmd
}

func newExtractCommand() *cobra.Command {
	var stegoPath, outputPath, key string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a secret file from a stego image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return fmt.Errorf("--key is required")
			}

			stegoFile, err := os.Open(stegoPath)
			if err != nil {
				return fmt.Errorf("failed to open stego image: %w", err)
			}
			defer stegoFile.Close()

			stegoImg, _, err := image.Decode(stegoFile)
			if err != nil {
				return fmt.Errorf("failed to decode stego image: %w", err)
			}

			buf, err := raster.FromImage(stegoImg)
			if err != nil {
				return fmt.Errorf("failed to prepare stego buffer: %w", err)
			}

			plaintext, err := codec.Decode(buf, []byte(key))
			if err != nil {
				return fmt.Errorf("extract failed: %w", err)
			}

			if outputPath == "" || outputPath == "-" {
				os.Stdout.Write(plaintext)
				return nil
			}

			if err := os.WriteFile(outputPath, plaintext, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			okColor.Printf("extracted %d bytes to %s\n", len(plaintext), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&stegoPath, "stego", "", "stego image path (required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path (stdout if omitted)")
	cmd.Flags().StringVar(&key, "key", "", "stego key (required)")
	cmd.MarkFlagRequired("stego")
	cmd.MarkFlagRequired("key")
	return cmd
}

func newCapacityCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Report the maximum payload a cover image size can carry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}
			max := codec.MaxCapacity(width, height)
			base := codec.BaseCapacity(width, height)
			infoColor.Printf("%dx%d: base capacity %d bytes, max payload %d bytes\n", width, height, base, max)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "cover image width in pixels (required)")
	cmd.Flags().IntVar(&height, "height", 0, "cover image height in pixels (required)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	return cmd
}

func newCarrierCommand() *cobra.Command {
	var width, height int
	var seed int64
	var outputPath string

	cmd := &cobra.Command{
		Use:   "carrier",
		Short: "Generate a deterministic synthetic cover image for testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			img := carrier.Generate(seed, width, height)

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer out.Close()

			if err := png.Encode(out, img); err != nil {
				return fmt.Errorf("failed to write carrier PNG: %w", err)
			}

			okColor.Printf("generated %dx%d carrier image (seed %d) at %s\n", width, height, seed, outputPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 512, "carrier image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "carrier image height in pixels")
	cmd.Flags().Int64Var(&seed, "seed", 1, "deterministic generation seed")
	cmd.Flags().StringVar(&outputPath, "output", "carrier.png", "output PNG path")
	return cmd
}
