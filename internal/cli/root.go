package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/config"
)

var version = "dev"

var (
	configPath  string
	outputDir   string
	maxParallel int
)

var rootCmd = &cobra.Command{
	Use:   "yt-clipper",
	Short: "Download and trim YouTube videos from the terminal",
	Long: `yt-clipper - download and trim YouTube videos

An interactive console for fetching video metadata, picking a
resolution or audio-only MP3, optionally cutting a time range,
and downloading the result through yt-dlp and ffmpeg.

Run 'yt-clipper serve' to use the browser dashboard instead.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runConsole(cmd.Context(), cfg)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory downloads are written to")
	rootCmd.PersistentFlags().IntVar(&maxParallel, "parallel", 0, "Maximum simultaneous downloads")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("yt-clipper {{.Version}}\n")
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.Download.Dir = outputDir
	}
	if maxParallel > 0 {
		cfg.Download.MaxParallel = maxParallel
	}
	return cfg, nil
}
