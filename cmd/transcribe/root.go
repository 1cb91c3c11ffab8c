package main

import (
	"io"

	"github.com/spf13/cobra"
)

type options struct {
	configPath        string
	transcriptionOnly bool
	force             bool
	prompt            string
	docxPath          string
	verbose           bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "transcribe [input]",
		Short: "Transcribe and summarize a recording",
		Long: `Transcribe an audio/video file with Whisper and summarize the transcript.
A JSON or text transcript may be given instead of media, in which case transcription is skipped.
Without an input, the most recently modified .mp4 in the current directory is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd.Context(), opts, input, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.transcriptionOnly, "transcription-only", "t", false, "Only output the transcription")
	flags.BoolVarP(&opts.force, "force", "f", false, "Force re-transcription even if a cached transcription exists")
	flags.StringVarP(&opts.prompt, "prompt", "p", "", "Additional prompt for the summary")
	flags.StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to config file")
	flags.StringVarP(&opts.docxPath, "docx", "o", "", "Also write the result to this .docx file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
