package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Message text")
	cmd.Flags().String("message-hex", "", "Message as hex")
	cmd.Flags().String("message-file", "", "Read the message from a file")
	cmd.MarkFlagsMutuallyExclusive("message", "message-hex", "message-file")
}

// readMessage returns the message given by exactly one of the message flags.
func readMessage(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("message"):
		m, _ := flags.GetString("message")
		return []byte(m), nil
	case flags.Changed("message-hex"):
		m, _ := flags.GetString("message-hex")
		b, err := group.DecodeHex(m)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message: %w", err)
		}
		return b, nil
	case flags.Changed("message-file"):
		path, _ := flags.GetString("message-file")
		return os.ReadFile(path)
	}
	return nil, errors.New("one of --message, --message-hex or --message-file is required")
}
