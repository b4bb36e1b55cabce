package cmd

import (
	"fmt"
	"io"
	"os"

	"btcforge/jsonx"
)

// readJSONRequest decodes a JSON request either from the first positional
// argument or, when none is given, from stdin. Mirrors how the one-shot
// subcommands accept their input.
func readJSONRequest(args []string, v interface{}) error {
	var data []byte
	if len(args) > 0 {
		data = []byte(args[0])
	} else {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read request from stdin: %w", err)
		}
	}
	if err := jsonx.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON request: %w", err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	out, err := jsonx.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
