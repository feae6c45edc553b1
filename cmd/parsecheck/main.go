// parsecheck runs the receipt or statement parser over a file of
// already-extracted text and prints the result as JSON. Useful for
// checking what the extractors make of a problem document without going
// through OCR and the HTTP API.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/utils"
)

var cli struct {
	Mode    string `arg:"" enum:"receipt,statement" help:"Parse as a single receipt or a tabular statement."`
	File    string `arg:"" type:"existingfile" help:"Text file with extracted OCR/PDF text."`
	Verbose bool   `short:"v" help:"Log dropped lines and discarded candidates."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("parsecheck"),
		kong.Description("Run the text extractors over a file and print the structured result."),
	)

	level := zerolog.WarnLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	raw, err := os.ReadFile(cli.File)
	kctx.FatalIfErrorf(err)

	var result any
	switch cli.Mode {
	case "receipt":
		result, err = utils.ParseReceiptText(string(raw))
	case "statement":
		result, err = utils.ParseTabularStatement(string(raw))
	}
	kctx.FatalIfErrorf(err)

	out, err := json.MarshalIndent(result, "", "  ")
	kctx.FatalIfErrorf(err)
	fmt.Println(string(out))
}
