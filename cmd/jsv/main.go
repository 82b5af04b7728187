package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	csvschema "github.com/reoring/csvschema"
	"github.com/reoring/csvschema/source/csvrow"
	"github.com/reoring/csvschema/validator/jsonschemav5"
)

// Exit codes: 0 when every record validates, 1 when records fail
// validation, 2 on setup or usage errors.
func main() {
	fs := flag.NewFlagSet("jsv", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "./schema.json", "path to the schema document (JSON or YAML)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "jsv validates CSV records against a JSON schema.\n\nUsage:\n  jsv [-schema schema.json] data.csv")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	csvPath := fs.Arg(0)

	schema, err := csvschema.LoadSchemaFile(schemaPath)
	if err != nil {
		fatalf("%v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fatalf("failed to open csv file (%s): %v", csvPath, err)
	}
	defer f.Close()

	runner, err := csvschema.NewRunner(schema, jsonschemav5.New())
	if err != nil {
		fatalf("%v", err)
	}

	if _, err := runner.Run(context.Background(), csvrow.NewReader(f)); err != nil {
		var ire *csvschema.InvalidRecordsError
		if errors.As(err, &ire) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fatalf("%v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
