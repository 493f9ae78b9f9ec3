package main

// Idea from: https://github.com/jojonas/pyedid/blob/master/pyedid/helpers/registry.py

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

var (
	pnpfile = flag.String("pnpfile", "./PNP.csv", "path to the PNP ID registry csv export")
	outfile = flag.String("out", "../../pnp_table.go", "generated go file")
)

// The registry export carries a few names in upper case only.
var overrides = map[string]string{
	"DEL": "Dell Inc.",
}

func main() {
	flag.Parse()

	in, err := os.ReadFile(*pnpfile)
	if err != nil {
		log.Fatal(err)
	}
	records, err := csv.NewReader(bytes.NewReader(in)).ReadAll()
	if err != nil {
		log.Fatal(err)
	}

	// columns: company, id, approval date. First row is the header.
	names := make(map[string]string, len(records))
	for _, r := range records[1:] {
		if len(r) < 2 || len(r[1]) != 3 {
			continue
		}
		names[r[1]] = strings.TrimSpace(r[0])
	}
	for id, name := range overrides {
		names[id] = name
	}

	ids := make([]string, 0, len(names))
	maxLen := 0
	for id, name := range names {
		ids = append(ids, id)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(ids)

	var out bytes.Buffer
	out.WriteString("// Code generated by utils/generatepnps; DO NOT EDIT.\n\n")
	out.WriteString("package edid\n\n")
	out.WriteString("// MaxManufacturerNameLen bounds the byte length of every registry name.\n")
	fmt.Fprintf(&out, "const MaxManufacturerNameLen = %d\n\n", maxLen)
	out.WriteString("var pnpRegistry = map[string]string{\n")
	for _, id := range ids {
		fmt.Fprintf(&out, "\t%q: %q,\n", id, names[id])
	}
	out.WriteString("}\n")

	if err := os.WriteFile(*outfile, out.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}
