package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shubhanshu2113/CricBuzz/internal/crud"
	"github.com/shubhanshu2113/CricBuzz/internal/reports"
	"github.com/shubhanshu2113/CricBuzz/pkg/database"
	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

func main() {
	var (
		table = flag.String("table", "", "table to export (one of the dashboard tables)")
		query = flag.String("query", "", "canned query name to export instead of a table")
		out   = flag.String("out", "", "output CSV path (defaults to data/<name>.csv)")
	)
	flag.Parse()

	if (*table == "") == (*query == "") {
		log.Fatal("exactly one of -table or -query is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	var (
		name    string
		sqlText string
	)
	switch {
	case *table != "":
		if !crud.ValidTable(*table) {
			log.Fatalf("unknown table %q (valid: %v)", *table, crud.Tables)
		}
		name = *table
		sqlText = "SELECT * FROM " + *table
	default:
		nq, ok := reports.Lookup(*query)
		if !ok {
			log.Fatalf("unknown query %q", *query)
		}
		name = nq.Name
		sqlText = nq.SQL
	}

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join("data", name+".csv")
	}

	result, err := database.Query(ctx, db, sqlText)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}

	if err := writeCSV(outPath, result); err != nil {
		log.Fatalf("write csv failed: %v", err)
	}
	log.Printf("✅ exported %d rows of %s to %s", len(result.Rows), name, outPath)
}

func writeCSV(outPath string, table *models.Table) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && row[i] != nil {
				record[i] = fmt.Sprintf("%v", row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
