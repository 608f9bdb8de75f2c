package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("cricstats", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cmd {
	case "live":
		handleLive(ctx, client, *baseURL)
	case "stats":
		handleStats(ctx, client, *baseURL, sub, args[2:])
	case "query":
		handleQuery(ctx, client, *baseURL, sub, args[2:])
	case "tables":
		handleTables(ctx, client, *baseURL, args[1:])
	case "team":
		handleTeam(ctx, client, *baseURL, sub, args[2:])
	case "stat":
		handleStat(ctx, client, *baseURL, sub, args[2:])
	case "ingest":
		handleIngest(ctx, client, *baseURL, sub)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleLive(ctx context.Context, client *http.Client, baseURL string) {
	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/live", nil, &resp); err != nil {
		log.Fatalf("live failed: %v", err)
	}
	printJSON(resp)
}

func handleStats(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "types":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/stats/types", nil, &resp); err != nil {
			log.Fatalf("stats types failed: %v", err)
		}
		printJSON(resp)
	case "top":
		fs := flag.NewFlagSet("stats top", flag.ExitOnError)
		statsType := fs.String("type", "", "leaderboard type, e.g. mostRuns")
		format := fs.String("format", "", "match format filter")
		_ = fs.Parse(args)
		if *statsType == "" {
			log.Fatal("type is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, statsURL(baseURL, "/stats/top", *statsType, *format), nil, &resp); err != nil {
			log.Fatalf("stats top failed: %v", err)
		}
		printJSON(resp)
	case "save":
		fs := flag.NewFlagSet("stats save", flag.ExitOnError)
		statsType := fs.String("type", "", "leaderboard type, e.g. mostRuns")
		format := fs.String("format", "", "match format filter")
		_ = fs.Parse(args)
		if *statsType == "" {
			log.Fatal("type is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, statsURL(baseURL, "/stats/top/save", *statsType, *format), nil, &resp); err != nil {
			log.Fatalf("stats save failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: cricstats stats <types|top|save>")
	}
}

func handleQuery(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/sql/queries", nil, &resp); err != nil {
			log.Fatalf("query list failed: %v", err)
		}
		printJSON(resp)
	case "run":
		fs := flag.NewFlagSet("query run", flag.ExitOnError)
		name := fs.String("name", "", "canned query name")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/sql/queries/run", map[string]string{"name": *name}, &resp); err != nil {
			log.Fatalf("query run failed: %v", err)
		}
		printJSON(resp)
	case "adhoc":
		fs := flag.NewFlagSet("query adhoc", flag.ExitOnError)
		sqlText := fs.String("sql", "", "SQL statement to execute")
		_ = fs.Parse(args)
		if *sqlText == "" {
			log.Fatal("sql is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/sql/queries/adhoc", map[string]string{"sql": *sqlText}, &resp); err != nil {
			log.Fatalf("query adhoc failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: cricstats query <list|run|adhoc>")
	}
}

func handleTables(ctx context.Context, client *http.Client, baseURL string, args []string) {
	if len(args) == 0 {
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/crud/tables", nil, &resp); err != nil {
			log.Fatalf("tables failed: %v", err)
		}
		printJSON(resp)
		return
	}

	name := args[0]
	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/crud/tables/"+url.PathEscape(name)+"/rows", nil, &resp); err != nil {
		log.Fatalf("table rows failed: %v", err)
	}
	printJSON(resp)
}

func handleTeam(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/crud/teams", nil, &resp); err != nil {
			log.Fatalf("team list failed: %v", err)
		}
		printJSON(resp)
	case "add":
		fs := flag.NewFlagSet("team add", flag.ExitOnError)
		id := fs.Int64("id", 0, "team id")
		name := fs.String("name", "", "team name")
		sname := fs.String("sname", "", "team short name")
		_ = fs.Parse(args)
		if *id <= 0 || *name == "" {
			log.Fatal("id and name are required")
		}

		payload := map[string]any{"team_id": *id, "team_name": *name, "team_sname": *sname}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/crud/teams", payload, &resp); err != nil {
			log.Fatalf("team add failed: %v", err)
		}
		printJSON(resp)
	case "update":
		fs := flag.NewFlagSet("team update", flag.ExitOnError)
		id := fs.Int64("id", 0, "team id")
		name := fs.String("name", "", "team name")
		sname := fs.String("sname", "", "team short name")
		_ = fs.Parse(args)
		if *id <= 0 || *name == "" {
			log.Fatal("id and name are required")
		}

		payload := map[string]any{"team_name": *name, "team_sname": *sname}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPut, fmt.Sprintf("%s/crud/teams/%d", baseURL, *id), payload, &resp); err != nil {
			log.Fatalf("team update failed: %v", err)
		}
		printJSON(resp)
	case "delete":
		fs := flag.NewFlagSet("team delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "team id")
		_ = fs.Parse(args)
		if *id <= 0 {
			log.Fatal("id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, fmt.Sprintf("%s/crud/teams/%d", baseURL, *id), nil, &resp); err != nil {
			log.Fatalf("team delete failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: cricstats team <list|add|update|delete>")
	}
}

func handleStat(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/crud/playerstats", nil, &resp); err != nil {
			log.Fatalf("stat list failed: %v", err)
		}
		printJSON(resp)
	case "add":
		fs := flag.NewFlagSet("stat add", flag.ExitOnError)
		name := fs.String("name", "", "player name")
		format := fs.String("format", "", "match format")
		scope := fs.String("scope", "manual", "leaderboard scope")
		runs := fs.Int64("runs", 0, "runs scored")
		average := fs.Float64("average", 0, "batting average")
		_ = fs.Parse(args)
		if *name == "" {
			log.Fatal("name is required")
		}

		payload := map[string]any{
			"player_name": *name,
			"format":      *format,
			"scope":       *scope,
			"runs":        *runs,
			"average":     *average,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/crud/playerstats", payload, &resp); err != nil {
			log.Fatalf("stat add failed: %v", err)
		}
		printJSON(resp)
	case "update":
		fs := flag.NewFlagSet("stat update", flag.ExitOnError)
		rowid := fs.Int64("rowid", 0, "player_stats row id")
		runs := fs.Int64("runs", 0, "runs scored")
		average := fs.Float64("average", 0, "batting average")
		_ = fs.Parse(args)
		if *rowid <= 0 {
			log.Fatal("rowid is required")
		}

		payload := map[string]any{"runs": *runs, "average": *average}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPut, fmt.Sprintf("%s/crud/playerstats/%d", baseURL, *rowid), payload, &resp); err != nil {
			log.Fatalf("stat update failed: %v", err)
		}
		printJSON(resp)
	case "delete":
		fs := flag.NewFlagSet("stat delete", flag.ExitOnError)
		rowid := fs.Int64("rowid", 0, "player_stats row id")
		_ = fs.Parse(args)
		if *rowid <= 0 {
			log.Fatal("rowid is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, fmt.Sprintf("%s/crud/playerstats/%d", baseURL, *rowid), nil, &resp); err != nil {
			log.Fatalf("stat delete failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: cricstats stat <list|add|update|delete>")
	}
}

func handleIngest(ctx context.Context, client *http.Client, baseURL, sub string) {
	switch sub {
	case "matches", "players", "venues", "stats":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/sql/ingest/"+sub, nil, &resp); err != nil {
			log.Fatalf("ingest %s failed: %v", sub, err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: cricstats ingest <matches|players|venues|stats>")
	}
}

func statsURL(baseURL, path, statsType, format string) string {
	u, err := url.Parse(baseURL + path)
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := u.Query()
	qv.Set("statsType", statsType)
	if format != "" {
		qv.Set("formatType", format)
	}
	u.RawQuery = qv.Encode()
	return u.String()
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Println("cricstats <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  live")
	fmt.Println("  stats types|top|save")
	fmt.Println("  query list|run|adhoc")
	fmt.Println("  tables [name]")
	fmt.Println("  team list|add|update|delete")
	fmt.Println("  stat list|add|update|delete")
	fmt.Println("  ingest matches|players|venues|stats")
}
