// auditview renders the persisted conversation logs as a table, read
// directly from the moderator's database. It opens Badger read-only
// with the lock guard bypassed so it can run next to a live session.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"runar/domain"
	"runar/internal"
	"runar/repositories"
)

func main() {
	history := flag.String("history", "", "Conversation key or group id to print in full")
	flag.Parse()

	_ = godotenv.Load()
	var config internal.ViewerConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := internal.Logger(config.LogLevel)

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	blobs := repositories.NewBlobRepository(db, logger)

	pairwise := make(map[string]*domain.PairwiseConversation)
	if _, err := blobs.ReadNamedBlob(repositories.BlobPairwise, &pairwise); err != nil {
		log.Fatalf("Failed to read pairwise blob: %v", err)
	}
	groups := make(map[string]*domain.GroupConversation)
	if _, err := blobs.ReadNamedBlob(repositories.BlobGroups, &groups); err != nil {
		log.Fatalf("Failed to read group blob: %v", err)
	}

	if *history != "" {
		printHistory(*history, pairwise, groups)
		return
	}

	color.Bold.Println("Persisted conversations")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Conversation", "Type", "Members", "Messages", "Last activity"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	type row struct{ cells []string }
	var rows []row
	for id, g := range groups {
		rows = append(rows, row{[]string{
			fmt.Sprintf("%s (%s)", g.Name, id),
			"group",
			fmt.Sprintf("%d", len(g.Members)),
			fmt.Sprintf("%d", len(g.History)),
			lastActivity(g.History),
		}})
	}
	for key, c := range pairwise {
		if c.Placeholder() {
			continue
		}
		rows = append(rows, row{[]string{
			key,
			"private",
			"2",
			fmt.Sprintf("%d", len(c.History)),
			lastActivity(c.History),
		}})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].cells[0] < rows[j].cells[0] })
	for _, r := range rows {
		table.Append(r.cells)
	}
	table.Render()
}

func printHistory(id string, pairwise map[string]*domain.PairwiseConversation, groups map[string]*domain.GroupConversation) {
	var history []domain.Message
	if g, ok := groups[id]; ok {
		color.Bold.Printf("Group %q\n", g.Name)
		history = g.History
	} else if c, ok := pairwise[id]; ok {
		color.Bold.Printf("Private chat %s\n", id)
		history = c.History
	} else {
		log.Fatalf("No persisted conversation %q", id)
	}
	for _, msg := range history {
		at := time.UnixMilli(msg.SentAt).Format(time.RFC822)
		fmt.Printf("[%s] %s: %s\n", at, msg.Speaker.Name, msg.Content)
	}
}

func lastActivity(history []domain.Message) string {
	if len(history) == 0 {
		return "-"
	}
	return time.UnixMilli(history[len(history)-1].SentAt).Format(time.RFC822)
}
