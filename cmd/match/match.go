// Package match implements the match command.
package match

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IqbalNugrahaa/HappiestStore/cmd/root"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/export"
	"github.com/IqbalNugrahaa/HappiestStore/internal/models"
)

// Suggest is the number of candidates listed next to the best match.
var Suggest int

// Cmd represents the match command
var Cmd = &cobra.Command{
	Use:   "match [description...]",
	Short: "Find the catalog product for a purchase description",
	Long: `Find the catalog product whose name best matches a free-text purchase
description. The best match is reported only when its similarity reaches the
configured threshold; the top candidates are always listed for review.

Example:
  happiest-ingest match -c catalog.yaml "netflix sharing 1 bulan"`,
	Args: cobra.MinimumNArgs(1),
	Run:  matchFunc,
}

func init() {
	Cmd.Flags().IntVarP(&Suggest, "suggest", "n", 3, "Number of candidates to list")
}

// Outcome is what the match command reports for one description.
type Outcome struct {
	Query       string               `json:"query"`
	Match       *models.MatchResult  `json:"match"`
	Suggestions []models.MatchResult `json:"suggestions"`
}

func matchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	c := root.GetContainer()
	if c == nil {
		logger.Fatal("Container not initialized")
	}

	if err := Run(c, root.SharedFlags.Catalog, strings.Join(args, " "), Suggest, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error matching description: %v", err)
	}
}

// Run loads the catalog and writes the outcome for query as JSON.
func Run(c *container.Container, catalogPath, query string, suggest int, out io.Writer) error {
	loaded, err := c.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	m := c.GetMatcher()
	outcome := Outcome{
		Query:       query,
		Suggestions: m.Suggestions(query, loaded.Catalog, suggest),
	}
	if best, ok := m.FindBestMatch(query, loaded.Catalog); ok {
		outcome.Match = &best
	}
	if outcome.Suggestions == nil {
		outcome.Suggestions = []models.MatchResult{}
	}
	return export.WriteJSON(out, outcome)
}
