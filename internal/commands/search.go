package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studentcard/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by name and description",
	Long: `Search tasks with ranked matching:
- Exact match (highest priority)
- Prefix match
- Suffix match
- Contains match (lowest priority)

Search is case insensitive and looks at name and description of active and
completed tasks. Use --active to skip completed ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		activeOnly, _ := cmd.Flags().GetBool("active")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		tasks, err := store.Tasks().ListActive(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("error searching tasks: %w", err)
		}
		if !activeOnly {
			done, err := store.Tasks().ListCompleted(cmdContext(cmd))
			if err != nil {
				return fmt.Errorf("error searching tasks: %w", err)
			}
			tasks = append(tasks, done...)
		}

		found := searchTasks(tasks, query)

		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, struct {
				Query string        `json:"query"`
				Count int           `json:"count"`
				Tasks []models.Task `json:"tasks"`
			}{query, len(found), found})
		}

		fmt.Fprintf(w, "Search results for '%s' (%d found):\n", query, len(found))
		if len(found) == 0 {
			fmt.Fprintln(w, "No tasks found matching your search.")
			return nil
		}
		fmt.Fprintln(w)
		renderTaskTable(w, found)
		return nil
	},
}

// Match ranks, lower is better
const (
	matchExact = iota
	matchPrefix
	matchSuffix
	matchContains
	matchNone
)

// matchRank returns the best rank of query against any of fields
func matchRank(query string, fields ...string) int {
	best := matchNone
	for _, f := range fields {
		f = strings.ToLower(f)
		rank := matchNone
		switch {
		case f == query:
			rank = matchExact
		case strings.HasPrefix(f, query):
			rank = matchPrefix
		case strings.HasSuffix(f, query):
			rank = matchSuffix
		case strings.Contains(f, query):
			rank = matchContains
		}
		if rank < best {
			best = rank
		}
	}
	return best
}

// searchTasks filters tasks matching query, best matches first. Ties keep
// their input order.
func searchTasks(tasks []models.Task, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.Task{}
	}

	type hit struct {
		task models.Task
		rank int
	}
	var hits []hit
	for _, t := range tasks {
		if rank := matchRank(query, t.Name, t.DescriptionOrEmpty()); rank != matchNone {
			hits = append(hits, hit{t, rank})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	result := make([]models.Task, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.task)
	}
	return result
}

func init() {
	searchCmd.Flags().Bool("active", false, "Only search active tasks")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
