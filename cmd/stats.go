package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/khrees2412/talentflow/internal/database"
	"github.com/khrees2412/talentflow/internal/pipeline"
	"github.com/khrees2412/talentflow/internal/projection"
	"github.com/khrees2412/talentflow/pkg/models"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View pipeline statistics",
	Long:  "Display counts per stage, conversion rates, skills and recent additions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		candidates := a.Store.List()
		if len(candidates) == 0 {
			cmd.Println("No candidates yet. Add one with 'talentflow add --name NAME --role ROLE'")
			return nil
		}

		stats := calculateStats(candidates, time.Now())

		cmd.Println(titleStyle.Render("Pipeline Statistics"))

		// Overall stats
		cmd.Printf("%s\n", labelStyle.Render("Overview"))
		cmd.Printf("  Total Candidates: %d\n", stats.Total)
		cmd.Printf("  Hired: %d\n", stats.Hired)
		cmd.Printf("  Pending: %d\n", stats.Pending)
		cmd.Printf("  Average Rating: %.1f\n", stats.AvgRating)
		if saved, ok, err := database.NewKV(a.DB).UpdatedAt(a.Config.StorageKey); err == nil && ok {
			cmd.Printf("  Last Saved: %s\n", saved.Local().Format("Jan 2, 2006 15:04"))
		}

		// Stage breakdown
		cmd.Printf("\n%s\n", labelStyle.Render("Stage Breakdown"))
		for _, s := range pipeline.Stages() {
			count := stats.ByStage[s]
			percentage := float64(count) / float64(stats.Total) * 100
			cmd.Printf("  %s: %d (%.1f%%)\n", pipeline.Label(s), count, percentage)
		}

		// Conversion rates
		cmd.Printf("\n%s\n", labelStyle.Render("Conversion"))
		cmd.Printf("  Interview Rate: %.1f%%\n", stats.InterviewRate)
		cmd.Printf("  Hire Rate: %.1f%%\n", stats.HireRate)

		cmd.Printf("\n%s\n", labelStyle.Render("Skills"))
		for _, sc := range stats.Skills {
			cmd.Printf("  %s: %d\n", sc.Skill, sc.Count)
		}

		// Recent activity
		if len(stats.RecentActivity) > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Recent Activity"))
			for _, activity := range stats.RecentActivity {
				cmd.Printf("  %s: %s\n", activity.Date.Local().Format("Jan 2"), activity.Description)
			}
		}
		return nil
	},
}

type Stats struct {
	Total          int
	Hired          int
	Pending        int
	ByStage        map[models.Status]int
	AvgRating      float64
	InterviewRate  float64
	HireRate       float64
	Skills         []SkillCount
	RecentActivity []Activity
}

type SkillCount struct {
	Skill string
	Count int
}

type Activity struct {
	Date        time.Time
	Description string
}

const recentWindow = 30 * 24 * time.Hour

func calculateStats(candidates []models.Candidate, now time.Time) Stats {
	counts := projection.Aggregate(candidates)
	stats := Stats{
		Total:          counts.Total,
		Hired:          counts.Hired,
		Pending:        counts.Pending,
		ByStage:        make(map[models.Status]int),
		RecentActivity: []Activity{},
	}

	title := cases.Title(language.English)
	bySkill := make(map[string]int)
	ratingSum := 0

	for _, c := range candidates {
		stats.ByStage[c.Status]++
		ratingSum += projection.Stars(c.Rating)

		skill := "Other"
		if c.Skill != "" {
			skill = title.String(c.Skill)
		}
		bySkill[skill]++

		if !c.Date.IsZero() && now.Sub(c.Date) < recentWindow {
			stats.RecentActivity = append(stats.RecentActivity, Activity{
				Date:        c.Date,
				Description: fmt.Sprintf("Added %s for %s (%s)", c.Name, c.Role, pipeline.Label(c.Status)),
			})
		}
	}

	if stats.Total > 0 {
		stats.AvgRating = float64(ratingSum) / float64(stats.Total)
		reached := stats.ByStage[models.StatusInterview] + stats.ByStage[models.StatusHired]
		stats.InterviewRate = float64(reached) / float64(stats.Total) * 100
		stats.HireRate = float64(stats.Hired) / float64(stats.Total) * 100
	}

	for skill, n := range bySkill {
		stats.Skills = append(stats.Skills, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(stats.Skills, func(i, j int) bool {
		if stats.Skills[i].Count != stats.Skills[j].Count {
			return stats.Skills[i].Count > stats.Skills[j].Count
		}
		return stats.Skills[i].Skill < stats.Skills[j].Skill
	})

	sort.SliceStable(stats.RecentActivity, func(i, j int) bool {
		return stats.RecentActivity[i].Date.After(stats.RecentActivity[j].Date)
	})
	if len(stats.RecentActivity) > 5 {
		stats.RecentActivity = stats.RecentActivity[:5]
	}

	return stats
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
