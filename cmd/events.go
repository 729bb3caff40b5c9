package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/ledger"
	"github.com/ashvale/pathbound/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage the attended-event log",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attended events",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		c := sess.character
		totals := c.Recompute()
		if len(c.Events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}

		for i, ev := range c.Events {
			var extras []string
			if ev.NPC {
				extras = append(extras, "NPC")
			}
			if ev.MerchantOT {
				extras = append(extras, "Merchant OT")
			}
			if ev.BonusSP != 0 {
				extras = append(extras, fmt.Sprintf("%+d bonus", ev.BonusSP))
			}
			fmt.Printf("%3d  %-24s %-12s %-12s %2d SP  %s\n",
				i+1, orDash(ev.Name), orDash(ev.Date), ev.Type, ev.SkillPoints, strings.Join(extras, ", "))
		}
		fmt.Printf("\n%d qualifying events, Tier %d, %d SP earned\n",
			totals.QualifyingCount, totals.Tier, totals.TotalPoints)
		return nil
	},
}

var eventsAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Record an attended event",
	Long: "Record an attended event. Known types:\n" +
		eventTypeHelp(),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		ev := ledger.Event{Type: args[0]}
		ev.Name, _ = cmd.Flags().GetString("name")
		ev.Date, _ = cmd.Flags().GetString("date")
		ev.NPC, _ = cmd.Flags().GetBool("npc")
		ev.MerchantOT, _ = cmd.Flags().GetBool("merchant")
		ev.BonusSP, _ = cmd.Flags().GetInt("bonus")

		c := sess.character
		c.Events = append(c.Events, ev)
		totals := c.Recompute()

		sess.record(cmd.Context(), store.ActionEvent, "", ev.Type, 0)
		if err := sess.save(cmd.Context()); err != nil {
			return err
		}

		added := c.Events[len(c.Events)-1]
		fmt.Printf("Recorded %s (+%d SP). Tier %d, %d SP total.\n",
			ev.Type, added.SkillPoints, totals.Tier, totals.TotalPoints)
		return nil
	},
}

var eventsRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an event by its list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.close()

		c := sess.character
		if idx < 1 || idx > len(c.Events) {
			return fmt.Errorf("index %d out of range (1-%d)", idx, len(c.Events))
		}

		removed := c.Events[idx-1]
		c.Events = append(c.Events[:idx-1], c.Events[idx:]...)
		c.Recompute()

		sess.record(cmd.Context(), store.ActionEvent, "", "removed "+removed.Type, 0)
		if err := sess.save(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("Removed event %d (%s).\n", idx, removed.Type)
		return nil
	},
}

func eventTypeHelp() string {
	var b strings.Builder
	for _, t := range ledger.EventTypes() {
		qual := ""
		if t.Qualifying {
			qual = ", counts toward tier"
		}
		fmt.Fprintf(&b, "  %-12s %d SP%s\n", t.Label, t.BasePoints, qual)
	}
	return b.String()
}

func init() {
	eventsAddCmd.Flags().String("name", "", "Event name")
	eventsAddCmd.Flags().String("date", "", "Event date (YYYY-MM-DD)")
	eventsAddCmd.Flags().Bool("npc", false, "You played an NPC (+1 SP)")
	eventsAddCmd.Flags().Bool("merchant", false, "Merchant overtime (+1 SP)")
	eventsAddCmd.Flags().Int("bonus", 0, "Bonus skill points")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsAddCmd)
	eventsCmd.AddCommand(eventsRemoveCmd)
}
