// Command impactctl runs impact analysis over a snapshot file without a
// running server: validate inventories, compute downstream impact, rank
// components, and list affected workflows.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/impact"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/storage"
	"github.com/furyczech/it-impact-navigator-sub001/pkg/validation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		err = runValidate(os.Args[2:])
	case "downstream":
		err = runDownstream(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "workflows":
		err = runWorkflows(os.Args[2:])
	case "pack":
		err = runPack(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: impactctl <command> <snapshot-file> [flags]

Commands:
  validate   <file>            Check a snapshot against the data model rules
  downstream <file>            Components impacted by the offline roots, with causes
  analyze    <file> [id]       Per-component what-if ranking (all, or one id)
  workflows  <file>            Business workflows affected by the current outage
  pack       <in.json> <out>   Convert a plain JSON snapshot to the compressed format

Flags:
  -json      Emit JSON instead of a table (analyze, downstream, workflows)
`)
}

// loadSnapshot accepts both the compressed snapshot format and plain JSON, so
// hand-written inventories work without a pack step.
func loadSnapshot(path string) (model.Snapshot, error) {
	snap, err := storage.ReadSnapshotFile(path)
	if err == nil {
		return snap, nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return model.Snapshot{}, readErr
	}
	var plain model.Snapshot
	if jsonErr := json.Unmarshal(data, &plain); jsonErr != nil {
		return model.Snapshot{}, fmt.Errorf("%s is neither a snapshot file nor plain JSON: %w", path, err)
	}
	return plain, nil
}

// parseArgs splits positional args from a trailing -json flag.
func parseArgs(args []string) (positional []string, asJSON bool) {
	for _, a := range args {
		if a == "-json" || a == "--json" {
			asJSON = true
			continue
		}
		positional = append(positional, a)
	}
	return positional, asJSON
}

func requireSnapshot(positional []string) (model.Snapshot, error) {
	if len(positional) < 1 {
		return model.Snapshot{}, fmt.Errorf("snapshot file argument required")
	}
	snap, err := loadSnapshot(positional[0])
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := validation.ValidateSnapshot(snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func runValidate(args []string) error {
	positional, _ := parseArgs(args)
	snap, err := requireSnapshot(positional)
	if err != nil {
		return err
	}
	fmt.Printf("snapshot valid: %d components, %d dependencies, %d workflows\n",
		len(snap.Components), len(snap.Dependencies), len(snap.Workflows))
	return nil
}

func runDownstream(args []string) error {
	positional, asJSON := parseArgs(args)
	snap, err := requireSnapshot(positional)
	if err != nil {
		return err
	}

	roots := impact.OfflineRoots(snap.Components)
	impacted := impact.ComputeDownstreamImpact(snap.Components, snap.Dependencies, nil)
	causes := impact.AttributeCauses(snap.Components, snap.Dependencies)

	if asJSON {
		return printJSON(map[string]any{
			"offlineRoots": roots,
			"impacted":     sortedKeys(impacted),
			"causes":       causes,
		})
	}

	fmt.Printf("offline roots: %d, impacted downstream: %d\n\n", len(roots), len(impacted))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tCAUSED BY\tHOPS")
	for _, id := range sortedKeys(impacted) {
		c := causes[id]
		fmt.Fprintf(w, "%s\t%s\t%d\n", id, c.RootID, c.Hops)
	}
	return w.Flush()
}

func runAnalyze(args []string) error {
	positional, asJSON := parseArgs(args)
	snap, err := requireSnapshot(positional)
	if err != nil {
		return err
	}

	scope := impact.ScopeAll
	if len(positional) > 1 {
		scope = impact.Scope{ComponentID: positional[1]}
	}

	results := impact.ComputeAnalysisResults(snap.Components, snap.Dependencies, snap.Workflows, scope)
	if scope != impact.ScopeAll && len(results) == 0 {
		return fmt.Errorf("component %q not found", scope.ComponentID)
	}

	if asJSON {
		return printJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tNAME\tDIRECT\tINDIRECT\tWORKFLOWS\tSCORE\tRISK")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\t%s\n",
			r.ComponentID, r.ComponentName,
			len(r.DirectImpacts), len(r.IndirectImpacts), len(r.AffectedWorkflowIDs),
			r.Score, r.RiskLevel)
	}
	return w.Flush()
}

func runWorkflows(args []string) error {
	positional, asJSON := parseArgs(args)
	snap, err := requireSnapshot(positional)
	if err != nil {
		return err
	}

	roots := impact.OfflineRoots(snap.Components)
	impacted := impact.ComputeDownstreamImpact(snap.Components, snap.Dependencies, nil)

	unavailable := make(map[string]bool, len(impacted)+len(roots))
	for id := range impacted {
		unavailable[id] = true
	}
	for _, id := range roots {
		unavailable[id] = true
	}

	affected := impact.AffectedWorkflows(snap.Workflows, unavailable)

	if asJSON {
		return printJSON(affected)
	}

	if len(affected) == 0 {
		fmt.Println("no workflows affected")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WORKFLOW\tNAME\tCRITICALITY\tIMPACTED STEPS")
	for _, wi := range affected {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\n",
			wi.Workflow.ID, wi.Workflow.Name, wi.Workflow.Criticality,
			len(wi.ImpactedSteps), len(wi.Workflow.Steps))
	}
	return w.Flush()
}

func runPack(args []string) error {
	positional, _ := parseArgs(args)
	if len(positional) < 2 {
		return fmt.Errorf("pack requires an input JSON file and an output path")
	}

	snap, err := loadSnapshot(positional[0])
	if err != nil {
		return err
	}
	if err := validation.ValidateSnapshot(snap); err != nil {
		return err
	}
	if err := storage.WriteSnapshotFile(positional[1], snap); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", positional[1])
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
