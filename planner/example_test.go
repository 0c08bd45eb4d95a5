package planner_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/valveplan/ingest"
	"github.com/katalvlaran/valveplan/internal/testnet"
	"github.com/katalvlaran/valveplan/planner"
)

// ExampleSingleAgentBest parses a listing and plans one agent for 30 minutes.
func ExampleSingleAgentBest() {
	g, err := ingest.ParseText(strings.NewReader(testnet.Listing))
	if err != nil {
		fmt.Println(err)
		return
	}
	best, _ := planner.SingleAgentBest(g, "AA", 30)
	fmt.Println(best)
	// Output:
	// 1651
}

// ExampleDualAgentBest plans two agents with 26 minutes each.
func ExampleDualAgentBest() {
	best, _ := planner.DualAgentBest(testnet.Sample(), "AA", 26)
	fmt.Println(best)
	// Output:
	// 1707
}

// ExamplePlanner_Single prints the activation order behind the optimum.
func ExamplePlanner_Single() {
	p, _ := planner.New(testnet.Sample())
	r, _ := p.Single(context.Background(), "AA", 30)
	for _, s := range r.Plan {
		fmt.Printf("%s@%d ", s.ID, s.Minute)
	}
	fmt.Println(r.Best)
	// Output:
	// DD@2 BB@5 JJ@9 HH@17 EE@21 CC@24 1651
}
