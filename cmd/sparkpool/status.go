package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	kitlog "github.com/go-kit/log"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/sparkpool/election"
	"github.com/maxpoletaev/sparkpool/internal/generic"
	"github.com/maxpoletaev/sparkpool/pool"
)

type poolStatus struct {
	Pool     pool.Pool
	Nodes    []pool.Node
	MasterID string
}

// fetchStatus reads the pool and its nodes concurrently. The two reads are
// not atomic, so the node count may not match the pool counters.
func fetchStatus(ctx context.Context, client pool.Client, selector election.Selector) (poolStatus, error) {
	var st poolStatus

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := client.GetPool(ctx)
		if err != nil {
			return fmt.Errorf("get pool: %w", err)
		}

		st.Pool = p

		return nil
	})

	g.Go(func() error {
		nodes, err := client.ListNodes(ctx)
		if err != nil {
			return fmt.Errorf("list nodes: %w", err)
		}

		st.Nodes = generic.SortedCopyFunc(nodes, func(a, b pool.Node) bool {
			return a.ID < b.ID
		})

		return nil
	})

	if err := g.Wait(); err != nil {
		return poolStatus{}, err
	}

	if len(st.Nodes) > 0 {
		masterID, err := election.SelectFromNodes(selector, st.Nodes)
		if err != nil {
			return poolStatus{}, err
		}

		st.MasterID = masterID
	}

	return st, nil
}

func printStatus(w io.Writer, st poolStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "pool:\t%s\n", st.Pool.ID)
	fmt.Fprintf(tw, "allocation:\t%s\n", st.Pool.AllocationState)
	fmt.Fprintf(tw, "nodes:\t%d/%d\n", st.Pool.CurrentNodes(), st.Pool.TargetDedicatedNodes+st.Pool.TargetLowPriorityNodes)
	fmt.Fprintf(tw, "master:\t%s\n\n", st.MasterID)

	fmt.Fprintln(tw, "NODE\tIP\tSTATE\tROLE")

	for _, node := range st.Nodes {
		role := "worker"
		if node.ID == st.MasterID {
			role = "master"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", node.ID, node.IPAddress, node.State, role)
	}

	return tw.Flush()
}

func runStatus(ctx context.Context, logger kitlog.Logger, out io.Writer) error {
	client, err := setupPoolClient(logger)
	if err != nil {
		return err
	}

	selector, err := setupSelector()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Status.Timeout)
	defer cancel()

	st, err := fetchStatus(ctx, client, selector)
	if err != nil {
		return err
	}

	return printStatus(out, st)
}
