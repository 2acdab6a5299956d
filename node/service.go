/*
	Copyright (C) CESS. All rights reserved.
	Copyright (C) Cumulus Encrypted Storage System. All rights reserved.

	SPDX-License-Identifier: Apache-2.0
*/

package node

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ecertify/ecertify/configs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Start serves until ctx is done, then drains the server and releases every
// visitor.
func (n *Node) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", n.GetComAddr())
	if err != nil {
		return errors.Wrap(err, "[Listen]")
	}
	return n.Serve(ctx, ln)
}

func (n *Node) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           n.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n.Log("info", fmt.Sprintf("listening on %s", ln.Addr()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "[Serve]")
		}
		return nil
	})

	g.Go(func() error {
		n.sweepVisitors(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		n.registry.Close()
		n.Log("info", "server stopped")
		return errors.Wrap(err, "[Shutdown]")
	})

	return g.Wait()
}

func (n *Node) sweepVisitors(ctx context.Context) {
	tick := time.NewTicker(configs.SweepInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if released := n.registry.Sweep(configs.VisitorIdleTimeout); released > 0 {
				n.Session("info", fmt.Sprintf("released %d idle visitors", released))
			}
		}
	}
}

// Close releases the role database and flushes the logs.
func (n *Node) Close() error {
	var err error
	if n.roles != nil {
		err = n.roles.Close()
	}
	if n.Logger != nil {
		n.Logger.Sync()
	}
	return err
}
