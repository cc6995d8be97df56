// Command boshping opens an XMPP stream over BOSH against a connection
// manager and prints every stanza the server pushes, until interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcusfelis/bosh/body"
	"github.com/arcusfelis/bosh/session"
)

type printHandler struct {
	log  zerolog.Logger
	done chan struct{}
}

func (p *printHandler) OnStanza(h session.Handle, el *xmlquery.Node) {
	switch {
	case body.IsStreamOpen(el):
		p.log.Info().Str("sid", h.SID()).Msg("stream opened")
	case body.IsStreamClose(el):
		p.log.Info().Msg("stream closed by server")
	default:
		fmt.Println(el.OutputXML(true))
	}
}

func (p *printHandler) OnError(h session.Handle, err error) {
	p.log.Error().Err(err).Msg("session error")
}

func (p *printHandler) OnClose(h session.Handle) { close(p.done) }

func main() {
	var (
		host  string
		port  int
		path  string
		to    string
		wait  int
		hold  int
		debug bool
	)

	root := &cobra.Command{
		Use:   "boshping",
		Short: "Open an XMPP stream over BOSH and print pushed stanzas",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()

			handler := &printHandler{log: log, done: make(chan struct{})}
			h, err := session.Connect(session.Config{
				Host:   host,
				Port:   port,
				Path:   path,
				To:     to,
				Wait:   wait,
				Hold:   hold,
				Logger: &log,
			}, handler)
			if err != nil {
				return err
			}
			log.Info().Stringer("endpoint", h.Endpoint()).Msg("connecting")
			h.Send(body.NewStreamOpen(to))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sig:
				log.Info().Msg("interrupted, closing stream")
				if err := h.Stop(); err != nil {
					return err
				}
				select {
				case <-handler.done:
				case <-time.After(5 * time.Second):
					log.Warn().Msg("timed out waiting for session to stop")
				}
			case <-handler.done:
			}
			return nil
		},
	}

	root.Flags().StringVar(&host, "host", "localhost", "connection manager host")
	root.Flags().IntVar(&port, "port", 5280, "connection manager port")
	root.Flags().StringVar(&path, "path", "/http-bind", "HTTP binding path")
	root.Flags().StringVar(&to, "to", "", "stream target domain (defaults to host)")
	root.Flags().IntVar(&wait, "wait", body.DefaultWait, "longest poll the server may hold, seconds")
	root.Flags().IntVar(&hold, "hold", body.DefaultHold, "requests the server may keep pending")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
