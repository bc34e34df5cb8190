package main

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	alog "github.com/anacrolix/log"

	"github.com/netmoat/sockx"
	"github.com/netmoat/sockx/internal/envx"
	"github.com/netmoat/sockx/internal/errorsx"
)

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func mainErr() error {
	var args = struct {
		Probe *struct{} `arg:"subcommand" help:"create a socket for every family/type pair and report the outcome"`
		Mk    *struct {
			Family sockx.Family `arg:"positional" help:"inet, inet6 or local"`
			Type   sockx.Type   `arg:"positional" help:"stream or datagram"`
		} `arg:"subcommand" help:"create one socket and dump its state"`
	}{}
	p := arg.MustParse(&args)

	logger := alog.Default
	if !envx.Boolean(false, "SOCKX_VERBOSE") {
		logger = logger.FilterLevel(alog.Info)
	}

	switch {
	case args.Probe != nil:
		return probe(logger)
	case args.Mk != nil:
		return mk(logger, args.Mk.Family, args.Mk.Type)
	default:
		p.Fail("expected a subcommand")
		return nil
	}
}

func probe(logger alog.Logger) error {
	fmt.Printf("flags readable: %v, sigpipe suppression: %v\n", sockx.HasFlags, sockx.HasNoSigpipe)
	for _, family := range sockx.Families() {
		for _, typ := range sockx.Types() {
			s, err := sockx.New(family, typ, sockx.WithLogger(logger))
			if err != nil {
				fmt.Printf("%v/%v: %v\n", family, typ, err)
				continue
			}
			fmt.Printf("%v/%v: fd=%v nonblock=%v issues=%v\n",
				family, typ, s.RawFd(), nonblockState(s), len(s.Issues()))
			errorsx.Log(s.Close())
		}
	}
	return nil
}

func mk(logger alog.Logger, family sockx.Family, typ sockx.Type) error {
	s, err := sockx.New(family, typ, sockx.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { errorsx.Log(s.Close()) }()

	fmt.Printf("fd=%v nonblock=%v\n", s.RawFd(), nonblockState(s))
	if sockx.HasFlags {
		flags, err := sockx.Flags(s.RawFd())
		if err != nil {
			return err
		}
		fmt.Printf("flags=%#x\n", flags)
	}
	for _, issue := range s.Issues() {
		fmt.Printf("issue: %v\n", issue)
	}
	return nil
}

func nonblockState(s *sockx.Socket) string {
	if !sockx.HasFlags {
		return "n/a"
	}
	on, err := sockx.IsNonblock(s.RawFd())
	if err != nil {
		return err.Error()
	}
	return fmt.Sprint(on)
}
