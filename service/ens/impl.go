package ens

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/goroutine"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
)

const defaultTimeout = 10 * time.Second

type resolveFunc func(backend bind.ContractBackend, name string) (common.Address, error)

type impl struct {
	backend bind.ContractBackend
	resolve resolveFunc
	timeout time.Duration
}

// New dials rpc lazily, an empty rpc disables name resolution
func New(rpc string, timeout time.Duration) (ENS, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if rpc == "" {
		return &impl{timeout: timeout}, nil
	}
	client, err := ethclient.Dial(rpc)
	if err != nil {
		return nil, xerrors.Errorf("failed to dial ens rpc: %w", err)
	}
	return &impl{
		backend: client,
		resolve: goens.Resolve,
		timeout: timeout,
	}, nil
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	if im.backend == nil {
		return "", domain.ErrNotFound
	}

	type result struct {
		addr common.Address
		err  error
	}

	// go-ens calls carry no context, the lookup is abandoned on timeout
	resCh := make(chan result, 1)
	done := goroutine.RecoverableGo(func() {
		addr, err := im.resolve(im.backend, name)
		resCh <- result{addr, err}
	}, goroutine.WithLogger(ctx.Logger))

	timer := time.NewTimer(im.timeout)
	defer timer.Stop()

	var res result
	select {
	case res = <-resCh:
	case ev, panicked := <-done:
		if panicked {
			return "", xerrors.Errorf("%w: goens.Resolve panicked: %v", domain.ErrUpstream, ev.Panic)
		}
		// f returned, its result is already buffered
		res = <-resCh
	case <-timer.C:
		ctx.WithField("name", name).Warn("goens.Resolve timeout")
		return "", domain.ErrNotFound
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if res.err != nil {
		if isUnregistered(res.err) {
			return "", domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":  res.err,
			"name": name,
		}).Error("failed to goens.Resolve")
		return "", xerrors.Errorf("%w: %v", domain.ErrUpstream, res.err)
	}

	if res.addr == (common.Address{}) {
		return "", domain.ErrNotFound
	}
	return domain.Address(res.addr.Hex()).ToLower(), nil
}

func isUnregistered(err error) bool {
	msg := err.Error()
	return msg == "unregistered name" ||
		msg == "no address" ||
		strings.Contains(msg, "no resolver")
}
