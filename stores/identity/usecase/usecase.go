package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/identity"
)

var (
	fidPattern = regexp.MustCompile(`^(?i)(?:fid[:/])?([0-9]+)$`)

	defaultSuffixes = []string{".eth"}
)

type Cfg struct {
	NameService identity.NameService
	ProfileRepo identity.ProfileRepo
	// NameSuffixes routes a query to the name service, defaults to .eth
	NameSuffixes []string
}

type impl struct {
	names    identity.NameService
	profiles identity.ProfileRepo
	suffixes []string
}

func New(cfg *Cfg) identity.UseCase {
	suffixes := []string{}
	for _, s := range cfg.NameSuffixes {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			suffixes = append(suffixes, s)
		}
	}
	if len(suffixes) == 0 {
		suffixes = defaultSuffixes
	}
	return &impl{
		names:    cfg.NameService,
		profiles: cfg.ProfileRepo,
		suffixes: suffixes,
	}
}

// Normalize removes all whitespace and one leading @
func Normalize(q string) string {
	q = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, q)
	return strings.TrimPrefix(q, "@")
}

func (im *impl) Resolve(c ctx.Ctx, q string) (domain.Address, error) {
	q = Normalize(q)
	if q == "" {
		return "", domain.ErrBadParamInput
	}

	if addr := domain.Address(q); addr.IsValid() {
		return addr.ToLower(), nil
	}

	if im.isName(q) {
		addr, err := im.resolveName(c, strings.ToLower(q))
		if err == nil {
			return addr, nil
		}
		// profiles index names too
		return im.fromProfile(c, "username", q, func() ([]byte, error) {
			return im.profiles.GetByUsername(c, strings.ToLower(q))
		})
	}

	if m := fidPattern.FindStringSubmatch(q); m != nil {
		fid, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return "", domain.ErrNotFound
		}
		return im.fromProfile(c, "fid", q, func() ([]byte, error) {
			return im.profiles.GetByFid(c, fid)
		})
	}

	return im.fromProfile(c, "username", q, func() ([]byte, error) {
		return im.profiles.GetByUsername(c, q)
	})
}

func (im *impl) isName(q string) bool {
	lower := strings.ToLower(q)
	for _, s := range im.suffixes {
		if strings.HasSuffix(lower, s) && len(lower) > len(s) {
			return true
		}
	}
	return false
}

func (im *impl) resolveName(c ctx.Ctx, name string) (domain.Address, error) {
	if im.names == nil {
		return "", domain.ErrNotFound
	}
	addr, err := im.names.Resolve(c, name)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Warn("names.Resolve failed")
		}
		return "", domain.ErrNotFound
	}
	if !addr.IsValid() {
		return "", domain.ErrNotFound
	}
	return addr.ToLower(), nil
}

// fromProfile collapses every failure into ErrNotFound, the cause is only logged
func (im *impl) fromProfile(c ctx.Ctx, kind, q string, fetch func() ([]byte, error)) (domain.Address, error) {
	if im.profiles == nil {
		return "", domain.ErrNotFound
	}
	data, err := fetch()
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":  err,
				"kind": kind,
				"q":    q,
			}).Warn("profile lookup failed")
		}
		return "", domain.ErrNotFound
	}
	addr, err := identity.ExtractAddress(data)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"kind": kind,
			"q":    q,
		}).Info("no address in profile")
		return "", domain.ErrNotFound
	}
	return addr, nil
}
