package usecase

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

// Overrides is a compiled set of override patterns
type Overrides []*regexp.Regexp

// CompileOverrides compiles patterns in order. An invalid pattern is an error.
func CompileOverrides(patterns []string) (Overrides, error) {
	overrides := make(Overrides, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid override pattern",
				goerr.V("pattern", p),
				goerr.V("error", err.Error()),
			)
		}
		overrides = append(overrides, re)
	}
	return overrides, nil
}

// Match reports whether any pattern matches a substring of repo
func (x Overrides) Match(repo types.RepoSlug) bool {
	for _, re := range x {
		if re.MatchString(repo.String()) {
			return true
		}
	}
	return false
}

// MatchOverride compiles patterns and reports whether any of them matches repo.
func MatchOverride(repo types.RepoSlug, patterns []string) (bool, error) {
	overrides, err := CompileOverrides(patterns)
	if err != nil {
		return false, err
	}
	return overrides.Match(repo), nil
}
