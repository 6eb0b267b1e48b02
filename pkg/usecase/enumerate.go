package usecase

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/errutil"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

const (
	// repoSlugSegment is the index of the slug in a link URL split by "/",
	// e.g. https://bitbucket.org/<workspace>/<slug>/src
	repoSlugSegment = 4

	// workspaceSentinel appears in place of a slug in catalog entries that
	// do not point to a repository
	workspaceSentinel = "workspace"
)

// ExtractRepoSlug returns the repository slug from the last link of a service definition
func ExtractRepoSlug(def *model.ServiceDefinition) (types.RepoSlug, bool) {
	u, ok := def.LastLinkURL()
	if !ok {
		return "", false
	}

	segments := strings.Split(u, "/")
	if len(segments) <= repoSlugSegment {
		return "", false
	}

	slug := segments[repoSlugSegment]
	if slug == "" || slug == workspaceSentinel {
		return "", false
	}
	return types.RepoSlug(slug), true
}

// EnumerateRepositories yields explicit verbatim when it is not empty. Otherwise
// it pages through the service catalog from page 0 until an empty page. A page
// error is reported and ends the sequence; repositories already yielded stand.
// Pages are fetched lazily as the consumer ranges over the sequence.
func (x *UseCase) EnumerateRepositories(ctx context.Context, explicit []types.RepoSlug) iter.Seq[types.RepoSlug] {
	return func(yield func(types.RepoSlug) bool) {
		if len(explicit) > 0 {
			for _, repo := range explicit {
				if !yield(repo) {
					return
				}
			}
			return
		}

		logger := logging.From(ctx)
		if x.clients == nil || x.clients.ServiceCatalog() == nil {
			logger.Error("Service catalog is not configured")
			return
		}
		catalog := x.clients.ServiceCatalog()

		logger.Info("Retrieving active services...")
		for page := 0; ; page++ {
			if ctx.Err() != nil {
				logger.Warn("Stopped retrieving active services", slog.Any("error", ctx.Err()))
				return
			}

			defs, err := catalog.ListServiceDefinitions(ctx, page)
			if err != nil {
				errutil.HandleError(ctx, "Failed to list service definitions", err)
				return
			}
			if len(defs) == 0 {
				return
			}

			for _, def := range defs {
				repo, ok := ExtractRepoSlug(def)
				if !ok {
					logger.Debug("Skipping service without repository link",
						slog.String("service", def.Name),
						slog.Int("page", page),
					)
					continue
				}
				if !yield(repo) {
					return
				}
			}
		}
	}
}
