package impl

import (
	"context"
	"log/slog"

	deliverycontext "safetrack/internal/delivery/context"
	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type recipientService struct {
	recipientRepo repository.RecipientRepository
	logger        *slog.Logger
}

// RecipientServiceParams holds dependencies for RecipientService, injected by Fx.
type RecipientServiceParams struct {
	fx.In

	RecipientRepo repository.RecipientRepository
	Logger        *slog.Logger
}

// NewRecipientService creates the recipient resolver
func NewRecipientService(params RecipientServiceParams) usecase.RecipientUsecase {
	return &recipientService{
		recipientRepo: params.RecipientRepo,
		logger:        params.Logger,
	}
}

func (srv *recipientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve queries the three recipient groups concurrently and returns their union.
// A user linked through more than one group appears once, in the position of the
// first group that listed them.
func (srv *recipientService) Resolve(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error) {
	var guardians, staff, admins []*entity.Recipient

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guardians, err = srv.recipientRepo.GuardiansOf(gctx, childID)

		return errors.Wrap(err, "failed to load guardians")
	})
	g.Go(func() error {
		var err error
		staff, err = srv.recipientRepo.StaffOf(gctx, childID)

		return errors.Wrap(err, "failed to load staff")
	})
	g.Go(func() error {
		var err error
		admins, err = srv.recipientRepo.AllActiveAdmins(gctx)

		return errors.Wrap(err, "failed to load admins")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	recipients := unionRecipients(guardians, staff, admins)
	srv.log(ctx).Debug("Resolved alert recipients",
		slog.String("child_id", childID.String()),
		slog.Int("guardians", len(guardians)),
		slog.Int("staff", len(staff)),
		slog.Int("admins", len(admins)),
		slog.Int("recipients", len(recipients)),
	)

	return recipients, nil
}

func unionRecipients(groups ...[]*entity.Recipient) []*entity.Recipient {
	size := 0
	for _, group := range groups {
		size += len(group)
	}

	seen := make(map[uuid.UUID]struct{}, size)
	out := make([]*entity.Recipient, 0, size)

	for _, group := range groups {
		for _, r := range group {
			if r == nil || !r.IsActive {
				continue
			}
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}

	return out
}

func recipientIDs(recipients []*entity.Recipient) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(recipients))
	for _, r := range recipients {
		ids = append(ids, r.ID)
	}

	return ids
}
