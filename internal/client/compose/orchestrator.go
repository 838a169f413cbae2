package compose

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

const DefaultBestEffortTimeout = 15 * time.Second

// Deps are the collaborators of the save pipeline.
type Deps struct {
	Media     MediaStore
	Entries   EntrySubmitter
	Profiles  ProfileStore
	Navigator Navigator
	Prompter  Prompter
}

type Config struct {
	FailurePolicy     FailurePolicy
	BestEffortTimeout time.Duration
	LocationTimeout   time.Duration
}

// Orchestrator runs the save pipeline of one draft.
type Orchestrator struct {
	store  *DraftStore
	deps   Deps
	policy FailurePolicy
	bgTTL  time.Duration
	log    logging.Logger

	bg sync.WaitGroup
}

func NewOrchestrator(store *DraftStore, deps Deps, cfg Config, log logging.Logger) *Orchestrator {
	ttl := cfg.BestEffortTimeout
	if ttl <= 0 {
		ttl = DefaultBestEffortTimeout
	}
	return &Orchestrator{
		store:  store,
		deps:   deps,
		policy: cfg.FailurePolicy,
		bgTTL:  ttl,
		log:    log.With("component", "orchestrator"),
	}
}

// Save handles one save gesture.
//
// Validation outcomes return a nil error: the prompt has already been shown.
// Failures after validation return an error wrapping ErrSaveFailed unless the
// policy is FailureLegacySilent.
func (o *Orchestrator) Save(ctx context.Context) (Result, error) {
	snap, ok := o.store.beginSubmit()
	if !ok {
		o.log.Debug(ctx, "save ignored, already submitting")
		return Result{Outcome: OutcomeIgnored}, nil
	}

	if err := snap.Validate(); err != nil {
		return o.rejectDraft(ctx, err), nil
	}

	profile, ok := o.deps.Profiles.Current()
	if !ok {
		return o.fail(ctx, ErrNoProfile)
	}

	o.store.setState(StateUploadingMedia)
	refs, err := o.upload(ctx, snap.Media, profile.Id)
	if err != nil {
		return o.fail(ctx, fmt.Errorf("upload media: %w", err))
	}

	o.store.setState(StateSubmitting)
	coords, label := o.store.location()
	receipt, err := o.deps.Entries.CreateEntry(ctx, models.Submission{
		Title:       snap.Title,
		Body:        snap.Body,
		Images:      refs,
		Coordinates: coords,
		Location:    label,
	})
	if err != nil {
		return o.fail(ctx, fmt.Errorf("submit entry: %w", err))
	}
	if !receipt.Accepted() {
		return o.fail(ctx, &RejectedError{Code: receipt.Code, Message: receipt.Message})
	}

	o.log.Info(ctx, "entry saved", "entry_id", receipt.EntryID, "images", len(refs))
	o.afterAccept(ctx, profile)

	if o.store.isFirstEntry() {
		o.store.update(func(d *Draft) {
			d.State = StateDone
			d.Outcome = OutcomeShowHint
			d.IsSubmitting = false
			d.HintVisible = true
			d.HintText = CompletionHintText
		})
		return Result{Outcome: OutcomeShowHint, EntryID: receipt.EntryID}, nil
	}

	o.store.finish(StateDone, OutcomeNavigateHome, true)
	o.deps.Navigator.Reset(SceneIndex)
	return Result{Outcome: OutcomeNavigateHome, EntryID: receipt.EntryID}, nil
}

// Wait blocks until the best-effort requests started by Save have finished.
func (o *Orchestrator) Wait() {
	o.bg.Wait()
}

func (o *Orchestrator) rejectDraft(ctx context.Context, err error) Result {
	switch {
	case errors.Is(err, ErrEmptyDraft):
		o.store.finish(StateAborted, OutcomeDiscard, true)
		o.deps.Navigator.Pop()
		return Result{Outcome: OutcomeDiscard}
	case errors.Is(err, ErrTitleRequired):
		o.store.finish(StateAborted, OutcomeTitleRequired, false)
		o.deps.Prompter.Alert(ctx, TitleRequiredMessage)
		return Result{Outcome: OutcomeTitleRequired}
	default:
		o.store.finish(StateAborted, OutcomeBodyRequired, false)
		o.deps.Prompter.Alert(ctx, BodyRequiredMessage)
		return Result{Outcome: OutcomeBodyRequired}
	}
}

func (o *Orchestrator) upload(ctx context.Context, media []models.Media, ownerID string) ([]models.ImageRef, error) {
	if len(media) == 0 {
		return []models.ImageRef{}, nil
	}
	refs, err := o.deps.Media.Upload(ctx, media, models.UploadTag{Category: MediaCategory, OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	if len(refs) != len(media) {
		return nil, fmt.Errorf("object store returned %d references for %d images", len(refs), len(media))
	}
	return refs, nil
}

func (o *Orchestrator) fail(ctx context.Context, cause error) (Result, error) {
	o.store.finish(StateAborted, OutcomeFailed, false)
	o.log.Error(ctx, "diary save failed", "error", cause)

	if o.policy == FailureLegacySilent {
		return Result{Outcome: OutcomeFailed}, nil
	}
	o.deps.Prompter.Alert(ctx, SaveFailedMessage)
	return Result{Outcome: OutcomeFailed}, fmt.Errorf("%w: %w", ErrSaveFailed, cause)
}

// UpgradedStatus returns the status an incomplete profile moves to after its
// first accepted entry.
func UpgradedStatus(p models.Profile) (int32, bool) {
	if p.Status != common.StatusProfileIncomplete {
		return 0, false
	}
	if p.HasSex() {
		return common.StatusWroteFirstEntryWithSex, true
	}
	return common.StatusWroteFirstEntry, true
}

func (o *Orchestrator) afterAccept(ctx context.Context, profile models.Profile) {
	if status, ok := UpgradedStatus(profile); ok {
		o.bestEffort(ctx, "profile status upgrade", func(ctx context.Context) error {
			return o.deps.Profiles.UpdateStatus(ctx, profile, status)
		})
	}
	o.bestEffort(ctx, "profile refresh", func(ctx context.Context) error {
		return o.deps.Profiles.Refresh(ctx, profile.Id)
	})
}

func (o *Orchestrator) bestEffort(ctx context.Context, name string, fn func(ctx context.Context) error) {
	o.bg.Add(1)
	go func() {
		defer o.bg.Done()
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.bgTTL)
		defer cancel()
		if err := fn(bctx); err != nil {
			o.log.Warn(bctx, name+" failed", "error", err)
		}
	}()
}
