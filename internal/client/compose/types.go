package compose

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// User-facing texts. They are part of the product contract.
const (
	TitleRequiredMessage = "给日记起个标题吧"
	BodyRequiredMessage  = "日记内容不能为空哦"
	SaveFailedMessage    = "日记保存失败，请检查网络后重试"
	IntroHintText        = "写完日记点击返回键就能自动保存哦"
	CompletionHintText   = "你的日记已经自动保存并同步，放心退出吧"
	FallbackPlaceLabel   = "地球的某个角落"
)

// MediaCategory tags every upload made from this screen.
const MediaCategory = "note"

type State int

const (
	StateIdle State = iota
	StateValidating
	StateUploadingMedia
	StateSubmitting
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateUploadingMedia:
		return "uploading_media"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Outcome is how a save gesture ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeIgnored: a save was already in flight.
	OutcomeIgnored
	// OutcomeDiscard: nothing was written; the screen was popped.
	OutcomeDiscard
	OutcomeTitleRequired
	OutcomeBodyRequired
	// OutcomeShowHint: saved; the completion hint is showing.
	OutcomeShowHint
	// OutcomeNavigateHome: saved; the navigator was reset to the index scene.
	OutcomeNavigateHome
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeDiscard:
		return "discard"
	case OutcomeTitleRequired:
		return "title_required"
	case OutcomeBodyRequired:
		return "body_required"
	case OutcomeShowHint:
		return "show_hint"
	case OutcomeNavigateHome:
		return "navigate_home"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Saved reports whether the outcome follows an accepted entry.
func (o Outcome) Saved() bool {
	return o == OutcomeShowHint || o == OutcomeNavigateHome
}

// Result is returned by Orchestrator.Save.
type Result struct {
	Outcome Outcome
	EntryID string
}

type Scene string

const SceneIndex Scene = "index"

// FailurePolicy selects how upload and submission failures are reported.
type FailurePolicy int

const (
	// FailureSurface alerts the user and returns an error wrapping
	// ErrSaveFailed.
	FailureSurface FailurePolicy = iota
	// FailureLegacySilent reports OutcomeFailed with no alert and no error.
	FailureLegacySilent
)

// MediaStore uploads a batch of payloads and returns one reference per
// payload, in the same order.
type MediaStore interface {
	Upload(ctx context.Context, media []models.Media, tag models.UploadTag) ([]models.ImageRef, error)
}

type EntrySubmitter interface {
	CreateEntry(ctx context.Context, sub models.Submission) (models.Receipt, error)
}

// ProfileStore is the caller-profile handle of the session.
type ProfileStore interface {
	Current() (models.Profile, bool)
	UpdateStatus(ctx context.Context, profile models.Profile, status int32) error
	Refresh(ctx context.Context, ownerID string) error
}

type FlagStore interface {
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	SetBool(ctx context.Context, key string, v bool) error
}

type Navigator interface {
	Pop()
	Reset(scene Scene)
}

// Prompter shows a blocking message to the user.
type Prompter interface {
	Alert(ctx context.Context, message string)
}

type PositionProvider interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, longitude, latitude float64) (models.Place, error)
}
