package controllers

import (
	"betadmin/models"
	"betadmin/services"
	"betadmin/validators"
)

type matchAPI interface {
	List(status string) ([]models.Match, error)
	Create(req services.CreateMatchRequest) (*models.CreateMatchResponse, error)
	Settle(matchID uint, result string) (*models.SettleMatchResponse, error)
}

// MatchesController drives the Matches screen. The backend returns matches
// as one unpaginated set, so the list always runs in all mode with an
// optional status filter.
type MatchesController struct {
	api      matchAPI
	notifier Notifier

	List *List[models.Match]

	Selected        *models.Match
	ShowCreateModal bool
	ShowSettleModal bool
	CreateForm      validators.MatchForm
	SettleResult    string
}

func NewMatchesController(api matchAPI, opts ListOptions) *MatchesController {
	mc := &MatchesController{api: api, notifier: opts.Notifier}
	if mc.notifier == nil {
		mc.notifier = LogNotifier{}
		opts.Notifier = mc.notifier
	}

	mc.List = NewList(func(int, int, map[string]string) (Page[models.Match], error) {
		// Matches are never paginated; the all-mode fetch below is the
		// only path taken.
		return Page[models.Match]{TotalPages: 1}, nil
	}, opts)
	mc.List.SetFetchAll(func(filters map[string]string) ([]models.Match, error) {
		return api.List(filters["status"])
	})
	mc.List.SetAllMode(true)

	return mc
}

// SetStatusFilter filters by match status; empty shows every match.
func (mc *MatchesController) SetStatusFilter(status string) {
	mc.List.SetFilter("status", status)
}

// OpenCreateModal resets the creation form.
func (mc *MatchesController) OpenCreateModal() {
	mc.CreateForm = validators.MatchForm{}
	mc.ShowCreateModal = true
}

// CloseCreateModal dismisses the form without submitting.
func (mc *MatchesController) CloseCreateModal() {
	mc.CreateForm = validators.MatchForm{}
	mc.ShowCreateModal = false
}

// SubmitCreate validates and submits the creation form. On success the modal
// closes and the list reloads.
func (mc *MatchesController) SubmitCreate() {
	if errs := validators.ValidateMatchForm(mc.CreateForm); len(errs) > 0 {
		mc.notifier.Error(validators.FirstError(errs))
		return
	}

	_, err := mc.api.Create(services.CreateMatchRequest{
		HomeTeam:         mc.CreateForm.HomeTeam,
		AwayTeam:         mc.CreateForm.AwayTeam,
		EventDescription: mc.CreateForm.EventDescription,
		YesOdds:          mc.CreateForm.YesOdds,
		NoOdds:           mc.CreateForm.NoOdds,
	})
	if err != nil {
		mc.notifier.Error("Failed to create match: " + err.Error())
		return
	}

	mc.notifier.Success("Match created successfully")
	mc.CloseCreateModal()
	mc.List.Reload()
}

// OpenSettleModal selects a match for settlement.
func (mc *MatchesController) OpenSettleModal(match models.Match) {
	mc.Selected = &match
	mc.SettleResult = ""
	mc.ShowSettleModal = true
}

// CloseSettleModal dismisses the modal without submitting.
func (mc *MatchesController) CloseSettleModal() {
	mc.Selected = nil
	mc.SettleResult = ""
	mc.ShowSettleModal = false
}

// SubmitSettle records the selected match's outcome. Settlement is one-way;
// the backend resolves every open bet on the match.
func (mc *MatchesController) SubmitSettle() {
	if mc.Selected == nil {
		return
	}
	if errs := validators.ValidateSettleResult(mc.SettleResult); len(errs) > 0 {
		mc.notifier.Error(validators.FirstError(errs))
		return
	}

	resp, err := mc.api.Settle(mc.Selected.ID, mc.SettleResult)
	if err != nil {
		mc.notifier.Error("Failed to settle match: " + err.Error())
		return
	}

	mc.notifier.Success(resp.Message)
	mc.CloseSettleModal()
	mc.List.Reload()
}
