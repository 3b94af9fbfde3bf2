package controllers

import (
	"strconv"

	"betadmin/models"
	"betadmin/services"
	"betadmin/validators"
)

type userAPI interface {
	List(params services.ListUsersParams) (*models.UserListResponse, error)
	Get(userID uint) (*models.UserDetail, error)
	Block(userID uint, reason string) error
	Unblock(userID uint) error
}

// UsersController drives the Users screen: phone-number search, blocked
// filter, and the block/unblock actions.
type UsersController struct {
	api      userAPI
	notifier Notifier

	List *List[models.User]

	Selected       *models.User
	ShowBlockModal bool
	BlockReason    string
}

func NewUsersController(api userAPI, opts ListOptions) *UsersController {
	uc := &UsersController{api: api, notifier: opts.Notifier}
	if uc.notifier == nil {
		uc.notifier = LogNotifier{}
		opts.Notifier = uc.notifier
	}

	uc.List = NewList(func(page, pageSize int, filters map[string]string) (Page[models.User], error) {
		params := services.ListUsersParams{
			Page:     page,
			PageSize: pageSize,
			Search:   filters["search"],
		}
		if raw, ok := filters["is_blocked"]; ok {
			blocked, err := strconv.ParseBool(raw)
			if err == nil {
				params.IsBlocked = &blocked
			}
		}

		resp, err := api.List(params)
		if err != nil {
			return Page[models.User]{}, err
		}
		return Page[models.User]{Items: resp.Users, Total: resp.Total, TotalPages: resp.TotalPages}, nil
	}, opts)

	return uc
}

// SetBlockedFilter filters the list by blocked status; nil shows everyone.
func (uc *UsersController) SetBlockedFilter(blocked *bool) {
	if blocked == nil {
		uc.List.SetFilter("is_blocked", "")
		return
	}
	uc.List.SetFilter("is_blocked", strconv.FormatBool(*blocked))
}

// Detail fetches one user with lifetime totals for the detail panel.
func (uc *UsersController) Detail(userID uint) (*models.UserDetail, error) {
	detail, err := uc.api.Get(userID)
	if err != nil {
		uc.notifier.Error("Failed to load user: " + err.Error())
		return nil, err
	}
	return detail, nil
}

// OpenBlockModal selects a user for blocking.
func (uc *UsersController) OpenBlockModal(user models.User) {
	uc.Selected = &user
	uc.BlockReason = ""
	uc.ShowBlockModal = true
}

// CloseBlockModal dismisses the modal without submitting.
func (uc *UsersController) CloseBlockModal() {
	uc.Selected = nil
	uc.BlockReason = ""
	uc.ShowBlockModal = false
}

// SubmitBlock blocks the selected user. An empty reason is rejected before
// any request is sent; on success the modal closes and the list reloads.
func (uc *UsersController) SubmitBlock() {
	if uc.Selected == nil {
		return
	}
	if errs := validators.ValidateReason(uc.BlockReason); len(errs) > 0 {
		uc.notifier.Error(validators.FirstError(errs))
		return
	}

	if err := uc.api.Block(uc.Selected.ID, uc.BlockReason); err != nil {
		uc.notifier.Error("Failed to block user: " + err.Error())
		return
	}

	uc.notifier.Success("User blocked successfully")
	uc.CloseBlockModal()
	uc.List.Reload()
}

// Unblock lifts a block without a confirmation form.
func (uc *UsersController) Unblock(userID uint) {
	if err := uc.api.Unblock(userID); err != nil {
		uc.notifier.Error("Failed to unblock user: " + err.Error())
		return
	}
	uc.notifier.Success("User unblocked successfully")
	uc.List.Reload()
}
